package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/HenryJaiyeoba/inawo-todo-list/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue   = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen  = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed    = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorGray   = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite  = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorBorder = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for the event title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// SectionStyle titles a dashboard section.
var SectionStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorBlue).
	MarginTop(1)

// PanelStyle wraps a block of dashboard content.
var PanelStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// MutedStyle is used for secondary text such as dates and counts.
var MutedStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// DoneStyle renders completed tasks.
var DoneStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Strikethrough(true)

// OverdueStyle flags tasks past their due date.
var OverdueStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorRed)

// PriorityStyle returns a color-coded style for the given task priority.
func PriorityStyle(p model.Priority) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch p {
	case model.PriorityHigh:
		return base.Foreground(ColorRed)
	case model.PriorityMedium:
		return base.Foreground(ColorOrange)
	case model.PriorityLow:
		return base.Foreground(ColorBlue)
	default:
		return base.Foreground(ColorGray)
	}
}

// PercentStyle colors a completion percentage: green when done, yellow past
// halfway, gray otherwise.
func PercentStyle(percent int) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch {
	case percent >= 100:
		return base.Foreground(ColorGreen)
	case percent >= 50:
		return base.Foreground(ColorYellow)
	default:
		return base.Foreground(ColorGray)
	}
}

// SpendStyle colors the share of a budget already spent. Overspending is red.
func SpendStyle(percent int) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch {
	case percent > 100:
		return base.Foreground(ColorRed)
	case percent >= 80:
		return base.Foreground(ColorOrange)
	default:
		return base.Foreground(ColorGreen)
	}
}

// Bar draws a fixed-width progress bar for percent in [0, 100].
func Bar(percent, width int) string {
	if width <= 0 {
		return ""
	}
	filled := min(max(percent, 0), 100) * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Package report renders an event dashboard for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/HenryJaiyeoba/inawo-todo-list/internal/metrics"
	"github.com/HenryJaiyeoba/inawo-todo-list/internal/model"
	"github.com/HenryJaiyeoba/inawo-todo-list/internal/theme"
)

const barWidth = 20

// Input is everything shown on one dashboard page.
type Input struct {
	Event     model.Event
	Dashboard metrics.Dashboard
	// Tasks are the event's tasks in display order.
	Tasks []model.Task
	Now   time.Time
	Loc   *time.Location
}

// Render writes the dashboard to w.
func Render(w io.Writer, in Input) error {
	loc := in.Loc
	if loc == nil {
		loc = time.Local
	}

	sections := []string{
		header(in.Event, loc),
		section("Progress", progress(in.Dashboard.Completion)),
		section("Budget", budget(in.Dashboard.Budget)),
		section("This week", week(in.Dashboard.Week, in.Dashboard.Overdue)),
		section("Tasks", tasks(in.Tasks, in.Now, loc)),
	}
	if len(in.Dashboard.Vendors) > 0 {
		sections = append(sections, section("Vendors", vendors(in.Dashboard.Vendors, in.Dashboard.Unassigned)))
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, sections...))
	return err
}

func header(e model.Event, loc *time.Location) string {
	line := theme.HeaderStyle.Render(e.Name)
	meta := []string{e.Date.In(loc).Format("Mon 2 Jan 2006")}
	if e.Location != "" {
		meta = append(meta, e.Location)
	}
	return line + " " + theme.MutedStyle.Render(strings.Join(meta, " · "))
}

func section(title, body string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.SectionStyle.Render(title),
		theme.PanelStyle.Render(body),
	)
}

func progress(c metrics.CompletionStats) string {
	lines := []string{percentLine("Overall", c.Overall)}
	for _, pb := range c.ByPriority {
		label := theme.PriorityStyle(pb.Priority).Render(fmt.Sprintf("%-7s", pb.Priority))
		lines = append(lines, percentLine(label, pb.Bucket))
	}
	return strings.Join(lines, "\n")
}

func percentLine(label string, b metrics.Bucket) string {
	return fmt.Sprintf("%-7s %s %s %s",
		label,
		theme.Bar(b.Percent, barWidth),
		theme.PercentStyle(b.Percent).Render(fmt.Sprintf("%3d%%", b.Percent)),
		theme.MutedStyle.Render(fmt.Sprintf("%d/%d", b.Completed, b.Total)),
	)
}

func budget(b metrics.BudgetSummary) string {
	lines := []string{fmt.Sprintf("%s %s  spent %s of %s, %s left",
		theme.Bar(b.ProgressPercent, barWidth),
		theme.SpendStyle(b.ProgressPercent).Render(fmt.Sprintf("%3d%%", b.ProgressPercent)),
		b.Spent.StringFixed(2),
		b.Total.StringFixed(2),
		b.Remaining.StringFixed(2),
	)}
	for _, c := range b.Categories {
		lines = append(lines, fmt.Sprintf("  %-14s %s / %s %s",
			c.Name,
			c.Spent.StringFixed(2),
			c.Allocated.StringFixed(2),
			theme.SpendStyle(c.ProgressPercent).Render(fmt.Sprintf("%d%%", c.ProgressPercent)),
		))
	}
	return strings.Join(lines, "\n")
}

func week(days []metrics.DayCount, overdue int) string {
	cols := make([]string, 0, len(days))
	for _, d := range days {
		cols = append(cols, fmt.Sprintf("%s %d/%d", d.Date.Format("Mon"), d.Completed, d.Total))
	}
	out := strings.Join(cols, "  ")
	if overdue > 0 {
		out += "\n" + theme.OverdueStyle.Render(fmt.Sprintf("%d overdue", overdue))
	}
	return out
}

func tasks(list []model.Task, now time.Time, loc *time.Location) string {
	if len(list) == 0 {
		return theme.MutedStyle.Render("No tasks yet")
	}
	lines := make([]string, 0, len(list))
	for _, t := range list {
		lines = append(lines, taskLine(t, now, loc))
	}
	return strings.Join(lines, "\n")
}

func taskLine(t model.Task, now time.Time, loc *time.Location) string {
	mark := "[ ]"
	if t.Completed {
		mark = "[x]"
	}
	title := t.Title
	switch {
	case t.Completed:
		title = theme.DoneStyle.Render(title)
	case t.IsOverdue(now):
		title = theme.OverdueStyle.Render(title)
	}

	parts := []string{mark, theme.PriorityStyle(t.Priority).Render(string(t.Priority)), title}
	if t.DueDate != nil {
		parts = append(parts, theme.MutedStyle.Render("due "+t.DueDate.In(loc).Format("2 Jan")))
	}
	if len(t.SubTasks) > 0 {
		parts = append(parts, theme.PercentStyle(t.Progress).Render(fmt.Sprintf("%d%%", t.Progress)))
	}
	return strings.Join(parts, " ")
}

func vendors(stats []metrics.VendorStats, unassigned int) string {
	lines := make([]string, 0, len(stats)+1)
	for _, s := range stats {
		lines = append(lines, fmt.Sprintf("%-20s %-12s %s  %d tasks, %d%% done, %d%% on time, budget %s",
			s.Vendor.Name,
			theme.MutedStyle.Render(s.Vendor.Service),
			strings.Repeat("★", s.Vendor.Rating),
			s.Performance.TotalTasks,
			s.Performance.CompletionRate,
			s.Performance.OnTimeRate,
			s.Budget.StringFixed(2),
		))
	}
	if unassigned > 0 {
		lines = append(lines, theme.MutedStyle.Render(fmt.Sprintf("%d tasks unassigned", unassigned)))
	}
	return strings.Join(lines, "\n")
}

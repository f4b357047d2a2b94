package theme

import (
	"testing"
	"unicode/utf8"
)

func TestBar(t *testing.T) {
	tests := []struct {
		percent, width int
		filled         int
	}{
		{0, 10, 0},
		{50, 10, 5},
		{100, 10, 10},
		{150, 10, 10},
		{-20, 10, 0},
		{33, 3, 0},
	}
	for _, tt := range tests {
		got := Bar(tt.percent, tt.width)
		if n := utf8.RuneCountInString(got); n != tt.width {
			t.Errorf("Bar(%d, %d) has %d cells, want %d", tt.percent, tt.width, n, tt.width)
		}
		filled := 0
		for _, r := range got {
			if r == '█' {
				filled++
			}
		}
		if filled != tt.filled {
			t.Errorf("Bar(%d, %d) filled %d, want %d", tt.percent, tt.width, filled, tt.filled)
		}
	}
	if Bar(50, 0) != "" {
		t.Error("zero width bar must be empty")
	}
}

package metrics

import (
	"time"

	"github.com/HenryJaiyeoba/inawo-todo-list/internal/model"
)

// DayCount is the number of tasks due on one calendar day.
type DayCount struct {
	Date      time.Time `json:"date"`
	Total     int       `json:"total"`
	Completed int       `json:"completed"`
}

// WeekOf returns midnight of each day, Sunday through Saturday, of the
// calendar week containing now, in loc.
func WeekOf(now time.Time, loc *time.Location) []time.Time {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day()-int(local.Weekday()), 0, 0, 0, 0, loc)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// Weekly counts, for each day of the current week, the tasks due that day
// and how many of them are completed.
func Weekly(tasks []model.Task, now time.Time, loc *time.Location) []DayCount {
	days := WeekOf(now, loc)
	counts := make([]DayCount, len(days))
	for i, d := range days {
		counts[i].Date = d
		for _, t := range tasks {
			if t.DueDate == nil || !SameDay(*t.DueDate, d, loc) {
				continue
			}
			counts[i].Total++
			if t.Completed {
				counts[i].Completed++
			}
		}
	}
	return counts
}

// TasksOnDay returns the tasks due on the calendar day containing day.
func TasksOnDay(tasks []model.Task, day time.Time, loc *time.Location) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.DueDate != nil && SameDay(*t.DueDate, day, loc) {
			out = append(out, t)
		}
	}
	return out
}

// Overdue returns incomplete tasks whose due date is before now.
func Overdue(tasks []model.Task, now time.Time) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.IsOverdue(now) {
			out = append(out, t)
		}
	}
	return out
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

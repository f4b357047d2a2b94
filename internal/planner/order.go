package planner

import (
	"cmp"
	"slices"

	"github.com/HenryJaiyeoba/inawo-todo-list/internal/model"
)

// SortTasks returns tasks in display order: open before completed, then by
// due date ascending with undated tasks last, then high before medium
// before low. The sort is stable and tasks is not modified.
func SortTasks(tasks []model.Task) []model.Task {
	out := slices.Clone(tasks)
	slices.SortStableFunc(out, compareTasks)
	return out
}

func compareTasks(a, b model.Task) int {
	if a.Completed != b.Completed {
		if a.Completed {
			return 1
		}
		return -1
	}

	switch {
	case a.DueDate != nil && b.DueDate != nil:
		if c := a.DueDate.Compare(*b.DueDate); c != 0 {
			return c
		}
	case a.DueDate != nil:
		return -1
	case b.DueDate != nil:
		return 1
	}

	return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
}

package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/HenryJaiyeoba/inawo-todo-list/internal/model"
)

// Performance summarizes how a vendor handles its assigned tasks.
type Performance struct {
	CompletionRate int `json:"completionRate"`
	OnTimeRate     int `json:"onTimeRate"`
	TotalTasks     int `json:"totalTasks"`
}

// VendorTasks returns the tasks assigned to vendorID.
func VendorTasks(tasks []model.Task, vendorID string) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if vendorID != "" && t.AssignedTo == vendorID {
			out = append(out, t)
		}
	}
	return out
}

// VendorPerformance computes completion and on-time rates over the tasks
// assigned to vendorID. Both rates use the assigned-task count as the
// denominator. A task is on time when it is completed, has a due date and
// its completedAt is not after the due date; completed tasks without a
// completedAt never count as on time.
func VendorPerformance(tasks []model.Task, vendorID string) Performance {
	assigned := VendorTasks(tasks, vendorID)

	var completed, onTime int
	for _, t := range assigned {
		if !t.Completed {
			continue
		}
		completed++
		if t.DueDate != nil && t.CompletedAt != nil && !t.CompletedAt.After(*t.DueDate) {
			onTime++
		}
	}

	return Performance{
		CompletionRate: Percent(completed, len(assigned)),
		OnTimeRate:     Percent(onTime, len(assigned)),
		TotalTasks:     len(assigned),
	}
}

// VendorBudget sums the budgets of tasks assigned to vendorID.
func VendorBudget(tasks []model.Task, vendorID string) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range VendorTasks(tasks, vendorID) {
		if t.Budget != nil {
			sum = sum.Add(t.Budget.Decimal)
		}
	}
	return sum
}

// Unassigned returns incomplete tasks that have no vendor.
func Unassigned(tasks []model.Task) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.AssignedTo == "" && !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

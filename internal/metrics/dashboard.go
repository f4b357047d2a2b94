package metrics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/HenryJaiyeoba/inawo-todo-list/internal/model"
)

// VendorStats pairs a vendor with its performance and assigned budget.
type VendorStats struct {
	Vendor      model.Vendor    `json:"vendor"`
	Performance Performance     `json:"performance"`
	Budget      decimal.Decimal `json:"budget"`
}

// Dashboard is every derived figure shown for one event.
type Dashboard struct {
	EventID    string          `json:"eventId"`
	Completion CompletionStats `json:"completion"`
	Budget     BudgetSummary   `json:"budget"`
	Week       []DayCount      `json:"week"`
	Overdue    int             `json:"overdue"`
	Unassigned int             `json:"unassigned"`
	Vendors    []VendorStats   `json:"vendors"`
}

// Build computes the dashboard of event from the event's tasks.
func Build(event model.Event, tasks []model.Task, vendors []model.Vendor, now time.Time, loc *time.Location) Dashboard {
	d := Dashboard{
		EventID:    event.ID,
		Completion: Completion(tasks),
		Budget:     Budget(event.Budget),
		Week:       Weekly(tasks, now, loc),
		Overdue:    len(Overdue(tasks, now)),
		Unassigned: len(Unassigned(tasks)),
	}
	for _, v := range vendors {
		d.Vendors = append(d.Vendors, VendorStats{
			Vendor:      v,
			Performance: VendorPerformance(tasks, v.ID),
			Budget:      VendorBudget(tasks, v.ID),
		})
	}
	return d
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultBudgetTotal is the budget a newly created event starts with.
var DefaultBudgetTotal = decimal.NewFromInt(10000)

// Event is a planned occasion (e.g. a wedding) owning its own tasks and budget.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	Budget      Budget    `json:"budget"`
}

// Clone returns a deep copy of the event and its budget categories.
func (e Event) Clone() Event {
	c := e
	c.Budget = e.Budget.Clone()
	return c
}

// Budget is the money plan of one event.
//
// Total and Spent are derived from Categories whenever Categories is non-empty;
// with no categories they hold manually entered values.
type Budget struct {
	Total      decimal.Decimal  `json:"total"`
	Spent      decimal.Decimal  `json:"spent"`
	Categories []BudgetCategory `json:"categories"`
}

// DefaultBudget returns the budget assigned to new events.
func DefaultBudget() Budget {
	return Budget{
		Total:      DefaultBudgetTotal,
		Spent:      decimal.Zero,
		Categories: []BudgetCategory{},
	}
}

// Clone returns a copy with its own categories slice.
func (b Budget) Clone() Budget {
	c := b
	if b.Categories != nil {
		c.Categories = append([]BudgetCategory(nil), b.Categories...)
	}
	return c
}

// Recompute sets Total and Spent to the category sums. It leaves a budget
// without categories untouched.
func (b *Budget) Recompute() {
	if len(b.Categories) == 0 {
		return
	}
	total, spent := decimal.Zero, decimal.Zero
	for _, c := range b.Categories {
		total = total.Add(c.Allocated)
		spent = spent.Add(c.Spent)
	}
	b.Total = total
	b.Spent = spent
}

// BudgetCategory is a named allocation bucket within a budget.
type BudgetCategory struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Allocated decimal.Decimal `json:"allocated"`
	Spent     decimal.Decimal `json:"spent"`
}

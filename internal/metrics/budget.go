package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/HenryJaiyeoba/inawo-todo-list/internal/model"
)

// BudgetSummary is the headline view of an event budget.
type BudgetSummary struct {
	Total           decimal.Decimal   `json:"total"`
	Spent           decimal.Decimal   `json:"spent"`
	Remaining       decimal.Decimal   `json:"remaining"`
	ProgressPercent int               `json:"progressPercent"`
	Categories      []CategorySummary `json:"categories"`
}

// CategorySummary is the per-category view of a budget.
type CategorySummary struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Allocated       decimal.Decimal `json:"allocated"`
	Spent           decimal.Decimal `json:"spent"`
	Remaining       decimal.Decimal `json:"remaining"`
	ProgressPercent int             `json:"progressPercent"`
}

// Budget summarizes b. Remaining is Total - Spent and goes negative when
// the budget is overspent.
func Budget(b model.Budget) BudgetSummary {
	s := BudgetSummary{
		Total:           b.Total,
		Spent:           b.Spent,
		Remaining:       b.Total.Sub(b.Spent),
		ProgressPercent: PercentOf(b.Spent, b.Total),
	}
	for _, c := range b.Categories {
		s.Categories = append(s.Categories, CategorySummary{
			ID:              c.ID,
			Name:            c.Name,
			Allocated:       c.Allocated,
			Spent:           c.Spent,
			Remaining:       c.Allocated.Sub(c.Spent),
			ProgressPercent: PercentOf(c.Spent, c.Allocated),
		})
	}
	return s
}

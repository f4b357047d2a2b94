package planner

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/HenryJaiyeoba/inawo-todo-list/internal/model"
)

// BudgetUpdate holds the budget fields to overwrite; nil fields are kept.
type BudgetUpdate struct {
	Total      *decimal.Decimal
	Spent      *decimal.Decimal
	Categories []model.BudgetCategory
	// SetCategories distinguishes "replace with an empty list" from "keep".
	SetCategories bool
}

// AddEvent creates an event with a fresh id and createdAt and makes it
// active. An event without any budget figures gets the default budget.
func (p *Planner) AddEvent(ctx context.Context, event model.Event) (model.Event, error) {
	if strings.TrimSpace(event.Name) == "" {
		return model.Event{}, fmt.Errorf("event name must not be empty: %w", ErrValidation)
	}

	event = event.Clone()
	event.ID = newID()
	event.CreatedAt = p.now().UTC()
	if isEmptyBudget(event.Budget) {
		event.Budget = model.DefaultBudget()
	}
	for i := range event.Budget.Categories {
		if event.Budget.Categories[i].ID == "" {
			event.Budget.Categories[i].ID = newID()
		}
	}
	event.Budget.Recompute()

	err := p.update(ctx, func(s *state) (bool, error) {
		s.events = append(slices.Clip(s.events), event)
		s.activeEventID = event.ID
		return false, nil
	})
	if err != nil {
		return model.Event{}, err
	}
	return event.Clone(), nil
}

// UpdateEvent replaces an event's name, date, location and description.
// The budget and createdAt are kept.
func (p *Planner) UpdateEvent(ctx context.Context, event model.Event) (model.Event, error) {
	if strings.TrimSpace(event.Name) == "" {
		return model.Event{}, fmt.Errorf("event name must not be empty: %w", ErrValidation)
	}

	var updated model.Event
	err := p.update(ctx, func(s *state) (bool, error) {
		return false, modifyEvent(s, event.ID, func(e *model.Event) error {
			e.Name = event.Name
			e.Date = event.Date
			e.Location = event.Location
			e.Description = event.Description
			updated = e.Clone()
			return nil
		})
	})
	if err != nil {
		return model.Event{}, err
	}
	return updated, nil
}

// DeleteEvent removes an event and every task belonging to it, then makes
// the first remaining event active. Deleting the only event fails with
// ErrLastEvent.
func (p *Planner) DeleteEvent(ctx context.Context, id string) error {
	err := p.update(ctx, func(s *state) (bool, error) {
		i := indexEvent(s.events, id)
		if i < 0 {
			return false, fmt.Errorf("event %s: %w", id, ErrNotFound)
		}
		if len(s.events) <= 1 {
			return false, fmt.Errorf("event %s: %w", id, ErrLastEvent)
		}

		s.events = slices.Delete(slices.Clone(s.events), i, i+1)
		s.tasks = slices.DeleteFunc(slices.Clone(s.tasks), func(t model.Task) bool {
			return t.EventID == id
		})
		s.activeEventID = s.events[0].ID
		return true, nil
	})
	if err != nil {
		p.log.Info("event delete rejected", "event", id, "error", err)
	}
	return err
}

// SetActiveEvent selects the event shown by default.
func (p *Planner) SetActiveEvent(ctx context.Context, id string) error {
	return p.update(ctx, func(s *state) (bool, error) {
		if indexEvent(s.events, id) < 0 {
			return false, fmt.Errorf("event %s: %w", id, ErrNotFound)
		}
		s.activeEventID = id
		return false, nil
	})
}

// UpdateBudget shallow-merges u into the event's budget. When the merged
// budget has categories, total and spent are re-derived from them and any
// supplied total or spent is overridden.
func (p *Planner) UpdateBudget(ctx context.Context, eventID string, u BudgetUpdate) (model.Budget, error) {
	return p.modifyBudget(ctx, eventID, func(b *model.Budget) error {
		if u.Total != nil {
			b.Total = *u.Total
		}
		if u.Spent != nil {
			b.Spent = *u.Spent
		}
		if u.SetCategories || u.Categories != nil {
			b.Categories = append([]model.BudgetCategory{}, u.Categories...)
			for i := range b.Categories {
				if strings.TrimSpace(b.Categories[i].Name) == "" {
					return fmt.Errorf("category name must not be empty: %w", ErrValidation)
				}
				if b.Categories[i].ID == "" {
					b.Categories[i].ID = newID()
				}
			}
		}
		b.Recompute()
		return nil
	})
}

// AddCategory appends a budget category. The name is required and the
// allocation must be positive.
func (p *Planner) AddCategory(ctx context.Context, eventID, name string, allocated, spent decimal.Decimal) (model.BudgetCategory, error) {
	if strings.TrimSpace(name) == "" {
		return model.BudgetCategory{}, fmt.Errorf("category name must not be empty: %w", ErrValidation)
	}
	if !allocated.IsPositive() {
		return model.BudgetCategory{}, fmt.Errorf("category allocation %s must be positive: %w", allocated, ErrValidation)
	}
	if spent.IsNegative() {
		return model.BudgetCategory{}, fmt.Errorf("category spent %s must not be negative: %w", spent, ErrValidation)
	}

	c := model.BudgetCategory{ID: newID(), Name: name, Allocated: allocated, Spent: spent}
	_, err := p.modifyBudget(ctx, eventID, func(b *model.Budget) error {
		b.Categories = append(b.Categories, c)
		b.Recompute()
		return nil
	})
	if err != nil {
		return model.BudgetCategory{}, err
	}
	return c, nil
}

// AddExpense adds a positive amount to a category's spent figure and
// re-derives the event's spent total.
func (p *Planner) AddExpense(ctx context.Context, eventID, categoryID string, amount decimal.Decimal) (model.Budget, error) {
	if !amount.IsPositive() {
		return model.Budget{}, fmt.Errorf("expense amount %s must be positive: %w", amount, ErrValidation)
	}
	return p.modifyBudget(ctx, eventID, func(b *model.Budget) error {
		for i := range b.Categories {
			if b.Categories[i].ID == categoryID {
				b.Categories[i].Spent = b.Categories[i].Spent.Add(amount)
				b.Recompute()
				return nil
			}
		}
		return fmt.Errorf("category %s of event %s: %w", categoryID, eventID, ErrNotFound)
	})
}

// DeleteCategory removes a budget category and re-derives total and spent
// from the remaining ones (both become zero when none remain).
func (p *Planner) DeleteCategory(ctx context.Context, eventID, categoryID string) (model.Budget, error) {
	return p.modifyBudget(ctx, eventID, func(b *model.Budget) error {
		i := slices.IndexFunc(b.Categories, func(c model.BudgetCategory) bool { return c.ID == categoryID })
		if i < 0 {
			return fmt.Errorf("category %s of event %s: %w", categoryID, eventID, ErrNotFound)
		}
		b.Categories = slices.Delete(b.Categories, i, i+1)
		if len(b.Categories) == 0 {
			b.Total, b.Spent = decimal.Zero, decimal.Zero
		}
		b.Recompute()
		return nil
	})
}

func (p *Planner) modifyBudget(ctx context.Context, eventID string, fn func(b *model.Budget) error) (model.Budget, error) {
	var updated model.Budget
	err := p.update(ctx, func(s *state) (bool, error) {
		return false, modifyEvent(s, eventID, func(e *model.Event) error {
			if err := fn(&e.Budget); err != nil {
				return err
			}
			updated = e.Budget.Clone()
			return nil
		})
	})
	if err != nil {
		return model.Budget{}, err
	}
	return updated, nil
}

// modifyEvent replaces s.events with a copy in which fn has been applied to
// a deep copy of the event with the given id.
func modifyEvent(s *state, id string, fn func(e *model.Event) error) error {
	i := indexEvent(s.events, id)
	if i < 0 {
		return fmt.Errorf("event %s: %w", id, ErrNotFound)
	}
	e := s.events[i].Clone()
	if err := fn(&e); err != nil {
		return err
	}
	events := slices.Clone(s.events)
	events[i] = e
	s.events = events
	return nil
}

func isEmptyBudget(b model.Budget) bool {
	return b.Total.IsZero() && b.Spent.IsZero() && len(b.Categories) == 0
}

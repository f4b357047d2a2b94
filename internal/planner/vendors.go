package planner

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/HenryJaiyeoba/inawo-todo-list/internal/metrics"
	"github.com/HenryJaiyeoba/inawo-todo-list/internal/model"
)

// AddVendor registers a vendor with a fresh id and createdAt. Name and
// service are required; a zero rating defaults to the maximum.
func (p *Planner) AddVendor(ctx context.Context, v model.Vendor) (model.Vendor, error) {
	if strings.TrimSpace(v.Name) == "" {
		return model.Vendor{}, fmt.Errorf("vendor name must not be empty: %w", ErrValidation)
	}
	if strings.TrimSpace(v.Service) == "" {
		return model.Vendor{}, fmt.Errorf("vendor service must not be empty: %w", ErrValidation)
	}
	if v.Rating == 0 {
		v.Rating = model.MaxRating
	}
	if v.Rating < model.MinRating || v.Rating > model.MaxRating {
		return model.Vendor{}, fmt.Errorf("vendor rating %d outside [%d, %d]: %w",
			v.Rating, model.MinRating, model.MaxRating, ErrValidation)
	}
	v.ID = newID()
	v.CreatedAt = p.now().UTC()

	err := p.update(ctx, func(s *state) (bool, error) {
		s.vendors = append(slices.Clip(s.vendors), v)
		return false, nil
	})
	if err != nil {
		return model.Vendor{}, err
	}
	return v, nil
}

// DeleteVendor removes a vendor and unassigns every task that referenced it.
func (p *Planner) DeleteVendor(ctx context.Context, id string) error {
	return p.update(ctx, func(s *state) (bool, error) {
		i := indexVendor(s.vendors, id)
		if i < 0 {
			return false, fmt.Errorf("vendor %s: %w", id, ErrNotFound)
		}
		s.vendors = slices.Delete(slices.Clone(s.vendors), i, i+1)

		changed := false
		tasks := slices.Clone(s.tasks)
		for j := range tasks {
			if tasks[j].AssignedTo == id {
				t := tasks[j].Clone()
				t.AssignedTo = ""
				t.AssignedAt = nil
				tasks[j] = t
				changed = true
			}
		}
		if changed {
			s.tasks = tasks
		}
		return changed, nil
	})
}

// TasksForVendor lists every task assigned to the vendor.
func (p *Planner) TasksForVendor(vendorID string) []model.Task {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return cloneTasks(metrics.VendorTasks(p.st.tasks, vendorID))
}

// VendorPerformance rates the vendor over all of its assigned tasks.
func (p *Planner) VendorPerformance(vendorID string) metrics.Performance {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return metrics.VendorPerformance(p.st.tasks, vendorID)
}

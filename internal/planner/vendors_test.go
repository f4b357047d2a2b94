package planner_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/HenryJaiyeoba/inawo-todo-list/internal/model"
	"github.com/HenryJaiyeoba/inawo-todo-list/internal/planner"
)

func TestAddVendorValidation(t *testing.T) {
	f := newFixture(t, []model.Event{event("e1")}, nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		vendor model.Vendor
		want   error
		rating int
	}{
		{"defaults rating", model.Vendor{Name: "DJ Sol", Service: "Music"}, nil, 5},
		{"keeps rating", model.Vendor{Name: "Lens Co", Service: "Photography", Rating: 3}, nil, 3},
		{"missing name", model.Vendor{Service: "Music"}, planner.ErrValidation, 0},
		{"missing service", model.Vendor{Name: "DJ Sol"}, planner.ErrValidation, 0},
		{"rating too high", model.Vendor{Name: "A", Service: "B", Rating: 6}, planner.ErrValidation, 0},
		{"rating negative", model.Vendor{Name: "A", Service: "B", Rating: -1}, planner.ErrValidation, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := f.p.AddVendor(ctx, tt.vendor)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if err != nil {
				return
			}
			if v.ID == "" || !v.CreatedAt.Equal(epoch) || v.Rating != tt.rating {
				t.Fatalf("unexpected vendor: %+v", v)
			}
		})
	}
	if got := len(f.p.Vendors()); got != 4 {
		t.Fatalf("expected 2 seed + 2 added vendors, got %d", got)
	}
}

func TestAssignToVendor(t *testing.T) {
	f := newFixture(t, []model.Event{event("e1")}, []model.Task{
		{ID: "t1", Title: "Catering", Priority: model.PriorityHigh, EventID: "e1", CreatedAt: epoch},
		{ID: "t2", Title: "Flowers", Priority: model.PriorityLow, EventID: "e1", CreatedAt: epoch},
	})
	ctx := context.Background()

	if got := f.p.VendorPerformance("vendor-1"); got.TotalTasks != 0 || got.CompletionRate != 0 || got.OnTimeRate != 0 {
		t.Fatalf("vendor without tasks must rate 0, got %+v", got)
	}

	task, err := f.p.AssignToVendor(ctx, "t1", "vendor-1")
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if task.AssignedTo != "vendor-1" || task.AssignedAt == nil || !task.AssignedAt.Equal(epoch) {
		t.Fatalf("unexpected assignment: %+v", task)
	}
	if got := f.p.TasksForVendor("vendor-1"); len(got) != 1 || got[0].ID != "t1" {
		t.Fatalf("unexpected vendor tasks: %+v", got)
	}
	assertPersisted(t, f)

	if _, err := f.p.AssignToVendor(ctx, "t2", "ghost"); !errors.Is(err, planner.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown vendor, got %v", err)
	}
	if _, err := f.p.AssignToVendor(ctx, "ghost", "vendor-1"); !errors.Is(err, planner.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown task, got %v", err)
	}
}

func TestVendorPerformanceUsesCompletionTime(t *testing.T) {
	due := epoch.Add(48 * time.Hour)
	f := newFixture(t, []model.Event{event("e1")}, []model.Task{
		{ID: "t1", Title: "a", Priority: model.PriorityLow, EventID: "e1", CreatedAt: epoch, DueDate: &due, AssignedTo: "vendor-1"},
		{ID: "t2", Title: "b", Priority: model.PriorityLow, EventID: "e1", CreatedAt: epoch, DueDate: &due, AssignedTo: "vendor-1"},
	})
	ctx := context.Background()

	if _, err := f.p.ToggleCompletion(ctx, "t1"); err != nil {
		t.Fatalf("complete t1: %v", err)
	}
	f.clock.Advance(72 * time.Hour)
	if _, err := f.p.ToggleCompletion(ctx, "t2"); err != nil {
		t.Fatalf("complete t2: %v", err)
	}

	got := f.p.VendorPerformance("vendor-1")
	if got.TotalTasks != 2 || got.CompletionRate != 100 || got.OnTimeRate != 50 {
		t.Fatalf("unexpected performance: %+v", got)
	}
}

func TestDeleteVendorClearsAssignments(t *testing.T) {
	at := epoch
	f := newFixture(t, []model.Event{event("e1")}, []model.Task{
		{ID: "t1", Title: "a", Priority: model.PriorityLow, EventID: "e1", CreatedAt: epoch, AssignedTo: "vendor-2", AssignedAt: &at},
		{ID: "t2", Title: "b", Priority: model.PriorityLow, EventID: "e1", CreatedAt: epoch, AssignedTo: "vendor-1", AssignedAt: &at},
	})
	ctx := context.Background()

	if err := f.p.DeleteVendor(ctx, "vendor-2"); err != nil {
		t.Fatalf("delete vendor: %v", err)
	}
	if got := mustTask(t, f.p, "t1"); got.AssignedTo != "" || got.AssignedAt != nil {
		t.Fatalf("expected t1 unassigned, got %+v", got)
	}
	if got := mustTask(t, f.p, "t2"); got.AssignedTo != "vendor-1" {
		t.Fatalf("other assignments must survive, got %+v", got)
	}
	for _, v := range f.p.Vendors() {
		if v.ID == "vendor-2" {
			t.Fatal("vendor-2 still listed")
		}
	}
	assertPersisted(t, f)

	if err := f.p.DeleteVendor(ctx, "vendor-2"); !errors.Is(err, planner.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

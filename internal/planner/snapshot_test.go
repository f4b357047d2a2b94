package planner_test

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"github.com/HenryJaiyeoba/inawo-todo-list/internal/model"
	"github.com/HenryJaiyeoba/inawo-todo-list/internal/planner"
	"github.com/HenryJaiyeoba/inawo-todo-list/internal/store"
	"github.com/HenryJaiyeoba/inawo-todo-list/tests/testutil"
)

type failingSaver struct{ calls int }

func (s *failingSaver) SaveTasks(context.Context, []model.Task) error {
	s.calls++
	return errors.New("disk full")
}

func TestSortTasksDisplayOrder(t *testing.T) {
	tomorrow := epoch.Add(24 * time.Hour)
	nextWeek := epoch.Add(7 * 24 * time.Hour)

	a := model.Task{ID: "A", Priority: model.PriorityHigh}
	b := model.Task{ID: "B", Priority: model.PriorityLow, DueDate: &tomorrow}
	if got := planner.SortTasks([]model.Task{a, b}); got[0].ID != "B" {
		t.Fatalf("dated task must sort before undated, got %s first", got[0].ID)
	}

	tasks := []model.Task{
		{ID: "done-soon", Completed: true, Priority: model.PriorityHigh, DueDate: &tomorrow},
		{ID: "undated-low", Priority: model.PriorityLow},
		{ID: "next-week", Priority: model.PriorityHigh, DueDate: &nextWeek},
		{ID: "undated-high", Priority: model.PriorityHigh},
		{ID: "tomorrow-low", Priority: model.PriorityLow, DueDate: &tomorrow},
		{ID: "tomorrow-high", Priority: model.PriorityHigh, DueDate: &tomorrow},
		{ID: "undated-medium", Priority: model.PriorityMedium},
	}
	want := []string{"tomorrow-high", "tomorrow-low", "next-week", "undated-high", "undated-medium", "undated-low", "done-soon"}

	got := planner.SortTasks(tasks)
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got %s, want %s (full order %v)", i, got[i].ID, id, ids(got))
		}
	}
	if tasks[0].ID != "done-soon" {
		t.Fatal("SortTasks must not reorder its input")
	}
}

func ids(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	f := newFixture(t, []model.Event{event("e1")}, nil)
	ctx := context.Background()

	var got []planner.Snapshot
	cancel := f.p.Subscribe(func(s planner.Snapshot) { got = append(got, s) })

	if _, err := f.p.AddTask(ctx, model.Task{Title: "Rings"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := f.p.AddTask(ctx, model.Task{Title: ""}); err == nil {
		t.Fatal("expected validation error")
	}
	if len(got) != 1 || len(got[0].Tasks) != 1 {
		t.Fatalf("expected one snapshot with one task, got %+v", got)
	}

	cancel()
	if _, err := f.p.AddTask(ctx, model.Task{Title: "Shoes"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("unsubscribed listener was called, %d snapshots", len(got))
	}
}

func TestPersistenceFailureIsBestEffort(t *testing.T) {
	saver := &failingSaver{}
	p, err := planner.New([]model.Event{event("e1")}, nil, nil,
		planner.WithSaver(saver),
		planner.WithLogger(slog.New(slog.DiscardHandler)),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := p.AddTask(context.Background(), model.Task{Title: "Cake"}); err != nil {
		t.Fatalf("save failure must not fail the mutation: %v", err)
	}
	if saver.calls != 1 {
		t.Fatalf("expected a single save attempt, got %d", saver.calls)
	}
	if len(p.Tasks()) != 1 {
		t.Fatal("mutation must be applied despite the save failure")
	}

	if _, err := p.AddVendor(context.Background(), model.Vendor{Name: "A", Service: "B"}); err != nil {
		t.Fatalf("add vendor: %v", err)
	}
	if saver.calls != 1 {
		t.Fatalf("vendor changes must not write the task slot, got %d saves", saver.calls)
	}
}

func TestLoadRehydratesOrSeeds(t *testing.T) {
	ctx := context.Background()
	quiet := planner.WithLogger(slog.New(slog.DiscardHandler))
	clock := planner.WithClock(func() time.Time { return epoch })

	t.Run("no snapshot", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		p, err := planner.Load(ctx, s, quiet, clock)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if !reflect.DeepEqual(p.Tasks(), planner.SeedTasks(epoch)) {
			t.Fatalf("expected seed tasks, got %+v", p.Tasks())
		}
		if got := p.ActiveEvent().ID; got != planner.SeedEventID {
			t.Fatalf("expected seed event active, got %s", got)
		}
		if len(p.Vendors()) != 2 {
			t.Fatalf("expected seed vendors, got %d", len(p.Vendors()))
		}

		saved, err := s.LoadTasks(ctx)
		if err != nil {
			t.Fatalf("seed tasks must be written on load: %v", err)
		}
		if !reflect.DeepEqual(saved, p.Tasks()) {
			t.Fatalf("stored seed differs:\n got %+v\nwant %+v", saved, p.Tasks())
		}
	})

	t.Run("unparsable snapshot", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		if err := s.Put(ctx, store.TasksKey, []byte("[{")); err != nil {
			t.Fatalf("put: %v", err)
		}
		p, err := planner.Load(ctx, s, quiet, clock)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(p.Tasks()) != len(planner.SeedTasks(epoch)) {
			t.Fatalf("expected seed tasks, got %d", len(p.Tasks()))
		}
		if _, err := s.LoadTasks(ctx); err != nil {
			t.Fatalf("unreadable snapshot must be replaced by the seed: %v", err)
		}
	})

	t.Run("seeding disabled", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		p, err := planner.Load(ctx, s, quiet, clock, planner.WithSeedTasks(false))
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(p.Tasks()) != 0 {
			t.Fatalf("expected no tasks, got %d", len(p.Tasks()))
		}
		if len(p.Events()) != 1 {
			t.Fatal("events are seeded regardless")
		}
	})

	t.Run("saved snapshot", func(t *testing.T) {
		s := testutil.NewTestStore(t)
		saved := []model.Task{{ID: "mine", Title: "Mine", Priority: model.PriorityLow, EventID: planner.SeedEventID, CreatedAt: epoch}}
		if err := s.SaveTasks(ctx, saved); err != nil {
			t.Fatalf("save: %v", err)
		}
		p, err := planner.Load(ctx, s, quiet, clock)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if !reflect.DeepEqual(p.Tasks(), saved) {
			t.Fatalf("expected saved tasks, got %+v", p.Tasks())
		}

		if _, err := p.ToggleCompletion(ctx, "mine"); err != nil {
			t.Fatalf("toggle: %v", err)
		}
		reloaded, err := s.LoadTasks(ctx)
		if err != nil {
			t.Fatalf("reload: %v", err)
		}
		if !reloaded[0].Completed {
			t.Fatal("loaded planner must write changes back to the store")
		}
	})
}

func TestApplyTemplate(t *testing.T) {
	f := newFixture(t, []model.Event{event("e1")}, nil)
	ctx := context.Background()

	added, err := f.p.ApplyTemplate(ctx, "wedding")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(added) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(added))
	}
	for _, task := range added {
		if task.EventID != "e1" || task.ID == "" || task.Progress != 0 {
			t.Fatalf("unexpected template task: %+v", task)
		}
	}
	if added[2].DueDate == nil || !added[2].DueDate.Equal(epoch.Add(30*24*time.Hour)) {
		t.Fatalf("expected due date 30 days out, got %v", added[2].DueDate)
	}

	again, err := f.p.ApplyTemplate(ctx, "wedding")
	if err != nil {
		t.Fatalf("apply again: %v", err)
	}
	if again[0].ID == added[0].ID || again[0].SubTasks[0].ID == added[0].SubTasks[0].ID {
		t.Fatal("each application must mint fresh ids")
	}
	assertPersisted(t, f)

	if _, err := f.p.ApplyTemplate(ctx, "birthday"); !errors.Is(err, planner.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(planner.Templates()) != 3 {
		t.Fatalf("expected 3 built-in templates, got %d", len(planner.Templates()))
	}
}

func TestDashboard(t *testing.T) {
	f := newFixture(t, []model.Event{event("e1"), event("e2")}, []model.Task{
		{ID: "t1", Title: "a", Priority: model.PriorityHigh, EventID: "e1", CreatedAt: epoch, Completed: true},
		{ID: "t2", Title: "b", Priority: model.PriorityLow, EventID: "e1", CreatedAt: epoch},
		{ID: "t3", Title: "c", Priority: model.PriorityLow, EventID: "e2", CreatedAt: epoch},
	})

	d, err := f.p.Dashboard("e1")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if d.Completion.Overall.Total != 2 || d.Completion.Overall.Percent != 50 {
		t.Fatalf("dashboard must only count the event's tasks, got %+v", d.Completion.Overall)
	}
	if len(d.Week) != 7 || len(d.Vendors) != 2 {
		t.Fatalf("unexpected dashboard shape: %+v", d)
	}

	if got := f.p.TasksForEvent("e1"); len(got) != 2 || got[0].ID != "t2" {
		t.Fatalf("expected open task first, got %v", ids(got))
	}

	if _, err := f.p.Dashboard("nope"); !errors.Is(err, planner.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Package planner holds the in-process event, task and vendor stores.
//
// A Planner owns three collections and the id of the active event. Every
// mutator validates its input, builds the next state without touching the
// current one, and then commits it atomically: the task collection is
// written through the configured TaskSaver and subscribers receive the new
// Snapshot. Readers always get deep copies.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/HenryJaiyeoba/inawo-todo-list/internal/metrics"
	"github.com/HenryJaiyeoba/inawo-todo-list/internal/model"
	"github.com/HenryJaiyeoba/inawo-todo-list/internal/store"
)

// TaskSaver persists the full task collection.
type TaskSaver interface {
	SaveTasks(ctx context.Context, tasks []model.Task) error
}

// TaskLoader reads back a persisted task collection.
type TaskLoader interface {
	LoadTasks(ctx context.Context) ([]model.Task, error)
}

// Snapshot is an immutable copy of the planner state.
type Snapshot struct {
	ActiveEventID string
	Events        []model.Event
	Tasks         []model.Task
	Vendors       []model.Vendor
}

// Option configures a Planner.
type Option func(*Planner)

// WithClock overrides the time source used for timestamps and metrics.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) { p.log = l }
}

// WithSaver sets where the task collection is written after each change.
func WithSaver(s TaskSaver) Option {
	return func(p *Planner) { p.saver = s }
}

// WithSeedTasks controls whether Load falls back to the built-in tasks when
// storage holds no usable snapshot. Enabled by default.
func WithSeedTasks(enabled bool) Option {
	return func(p *Planner) { p.seedTasks = enabled }
}

// WithLocation sets the zone used to bucket due dates into calendar days.
func WithLocation(loc *time.Location) Option {
	return func(p *Planner) { p.loc = loc }
}

type state struct {
	activeEventID string
	events        []model.Event
	tasks         []model.Task
	vendors       []model.Vendor
}

type listener struct {
	id int
	fn func(Snapshot)
}

// Planner is the event, task and vendor store.
type Planner struct {
	mu        sync.RWMutex
	st        state
	listeners []listener
	nextID    int

	saver TaskSaver
	log   *slog.Logger
	now   func() time.Time
	loc   *time.Location

	seedTasks bool
}

// New builds a planner over the given collections. The first event becomes
// active. At least one event is required.
func New(events []model.Event, vendors []model.Vendor, tasks []model.Task, opts ...Option) (*Planner, error) {
	if len(events) == 0 {
		return nil, fmt.Errorf("planner needs at least one event: %w", ErrValidation)
	}

	p := &Planner{
		log:       slog.Default(),
		now:       time.Now,
		loc:       time.Local,
		seedTasks: true,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.st = state{
		activeEventID: events[0].ID,
		events:        cloneEvents(events),
		tasks:         cloneTasks(tasks),
		vendors:       append([]model.Vendor(nil), vendors...),
	}
	for i := range p.st.events {
		p.st.events[i].Budget.Recompute()
	}
	for i := range p.st.tasks {
		syncProgress(&p.st.tasks[i])
	}
	return p, nil
}

// Load rehydrates the task collection from storage and seeds events and
// vendors, which are not persisted. A missing or unreadable snapshot falls
// back to the seed tasks unless WithSeedTasks(false) is given, and the
// fallback is written back at once. The storage also becomes the planner's
// TaskSaver.
func Load(ctx context.Context, storage interface {
	TaskLoader
	TaskSaver
}, opts ...Option) (*Planner, error) {
	probe := &Planner{log: slog.Default(), now: time.Now, seedTasks: true}
	for _, opt := range opts {
		opt(probe)
	}
	now := probe.now()

	tasks, err := storage.LoadTasks(ctx)
	switch {
	case err == nil:
		probe.log.Info("rehydrated tasks from snapshot", "count", len(tasks))
	case errors.Is(err, store.ErrNoSnapshot):
		probe.log.Info("no task snapshot", "seed", probe.seedTasks)
	default:
		probe.log.Warn("task snapshot unreadable", "seed", probe.seedTasks, "error", err)
	}
	if err != nil {
		tasks = nil
		if probe.seedTasks {
			tasks = SeedTasks(now)
		}
	}

	opts = append(opts, WithSaver(storage))
	p, perr := New(SeedEvents(now), SeedVendors(now), tasks, opts...)
	if perr != nil {
		return nil, perr
	}
	if err != nil {
		p.persist(ctx, p.st.tasks)
	}
	return p, nil
}

// Now returns the planner clock's current time.
func (p *Planner) Now() time.Time {
	return p.now()
}

// Subscribe registers fn to receive the snapshot after every successful
// mutation. Calls happen synchronously on the mutating goroutine.
// The returned func removes the subscription.
func (p *Planner) Subscribe(fn func(Snapshot)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextID++
	id := p.nextID
	p.listeners = append(p.listeners, listener{id: id, fn: fn})

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, l := range p.listeners {
			if l.id == id {
				p.listeners = append(p.listeners[:i:i], p.listeners[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns a deep copy of the current state.
func (p *Planner) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.st.snapshot()
}

// Events lists every event.
func (p *Planner) Events() []model.Event {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return cloneEvents(p.st.events)
}

// Event returns the event with the given id.
func (p *Planner) Event(id string) (model.Event, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	i := indexEvent(p.st.events, id)
	if i < 0 {
		return model.Event{}, fmt.Errorf("event %s: %w", id, ErrNotFound)
	}
	return p.st.events[i].Clone(), nil
}

// ActiveEvent returns the currently selected event.
func (p *Planner) ActiveEvent() model.Event {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if i := indexEvent(p.st.events, p.st.activeEventID); i >= 0 {
		return p.st.events[i].Clone()
	}
	return p.st.events[0].Clone()
}

// Tasks lists every task in insertion order.
func (p *Planner) Tasks() []model.Task {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return cloneTasks(p.st.tasks)
}

// Task returns the task with the given id.
func (p *Planner) Task(id string) (model.Task, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	i := indexTask(p.st.tasks, id)
	if i < 0 {
		return model.Task{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return p.st.tasks[i].Clone(), nil
}

// TasksForEvent lists the tasks of one event in display order.
func (p *Planner) TasksForEvent(eventID string) []model.Task {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return SortTasks(tasksForEvent(p.st.tasks, eventID))
}

// Vendors lists every vendor.
func (p *Planner) Vendors() []model.Vendor {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]model.Vendor(nil), p.st.vendors...)
}

// Dashboard computes the derived metrics of one event.
func (p *Planner) Dashboard(eventID string) (metrics.Dashboard, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	i := indexEvent(p.st.events, eventID)
	if i < 0 {
		return metrics.Dashboard{}, fmt.Errorf("event %s: %w", eventID, ErrNotFound)
	}
	tasks := tasksForEvent(p.st.tasks, eventID)
	return metrics.Build(p.st.events[i], tasks, p.st.vendors, p.now(), p.loc), nil
}

// update applies fn to a copy of the state and commits it when fn succeeds.
// fn must replace, never modify in place, any slice it changes. When fn
// reports that tasks changed, the task collection is persisted.
func (p *Planner) update(ctx context.Context, fn func(s *state) (tasksChanged bool, err error)) error {
	p.mu.Lock()
	next := p.st
	tasksChanged, err := fn(&next)
	if err != nil {
		p.mu.Unlock()
		return err
	}
	p.st = next
	if tasksChanged {
		p.persist(ctx, next.tasks)
	}
	snap := next.snapshot()
	listeners := append([]listener(nil), p.listeners...)
	p.mu.Unlock()

	for _, l := range listeners {
		l.fn(snap)
	}
	return nil
}

// persist is best-effort: failures are logged and not retried.
func (p *Planner) persist(ctx context.Context, tasks []model.Task) {
	if p.saver == nil {
		return
	}
	if err := p.saver.SaveTasks(ctx, tasks); err != nil {
		p.log.Warn("persisting tasks failed", "count", len(tasks), "error", err)
	}
}

func (s state) snapshot() Snapshot {
	return Snapshot{
		ActiveEventID: s.activeEventID,
		Events:        cloneEvents(s.events),
		Tasks:         cloneTasks(s.tasks),
		Vendors:       append([]model.Vendor(nil), s.vendors...),
	}
}

func newID() string {
	return uuid.New().String()
}

func cloneEvents(events []model.Event) []model.Event {
	out := make([]model.Event, len(events))
	for i, e := range events {
		out[i] = e.Clone()
	}
	return out
}

func cloneTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

func tasksForEvent(tasks []model.Task, eventID string) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.EventID == eventID {
			out = append(out, t.Clone())
		}
	}
	return out
}

func indexEvent(events []model.Event, id string) int {
	for i, e := range events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func indexTask(tasks []model.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func indexVendor(vendors []model.Vendor, id string) int {
	for i, v := range vendors {
		if v.ID == id {
			return i
		}
	}
	return -1
}

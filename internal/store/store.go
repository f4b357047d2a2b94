package store

import (
	"context"
	"errors"

	"github.com/HenryJaiyeoba/inawo-todo-list/internal/model"
)

// TasksKey is the fixed slot under which the task collection is persisted.
const TasksKey = "tasks"

// ErrNoSnapshot is returned when a slot has never been written.
var ErrNoSnapshot = errors.New("no snapshot stored")

// Store is a durable key-value slot store plus typed access to the task snapshot.
type Store interface {
	// === Raw slots ===

	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// === Task snapshot ===

	LoadTasks(ctx context.Context) ([]model.Task, error)
	SaveTasks(ctx context.Context, tasks []model.Task) error
}

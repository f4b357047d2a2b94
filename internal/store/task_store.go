package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/HenryJaiyeoba/inawo-todo-list/internal/model"
)

// LoadTasks decodes the task collection from its slot. It returns an error
// wrapping ErrNoSnapshot when nothing has been saved yet.
func (s *SQLiteStore) LoadTasks(ctx context.Context) ([]model.Task, error) {
	raw, err := s.Get(ctx, TasksKey)
	if err != nil {
		return nil, err
	}
	return DecodeTasks(raw)
}

// SaveTasks encodes the full task collection into its slot.
func (s *SQLiteStore) SaveTasks(ctx context.Context, tasks []model.Task) error {
	raw, err := EncodeTasks(tasks)
	if err != nil {
		return err
	}
	return s.Put(ctx, TasksKey, raw)
}

// EncodeTasks serializes tasks to the persisted JSON array format.
func EncodeTasks(tasks []model.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	raw, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("encoding task snapshot: %w", err)
	}
	return raw, nil
}

// DecodeTasks parses the persisted JSON array format.
func DecodeTasks(raw []byte) ([]model.Task, error) {
	var tasks []model.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, fmt.Errorf("decoding task snapshot: %w", err)
	}
	return tasks, nil
}

package planner

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/HenryJaiyeoba/inawo-todo-list/internal/metrics"
	"github.com/HenryJaiyeoba/inawo-todo-list/internal/model"
)

// LocalAuthorID is the author id stamped on comments written by the planner's user.
const LocalAuthorID = "user-1"

// AddTask appends a task. Missing ids and createdAt are filled in, an unset
// event id defaults to the active event and an unset priority to medium.
func (p *Planner) AddTask(ctx context.Context, task model.Task) (model.Task, error) {
	if strings.TrimSpace(task.Title) == "" {
		return model.Task{}, fmt.Errorf("task title must not be empty: %w", ErrValidation)
	}

	task = task.Clone()
	if task.ID == "" {
		task.ID = newID()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = p.now().UTC()
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	if !task.Priority.Valid() {
		return model.Task{}, fmt.Errorf("task priority %q: %w", task.Priority, ErrValidation)
	}
	for i := range task.SubTasks {
		if task.SubTasks[i].ID == "" {
			task.SubTasks[i].ID = newID()
		}
	}
	if task.Completed && task.CompletedAt == nil {
		at := p.now().UTC()
		task.CompletedAt = &at
	}
	syncProgress(&task)

	err := p.update(ctx, func(s *state) (bool, error) {
		if task.EventID == "" {
			task.EventID = s.activeEventID
		}
		if indexEvent(s.events, task.EventID) < 0 {
			return false, fmt.Errorf("event %s: %w", task.EventID, ErrNotFound)
		}
		if indexTask(s.tasks, task.ID) >= 0 {
			return false, fmt.Errorf("task %s already exists: %w", task.ID, ErrValidation)
		}
		s.tasks = append(slices.Clip(s.tasks), task)
		return true, nil
	})
	if err != nil {
		return model.Task{}, err
	}
	return task.Clone(), nil
}

// UpdateTask replaces the task with the same id. An empty event id keeps
// the task's current event. completedAt follows the completed flag.
func (p *Planner) UpdateTask(ctx context.Context, task model.Task) (model.Task, error) {
	if strings.TrimSpace(task.Title) == "" {
		return model.Task{}, fmt.Errorf("task title must not be empty: %w", ErrValidation)
	}
	if !task.Priority.Valid() {
		return model.Task{}, fmt.Errorf("task priority %q: %w", task.Priority, ErrValidation)
	}

	var updated model.Task
	err := p.update(ctx, func(s *state) (bool, error) {
		tasks, err := modifyTask(s.tasks, task.ID, func(t *model.Task) error {
			prev := *t
			*t = task.Clone()
			if t.EventID == "" {
				t.EventID = prev.EventID
			}
			if t.CreatedAt.IsZero() {
				t.CreatedAt = prev.CreatedAt
			}
			for i := range t.SubTasks {
				if t.SubTasks[i].ID == "" {
					t.SubTasks[i].ID = newID()
				}
			}
			p.stampCompletion(t)
			syncProgress(t)
			updated = t.Clone()
			return nil
		})
		if err != nil {
			return false, err
		}
		if indexEvent(s.events, updated.EventID) < 0 {
			return false, fmt.Errorf("event %s: %w", updated.EventID, ErrNotFound)
		}
		s.tasks = tasks
		return true, nil
	})
	if err != nil {
		return model.Task{}, err
	}
	return updated, nil
}

// DeleteTask removes a task with its sub-tasks, comments and files.
func (p *Planner) DeleteTask(ctx context.Context, id string) error {
	return p.update(ctx, func(s *state) (bool, error) {
		i := indexTask(s.tasks, id)
		if i < 0 {
			return false, fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		s.tasks = slices.Delete(slices.Clone(s.tasks), i, i+1)
		return true, nil
	})
}

// ToggleCompletion flips a task's completed flag. Completing stamps
// completedAt and, for a task without sub-tasks, sets progress to 100.
// Reopening clears completedAt and leaves progress as it was.
func (p *Planner) ToggleCompletion(ctx context.Context, id string) (model.Task, error) {
	return p.modify(ctx, id, func(t *model.Task) error {
		t.Completed = !t.Completed
		p.stampCompletion(t)
		syncProgress(t)
		return nil
	})
}

// SetProgress sets a task's progress, clamped to [0, 100].
func (p *Planner) SetProgress(ctx context.Context, id string, value int) (model.Task, error) {
	return p.modify(ctx, id, func(t *model.Task) error {
		t.Progress = clampProgress(value)
		return nil
	})
}

// AddSubTask appends a sub-task and recomputes the task's progress.
func (p *Planner) AddSubTask(ctx context.Context, taskID string, sub model.SubTask) (model.SubTask, error) {
	if strings.TrimSpace(sub.Title) == "" {
		return model.SubTask{}, fmt.Errorf("sub-task title must not be empty: %w", ErrValidation)
	}
	if sub.ID == "" {
		sub.ID = newID()
	}
	_, err := p.modify(ctx, taskID, func(t *model.Task) error {
		for _, st := range t.SubTasks {
			if st.ID == sub.ID {
				return fmt.Errorf("sub-task %s already exists: %w", sub.ID, ErrValidation)
			}
		}
		t.SubTasks = append(t.SubTasks, sub)
		syncProgress(t)
		return nil
	})
	if err != nil {
		return model.SubTask{}, err
	}
	return sub, nil
}

// ToggleSubTask flips a sub-task's completed flag and recomputes the
// task's progress.
func (p *Planner) ToggleSubTask(ctx context.Context, taskID, subTaskID string) (model.Task, error) {
	return p.modify(ctx, taskID, func(t *model.Task) error {
		for i := range t.SubTasks {
			if t.SubTasks[i].ID == subTaskID {
				t.SubTasks[i].Completed = !t.SubTasks[i].Completed
				syncProgress(t)
				return nil
			}
		}
		return fmt.Errorf("sub-task %s of task %s: %w", subTaskID, taskID, ErrNotFound)
	})
}

// AddComment appends a comment. Vendor comments are attributed to the
// task's assigned vendor, others to LocalAuthorID.
func (p *Planner) AddComment(ctx context.Context, taskID, text string, isVendor bool) (model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return model.Comment{}, fmt.Errorf("comment text must not be empty: %w", ErrValidation)
	}

	var c model.Comment
	_, err := p.modify(ctx, taskID, func(t *model.Task) error {
		c = model.Comment{
			ID:        newID(),
			Text:      text,
			Timestamp: p.now().UTC(),
			IsVendor:  isVendor,
			AuthorID:  LocalAuthorID,
		}
		if isVendor {
			c.AuthorID = t.AssignedTo
		}
		t.Comments = append(t.Comments, c)
		return nil
	})
	if err != nil {
		return model.Comment{}, err
	}
	return c, nil
}

// AttachFile appends file metadata to a task.
func (p *Planner) AttachFile(ctx context.Context, taskID string, file model.FileUpload) (model.FileUpload, error) {
	if strings.TrimSpace(file.Name) == "" {
		return model.FileUpload{}, fmt.Errorf("file name must not be empty: %w", ErrValidation)
	}
	if file.Size < 0 {
		return model.FileUpload{}, fmt.Errorf("file size %d: %w", file.Size, ErrValidation)
	}
	if file.ID == "" {
		file.ID = newID()
	}
	if file.UploadedAt.IsZero() {
		file.UploadedAt = p.now().UTC()
	}
	_, err := p.modify(ctx, taskID, func(t *model.Task) error {
		t.Files = append(t.Files, file)
		return nil
	})
	if err != nil {
		return model.FileUpload{}, err
	}
	return file, nil
}

// AssignToVendor assigns a task to an existing vendor and stamps assignedAt.
func (p *Planner) AssignToVendor(ctx context.Context, taskID, vendorID string) (model.Task, error) {
	var updated model.Task
	err := p.update(ctx, func(s *state) (bool, error) {
		if indexVendor(s.vendors, vendorID) < 0 {
			return false, fmt.Errorf("vendor %s: %w", vendorID, ErrNotFound)
		}
		tasks, err := modifyTask(s.tasks, taskID, func(t *model.Task) error {
			at := p.now().UTC()
			t.AssignedTo = vendorID
			t.AssignedAt = &at
			updated = t.Clone()
			return nil
		})
		if err != nil {
			return false, err
		}
		s.tasks = tasks
		return true, nil
	})
	if err != nil {
		return model.Task{}, err
	}
	return updated, nil
}

// modify applies fn to one task and commits the result.
func (p *Planner) modify(ctx context.Context, id string, fn func(t *model.Task) error) (model.Task, error) {
	var updated model.Task
	err := p.update(ctx, func(s *state) (bool, error) {
		tasks, err := modifyTask(s.tasks, id, func(t *model.Task) error {
			if err := fn(t); err != nil {
				return err
			}
			updated = t.Clone()
			return nil
		})
		if err != nil {
			return false, err
		}
		s.tasks = tasks
		return true, nil
	})
	if err != nil {
		return model.Task{}, err
	}
	return updated, nil
}

// stampCompletion keeps completedAt in step with the completed flag.
func (p *Planner) stampCompletion(t *model.Task) {
	switch {
	case t.Completed && t.CompletedAt == nil:
		at := p.now().UTC()
		t.CompletedAt = &at
	case !t.Completed:
		t.CompletedAt = nil
	}
}

// modifyTask returns a copy of tasks with fn applied to a deep copy of the
// task with the given id. tasks itself is never written.
func modifyTask(tasks []model.Task, id string, fn func(t *model.Task) error) ([]model.Task, error) {
	i := indexTask(tasks, id)
	if i < 0 {
		return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	t := tasks[i].Clone()
	if err := fn(&t); err != nil {
		return nil, err
	}
	out := slices.Clone(tasks)
	out[i] = t
	return out, nil
}

// syncProgress derives progress from sub-tasks when there are any. Without
// sub-tasks a completed task is at 100 and an open one keeps its clamped value.
func syncProgress(t *model.Task) {
	if n := len(t.SubTasks); n > 0 {
		done := 0
		for _, st := range t.SubTasks {
			if st.Completed {
				done++
			}
		}
		t.Progress = metrics.Percent(done, n)
		return
	}
	if t.Completed {
		t.Progress = 100
		return
	}
	t.Progress = clampProgress(t.Progress)
}

func clampProgress(v int) int {
	return max(0, min(100, v))
}

package model

import "time"

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists every priority, most urgent first.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank orders priorities for display (lower rank = more urgent).
// Unknown values rank after low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// Task is a unit of work belonging to one event, optionally assigned to a vendor.
//
// The JSON shape is the persisted format: camelCase keys, ISO-8601 timestamps,
// optional fields omitted when absent. Empty sub-task, comment and file lists
// are omitted as well and decode back to nil.
type Task struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description,omitempty"`
	DueDate          *time.Time   `json:"dueDate,omitempty"`
	Priority         Priority     `json:"priority"`
	Completed        bool         `json:"completed"`
	Progress         int          `json:"progress"`
	CreatedAt        time.Time    `json:"createdAt"`
	IsRecurring      bool         `json:"isRecurring,omitempty"`
	RecurringPattern string       `json:"recurringPattern,omitempty"`
	AssignedTo       string       `json:"assignedTo,omitempty"`
	AssignedAt       *time.Time   `json:"assignedAt,omitempty"`
	CompletedAt      *time.Time   `json:"completedAt,omitempty"`
	Budget           *Amount      `json:"budget,omitempty"`
	EventID          string       `json:"eventId,omitempty"`
	SubTasks         []SubTask    `json:"subTasks,omitempty"`
	Comments         []Comment    `json:"comments,omitempty"`
	Files            []FileUpload `json:"files,omitempty"`
}

// IsOverdue reports whether the task is incomplete and past its due date.
func (t Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}

// Clone returns a deep copy so callers cannot mutate store-owned slices or pointers.
func (t Task) Clone() Task {
	c := t
	c.DueDate = cloneTime(t.DueDate)
	c.AssignedAt = cloneTime(t.AssignedAt)
	c.CompletedAt = cloneTime(t.CompletedAt)
	if t.Budget != nil {
		b := *t.Budget
		c.Budget = &b
	}
	if t.SubTasks != nil {
		c.SubTasks = make([]SubTask, len(t.SubTasks))
		for i, st := range t.SubTasks {
			st.DueDate = cloneTime(st.DueDate)
			c.SubTasks[i] = st
		}
	}
	if t.Comments != nil {
		c.Comments = append([]Comment(nil), t.Comments...)
	}
	if t.Files != nil {
		c.Files = append([]FileUpload(nil), t.Files...)
	}
	return c
}

// SubTask is a checklist item within a task. Its lifecycle is bound to the parent.
type SubTask struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
}

// Comment is an append-only note on a task, written by the user or a vendor.
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	IsVendor  bool      `json:"isVendor,omitempty"`
	AuthorID  string    `json:"authorId,omitempty"`
}

// FileUpload is metadata for a file attached to a task.
type FileUpload struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Type       string    `json:"type"`
	UploadedAt time.Time `json:"uploadedAt"`
	URL        string    `json:"url"`
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

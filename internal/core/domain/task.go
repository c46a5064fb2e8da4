package domain

import "errors"

// TaskStatus is the two-state lifecycle of a maintenance task.
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
)

var ErrTaskNotFound = errors.New("task not found")

// Task is a unit of maintenance work queued against the facility.
type Task struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Description string     `json:"description" bson:"description"`
	Priority    int        `json:"priority" bson:"priority"`
	Category    string     `json:"category" bson:"category"`
	Status      TaskStatus `json:"status" bson:"status"`
	CreatedAt   int64      `json:"created_at" bson:"created_at"`
}

// Toggle flips the task between pending and completed.
func (t *Task) Toggle() {
	if t.Status == TaskPending {
		t.Status = TaskCompleted
	} else {
		t.Status = TaskPending
	}
}

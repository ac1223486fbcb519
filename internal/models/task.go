package models

import "time"

// TaskPriority represents the priority tier of a task
type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

// Rank returns the sort rank of the priority (high first). Unknown
// priorities sort last.
func (p TaskPriority) Rank() int {
	switch p {
	case TaskPriorityHigh:
		return 1
	case TaskPriorityMedium:
		return 2
	default:
		return 3
	}
}

// Subtask is a checklist entry inside a task.
type Subtask struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Task is a project task. SortOrder is a dense, zero-based manual
// ordering within the task's priority tier.
type Task struct {
	ID        int64        `json:"id" db:"id"`
	UserID    string       `json:"user_id" db:"user_id"`
	ProjectID int64        `json:"project_id" db:"project_id"`
	Name      string       `json:"name" db:"name"`
	Notes     string       `json:"notes" db:"notes"`
	Priority  TaskPriority `json:"priority" db:"priority"`
	Completed bool         `json:"completed" db:"completed"`
	DueDate   *time.Time   `json:"due_date,omitempty" db:"due_date"`
	PomoCount int          `json:"pomo_count" db:"pomo_count"`
	SortOrder int          `json:"order" db:"sort_order"`
	Subtasks  []Subtask    `json:"subtasks" db:"subtasks"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
}

// IsStagnant returns true if the task is incomplete and older than the
// given cutoff.
func (t *Task) IsStagnant(cutoff time.Time) bool {
	return !t.Completed && t.CreatedAt.Before(cutoff)
}

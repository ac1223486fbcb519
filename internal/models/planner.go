package models

import "time"

// DailyTask is an entry on the planner grid, placed on a concrete day by
// its PlanDate. Tasks dragged in from a project carry OriginalTaskID so
// the same task is never placed on the same day twice.
type DailyTask struct {
	ID             int64     `json:"id" db:"id"`
	UserID         string    `json:"user_id" db:"user_id"`
	Text           string    `json:"text" db:"text"`
	Completed      bool      `json:"completed" db:"completed"`
	PlanDate       string    `json:"plan_date" db:"plan_date"` // canonical YYYY-MM-DD
	OriginalTaskID *int64    `json:"original_task_id,omitempty" db:"original_task_id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

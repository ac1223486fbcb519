package models

import "time"

// Objective is a milestone attached to a project.
type Objective struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Project groups tasks under a name and category. SortOrder is a dense,
// zero-based manual ordering across all of a user's projects.
type Project struct {
	ID         int64       `json:"id" db:"id"`
	UserID     string      `json:"user_id" db:"user_id"`
	Name       string      `json:"name" db:"name"`
	Category   string      `json:"category" db:"category"`
	SortOrder  int         `json:"order" db:"sort_order"`
	Objectives []Objective `json:"objectives" db:"objectives"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at" db:"updated_at"`
}

// ProjectTemplate is a reusable snapshot of a project's task names.
type ProjectTemplate struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Category  string    `json:"category" db:"category"`
	Tasks     []string  `json:"tasks" db:"tasks"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

package models

import "time"

// BrainDumpItem is a quick unstructured capture, later convertible into a
// task or a project.
type BrainDumpItem struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

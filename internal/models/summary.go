package models

import "time"

// WeeklySummary is a generated "show your week" chapter, cached per week
// so regeneration is free.
type WeeklySummary struct {
	ID          int64     `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	WeekID      string    `json:"week_id" db:"week_id"`   // YYYY-Www
	MonthID     string    `json:"month_id" db:"month_id"` // YYYY-MM
	SummaryText string    `json:"summary_text" db:"summary_text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

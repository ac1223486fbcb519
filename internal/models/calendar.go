package models

import "time"

// Recurrence describes a weekly repetition pattern. An event with a
// non-empty Days set occurs on every matching weekday from its start date
// onward; an event without recurrence occurs exactly once.
type Recurrence struct {
	Days []Weekday `json:"days"`
}

// CalendarEvent is a base event definition, not yet expanded into
// per-date instances.
type CalendarEvent struct {
	ID         int64       `json:"id" db:"id"`
	UserID     string      `json:"user_id" db:"user_id"`
	Title      string      `json:"title" db:"title"`
	StartDate  time.Time   `json:"start_date" db:"start_date"`
	Recurrence *Recurrence `json:"recurrence,omitempty" db:"recurrence_days"`
	LabelID    *int64      `json:"label_id,omitempty" db:"label_id"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at" db:"updated_at"`
}

// IsRecurring returns true if the event repeats weekly.
func (e *CalendarEvent) IsRecurring() bool {
	return e.Recurrence != nil && len(e.Recurrence.Days) > 0
}

// EventException overrides a single occurrence of a recurring event,
// either suppressing it (Deleted) or retitling it for that date only.
// Exceptions are write-once for deletes; title overrides may be updated.
type EventException struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	ParentID  int64     `json:"parent_id" db:"parent_id"`
	Date      string    `json:"date" db:"date_id"` // canonical YYYY-MM-DD
	Deleted   bool      `json:"deleted" db:"deleted"`
	Title     *string   `json:"title,omitempty" db:"title"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Label is a color/category tag that can be attached to calendar events.
type Label struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Color     string    `json:"color" db:"color"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// DayNote is a free-form note pinned to a calendar day. At most one note
// exists per (user, date); saving an empty note removes it.
type DayNote struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	DateID    string    `json:"date" db:"date_id"` // canonical YYYY-MM-DD
	MonthID   string    `json:"month_id" db:"month_id"`
	Note      string    `json:"note" db:"note"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

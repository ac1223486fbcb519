package models

import "time"

// Habit is a recurring personal practice tracked with streaks.
type Habit struct {
	ID            int64      `json:"id" db:"id"`
	UserID        string     `json:"user_id" db:"user_id"`
	Name          string     `json:"name" db:"name"`
	Frequency     []Weekday  `json:"frequency" db:"frequency"`
	CurrentStreak int        `json:"current_streak" db:"current_streak"`
	LongestStreak int        `json:"longest_streak" db:"longest_streak"`
	LastCompleted *time.Time `json:"last_completed,omitempty" db:"last_completed"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// IsDueOn returns true if the habit is scheduled for the given day.
func (h *Habit) IsDueOn(t time.Time) bool {
	return ContainsWeekday(h.Frequency, WeekdayOf(t))
}

// CompletedOn returns true if the habit was last completed on the same
// calendar day as t.
func (h *Habit) CompletedOn(t time.Time) bool {
	if h.LastCompleted == nil {
		return false
	}
	y1, m1, d1 := h.LastCompleted.Date()
	y2, m2, d2 := t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

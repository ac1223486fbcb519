package calendar

import (
	"fmt"
	"time"
)

// DateID returns the canonical YYYY-MM-DD key used to bucket notes,
// exceptions, daily tasks and grouped calendar items.
func DateID(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDateID parses a canonical YYYY-MM-DD string.
func ParseDateID(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// MonthID returns the YYYY-MM key for the given time.
func MonthID(t time.Time) string {
	return t.Format("2006-01")
}

// WeekID returns the ISO week key, e.g. "2024-W10".
func WeekID(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// Day truncates t to midnight in its location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Monday at or before t, truncated to midnight.
func StartOfWeek(t time.Time) time.Time {
	d := Day(t)
	offset := (int(d.Weekday()) + 6) % 7 // Monday-based
	return d.AddDate(0, 0, -offset)
}

// EndOfMonth returns the last day of t's month, truncated to midnight.
func EndOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}

// View selects the expansion window of the calendar.
type View string

const (
	ViewMonth  View = "month"
	ViewWeek   View = "week"
	ViewAgenda View = "agenda"
)

// agendaLookaheadDays bounds how far the agenda walks recurring events.
const agendaLookaheadDays = 80

// WindowEnd returns the last day the recurrence walk may visit for the
// given view anchored at ref. The walk must never run past this bound.
func WindowEnd(view View, ref time.Time) time.Time {
	switch view {
	case ViewWeek:
		return StartOfWeek(ref).AddDate(0, 0, 6)
	case ViewAgenda:
		return StartOfWeek(ref).AddDate(0, 0, agendaLookaheadDays)
	default:
		return EndOfMonth(ref)
	}
}

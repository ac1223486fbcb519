package calendar

import (
	"testing"
	"time"
)

func TestDateID(t *testing.T) {
	t.Parallel()

	got := DateID(time.Date(2024, 3, 6, 23, 15, 0, 0, time.UTC))
	if got != "2024-03-06" {
		t.Fatalf("expected 2024-03-06, got %s", got)
	}
}

func TestMonthID(t *testing.T) {
	t.Parallel()

	got := MonthID(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC))
	if got != "2024-12" {
		t.Fatalf("expected 2024-12, got %s", got)
	}
}

func TestWeekID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), "2024-W10"},
		// Jan 1st 2027 is a Friday and belongs to ISO week 53 of 2026.
		{time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), "2026-W53"},
	}
	for _, tc := range cases {
		if got := WeekID(tc.in); got != tc.want {
			t.Errorf("WeekID(%v): expected %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestStartOfWeek(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 3, 6, 15, 0, 0, 0, time.UTC), "2024-03-04"},  // Wednesday
		{time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), "2024-03-04"},   // Monday itself
		{time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), "2024-03-04"}, // Sunday
	}
	for _, tc := range cases {
		if got := DateID(StartOfWeek(tc.in)); got != tc.want {
			t.Errorf("StartOfWeek(%v): expected %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestWindowEnd(t *testing.T) {
	t.Parallel()

	ref := time.Date(2024, 2, 14, 10, 0, 0, 0, time.UTC) // leap February

	if got := DateID(WindowEnd(ViewMonth, ref)); got != "2024-02-29" {
		t.Errorf("month window: expected 2024-02-29, got %s", got)
	}
	if got := DateID(WindowEnd(ViewWeek, ref)); got != "2024-02-18" {
		t.Errorf("week window: expected 2024-02-18, got %s", got)
	}
	if got := DateID(WindowEnd(ViewAgenda, ref)); got != "2024-05-02" {
		t.Errorf("agenda window: expected 2024-05-02, got %s", got)
	}
}

package calendar

import (
	"testing"
	"time"

	"github.com/artflow/artflow/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strptr(s string) *string { return &s }

func TestExpand_WeeklyPatternWithDeletedOccurrence(t *testing.T) {
	t.Parallel()

	// Monday 2024-03-04, repeating Mon/Wed/Fri, with the Wednesday
	// 2024-03-06 occurrence suppressed.
	events := []*models.CalendarEvent{
		{
			ID:        1,
			Title:     "Standup",
			StartDate: date(2024, 3, 4),
			Recurrence: &models.Recurrence{
				Days: []models.Weekday{models.WeekdayMon, models.WeekdayWed, models.WeekdayFri},
			},
		},
	}
	exceptions := []*models.EventException{
		{ID: 10, ParentID: 1, Date: "2024-03-06", Deleted: true},
	}

	instances, skipped := Expand(events, exceptions, date(2024, 3, 15))
	if len(skipped) != 0 {
		t.Fatalf("expected no skipped events, got %v", skipped)
	}

	want := []string{"2024-03-04", "2024-03-08", "2024-03-11", "2024-03-13", "2024-03-15"}
	if len(instances) != len(want) {
		t.Fatalf("expected %d instances, got %d", len(want), len(instances))
	}
	for i, w := range want {
		if instances[i].InstanceDate != w {
			t.Errorf("instance %d: expected date %s, got %s", i, w, instances[i].InstanceDate)
		}
		if instances[i].Title != "Standup" {
			t.Errorf("instance %d: expected title Standup, got %q", i, instances[i].Title)
		}
		if instances[i].OriginalID != 1 {
			t.Errorf("instance %d: expected original id 1, got %d", i, instances[i].OriginalID)
		}
	}
}

func TestExpand_SingleWeekdayCount(t *testing.T) {
	t.Parallel()

	// Anchored on a Monday, recurring only on Mondays: a 28-day window
	// yields exactly 5 instances (days 0, 7, 14, 21, 28), 7 days apart.
	start := date(2024, 1, 1) // a Monday
	events := []*models.CalendarEvent{
		{
			ID:         2,
			Title:      "Review",
			StartDate:  start,
			Recurrence: &models.Recurrence{Days: []models.Weekday{models.WeekdayMon}},
		},
	}

	instances, _ := Expand(events, nil, start.AddDate(0, 0, 28))
	if len(instances) != 5 {
		t.Fatalf("expected 5 instances, got %d", len(instances))
	}
	for i := 1; i < len(instances); i++ {
		gap := instances[i].Date.Sub(instances[i-1].Date)
		if gap != 7*24*time.Hour {
			t.Errorf("instances %d and %d are %v apart, expected 168h", i-1, i, gap)
		}
	}
}

func TestExpand_TitleOverrideAffectsOnlyThatDate(t *testing.T) {
	t.Parallel()

	events := []*models.CalendarEvent{
		{
			ID:         3,
			Title:      "Yoga",
			StartDate:  date(2024, 3, 4),
			Recurrence: &models.Recurrence{Days: []models.Weekday{models.WeekdayMon}},
		},
	}
	exceptions := []*models.EventException{
		{ID: 30, ParentID: 3, Date: "2024-03-11", Title: strptr("Hot Yoga")},
	}

	instances, _ := Expand(events, exceptions, date(2024, 3, 18))
	if len(instances) != 3 {
		t.Fatalf("expected 3 instances, got %d", len(instances))
	}
	for _, in := range instances {
		switch in.InstanceDate {
		case "2024-03-11":
			if in.Title != "Hot Yoga" {
				t.Errorf("expected override title on 03-11, got %q", in.Title)
			}
			if in.ID != 30 {
				t.Errorf("expected overridden instance to carry exception id 30, got %d", in.ID)
			}
		default:
			if in.Title != "Yoga" {
				t.Errorf("expected base title on %s, got %q", in.InstanceDate, in.Title)
			}
			if in.ID != 3 {
				t.Errorf("expected base event id on %s, got %d", in.InstanceDate, in.ID)
			}
		}
	}
}

func TestExpand_NonRecurringEmittedRegardlessOfWindow(t *testing.T) {
	t.Parallel()

	events := []*models.CalendarEvent{
		{ID: 4, Title: "Gallery opening", StartDate: date(2024, 6, 20)},
	}

	// Window ends well before the event date; one-off events are still
	// emitted since the window only bounds recurrence walks.
	instances, _ := Expand(events, nil, date(2024, 3, 31))
	if len(instances) != 1 {
		t.Fatalf("expected 1 instance, got %d", len(instances))
	}
	if instances[0].InstanceDate != "2024-06-20" {
		t.Errorf("unexpected instance date %s", instances[0].InstanceDate)
	}
	if instances[0].Recurring {
		t.Error("one-off instance must not be marked recurring")
	}
	if instances[0].OriginalID != 0 {
		t.Errorf("one-off instance must not carry an original id, got %d", instances[0].OriginalID)
	}
}

func TestExpand_SkipsEventWithoutStartDate(t *testing.T) {
	t.Parallel()

	events := []*models.CalendarEvent{
		{ID: 5, Title: "Broken"},
		{ID: 6, Title: "Fine", StartDate: date(2024, 3, 4)},
	}

	instances, skipped := Expand(events, nil, date(2024, 3, 31))
	if len(skipped) != 1 || skipped[0] != 5 {
		t.Fatalf("expected event 5 to be skipped, got %v", skipped)
	}
	if len(instances) != 1 || instances[0].ID != 6 {
		t.Fatalf("expected only event 6 to expand, got %+v", instances)
	}
}

func TestExpand_Idempotent(t *testing.T) {
	t.Parallel()

	events := []*models.CalendarEvent{
		{
			ID:         7,
			Title:      "Sketch",
			StartDate:  date(2024, 3, 4),
			Recurrence: &models.Recurrence{Days: []models.Weekday{models.WeekdayTue, models.WeekdayThu}},
		},
		{ID: 8, Title: "Delivery", StartDate: date(2024, 3, 10)},
	}
	exceptions := []*models.EventException{
		{ID: 70, ParentID: 7, Date: "2024-03-07", Deleted: true},
	}
	end := date(2024, 3, 31)

	first, _ := Expand(events, exceptions, end)
	second, _ := Expand(events, exceptions, end)

	key := func(in EventInstance) [2]interface{} { return [2]interface{}{in.ID, in.InstanceDate} }
	seen := make(map[[2]interface{}]bool, len(first))
	for _, in := range first {
		if seen[key(in)] {
			t.Fatalf("duplicate instance %d on %s", in.ID, in.InstanceDate)
		}
		seen[key(in)] = true
	}
	if len(second) != len(first) {
		t.Fatalf("second pass yielded %d instances, first %d", len(second), len(first))
	}
	for _, in := range second {
		if !seen[key(in)] {
			t.Errorf("second pass produced unseen instance %d on %s", in.ID, in.InstanceDate)
		}
	}
}

func TestExpand_DuplicateExceptionsLastWriteWins(t *testing.T) {
	t.Parallel()

	events := []*models.CalendarEvent{
		{
			ID:         9,
			Title:      "Practice",
			StartDate:  date(2024, 3, 4),
			Recurrence: &models.Recurrence{Days: []models.Weekday{models.WeekdayMon}},
		},
	}
	earlier := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	later := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	exceptions := []*models.EventException{
		{ID: 90, ParentID: 9, Date: "2024-03-04", Title: strptr("Old title"), CreatedAt: earlier},
		{ID: 91, ParentID: 9, Date: "2024-03-04", Title: strptr("New title"), CreatedAt: later},
	}

	instances, _ := Expand(events, exceptions, date(2024, 3, 4))
	if len(instances) != 1 {
		t.Fatalf("expected 1 instance, got %d", len(instances))
	}
	if instances[0].Title != "New title" {
		t.Errorf("expected the newest exception to win, got title %q", instances[0].Title)
	}
	if instances[0].ID != 91 {
		t.Errorf("expected instance id 91, got %d", instances[0].ID)
	}
}

func TestExpand_WalkStopsAtWindowEnd(t *testing.T) {
	t.Parallel()

	events := []*models.CalendarEvent{
		{
			ID:        10,
			Title:     "Daily",
			StartDate: date(2024, 3, 1),
			Recurrence: &models.Recurrence{
				Days: []models.Weekday{
					models.WeekdaySun, models.WeekdayMon, models.WeekdayTue, models.WeekdayWed,
					models.WeekdayThu, models.WeekdayFri, models.WeekdaySat,
				},
			},
		},
	}

	instances, _ := Expand(events, nil, date(2024, 3, 10))
	if len(instances) != 10 {
		t.Fatalf("expected 10 instances (inclusive window), got %d", len(instances))
	}
	last := instances[len(instances)-1]
	if last.InstanceDate != "2024-03-10" {
		t.Errorf("walk ran past the window end: last instance on %s", last.InstanceDate)
	}
}

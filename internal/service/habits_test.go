package service

import (
	"context"
	"testing"
	"time"

	"github.com/artflow/artflow/internal/models"
)

func TestCompleteHabit_StreakArithmetic(t *testing.T) {
	ctx := context.Background()
	day := func(d int) time.Time {
		return time.Date(2024, 3, d, 9, 0, 0, 0, time.UTC)
	}

	svc, _ := newTestService(day(4))
	habit, err := svc.CreateHabit(ctx, &models.Habit{
		UserID:    "u1",
		Name:      "Daily sketch",
		Frequency: []models.Weekday{models.WeekdayMon, models.WeekdayTue},
	})
	if err != nil {
		t.Fatalf("create habit: %v", err)
	}

	// First completion starts the streak at one.
	habit, err = svc.CompleteHabit(ctx, "u1", habit.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if habit.CurrentStreak != 1 || habit.LongestStreak != 1 {
		t.Fatalf("expected streak 1/1, got %d/%d", habit.CurrentStreak, habit.LongestStreak)
	}

	// Second completion the same day is a no-op.
	habit, err = svc.CompleteHabit(ctx, "u1", habit.ID)
	if err != nil {
		t.Fatalf("repeat complete: %v", err)
	}
	if habit.CurrentStreak != 1 {
		t.Fatalf("same-day completion changed streak to %d", habit.CurrentStreak)
	}

	// The next day extends the streak.
	svc.now = func() time.Time { return day(5) }
	habit, err = svc.CompleteHabit(ctx, "u1", habit.ID)
	if err != nil {
		t.Fatalf("complete next day: %v", err)
	}
	if habit.CurrentStreak != 2 || habit.LongestStreak != 2 {
		t.Fatalf("expected streak 2/2, got %d/%d", habit.CurrentStreak, habit.LongestStreak)
	}

	// A gap restarts the current streak but keeps the longest.
	svc.now = func() time.Time { return day(11) }
	habit, err = svc.CompleteHabit(ctx, "u1", habit.ID)
	if err != nil {
		t.Fatalf("complete after gap: %v", err)
	}
	if habit.CurrentStreak != 1 {
		t.Errorf("expected streak reset to 1, got %d", habit.CurrentStreak)
	}
	if habit.LongestStreak != 2 {
		t.Errorf("longest streak lost: %d", habit.LongestStreak)
	}
}

func TestHabitsDueOn(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC))

	if _, err := svc.CreateHabit(ctx, &models.Habit{
		UserID: "u1", Name: "Monday habit",
		Frequency: []models.Weekday{models.WeekdayMon},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateHabit(ctx, &models.Habit{
		UserID: "u1", Name: "Friday habit",
		Frequency: []models.Weekday{models.WeekdayFri},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	due, err := svc.HabitsDueOn(ctx, "u1", "2024-03-04") // a Monday
	if err != nil {
		t.Fatalf("due on: %v", err)
	}
	if len(due) != 1 || due[0].Name != "Monday habit" {
		t.Fatalf("unexpected due habits: %+v", due)
	}
}

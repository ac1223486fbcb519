package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/artflow/artflow/internal/calendar"
	"github.com/artflow/artflow/internal/models"
)

func parseDay(dateID string) (time.Time, error) {
	day, err := calendar.ParseDateID(dateID)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return day, nil
}

// CreateHabit validates and stores a new habit.
func (s *Service) CreateHabit(ctx context.Context, habit *models.Habit) (*models.Habit, error) {
	habit.Name = strings.TrimSpace(habit.Name)
	if habit.Name == "" {
		return nil, fmt.Errorf("%w: habit name is required", ErrInvalidInput)
	}
	for _, d := range habit.Frequency {
		if !d.IsValid() {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, d)
		}
	}
	habit.CurrentStreak = 0
	habit.LongestStreak = 0
	habit.LastCompleted = nil
	return s.Habits.Create(ctx, habit)
}

// CompleteHabit marks the habit done for today and advances the streak.
// Completing twice on the same day is a no-op. A completion on the day
// right after the previous one extends the streak; any longer gap restarts
// it at one.
func (s *Service) CompleteHabit(ctx context.Context, userID string, habitID int64) (*models.Habit, error) {
	habit, err := s.Habits.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit == nil || habit.UserID != userID {
		return nil, fmt.Errorf("habit %d: %w", habitID, ErrNotFound)
	}

	now := s.now()
	if habit.CompletedOn(now) {
		return habit, nil
	}

	if habit.LastCompleted != nil && habit.CompletedOn(now.AddDate(0, 0, -1)) {
		habit.CurrentStreak++
	} else {
		habit.CurrentStreak = 1
	}
	if habit.CurrentStreak > habit.LongestStreak {
		habit.LongestStreak = habit.CurrentStreak
	}
	habit.LastCompleted = &now
	return s.Habits.Update(ctx, habit)
}

// DeleteHabit removes a habit after an ownership check.
func (s *Service) DeleteHabit(ctx context.Context, userID string, habitID int64) error {
	habit, err := s.Habits.GetByID(ctx, habitID)
	if err != nil {
		return err
	}
	if habit == nil || habit.UserID != userID {
		return fmt.Errorf("habit %d: %w", habitID, ErrNotFound)
	}
	return s.Habits.Delete(ctx, habitID)
}

// HabitsDueOn returns the user's habits scheduled for the given day.
func (s *Service) HabitsDueOn(ctx context.Context, userID string, dateID string) ([]*models.Habit, error) {
	day, err := parseDay(dateID)
	if err != nil {
		return nil, err
	}
	habits, err := s.Habits.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	var due []*models.Habit
	for _, h := range habits {
		if h.IsDueOn(day) {
			due = append(due, h)
		}
	}
	return due, nil
}

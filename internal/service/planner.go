package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"

	"github.com/artflow/artflow/internal/calendar"
	"github.com/artflow/artflow/internal/metrics"
	"github.com/artflow/artflow/internal/models"
)

// AddDailyTask places a free-text entry on the planner day.
func (s *Service) AddDailyTask(ctx context.Context, userID, planDate, text string) (*models.DailyTask, error) {
	if _, err := calendar.ParseDateID(planDate); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: task text is required", ErrInvalidInput)
	}
	return s.Planner.Create(ctx, &models.DailyTask{
		UserID:   userID,
		Text:     text,
		PlanDate: planDate,
	})
}

// DropTaskOnPlanner copies a project task onto the planner day. Dropping
// the same task on the same day again is a no-op and returns the existing
// entry, so a double drag never duplicates.
func (s *Service) DropTaskOnPlanner(ctx context.Context, userID string, taskID int64, planDate string) (*models.DailyTask, error) {
	if _, err := calendar.ParseDateID(planDate); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	task, err := s.Tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil || task.UserID != userID {
		return nil, fmt.Errorf("task %d: %w", taskID, ErrNotFound)
	}

	existing, err := s.Planner.GetByOriginalTask(ctx, userID, taskID, planDate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return s.Planner.Create(ctx, &models.DailyTask{
		UserID:         userID,
		Text:           task.Name,
		PlanDate:       planDate,
		OriginalTaskID: &task.ID,
	})
}

// MoveDailyTask reschedules an entry to another day. Moving onto a day
// that already holds the same source task is a no-op.
func (s *Service) MoveDailyTask(ctx context.Context, userID string, taskID int64, planDate string) (*models.DailyTask, error) {
	if _, err := calendar.ParseDateID(planDate); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	task, err := s.Planner.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil || task.UserID != userID {
		return nil, fmt.Errorf("daily task %d: %w", taskID, ErrNotFound)
	}
	if task.PlanDate == planDate {
		return task, nil
	}
	if task.OriginalTaskID != nil {
		dup, err := s.Planner.GetByOriginalTask(ctx, userID, *task.OriginalTaskID, planDate)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return dup, nil
		}
	}
	task.PlanDate = planDate
	return s.Planner.Update(ctx, task)
}

// ToggleDailyTask flips a planner entry's completion. When the entry was
// dragged in from a project, the source task is kept in sync.
func (s *Service) ToggleDailyTask(ctx context.Context, userID string, taskID int64) (*models.DailyTask, error) {
	task, err := s.Planner.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil || task.UserID != userID {
		return nil, fmt.Errorf("daily task %d: %w", taskID, ErrNotFound)
	}
	task.Completed = !task.Completed
	task, err = s.Planner.Update(ctx, task)
	if err != nil {
		return nil, err
	}

	if task.OriginalTaskID != nil {
		source, err := s.Tasks.GetByID(ctx, *task.OriginalTaskID)
		if err != nil {
			return nil, err
		}
		if source != nil && source.Completed != task.Completed {
			source.Completed = task.Completed
			if _, err := s.Tasks.Update(ctx, source); err != nil {
				return nil, err
			}
		}
	}
	return task, nil
}

// DeleteDailyTask removes a planner entry after an ownership check.
func (s *Service) DeleteDailyTask(ctx context.Context, userID string, taskID int64) error {
	task, err := s.Planner.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task == nil || task.UserID != userID {
		return fmt.Errorf("daily task %d: %w", taskID, ErrNotFound)
	}
	return s.Planner.Delete(ctx, taskID)
}

// PlannerDay returns the entries placed on one day.
func (s *Service) PlannerDay(ctx context.Context, userID, planDate string) ([]*models.DailyTask, error) {
	if _, err := calendar.ParseDateID(planDate); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.Planner.GetByPlanDate(ctx, userID, planDate)
}

// RolloverPlanner carries every incomplete entry dated before today onto
// today, for all users. Runs nightly and is idempotent within a day.
func (s *Service) RolloverPlanner(ctx context.Context) error {
	today := calendar.DateID(s.now())
	moved, err := s.Planner.RolloverAll(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to roll over planner: %w", err)
	}
	if moved > 0 {
		s.logger.Infof("Planner rollover moved %d tasks to %s", moved, today)
		metrics.PlannerRollovers.Add(float64(moved))
	}
	return nil
}

// RolloverUserPlanner carries one user's incomplete entries dated before
// today onto today, on demand. The nightly job covers everyone; this lets
// a user catch up immediately after opening a stale planner.
func (s *Service) RolloverUserPlanner(ctx context.Context, userID string) (int64, error) {
	today := calendar.DateID(s.now())
	moved, err := s.Planner.Rollover(ctx, userID, today)
	if err != nil {
		return 0, fmt.Errorf("failed to roll over planner: %w", err)
	}
	if moved > 0 {
		s.logger.Infof("Planner rollover moved %d tasks to %s for %s", moved, today, userID)
		metrics.PlannerRollovers.Add(float64(moved))
	}
	return moved, nil
}

// StartRolloverScheduler runs the nightly planner rollover on the given
// cron schedule until the context is cancelled.
func (s *Service) StartRolloverScheduler(ctx context.Context, schedule string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if err := s.RolloverPlanner(ctx); err != nil {
			s.logger.Errorf("Planner rollover failed: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule rollover: %w", err)
	}
	c.Start()
	s.logger.Infof("Planner rollover scheduled (%s)", schedule)

	go func() {
		<-ctx.Done()
		c.Stop()
		s.logger.Info("Planner rollover scheduler stopped")
	}()
	return c, nil
}

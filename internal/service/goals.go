package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/artflow/artflow/internal/models"
)

// CreateGoal stores a new annual goal.
func (s *Service) CreateGoal(ctx context.Context, goal *models.AnnualGoal) (*models.AnnualGoal, error) {
	goal.Text = strings.TrimSpace(goal.Text)
	if goal.Text == "" {
		return nil, fmt.Errorf("%w: goal text is required", ErrInvalidInput)
	}
	return s.Goals.Create(ctx, goal)
}

// ToggleGoal flips a goal's completion.
func (s *Service) ToggleGoal(ctx context.Context, userID string, goalID int64) (*models.AnnualGoal, error) {
	goal, err := s.Goals.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if goal == nil || goal.UserID != userID {
		return nil, fmt.Errorf("goal %d: %w", goalID, ErrNotFound)
	}
	goal.Completed = !goal.Completed
	return s.Goals.Update(ctx, goal)
}

// DeleteGoal removes a goal after an ownership check.
func (s *Service) DeleteGoal(ctx context.Context, userID string, goalID int64) error {
	goal, err := s.Goals.GetByID(ctx, goalID)
	if err != nil {
		return err
	}
	if goal == nil || goal.UserID != userID {
		return fmt.Errorf("goal %d: %w", goalID, ErrNotFound)
	}
	return s.Goals.Delete(ctx, goalID)
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/artflow/artflow/internal/models"
)

// CaptureThought stores a quick free-text note in the brain dump inbox.
func (s *Service) CaptureThought(ctx context.Context, userID, text string) (*models.BrainDumpItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	return s.BrainDump.Create(ctx, &models.BrainDumpItem{UserID: userID, Text: text})
}

// ConvertThoughtToTask turns a brain dump item into a project task and
// removes it from the inbox.
func (s *Service) ConvertThoughtToTask(ctx context.Context, userID string, itemID, projectID int64) (*models.Task, error) {
	item, err := s.BrainDump.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.UserID != userID {
		return nil, fmt.Errorf("brain dump item %d: %w", itemID, ErrNotFound)
	}

	task, err := s.CreateTask(ctx, &models.Task{
		UserID:    userID,
		ProjectID: projectID,
		Name:      item.Text,
		Priority:  models.TaskPriorityMedium,
	})
	if err != nil {
		return nil, err
	}
	if err := s.BrainDump.Delete(ctx, itemID); err != nil {
		return nil, err
	}
	return task, nil
}

// ConvertThoughtToProject promotes a brain dump item into a fresh project
// and removes it from the inbox.
func (s *Service) ConvertThoughtToProject(ctx context.Context, userID string, itemID int64, category string) (*models.Project, error) {
	item, err := s.BrainDump.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.UserID != userID {
		return nil, fmt.Errorf("brain dump item %d: %w", itemID, ErrNotFound)
	}

	project, err := s.CreateProject(ctx, &models.Project{
		UserID:   userID,
		Name:     item.Text,
		Category: category,
	})
	if err != nil {
		return nil, err
	}
	if err := s.BrainDump.Delete(ctx, itemID); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteThought discards a brain dump item.
func (s *Service) DeleteThought(ctx context.Context, userID string, itemID int64) error {
	item, err := s.BrainDump.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil || item.UserID != userID {
		return fmt.Errorf("brain dump item %d: %w", itemID, ErrNotFound)
	}
	return s.BrainDump.Delete(ctx, itemID)
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/artflow/artflow/internal/models"
)

// CreateTask stores a task at the end of its priority tier.
func (s *Service) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	task.Name = strings.TrimSpace(task.Name)
	if task.Name == "" {
		return nil, fmt.Errorf("%w: task name is required", ErrInvalidInput)
	}
	project, err := s.Projects.GetByID(ctx, task.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.UserID != task.UserID {
		return nil, fmt.Errorf("project %d: %w", task.ProjectID, ErrNotFound)
	}
	if task.Priority == "" {
		task.Priority = models.TaskPriorityMedium
	}

	siblings, err := s.Tasks.GetByProjectID(ctx, task.ProjectID)
	if err != nil {
		return nil, err
	}
	order := 0
	for _, t := range siblings {
		if t.Priority == task.Priority {
			order++
		}
	}
	task.SortOrder = order
	return s.Tasks.Create(ctx, task)
}

// UpdateTask rewrites a task. Changing the priority moves the task to the
// top of its new tier, since the old order is meaningless there.
func (s *Service) UpdateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	existing, err := s.Tasks.GetByID(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.UserID != task.UserID {
		return nil, fmt.Errorf("task %d: %w", task.ID, ErrNotFound)
	}
	if task.Priority != existing.Priority {
		task.SortOrder = 0
	}
	return s.Tasks.Update(ctx, task)
}

// ToggleTask flips a task's completion.
func (s *Service) ToggleTask(ctx context.Context, userID string, taskID int64) (*models.Task, error) {
	task, err := s.Tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil || task.UserID != userID {
		return nil, fmt.Errorf("task %d: %w", taskID, ErrNotFound)
	}
	task.Completed = !task.Completed
	return s.Tasks.Update(ctx, task)
}

// DeleteTask removes a task after an ownership check.
func (s *Service) DeleteTask(ctx context.Context, userID string, taskID int64) error {
	task, err := s.Tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task == nil || task.UserID != userID {
		return fmt.Errorf("task %d: %w", taskID, ErrNotFound)
	}
	return s.Tasks.Delete(ctx, taskID)
}

// ReorderTasks moves the dragged task before or after the target inside
// one priority tier and reassigns a dense zero-based order for that tier
// in one transaction. Cross-tier drags are silent no-ops; priority is
// changed by editing the task, not by dragging.
func (s *Service) ReorderTasks(ctx context.Context, userID string, draggedID, targetID int64, before bool) error {
	if draggedID == targetID {
		return nil
	}
	dragged, err := s.Tasks.GetByID(ctx, draggedID)
	if err != nil {
		return err
	}
	if dragged == nil || dragged.UserID != userID {
		return fmt.Errorf("task %d: %w", draggedID, ErrNotFound)
	}
	target, err := s.Tasks.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil || target.UserID != userID {
		return fmt.Errorf("task %d: %w", targetID, ErrNotFound)
	}
	if target.ProjectID != dragged.ProjectID {
		return fmt.Errorf("%w: tasks belong to different projects", ErrInvalidInput)
	}
	if target.Priority.Rank() != dragged.Priority.Rank() {
		// Dropping onto another tier is not an order change.
		return nil
	}

	siblings, err := s.Tasks.GetByProjectID(ctx, dragged.ProjectID)
	if err != nil {
		return err
	}
	ids := make([]int64, 0, len(siblings))
	for _, t := range siblings {
		if t.Priority.Rank() != dragged.Priority.Rank() || t.ID == draggedID {
			continue
		}
		ids = append(ids, t.ID)
	}

	spliced, err := spliceAt(ids, draggedID, targetID, before)
	if err != nil {
		return err
	}
	orders := make(map[int64]int, len(spliced))
	for i, id := range spliced {
		orders[id] = i
	}
	return s.Tasks.UpdateOrders(ctx, dragged.ProjectID, orders)
}

// AddSubtask appends a checklist entry to the task.
func (s *Service) AddSubtask(ctx context.Context, userID string, taskID int64, name string) (*models.Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: subtask name is required", ErrInvalidInput)
	}
	task, err := s.Tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil || task.UserID != userID {
		return nil, fmt.Errorf("task %d: %w", taskID, ErrNotFound)
	}
	task.Subtasks = append(task.Subtasks, models.Subtask{
		ID:   uuid.NewString(),
		Name: name,
	})
	return s.Tasks.Update(ctx, task)
}

// ToggleSubtask flips one checklist entry.
func (s *Service) ToggleSubtask(ctx context.Context, userID string, taskID int64, subtaskID string) (*models.Task, error) {
	task, err := s.Tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil || task.UserID != userID {
		return nil, fmt.Errorf("task %d: %w", taskID, ErrNotFound)
	}
	for i := range task.Subtasks {
		if task.Subtasks[i].ID == subtaskID {
			task.Subtasks[i].Completed = !task.Subtasks[i].Completed
			return s.Tasks.Update(ctx, task)
		}
	}
	return nil, fmt.Errorf("subtask %s: %w", subtaskID, ErrNotFound)
}

// RecordPomodoro bumps the task's completed pomodoro count.
func (s *Service) RecordPomodoro(ctx context.Context, userID string, taskID int64) (*models.Task, error) {
	task, err := s.Tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil || task.UserID != userID {
		return nil, fmt.Errorf("task %d: %w", taskID, ErrNotFound)
	}
	task.PomoCount++
	return s.Tasks.Update(ctx, task)
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/artflow/artflow/internal/models"
)

// CreateProject stores a project at the end of the user's manual order.
func (s *Service) CreateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		return nil, fmt.Errorf("%w: project name is required", ErrInvalidInput)
	}
	existing, err := s.Projects.GetByUserID(ctx, project.UserID)
	if err != nil {
		return nil, err
	}
	project.SortOrder = len(existing)
	return s.Projects.Create(ctx, project)
}

// UpdateProject rewrites a project's fields after an ownership check.
func (s *Service) UpdateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	existing, err := s.Projects.GetByID(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.UserID != project.UserID {
		return nil, fmt.Errorf("project %d: %w", project.ID, ErrNotFound)
	}
	return s.Projects.Update(ctx, project)
}

// DeleteProject removes the project together with its tasks.
func (s *Service) DeleteProject(ctx context.Context, userID string, projectID int64) error {
	project, err := s.Projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project == nil || project.UserID != userID {
		return fmt.Errorf("project %d: %w", projectID, ErrNotFound)
	}
	return s.Projects.Delete(ctx, projectID)
}

// ReorderProjects moves the dragged project before or after the target and
// reassigns a dense zero-based order across all the user's projects in one
// transaction.
func (s *Service) ReorderProjects(ctx context.Context, userID string, draggedID, targetID int64, before bool) error {
	if draggedID == targetID {
		return nil
	}
	projects, err := s.Projects.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	ids := make([]int64, 0, len(projects))
	var dragged *int64
	for _, p := range projects {
		if p.ID == draggedID {
			id := p.ID
			dragged = &id
			continue
		}
		ids = append(ids, p.ID)
	}
	if dragged == nil {
		return fmt.Errorf("project %d: %w", draggedID, ErrNotFound)
	}

	spliced, err := spliceAt(ids, *dragged, targetID, before)
	if err != nil {
		return err
	}

	orders := make(map[int64]int, len(spliced))
	for i, id := range spliced {
		orders[id] = i
	}
	return s.Projects.UpdateOrders(ctx, userID, orders)
}

// spliceAt inserts moved before or after target in ids and returns the new
// sequence. The moved element must already be removed from ids.
func spliceAt(ids []int64, moved, target int64, before bool) ([]int64, error) {
	out := make([]int64, 0, len(ids)+1)
	found := false
	for _, id := range ids {
		if id == target {
			found = true
			if before {
				out = append(out, moved, id)
			} else {
				out = append(out, id, moved)
			}
			continue
		}
		out = append(out, id)
	}
	if !found {
		return nil, fmt.Errorf("reorder target %d: %w", target, ErrNotFound)
	}
	return out, nil
}

// AddObjective appends a milestone to the project.
func (s *Service) AddObjective(ctx context.Context, userID string, projectID int64, text string) (*models.Project, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: objective text is required", ErrInvalidInput)
	}
	project, err := s.Projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.UserID != userID {
		return nil, fmt.Errorf("project %d: %w", projectID, ErrNotFound)
	}
	project.Objectives = append(project.Objectives, models.Objective{
		ID:   uuid.NewString(),
		Text: text,
	})
	return s.Projects.Update(ctx, project)
}

// ToggleObjective flips a milestone's completion, stamping the completion
// time so weekly summaries can attribute it to the right week.
func (s *Service) ToggleObjective(ctx context.Context, userID string, projectID int64, objectiveID string) (*models.Project, error) {
	project, err := s.Projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.UserID != userID {
		return nil, fmt.Errorf("project %d: %w", projectID, ErrNotFound)
	}
	for i := range project.Objectives {
		if project.Objectives[i].ID != objectiveID {
			continue
		}
		if project.Objectives[i].Completed {
			project.Objectives[i].Completed = false
			project.Objectives[i].CompletedAt = nil
		} else {
			now := s.now()
			project.Objectives[i].Completed = true
			project.Objectives[i].CompletedAt = &now
		}
		return s.Projects.Update(ctx, project)
	}
	return nil, fmt.Errorf("objective %s: %w", objectiveID, ErrNotFound)
}

// SaveAsTemplate snapshots a project's task names into a reusable template.
func (s *Service) SaveAsTemplate(ctx context.Context, userID string, projectID int64) (*models.ProjectTemplate, error) {
	project, err := s.Projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil || project.UserID != userID {
		return nil, fmt.Errorf("project %d: %w", projectID, ErrNotFound)
	}
	tasks, err := s.Tasks.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(tasks))
	for _, t := range tasks {
		names = append(names, t.Name)
	}
	return s.Templates.Create(ctx, &models.ProjectTemplate{
		UserID:   userID,
		Name:     project.Name,
		Category: project.Category,
		Tasks:    names,
	})
}

// CreateFromTemplate instantiates a template as a fresh project with its
// task list recreated in order. The tasks land in one batch so a failed
// instantiation leaves no partial project behind.
func (s *Service) CreateFromTemplate(ctx context.Context, userID string, templateID int64, name string) (*models.Project, error) {
	tmpl, err := s.Templates.GetByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if tmpl == nil || tmpl.UserID != userID {
		return nil, fmt.Errorf("template %d: %w", templateID, ErrNotFound)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = tmpl.Name
	}

	project, err := s.CreateProject(ctx, &models.Project{
		UserID:   userID,
		Name:     name,
		Category: tmpl.Category,
	})
	if err != nil {
		return nil, err
	}

	tasks := make([]*models.Task, 0, len(tmpl.Tasks))
	for i, taskName := range tmpl.Tasks {
		tasks = append(tasks, &models.Task{
			UserID:    userID,
			ProjectID: project.ID,
			Name:      taskName,
			Priority:  models.TaskPriorityMedium,
			SortOrder: i,
		})
	}
	if len(tasks) > 0 {
		if _, err := s.Tasks.CreateBatch(ctx, tasks); err != nil {
			return nil, err
		}
	}
	return project, nil
}

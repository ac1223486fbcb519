package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/artflow/artflow/internal/models"
	"github.com/artflow/artflow/internal/repository"
)

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	query := `INSERT INTO projects (user_id, name, category, sort_order, objectives, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now
	objectives, err := marshalObjectives(project.Objectives)
	if err != nil {
		return nil, err
	}
	err = r.db.QueryRowContext(ctx, query,
		project.UserID, project.Name, project.Category, project.SortOrder,
		objectives, project.CreatedAt, project.UpdatedAt,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := `SELECT id, user_id, name, category, sort_order, objectives, created_at, updated_at
		FROM projects WHERE id = $1`
	project, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func (r *projectRepository) GetByUserID(ctx context.Context, userID string) ([]*models.Project, error) {
	query := `SELECT id, user_id, name, category, sort_order, objectives, created_at, updated_at
		FROM projects WHERE user_id = $1 ORDER BY sort_order, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

func (r *projectRepository) Update(ctx context.Context, project *models.Project) (*models.Project, error) {
	query := `UPDATE projects SET name=$2, category=$3, sort_order=$4, objectives=$5, updated_at=$6
		WHERE id=$1 RETURNING updated_at`
	project.UpdatedAt = time.Now()
	objectives, err := marshalObjectives(project.Objectives)
	if err != nil {
		return nil, err
	}
	err = r.db.QueryRowContext(ctx, query,
		project.ID, project.Name, project.Category, project.SortOrder,
		objectives, project.UpdatedAt,
	).Scan(&project.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

// UpdateOrders rewrites the sort order of the given projects in one
// transaction so a reorder is applied atomically.
func (r *projectRepository) UpdateOrders(ctx context.Context, userID string, orders map[int64]int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reorder tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE projects SET sort_order=$3, updated_at=$4 WHERE id=$1 AND user_id=$2`
	now := time.Now()
	for id, order := range orders {
		if _, err := tx.ExecContext(ctx, query, id, userID, order, now); err != nil {
			return fmt.Errorf("failed to reorder project %d: %w", id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reorder: %w", err)
	}
	return nil
}

// Delete removes the project and its tasks together so no orphaned tasks
// survive a project deletion.
func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE project_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete project tasks: %w", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("project %d not found", id)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}

func marshalObjectives(objectives []models.Objective) ([]byte, error) {
	if objectives == nil {
		objectives = []models.Objective{}
	}
	data, err := json.Marshal(objectives)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal objectives: %w", err)
	}
	return data, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	project := &models.Project{}
	var objectives []byte
	err := row.Scan(
		&project.ID, &project.UserID, &project.Name, &project.Category,
		&project.SortOrder, &objectives, &project.CreatedAt, &project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(objectives) > 0 {
		if err := json.Unmarshal(objectives, &project.Objectives); err != nil {
			return nil, fmt.Errorf("failed to unmarshal objectives: %w", err)
		}
	}
	return project, nil
}

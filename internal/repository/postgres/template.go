package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/artflow/artflow/internal/models"
	"github.com/artflow/artflow/internal/repository"
)

type templateRepository struct {
	db *sql.DB
}

func NewTemplateRepository(db *sql.DB) repository.TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) Create(ctx context.Context, tmpl *models.ProjectTemplate) (*models.ProjectTemplate, error) {
	query := `INSERT INTO project_templates (user_id, name, category, tasks, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	tmpl.CreatedAt = time.Now()
	err := r.db.QueryRowContext(ctx, query,
		tmpl.UserID, tmpl.Name, tmpl.Category, pq.Array(tmpl.Tasks), tmpl.CreatedAt,
	).Scan(&tmpl.ID, &tmpl.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return tmpl, nil
}

func (r *templateRepository) GetByID(ctx context.Context, id int64) (*models.ProjectTemplate, error) {
	query := `SELECT id, user_id, name, category, tasks, created_at
		FROM project_templates WHERE id = $1`
	tmpl := &models.ProjectTemplate{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&tmpl.ID, &tmpl.UserID, &tmpl.Name, &tmpl.Category,
		pq.Array(&tmpl.Tasks), &tmpl.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return tmpl, nil
}

func (r *templateRepository) GetByUserID(ctx context.Context, userID string) ([]*models.ProjectTemplate, error) {
	query := `SELECT id, user_id, name, category, tasks, created_at
		FROM project_templates WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query templates: %w", err)
	}
	defer rows.Close()

	var templates []*models.ProjectTemplate
	for rows.Next() {
		tmpl := &models.ProjectTemplate{}
		if err := rows.Scan(
			&tmpl.ID, &tmpl.UserID, &tmpl.Name, &tmpl.Category,
			pq.Array(&tmpl.Tasks), &tmpl.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, tmpl)
	}
	return templates, rows.Err()
}

func (r *templateRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM project_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("template %d not found", id)
	}
	return nil
}

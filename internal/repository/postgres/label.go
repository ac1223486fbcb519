package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/artflow/artflow/internal/models"
	"github.com/artflow/artflow/internal/repository"
)

type labelRepository struct {
	db *sql.DB
}

func NewLabelRepository(db *sql.DB) repository.LabelRepository {
	return &labelRepository{db: db}
}

func (r *labelRepository) Create(ctx context.Context, label *models.Label) (*models.Label, error) {
	query := `INSERT INTO labels (user_id, name, color, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	label.CreatedAt = time.Now()
	err := r.db.QueryRowContext(ctx, query,
		label.UserID, label.Name, label.Color, label.CreatedAt,
	).Scan(&label.ID, &label.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create label: %w", err)
	}
	return label, nil
}

func (r *labelRepository) GetByUserID(ctx context.Context, userID string) ([]*models.Label, error) {
	query := `SELECT id, user_id, name, color, created_at
		FROM labels WHERE user_id = $1 ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query labels: %w", err)
	}
	defer rows.Close()

	var labels []*models.Label
	for rows.Next() {
		label := &models.Label{}
		if err := rows.Scan(&label.ID, &label.UserID, &label.Name, &label.Color, &label.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan label: %w", err)
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}

// Delete removes the label and clears it from any events that carried it.
func (r *labelRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE calendar_events SET label_id = NULL WHERE label_id = $1`, id); err != nil {
		return fmt.Errorf("failed to detach label: %w", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM labels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete label: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("label %d not found", id)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}

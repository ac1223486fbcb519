package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/artflow/artflow/internal/models"
	"github.com/artflow/artflow/internal/repository"
)

type brainDumpRepository struct {
	db *sql.DB
}

func NewBrainDumpRepository(db *sql.DB) repository.BrainDumpRepository {
	return &brainDumpRepository{db: db}
}

func (r *brainDumpRepository) Create(ctx context.Context, item *models.BrainDumpItem) (*models.BrainDumpItem, error) {
	query := `INSERT INTO brain_dump (user_id, text, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	item.CreatedAt = time.Now()
	err := r.db.QueryRowContext(ctx, query,
		item.UserID, item.Text, item.CreatedAt,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create brain dump item: %w", err)
	}
	return item, nil
}

func (r *brainDumpRepository) GetByID(ctx context.Context, id int64) (*models.BrainDumpItem, error) {
	query := `SELECT id, user_id, text, created_at FROM brain_dump WHERE id = $1`
	item := &models.BrainDumpItem{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.UserID, &item.Text, &item.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get brain dump item: %w", err)
	}
	return item, nil
}

func (r *brainDumpRepository) GetByUserID(ctx context.Context, userID string) ([]*models.BrainDumpItem, error) {
	query := `SELECT id, user_id, text, created_at
		FROM brain_dump WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query brain dump: %w", err)
	}
	defer rows.Close()

	var items []*models.BrainDumpItem
	for rows.Next() {
		item := &models.BrainDumpItem{}
		if err := rows.Scan(&item.ID, &item.UserID, &item.Text, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan brain dump item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *brainDumpRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM brain_dump WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete brain dump item: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("brain dump item %d not found", id)
	}
	return nil
}

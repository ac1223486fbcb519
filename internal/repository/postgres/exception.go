package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/artflow/artflow/internal/models"
	"github.com/artflow/artflow/internal/repository"
)

type exceptionRepository struct {
	db *sql.DB
}

func NewExceptionRepository(db *sql.DB) repository.ExceptionRepository {
	return &exceptionRepository{db: db}
}

func (r *exceptionRepository) Create(ctx context.Context, exception *models.EventException) (*models.EventException, error) {
	query := `INSERT INTO event_exceptions (user_id, parent_id, date_id, deleted, title, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	exception.CreatedAt = time.Now()
	err := r.db.QueryRowContext(ctx, query,
		exception.UserID, exception.ParentID, exception.Date,
		exception.Deleted, exception.Title, exception.CreatedAt,
	).Scan(&exception.ID, &exception.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create exception: %w", err)
	}
	return exception, nil
}

func (r *exceptionRepository) GetByUserID(ctx context.Context, userID string) ([]*models.EventException, error) {
	query := `SELECT id, user_id, parent_id, date_id, deleted, title, created_at
		FROM event_exceptions WHERE user_id = $1 ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query exceptions: %w", err)
	}
	defer rows.Close()

	var exceptions []*models.EventException
	for rows.Next() {
		ex := &models.EventException{}
		if err := rows.Scan(
			&ex.ID, &ex.UserID, &ex.ParentID, &ex.Date,
			&ex.Deleted, &ex.Title, &ex.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan exception: %w", err)
		}
		exceptions = append(exceptions, ex)
	}
	return exceptions, rows.Err()
}

func (r *exceptionRepository) GetByParentAndDate(ctx context.Context, parentID int64, dateID string) (*models.EventException, error) {
	query := `SELECT id, user_id, parent_id, date_id, deleted, title, created_at
		FROM event_exceptions WHERE parent_id = $1 AND date_id = $2
		ORDER BY created_at DESC, id DESC LIMIT 1`
	ex := &models.EventException{}
	err := r.db.QueryRowContext(ctx, query, parentID, dateID).Scan(
		&ex.ID, &ex.UserID, &ex.ParentID, &ex.Date,
		&ex.Deleted, &ex.Title, &ex.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get exception: %w", err)
	}
	return ex, nil
}

func (r *exceptionRepository) Update(ctx context.Context, exception *models.EventException) (*models.EventException, error) {
	query := `UPDATE event_exceptions SET deleted=$2, title=$3 WHERE id=$1`
	result, err := r.db.ExecContext(ctx, query, exception.ID, exception.Deleted, exception.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to update exception: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return nil, fmt.Errorf("exception %d not found", exception.ID)
	}
	return exception, nil
}

func (r *exceptionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM event_exceptions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete exception: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("exception %d not found", id)
	}
	return nil
}

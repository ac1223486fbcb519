package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/artflow/artflow/internal/models"
	"github.com/artflow/artflow/internal/repository"
)

type goalRepository struct {
	db *sql.DB
}

func NewGoalRepository(db *sql.DB) repository.GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(ctx context.Context, goal *models.AnnualGoal) (*models.AnnualGoal, error) {
	query := `INSERT INTO annual_goals (user_id, text, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	now := time.Now()
	goal.CreatedAt = now
	goal.UpdatedAt = now
	err := r.db.QueryRowContext(ctx, query,
		goal.UserID, goal.Text, goal.Completed, goal.CreatedAt, goal.UpdatedAt,
	).Scan(&goal.ID, &goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return goal, nil
}

func (r *goalRepository) GetByID(ctx context.Context, id int64) (*models.AnnualGoal, error) {
	query := `SELECT id, user_id, text, completed, created_at, updated_at
		FROM annual_goals WHERE id = $1`
	goal := &models.AnnualGoal{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&goal.ID, &goal.UserID, &goal.Text, &goal.Completed, &goal.CreatedAt, &goal.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return goal, nil
}

func (r *goalRepository) GetByUserID(ctx context.Context, userID string) ([]*models.AnnualGoal, error) {
	query := `SELECT id, user_id, text, completed, created_at, updated_at
		FROM annual_goals WHERE user_id = $1 ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	var goals []*models.AnnualGoal
	for rows.Next() {
		goal := &models.AnnualGoal{}
		if err := rows.Scan(
			&goal.ID, &goal.UserID, &goal.Text, &goal.Completed, &goal.CreatedAt, &goal.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

func (r *goalRepository) Update(ctx context.Context, goal *models.AnnualGoal) (*models.AnnualGoal, error) {
	query := `UPDATE annual_goals SET text=$2, completed=$3, updated_at=$4
		WHERE id=$1 RETURNING updated_at`
	goal.UpdatedAt = time.Now()
	err := r.db.QueryRowContext(ctx, query,
		goal.ID, goal.Text, goal.Completed, goal.UpdatedAt,
	).Scan(&goal.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return goal, nil
}

func (r *goalRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM annual_goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("goal %d not found", id)
	}
	return nil
}

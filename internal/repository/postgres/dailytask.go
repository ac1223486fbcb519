package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/artflow/artflow/internal/models"
	"github.com/artflow/artflow/internal/repository"
)

type dailyTaskRepository struct {
	db *sql.DB
}

func NewDailyTaskRepository(db *sql.DB) repository.DailyTaskRepository {
	return &dailyTaskRepository{db: db}
}

func (r *dailyTaskRepository) Create(ctx context.Context, task *models.DailyTask) (*models.DailyTask, error) {
	query := `INSERT INTO daily_tasks (user_id, text, completed, plan_date, original_task_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	task.CreatedAt = time.Now()
	err := r.db.QueryRowContext(ctx, query,
		task.UserID, task.Text, task.Completed, task.PlanDate,
		task.OriginalTaskID, task.CreatedAt,
	).Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create daily task: %w", err)
	}
	return task, nil
}

func (r *dailyTaskRepository) GetByID(ctx context.Context, id int64) (*models.DailyTask, error) {
	query := `SELECT id, user_id, text, completed, plan_date, original_task_id, created_at
		FROM daily_tasks WHERE id = $1`
	task := &models.DailyTask{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID, &task.UserID, &task.Text, &task.Completed,
		&task.PlanDate, &task.OriginalTaskID, &task.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get daily task: %w", err)
	}
	return task, nil
}

func (r *dailyTaskRepository) GetByPlanDate(ctx context.Context, userID, planDate string) ([]*models.DailyTask, error) {
	query := `SELECT id, user_id, text, completed, plan_date, original_task_id, created_at
		FROM daily_tasks WHERE user_id = $1 AND plan_date = $2 ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, userID, planDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.DailyTask
	for rows.Next() {
		task := &models.DailyTask{}
		if err := rows.Scan(
			&task.ID, &task.UserID, &task.Text, &task.Completed,
			&task.PlanDate, &task.OriginalTaskID, &task.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan daily task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *dailyTaskRepository) GetByOriginalTask(ctx context.Context, userID string, originalTaskID int64, planDate string) (*models.DailyTask, error) {
	query := `SELECT id, user_id, text, completed, plan_date, original_task_id, created_at
		FROM daily_tasks WHERE user_id = $1 AND original_task_id = $2 AND plan_date = $3
		LIMIT 1`
	task := &models.DailyTask{}
	err := r.db.QueryRowContext(ctx, query, userID, originalTaskID, planDate).Scan(
		&task.ID, &task.UserID, &task.Text, &task.Completed,
		&task.PlanDate, &task.OriginalTaskID, &task.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get daily task by source: %w", err)
	}
	return task, nil
}

func (r *dailyTaskRepository) Update(ctx context.Context, task *models.DailyTask) (*models.DailyTask, error) {
	query := `UPDATE daily_tasks SET text=$2, completed=$3, plan_date=$4 WHERE id=$1`
	result, err := r.db.ExecContext(ctx, query, task.ID, task.Text, task.Completed, task.PlanDate)
	if err != nil {
		return nil, fmt.Errorf("failed to update daily task: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return nil, fmt.Errorf("daily task %d not found", task.ID)
	}
	return task, nil
}

func (r *dailyTaskRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM daily_tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete daily task: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("daily task %d not found", id)
	}
	return nil
}

// Rollover moves one user's incomplete entries dated before today onto
// today's plan. One statement keeps the move atomic.
func (r *dailyTaskRepository) Rollover(ctx context.Context, userID, today string) (int64, error) {
	query := `UPDATE daily_tasks SET plan_date = $2
		WHERE user_id = $1 AND completed = false AND plan_date < $2`
	result, err := r.db.ExecContext(ctx, query, userID, today)
	if err != nil {
		return 0, fmt.Errorf("failed to roll over daily tasks: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count rolled over tasks: %w", err)
	}
	return n, nil
}

// RolloverAll is the nightly variant covering every user.
func (r *dailyTaskRepository) RolloverAll(ctx context.Context, today string) (int64, error) {
	query := `UPDATE daily_tasks SET plan_date = $1
		WHERE completed = false AND plan_date < $1`
	result, err := r.db.ExecContext(ctx, query, today)
	if err != nil {
		return 0, fmt.Errorf("failed to roll over daily tasks: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count rolled over tasks: %w", err)
	}
	return n, nil
}

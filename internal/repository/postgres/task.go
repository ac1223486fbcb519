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

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `id, user_id, project_id, name, notes, priority, completed, due_date, pomo_count, sort_order, subtasks, created_at, updated_at`

func (r *taskRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	query := `INSERT INTO tasks (user_id, project_id, name, notes, priority, completed, due_date, pomo_count, sort_order, subtasks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at`
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	if task.Priority == "" {
		task.Priority = models.TaskPriorityMedium
	}
	subtasks, err := marshalSubtasks(task.Subtasks)
	if err != nil {
		return nil, err
	}
	err = r.db.QueryRowContext(ctx, query,
		task.UserID, task.ProjectID, task.Name, task.Notes, task.Priority,
		task.Completed, task.DueDate, task.PomoCount, task.SortOrder,
		subtasks, task.CreatedAt, task.UpdatedAt,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// CreateBatch inserts all tasks in one transaction; a template
// instantiation either lands whole or not at all.
func (r *taskRepository) CreateBatch(ctx context.Context, tasks []*models.Task) ([]*models.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin batch tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO tasks (user_id, project_id, name, notes, priority, completed, due_date, pomo_count, sort_order, subtasks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	now := time.Now()
	for _, task := range tasks {
		task.CreatedAt = now
		task.UpdatedAt = now
		if task.Priority == "" {
			task.Priority = models.TaskPriorityMedium
		}
		subtasks, err := marshalSubtasks(task.Subtasks)
		if err != nil {
			return nil, err
		}
		err = tx.QueryRowContext(ctx, query,
			task.UserID, task.ProjectID, task.Name, task.Notes, task.Priority,
			task.Completed, task.DueDate, task.PomoCount, task.SortOrder,
			subtasks, task.CreatedAt, task.UpdatedAt,
		).Scan(&task.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to create task %q: %w", task.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit batch: %w", err)
	}
	return tasks, nil
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

func (r *taskRepository) GetByProjectID(ctx context.Context, projectID int64) ([]*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = $1
		ORDER BY CASE priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END, sort_order, id`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *taskRepository) GetByUserID(ctx context.Context, userID string, filters repository.TaskFilters) ([]*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1`
	args := []interface{}{userID}
	argIdx := 2

	if filters.ProjectID != nil {
		query += fmt.Sprintf(" AND project_id = $%d", argIdx)
		args = append(args, *filters.ProjectID)
		argIdx++
	}
	if filters.Priority != nil {
		query += fmt.Sprintf(" AND priority = $%d", argIdx)
		args = append(args, *filters.Priority)
		argIdx++
	}
	if filters.Completed != nil {
		query += fmt.Sprintf(" AND completed = $%d", argIdx)
		args = append(args, *filters.Completed)
		argIdx++
	}
	if filters.DueOnly {
		query += " AND due_date IS NOT NULL"
	}

	query += " ORDER BY CASE priority WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END, sort_order, id"
	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, filters.Limit)
		argIdx++
	}
	if filters.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, filters.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *taskRepository) Update(ctx context.Context, task *models.Task) (*models.Task, error) {
	query := `UPDATE tasks SET name=$2, notes=$3, priority=$4, completed=$5, due_date=$6, pomo_count=$7, sort_order=$8, subtasks=$9, updated_at=$10
		WHERE id=$1 RETURNING updated_at`
	task.UpdatedAt = time.Now()
	subtasks, err := marshalSubtasks(task.Subtasks)
	if err != nil {
		return nil, err
	}
	err = r.db.QueryRowContext(ctx, query,
		task.ID, task.Name, task.Notes, task.Priority, task.Completed,
		task.DueDate, task.PomoCount, task.SortOrder, subtasks, task.UpdatedAt,
	).Scan(&task.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// UpdateOrders rewrites the sort order of the given tasks in one
// transaction so a reorder is applied atomically.
func (r *taskRepository) UpdateOrders(ctx context.Context, projectID int64, orders map[int64]int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reorder tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE tasks SET sort_order=$3, updated_at=$4 WHERE id=$1 AND project_id=$2`
	now := time.Now()
	for id, order := range orders {
		if _, err := tx.ExecContext(ctx, query, id, projectID, order, now); err != nil {
			return fmt.Errorf("failed to reorder task %d: %w", id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reorder: %w", err)
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("task %d not found", id)
	}
	return nil
}

func marshalSubtasks(subtasks []models.Subtask) ([]byte, error) {
	if subtasks == nil {
		subtasks = []models.Subtask{}
	}
	data, err := json.Marshal(subtasks)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal subtasks: %w", err)
	}
	return data, nil
}

func scanTask(row rowScanner) (*models.Task, error) {
	task := &models.Task{}
	var subtasks []byte
	err := row.Scan(
		&task.ID, &task.UserID, &task.ProjectID, &task.Name, &task.Notes,
		&task.Priority, &task.Completed, &task.DueDate, &task.PomoCount,
		&task.SortOrder, &subtasks, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(subtasks) > 0 {
		if err := json.Unmarshal(subtasks, &task.Subtasks); err != nil {
			return nil, fmt.Errorf("failed to unmarshal subtasks: %w", err)
		}
	}
	return task, nil
}

func collectTasks(rows *sql.Rows) ([]*models.Task, error) {
	var tasks []*models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

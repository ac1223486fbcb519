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

type habitRepository struct {
	db *sql.DB
}

func NewHabitRepository(db *sql.DB) repository.HabitRepository {
	return &habitRepository{db: db}
}

func (r *habitRepository) Create(ctx context.Context, habit *models.Habit) (*models.Habit, error) {
	query := `INSERT INTO habits (user_id, name, frequency, current_streak, longest_streak, last_completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`
	now := time.Now()
	habit.CreatedAt = now
	habit.UpdatedAt = now
	err := r.db.QueryRowContext(ctx, query,
		habit.UserID, habit.Name, frequencyDays(habit.Frequency),
		habit.CurrentStreak, habit.LongestStreak, habit.LastCompleted,
		habit.CreatedAt, habit.UpdatedAt,
	).Scan(&habit.ID, &habit.CreatedAt, &habit.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}
	return habit, nil
}

func (r *habitRepository) GetByID(ctx context.Context, id int64) (*models.Habit, error) {
	query := `SELECT id, user_id, name, frequency, current_streak, longest_streak, last_completed, created_at, updated_at
		FROM habits WHERE id = $1`
	habit, err := scanHabit(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get habit: %w", err)
	}
	return habit, nil
}

func (r *habitRepository) GetByUserID(ctx context.Context, userID string) ([]*models.Habit, error) {
	query := `SELECT id, user_id, name, frequency, current_streak, longest_streak, last_completed, created_at, updated_at
		FROM habits WHERE user_id = $1 ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	var habits []*models.Habit
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, habit)
	}
	return habits, rows.Err()
}

func (r *habitRepository) Update(ctx context.Context, habit *models.Habit) (*models.Habit, error) {
	query := `UPDATE habits SET name=$2, frequency=$3, current_streak=$4, longest_streak=$5, last_completed=$6, updated_at=$7
		WHERE id=$1 RETURNING updated_at`
	habit.UpdatedAt = time.Now()
	err := r.db.QueryRowContext(ctx, query,
		habit.ID, habit.Name, frequencyDays(habit.Frequency),
		habit.CurrentStreak, habit.LongestStreak, habit.LastCompleted, habit.UpdatedAt,
	).Scan(&habit.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}
	return habit, nil
}

func (r *habitRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("habit %d not found", id)
	}
	return nil
}

func frequencyDays(frequency []models.Weekday) interface{} {
	days := make([]string, len(frequency))
	for i, d := range frequency {
		days[i] = string(d)
	}
	return pq.Array(days)
}

func scanHabit(row rowScanner) (*models.Habit, error) {
	habit := &models.Habit{}
	var days []string
	err := row.Scan(
		&habit.ID, &habit.UserID, &habit.Name, pq.Array(&days),
		&habit.CurrentStreak, &habit.LongestStreak, &habit.LastCompleted,
		&habit.CreatedAt, &habit.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	habit.Frequency = make([]models.Weekday, len(days))
	for i, d := range days {
		habit.Frequency[i] = models.Weekday(d)
	}
	return habit, nil
}

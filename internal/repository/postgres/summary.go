package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/artflow/artflow/internal/models"
	"github.com/artflow/artflow/internal/repository"
)

type summaryRepository struct {
	db *sql.DB
}

func NewSummaryRepository(db *sql.DB) repository.SummaryRepository {
	return &summaryRepository{db: db}
}

func (r *summaryRepository) Create(ctx context.Context, summary *models.WeeklySummary) (*models.WeeklySummary, error) {
	query := `INSERT INTO weekly_summaries (user_id, week_id, month_id, summary_text, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, week_id)
		DO UPDATE SET summary_text = EXCLUDED.summary_text, created_at = EXCLUDED.created_at
		RETURNING id, created_at`
	summary.CreatedAt = time.Now()
	err := r.db.QueryRowContext(ctx, query,
		summary.UserID, summary.WeekID, summary.MonthID,
		summary.SummaryText, summary.CreatedAt,
	).Scan(&summary.ID, &summary.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create weekly summary: %w", err)
	}
	return summary, nil
}

func (r *summaryRepository) GetByWeek(ctx context.Context, userID, weekID string) (*models.WeeklySummary, error) {
	query := `SELECT id, user_id, week_id, month_id, summary_text, created_at
		FROM weekly_summaries WHERE user_id = $1 AND week_id = $2`
	summary := &models.WeeklySummary{}
	err := r.db.QueryRowContext(ctx, query, userID, weekID).Scan(
		&summary.ID, &summary.UserID, &summary.WeekID, &summary.MonthID,
		&summary.SummaryText, &summary.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get weekly summary: %w", err)
	}
	return summary, nil
}

func (r *summaryRepository) GetByUserID(ctx context.Context, userID string) ([]*models.WeeklySummary, error) {
	query := `SELECT id, user_id, week_id, month_id, summary_text, created_at
		FROM weekly_summaries WHERE user_id = $1 ORDER BY week_id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly summaries: %w", err)
	}
	defer rows.Close()

	var summaries []*models.WeeklySummary
	for rows.Next() {
		summary := &models.WeeklySummary{}
		if err := rows.Scan(
			&summary.ID, &summary.UserID, &summary.WeekID, &summary.MonthID,
			&summary.SummaryText, &summary.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan weekly summary: %w", err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

func (r *summaryRepository) DeleteByMonth(ctx context.Context, userID, monthID string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM weekly_summaries WHERE user_id = $1 AND month_id = $2`,
		userID, monthID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete weekly summaries: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted summaries: %w", err)
	}
	return n, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/artflow/artflow/internal/models"
	"github.com/artflow/artflow/internal/repository"
)

type dayNoteRepository struct {
	db *sql.DB
}

func NewDayNoteRepository(db *sql.DB) repository.DayNoteRepository {
	return &dayNoteRepository{db: db}
}

// Upsert writes the note for (user, date). An empty note deletes the row
// so the day reads back as having no note at all.
func (r *dayNoteRepository) Upsert(ctx context.Context, note *models.DayNote) (*models.DayNote, error) {
	if note.Note == "" {
		_, err := r.db.ExecContext(ctx,
			`DELETE FROM day_notes WHERE user_id = $1 AND date_id = $2`,
			note.UserID, note.DateID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to clear day note: %w", err)
		}
		return nil, nil
	}

	query := `INSERT INTO day_notes (user_id, date_id, month_id, note, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date_id)
		DO UPDATE SET note = EXCLUDED.note, updated_at = EXCLUDED.updated_at
		RETURNING id, updated_at`
	note.UpdatedAt = time.Now()
	err := r.db.QueryRowContext(ctx, query,
		note.UserID, note.DateID, note.MonthID, note.Note, note.UpdatedAt,
	).Scan(&note.ID, &note.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert day note: %w", err)
	}
	return note, nil
}

func (r *dayNoteRepository) GetByDate(ctx context.Context, userID, dateID string) (*models.DayNote, error) {
	query := `SELECT id, user_id, date_id, month_id, note, updated_at
		FROM day_notes WHERE user_id = $1 AND date_id = $2`
	note := &models.DayNote{}
	err := r.db.QueryRowContext(ctx, query, userID, dateID).Scan(
		&note.ID, &note.UserID, &note.DateID, &note.MonthID, &note.Note, &note.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get day note: %w", err)
	}
	return note, nil
}

func (r *dayNoteRepository) GetByMonth(ctx context.Context, userID, monthID string) ([]*models.DayNote, error) {
	query := `SELECT id, user_id, date_id, month_id, note, updated_at
		FROM day_notes WHERE user_id = $1 AND month_id = $2 ORDER BY date_id`
	rows, err := r.db.QueryContext(ctx, query, userID, monthID)
	if err != nil {
		return nil, fmt.Errorf("failed to query day notes: %w", err)
	}
	defer rows.Close()

	var notes []*models.DayNote
	for rows.Next() {
		note := &models.DayNote{}
		if err := rows.Scan(
			&note.ID, &note.UserID, &note.DateID, &note.MonthID, &note.Note, &note.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan day note: %w", err)
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

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

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *models.CalendarEvent) (*models.CalendarEvent, error) {
	query := `INSERT INTO calendar_events (user_id, title, start_date, recurrence_days, label_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	err := r.db.QueryRowContext(ctx, query,
		event.UserID, event.Title, event.StartDate, recurrenceDays(event),
		event.LabelID, event.CreatedAt, event.UpdatedAt,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*models.CalendarEvent, error) {
	query := `SELECT id, user_id, title, start_date, recurrence_days, label_id, created_at, updated_at
		FROM calendar_events WHERE id = $1`
	event, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

func (r *eventRepository) GetByUserID(ctx context.Context, userID string) ([]*models.CalendarEvent, error) {
	query := `SELECT id, user_id, title, start_date, recurrence_days, label_id, created_at, updated_at
		FROM calendar_events WHERE user_id = $1 ORDER BY start_date, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []*models.CalendarEvent
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, event *models.CalendarEvent) (*models.CalendarEvent, error) {
	query := `UPDATE calendar_events SET title=$2, start_date=$3, recurrence_days=$4, label_id=$5, updated_at=$6
		WHERE id=$1 RETURNING updated_at`
	event.UpdatedAt = time.Now()
	err := r.db.QueryRowContext(ctx, query,
		event.ID, event.Title, event.StartDate, recurrenceDays(event),
		event.LabelID, event.UpdatedAt,
	).Scan(&event.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

// Delete removes the event and its exceptions together so the expansion
// never sees an exception whose parent is gone.
func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM event_exceptions WHERE parent_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete event exceptions: %w", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM calendar_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("event %d not found", id)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}

func recurrenceDays(event *models.CalendarEvent) interface{} {
	if event.Recurrence == nil {
		return pq.Array([]string{})
	}
	days := make([]string, len(event.Recurrence.Days))
	for i, d := range event.Recurrence.Days {
		days[i] = string(d)
	}
	return pq.Array(days)
}

func scanEvent(row rowScanner) (*models.CalendarEvent, error) {
	event := &models.CalendarEvent{}
	var days []string
	err := row.Scan(
		&event.ID, &event.UserID, &event.Title, &event.StartDate,
		pq.Array(&days), &event.LabelID, &event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(days) > 0 {
		rec := &models.Recurrence{Days: make([]models.Weekday, len(days))}
		for i, d := range days {
			rec.Days[i] = models.Weekday(d)
		}
		event.Recurrence = rec
	}
	return event, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/artflow/artflow/internal/models"
	"github.com/artflow/artflow/internal/repository"
)

type missionRepository struct {
	db *sql.DB
}

func NewMissionRepository(db *sql.DB) repository.MissionRepository {
	return &missionRepository{db: db}
}

// GetDaily merges the static chore catalog with the day's completion
// state. Missions with no state row read back as not completed.
func (r *missionRepository) GetDaily(ctx context.Context, userID, dateID string) ([]*models.DailyMission, error) {
	query := `SELECT mission_id, completed_at FROM daily_mission_state
		WHERE user_id = $1 AND date_id = $2`
	rows, err := r.db.QueryContext(ctx, query, userID, dateID)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily mission state: %w", err)
	}
	defer rows.Close()

	state := make(map[string]time.Time)
	for rows.Next() {
		var missionID string
		var completedAt time.Time
		if err := rows.Scan(&missionID, &completedAt); err != nil {
			return nil, fmt.Errorf("failed to scan daily mission state: %w", err)
		}
		state[missionID] = completedAt
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	missions := models.DefaultDailyMissions()
	for _, m := range missions {
		if at, ok := state[m.ID]; ok {
			m.Completed = true
			t := at
			m.LastCompleted = &t
		}
	}
	return missions, nil
}

func (r *missionRepository) SetDaily(ctx context.Context, userID, dateID, missionID string, completed bool) error {
	if !completed {
		_, err := r.db.ExecContext(ctx,
			`DELETE FROM daily_mission_state WHERE user_id = $1 AND date_id = $2 AND mission_id = $3`,
			userID, dateID, missionID)
		if err != nil {
			return fmt.Errorf("failed to clear daily mission: %w", err)
		}
		return nil
	}
	query := `INSERT INTO daily_mission_state (user_id, date_id, mission_id, completed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, date_id, mission_id) DO UPDATE SET completed_at = EXCLUDED.completed_at`
	if _, err := r.db.ExecContext(ctx, query, userID, dateID, missionID, time.Now()); err != nil {
		return fmt.Errorf("failed to set daily mission: %w", err)
	}
	return nil
}

// GetWeekly merges the weekly rotation with the week's completion state.
func (r *missionRepository) GetWeekly(ctx context.Context, userID, weekID string) ([]*models.WeeklyMission, error) {
	query := `SELECT mission_id FROM weekly_mission_state
		WHERE user_id = $1 AND week_id = $2`
	rows, err := r.db.QueryContext(ctx, query, userID, weekID)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekly mission state: %w", err)
	}
	defer rows.Close()

	done := make(map[string]bool)
	for rows.Next() {
		var missionID string
		if err := rows.Scan(&missionID); err != nil {
			return nil, fmt.Errorf("failed to scan weekly mission state: %w", err)
		}
		done[missionID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	missions := models.DefaultWeeklyMissions()
	for _, m := range missions {
		m.Completed = done[m.ID]
	}
	return missions, nil
}

func (r *missionRepository) SetWeekly(ctx context.Context, userID, weekID, missionID string, completed bool) error {
	if !completed {
		_, err := r.db.ExecContext(ctx,
			`DELETE FROM weekly_mission_state WHERE user_id = $1 AND week_id = $2 AND mission_id = $3`,
			userID, weekID, missionID)
		if err != nil {
			return fmt.Errorf("failed to clear weekly mission: %w", err)
		}
		return nil
	}
	query := `INSERT INTO weekly_mission_state (user_id, week_id, mission_id, completed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, week_id, mission_id) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, userID, weekID, missionID, time.Now()); err != nil {
		return fmt.Errorf("failed to set weekly mission: %w", err)
	}
	return nil
}

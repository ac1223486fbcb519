package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/artflow/artflow/internal/calendar"
	"github.com/artflow/artflow/internal/metrics"
	"github.com/artflow/artflow/internal/models"
)

const rewardFallback = "Done and dusted. Enjoy the small win."

// TodayMissions returns the daily chore checklist with today's state.
func (s *Service) TodayMissions(ctx context.Context, userID string) ([]*models.DailyMission, error) {
	return s.Missions.GetDaily(ctx, userID, calendar.DateID(s.now()))
}

// SetDailyMission marks one daily chore done or not done for today.
// Completing a chore earns a short reward message.
func (s *Service) SetDailyMission(ctx context.Context, userID, missionID string, completed bool) (string, error) {
	mission := findDailyMission(missionID)
	if mission == nil {
		return "", fmt.Errorf("daily mission %s: %w", missionID, ErrNotFound)
	}
	if err := s.Missions.SetDaily(ctx, userID, calendar.DateID(s.now()), missionID, completed); err != nil {
		return "", err
	}
	if !completed {
		return "", nil
	}
	return s.rewardMessage(ctx, mission.Name), nil
}

// WeekMissions returns the weekly deep-clean rotation with this week's
// state.
func (s *Service) WeekMissions(ctx context.Context, userID string) ([]*models.WeeklyMission, error) {
	return s.Missions.GetWeekly(ctx, userID, calendar.WeekID(s.now()))
}

// SetWeeklyMission marks one weekly focus done or not done for this week.
func (s *Service) SetWeeklyMission(ctx context.Context, userID, missionID string, completed bool) (string, error) {
	var name string
	for _, m := range models.DefaultWeeklyMissions() {
		if m.ID == missionID {
			name = m.Name
			break
		}
	}
	if name == "" {
		return "", fmt.Errorf("weekly mission %s: %w", missionID, ErrNotFound)
	}
	if err := s.Missions.SetWeekly(ctx, userID, calendar.WeekID(s.now()), missionID, completed); err != nil {
		return "", err
	}
	if !completed {
		return "", nil
	}
	return s.rewardMessage(ctx, name), nil
}

// rewardMessage asks the advisor for a one-liner celebrating a finished
// chore. Failures degrade to a canned line, never an error.
func (s *Service) rewardMessage(ctx context.Context, missionName string) string {
	prompt := fmt.Sprintf(
		"I just finished the household chore %q. Reply with a single short, playful sentence congratulating me. No emojis, no preamble.",
		missionName,
	)
	text, err := s.ai.GenerateContent(ctx, prompt)
	if err != nil {
		s.logger.Warnf("Mission reward generation failed: %v", err)
		metrics.AdvisorRequests.WithLabelValues("reward", "error").Inc()
		return rewardFallback
	}
	metrics.AdvisorRequests.WithLabelValues("reward", "ok").Inc()
	return strings.TrimSpace(text)
}

func findDailyMission(missionID string) *models.DailyMission {
	for _, m := range models.DefaultDailyMissions() {
		if m.ID == missionID {
			return m
		}
	}
	return nil
}

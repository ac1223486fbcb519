package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/artflow/artflow/internal/calendar"
	"github.com/artflow/artflow/internal/metrics"
	"github.com/artflow/artflow/internal/models"
	"github.com/artflow/artflow/internal/repository"
)

// AdviceKind selects which coach persona answers.
type AdviceKind string

const (
	AdviceMentor      AdviceKind = "mentor"
	AdviceMindfulness AdviceKind = "mindfulness"
	AdviceSummary     AdviceKind = "summary"
)

const adviceFallback = "The coach is unreachable right now. Take a breath, pick one small task, and begin. Try again in a little while."

// Advise generates a coaching message of the given kind. Weekly summaries
// are cached per ISO week so the narrative of a finished week never
// changes. When the language model cannot be reached, a static
// encouragement is returned instead of an error so the UI always has
// something to show.
func (s *Service) Advise(ctx context.Context, userID string, kind AdviceKind) (string, error) {
	switch kind {
	case AdviceSummary:
		return s.weeklySummary(ctx, userID)
	case AdviceMindfulness:
		return s.generate(ctx, kind, mindfulnessPrompts[rand.Intn(len(mindfulnessPrompts))]), nil
	case AdviceMentor:
		prompt, err := s.mentorPrompt(ctx, userID)
		if err != nil {
			return "", err
		}
		return s.generate(ctx, kind, prompt), nil
	default:
		return "", fmt.Errorf("%w: unknown advice kind %q", ErrInvalidInput, kind)
	}
}

func (s *Service) generate(ctx context.Context, kind AdviceKind, prompt string) string {
	text, err := s.ai.GenerateContent(ctx, prompt)
	if err != nil {
		s.logger.Errorf("Advisor %s request failed: %v", kind, err)
		metrics.AdvisorRequests.WithLabelValues(string(kind), "error").Inc()
		return adviceFallback
	}
	metrics.AdvisorRequests.WithLabelValues(string(kind), "ok").Inc()
	return strings.TrimSpace(text)
}

// weeklySummary narrates last week's progress. The text is computed once
// per ISO week and then served from the cache.
func (s *Service) weeklySummary(ctx context.Context, userID string) (string, error) {
	now := s.now()
	weekAgo := now.AddDate(0, 0, -7)
	weekID := calendar.WeekID(weekAgo)

	cached, err := s.Summaries.GetByWeek(ctx, userID, weekID)
	if err != nil {
		return "", err
	}
	if cached != nil {
		return cached.SummaryText, nil
	}

	projects, err := s.Projects.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	tasks, err := s.Tasks.GetByUserID(ctx, userID, repository.TaskFilters{})
	if err != nil {
		return "", err
	}

	var milestones, finished, active []string
	for _, p := range projects {
		total, done := 0, 0
		for _, t := range tasks {
			if t.ProjectID != p.ID {
				continue
			}
			total++
			if t.Completed {
				done++
			}
		}

		recentMilestone := false
		for _, o := range p.Objectives {
			if o.Completed && o.CompletedAt != nil && o.CompletedAt.After(weekAgo) && !o.CompletedAt.After(now) {
				milestones = append(milestones, fmt.Sprintf("- Milestone %q (project %q)", o.Text, p.Name))
				recentMilestone = true
			}
		}
		switch {
		case total > 0 && total == done && recentMilestone:
			finished = append(finished, fmt.Sprintf("- Project %q", p.Name))
		case total > done:
			active = append(active, fmt.Sprintf("- %q (%d%% done)", p.Name, done*100/total))
		}
	}

	prompt := summaryPrompt(milestones, finished, active)
	text := s.generate(ctx, AdviceSummary, prompt)
	if text != adviceFallback {
		_, err = s.Summaries.Create(ctx, &models.WeeklySummary{
			UserID:      userID,
			WeekID:      weekID,
			MonthID:     calendar.MonthID(weekAgo),
			SummaryText: text,
		})
		if err != nil {
			return "", err
		}
	}
	return text, nil
}

// SummariesByMonth returns every cached weekly summary grouped by month,
// newest week first within each group.
func (s *Service) SummariesByMonth(ctx context.Context, userID string) (map[string][]*models.WeeklySummary, error) {
	summaries, err := s.Summaries.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]*models.WeeklySummary)
	for _, sum := range summaries {
		grouped[sum.MonthID] = append(grouped[sum.MonthID], sum)
	}
	return grouped, nil
}

// DeleteMonthSummaries drops the cached summaries of one month so they are
// regenerated on next read.
func (s *Service) DeleteMonthSummaries(ctx context.Context, userID, monthID string) (int64, error) {
	n, err := s.Summaries.DeleteByMonth(ctx, userID, monthID)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Infof("Dropped %d cached summaries for %s", n, monthID)
	}
	return n, nil
}

// mentorPrompt assembles the mentor's view of the artist's journey:
// stagnant tasks first, broken habit streaks second.
func (s *Service) mentorPrompt(ctx context.Context, userID string) (string, error) {
	now := s.now()
	monthAgo := now.AddDate(0, -1, 0)
	threeDaysAgo := now.AddDate(0, 0, -3)

	tasks, err := s.Tasks.GetByUserID(ctx, userID, repository.TaskFilters{})
	if err != nil {
		return "", err
	}
	habits, err := s.Habits.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}

	var stagnant, forgotten []string
	for _, t := range tasks {
		if t.IsStagnant(monthAgo) {
			stagnant = append(stagnant, fmt.Sprintf("- Task: %q", t.Name))
		}
	}
	for _, h := range habits {
		if h.LastCompleted != nil && h.LastCompleted.Before(threeDaysAgo) && h.CurrentStreak == 0 {
			forgotten = append(forgotten, fmt.Sprintf("- Habit: %q", h.Name))
		}
	}

	stagnantList := "None."
	if len(stagnant) > 0 {
		stagnantList = strings.Join(stagnant, "\n")
	}
	forgottenList := "None."
	if len(forgotten) > 0 {
		forgottenList = strings.Join(forgotten, "\n")
	}

	return fmt.Sprintf(`You are 'ArtFlow AI Coach', a mentor and guide on a grand creative adventure. Your tone is that of a wise travel companion: narrative, human and a little epic. You are not a robot, you are a guide.
Review the artist's current situation. Focus on the single most important pattern so you never overwhelm.

**Traveler's log:**
- Quests carried too long (created over a month ago and still open):
%s
- Forgotten rituals (habits whose streak broke and have not been retaken in three days):
%s

Based on the MOST relevant pattern (stagnant tasks first, then forgotten habits), offer your guidance as a "Mentor's Scroll". Your advice must:
1. Acknowledge the challenge with empathy.
2. Propose one small, actionable micro-challenge or technique (the two-minute rule, one pomodoro, or simply doing the habit once today).
3. Close with one encouraging line that fits the adventure metaphor.

If you detect no pattern to improve, offer a short general encouragement about keeping the pace of the adventure.
Answer with the advice text only.`, stagnantList, forgottenList), nil
}

func summaryPrompt(milestones, finished, active []string) string {
	section := func(lines []string, empty string) string {
		if len(lines) == 0 {
			return empty
		}
		return strings.Join(lines, "\n")
	}
	return fmt.Sprintf(`You are 'ArtFlow AI Coach', a narrator documenting an artist's creative journey. Your tone is epic and motivating. Write this week's chapter of their story, titled "Show Your Week".

Here is last week's data:
Milestones unlocked:
%s

Projects conquered (finished this week):
%s

Progress on active projects (upcoming adventures):
%s

Generate an inspiring but brief summary. Structure your answer EXACTLY like this:
1. A creative title for the week's chapter.
2. A section called "Milestones Unlocked".
3. A section called "Projects Conquered".
4. A section called "Upcoming Adventures".
5. A closing paragraph of motivation.
Be concise, visual, and celebrate every win. Answer with the summary text only.`,
		section(milestones, "The artist focused on other fronts this week."),
		section(finished, "None this week, but the adventure continues!"),
		section(active, "Time to plan the next great work."))
}

var mindfulnessPrompts = []string{
	`You are 'ArtFlow AI Coach', a productivity mentor for artists. Your tone is calm and centered. Generate a short mindfulness tip for an artist who may feel overwhelmed. The tip MUST include the box breathing technique: inhale (4s), hold (4s), exhale (4s), hold (4s). Present it kindly and make it easy to follow. Answer with the tip text only.`,
	`You are 'ArtFlow AI Coach', a productivity mentor for artists. Your tone is calm and centered. Generate a mindfulness tip to help an artist anchor in the present. The tip MUST describe the 5-4-3-2-1 sensory grounding technique (name 5 things you can see, 4 you can feel, 3 you can hear, 2 you can smell and 1 you can taste). Present it as a way to reconnect with the surroundings and find inspiration in the details. Answer with the tip text only.`,
	`You are 'ArtFlow AI Coach', a productivity mentor for artists. Your tone is calm and centered. Generate a mindfulness tip for an artist suffering from creative block. The tip MUST suggest the practice of mindful observation: pick one simple object from the studio (a brush, a stone) and observe it for a minute as if for the first time, noting texture, color and shape without judging. Explain how this simple act can reset perception and calm the mind. Answer with the tip text only.`,
}

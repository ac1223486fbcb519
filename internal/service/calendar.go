package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/artflow/artflow/internal/calendar"
	"github.com/artflow/artflow/internal/metrics"
	"github.com/artflow/artflow/internal/models"
	"github.com/artflow/artflow/internal/repository"
)

// ExpandCalendar recomputes the user's calendar items for the given view
// anchored at ref: every event instance inside the view's window plus a
// synthetic item for each task with a due date. Expansion is derived state
// and safe to re-run on every call.
func (s *Service) ExpandCalendar(ctx context.Context, userID string, view calendar.View, ref time.Time) ([]calendar.CalendarItem, error) {
	events, err := s.Events.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	exceptions, err := s.Exceptions.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load exceptions: %w", err)
	}
	tasks, err := s.Tasks.GetByUserID(ctx, userID, repository.TaskFilters{DueOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to load due tasks: %w", err)
	}

	instances, skipped := calendar.Expand(events, exceptions, calendar.WindowEnd(view, ref))
	if len(skipped) > 0 {
		s.logger.Warnf("Skipped %d malformed events without a start date: %v", len(skipped), skipped)
		metrics.CalendarEventsSkipped.Add(float64(len(skipped)))
	}
	metrics.CalendarExpansions.WithLabelValues(string(view)).Inc()

	items := calendar.ItemsFromInstances(instances)
	items = append(items, calendar.ItemsFromTasks(tasks)...)
	return items, nil
}

// CalendarByDate returns the month/week view: items bucketed by date.
func (s *Service) CalendarByDate(ctx context.Context, userID string, view calendar.View, ref time.Time) (map[string][]calendar.CalendarItem, error) {
	items, err := s.ExpandCalendar(ctx, userID, view, ref)
	if err != nil {
		return nil, err
	}
	return calendar.GroupByDate(items), nil
}

// Agenda returns the agenda view: upcoming day groups from today onward.
func (s *Service) Agenda(ctx context.Context, userID string, ref time.Time) ([]calendar.AgendaGroup, error) {
	items, err := s.ExpandCalendar(ctx, userID, calendar.ViewAgenda, ref)
	if err != nil {
		return nil, err
	}
	return calendar.AgendaGroups(items, ref), nil
}

// CreateEvent validates and stores a new base event.
func (s *Service) CreateEvent(ctx context.Context, event *models.CalendarEvent) (*models.CalendarEvent, error) {
	event.Title = strings.TrimSpace(event.Title)
	if event.Title == "" {
		return nil, fmt.Errorf("%w: event title is required", ErrInvalidInput)
	}
	if event.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: event start date is required", ErrInvalidInput)
	}
	if event.Recurrence != nil {
		for _, d := range event.Recurrence.Days {
			if !d.IsValid() {
				return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, d)
			}
		}
	}
	return s.Events.Create(ctx, event)
}

// UpdateEvent rewrites a base event's definition. Existing exceptions stay
// keyed by date and keep applying wherever the new pattern still lands.
func (s *Service) UpdateEvent(ctx context.Context, event *models.CalendarEvent) (*models.CalendarEvent, error) {
	existing, err := s.Events.GetByID(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.UserID != event.UserID {
		return nil, fmt.Errorf("event %d: %w", event.ID, ErrNotFound)
	}
	event.Title = strings.TrimSpace(event.Title)
	if event.Title == "" {
		return nil, fmt.Errorf("%w: event title is required", ErrInvalidInput)
	}
	return s.Events.Update(ctx, event)
}

// DeleteEventSeries removes the base event and every exception with it,
// which deletes all occurrences at once.
func (s *Service) DeleteEventSeries(ctx context.Context, userID string, eventID int64) error {
	event, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil || event.UserID != userID {
		return fmt.Errorf("event %d: %w", eventID, ErrNotFound)
	}
	return s.Events.Delete(ctx, eventID)
}

// DeleteOccurrence suppresses a single date of a recurring event by
// recording a deleted exception. For a one-off event the event itself is
// removed, since it has exactly one occurrence.
func (s *Service) DeleteOccurrence(ctx context.Context, userID string, eventID int64, dateID string) error {
	if _, err := calendar.ParseDateID(dateID); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	event, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil || event.UserID != userID {
		return fmt.Errorf("event %d: %w", eventID, ErrNotFound)
	}
	if !event.IsRecurring() {
		return s.Events.Delete(ctx, eventID)
	}

	existing, err := s.Exceptions.GetByParentAndDate(ctx, eventID, dateID)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.Deleted = true
		existing.Title = nil
		_, err = s.Exceptions.Update(ctx, existing)
		return err
	}
	_, err = s.Exceptions.Create(ctx, &models.EventException{
		UserID:   userID,
		ParentID: eventID,
		Date:     dateID,
		Deleted:  true,
	})
	return err
}

// RetitleOccurrence overrides the title of a single date of a recurring
// event without touching the rest of the series.
func (s *Service) RetitleOccurrence(ctx context.Context, userID string, eventID int64, dateID, title string) (*models.EventException, error) {
	if _, err := calendar.ParseDateID(dateID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: override title is required", ErrInvalidInput)
	}
	event, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil || event.UserID != userID {
		return nil, fmt.Errorf("event %d: %w", eventID, ErrNotFound)
	}
	if !event.IsRecurring() {
		return nil, fmt.Errorf("%w: only recurring events take per-date overrides", ErrInvalidInput)
	}

	existing, err := s.Exceptions.GetByParentAndDate(ctx, eventID, dateID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Deleted = false
		existing.Title = &title
		return s.Exceptions.Update(ctx, existing)
	}
	return s.Exceptions.Create(ctx, &models.EventException{
		UserID:   userID,
		ParentID: eventID,
		Date:     dateID,
		Title:    &title,
	})
}

// SaveDayNote writes the note pinned to a day. An empty note clears it.
func (s *Service) SaveDayNote(ctx context.Context, userID, dateID, text string) (*models.DayNote, error) {
	day, err := calendar.ParseDateID(dateID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.DayNotes.Upsert(ctx, &models.DayNote{
		UserID:  userID,
		DateID:  dateID,
		MonthID: calendar.MonthID(day),
		Note:    strings.TrimSpace(text),
	})
}

// MonthNotes returns every day note of the given month.
func (s *Service) MonthNotes(ctx context.Context, userID, monthID string) ([]*models.DayNote, error) {
	return s.DayNotes.GetByMonth(ctx, userID, monthID)
}

// CreateLabel validates and stores a calendar label.
func (s *Service) CreateLabel(ctx context.Context, label *models.Label) (*models.Label, error) {
	label.Name = strings.TrimSpace(label.Name)
	if label.Name == "" {
		return nil, fmt.Errorf("%w: label name is required", ErrInvalidInput)
	}
	return s.Labels.Create(ctx, label)
}

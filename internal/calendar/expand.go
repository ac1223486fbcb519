package calendar

import (
	"time"

	"github.com/artflow/artflow/internal/models"
)

// EventInstance is one concrete, dated occurrence of a calendar event.
// Instances are derived on every expansion pass and never persisted.
type EventInstance struct {
	// ID is the exception's id when this occurrence is overridden,
	// otherwise the base event's id.
	ID int64 `json:"id"`
	// OriginalID points back to the base event for recurring instances;
	// zero for one-off events.
	OriginalID   int64     `json:"original_id,omitempty"`
	Title        string    `json:"title"`
	Date         time.Time `json:"date"`
	InstanceDate string    `json:"instance_date"` // canonical YYYY-MM-DD
	Recurring    bool      `json:"recurring"`
	LabelID      *int64    `json:"label_id,omitempty"`
}

// exceptionIndex maps parentID -> dateID -> winning exception. When
// duplicate exceptions exist for one (parent, date) pair, the last write
// wins: greatest CreatedAt, ties broken by greatest ID.
func exceptionIndex(exceptions []*models.EventException) map[int64]map[string]*models.EventException {
	idx := make(map[int64]map[string]*models.EventException)
	for _, ex := range exceptions {
		byDate, ok := idx[ex.ParentID]
		if !ok {
			byDate = make(map[string]*models.EventException)
			idx[ex.ParentID] = byDate
		}
		cur, ok := byDate[ex.Date]
		if ok && (cur.CreatedAt.After(ex.CreatedAt) ||
			(cur.CreatedAt.Equal(ex.CreatedAt) && cur.ID > ex.ID)) {
			continue
		}
		byDate[ex.Date] = ex
	}
	return idx
}

// Expand materializes base events into dated instances up to and
// including windowEnd, applying per-date exceptions. One-off events are
// emitted unconditionally; the window only bounds recurrence walks.
//
// Events with a zero StartDate are treated as malformed and skipped; their
// ids are returned so the caller can log them. Expansion is a pure
// recompute and safe to re-run on every data change.
func Expand(events []*models.CalendarEvent, exceptions []*models.EventException, windowEnd time.Time) (instances []EventInstance, skipped []int64) {
	idx := exceptionIndex(exceptions)
	end := Day(windowEnd)

	for _, ev := range events {
		if ev.StartDate.IsZero() {
			skipped = append(skipped, ev.ID)
			continue
		}

		if !ev.IsRecurring() {
			day := Day(ev.StartDate)
			instances = append(instances, EventInstance{
				ID:           ev.ID,
				Title:        ev.Title,
				Date:         day,
				InstanceDate: DateID(day),
				LabelID:      ev.LabelID,
			})
			continue
		}

		// Walk one calendar day at a time so no date is visited twice.
		for cur := Day(ev.StartDate); !cur.After(end); cur = cur.AddDate(0, 0, 1) {
			if !models.ContainsWeekday(ev.Recurrence.Days, models.WeekdayOf(cur)) {
				continue
			}
			dateID := DateID(cur)
			ex := idx[ev.ID][dateID]
			if ex != nil && ex.Deleted {
				continue
			}

			inst := EventInstance{
				ID:           ev.ID,
				OriginalID:   ev.ID,
				Title:        ev.Title,
				Date:         cur,
				InstanceDate: dateID,
				Recurring:    true,
				LabelID:      ev.LabelID,
			}
			if ex != nil {
				inst.ID = ex.ID
				if ex.Title != nil {
					inst.Title = *ex.Title
				}
			}
			instances = append(instances, inst)
		}
	}

	return instances, skipped
}

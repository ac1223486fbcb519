package calendar

import (
	"sort"
	"time"

	"github.com/artflow/artflow/internal/models"
)

// ItemType discriminates the variants of a CalendarItem.
type ItemType string

const (
	ItemTypeEvent ItemType = "event"
	ItemTypeTask  ItemType = "task"
)

// CalendarItem is the common shape events and due-dated tasks take in the
// date-bucketed views, discriminated by an explicit type tag.
type CalendarItem struct {
	Type         ItemType  `json:"type"`
	ID           int64     `json:"id"`
	OriginalID   int64     `json:"original_id,omitempty"`
	Title        string    `json:"title"`
	Date         time.Time `json:"date"`
	InstanceDate string    `json:"instance_date"`
	Completed    bool      `json:"completed"` // tasks only
	Recurring    bool      `json:"recurring"` // events only
	LabelID      *int64    `json:"label_id,omitempty"`
}

// ItemsFromInstances converts expanded event instances into calendar items.
func ItemsFromInstances(instances []EventInstance) []CalendarItem {
	items := make([]CalendarItem, 0, len(instances))
	for _, in := range instances {
		items = append(items, CalendarItem{
			Type:         ItemTypeEvent,
			ID:           in.ID,
			OriginalID:   in.OriginalID,
			Title:        in.Title,
			Date:         in.Date,
			InstanceDate: in.InstanceDate,
			Recurring:    in.Recurring,
			LabelID:      in.LabelID,
		})
	}
	return items
}

// ItemsFromTasks converts due-dated tasks into synthetic calendar items.
// Tasks without a due date contribute nothing.
func ItemsFromTasks(tasks []*models.Task) []CalendarItem {
	var items []CalendarItem
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		day := Day(*t.DueDate)
		items = append(items, CalendarItem{
			Type:         ItemTypeTask,
			ID:           t.ID,
			Title:        t.Name,
			Date:         day,
			InstanceDate: DateID(day),
			Completed:    t.Completed,
		})
	}
	return items
}

// GroupByDate buckets items by their canonical date string. Within a day,
// items keep the insertion order of the expansion pass.
func GroupByDate(items []CalendarItem) map[string][]CalendarItem {
	grouped := make(map[string][]CalendarItem)
	for _, item := range items {
		grouped[item.InstanceDate] = append(grouped[item.InstanceDate], item)
	}
	return grouped
}

// AgendaGroup is one day's slice of the agenda view.
type AgendaGroup struct {
	DateID string         `json:"date"`
	Date   time.Time      `json:"date_time"`
	Items  []CalendarItem `json:"items"`
}

// AgendaGroups filters items to today-or-later and returns day groups in
// chronological order. Completed tasks stay in their group; they are only
// flagged, never removed.
func AgendaGroups(items []CalendarItem, today time.Time) []AgendaGroup {
	todayID := DateID(Day(today))
	grouped := make(map[string]*AgendaGroup)
	for _, item := range items {
		if item.InstanceDate < todayID {
			continue
		}
		g, ok := grouped[item.InstanceDate]
		if !ok {
			g = &AgendaGroup{DateID: item.InstanceDate, Date: Day(item.Date)}
			grouped[item.InstanceDate] = g
		}
		g.Items = append(g.Items, item)
	}

	groups := make([]AgendaGroup, 0, len(grouped))
	for _, g := range grouped {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].DateID < groups[j].DateID
	})
	return groups
}

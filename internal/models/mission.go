package models

import "time"

// DailyMission is a quick daily home chore. The mission list is fixed;
// only the last completion time is persisted per user.
type DailyMission struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Icon          string     `json:"icon"`
	Completed     bool       `json:"completed"`
	LastCompleted *time.Time `json:"last_completed,omitempty"`
}

// WeeklyMission is a deep-cleaning focus assigned to one weekday.
// Completion is tracked per ISO week.
type WeeklyMission struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Icon      string  `json:"icon"`
	Day       Weekday `json:"day"`
	Completed bool    `json:"completed"`
}

// DefaultDailyMissions returns the fixed daily chore list. Only completion
// state is persisted; the catalog itself is static.
func DefaultDailyMissions() []*DailyMission {
	return []*DailyMission{
		{ID: "dishes", Name: "Wash the dishes", Icon: "🍽️"},
		{ID: "studio", Name: "Tidy the studio", Icon: "🎨"},
		{ID: "shopping", Name: "Do the groceries", Icon: "🛒"},
		{ID: "laundry", Name: "Do the laundry", Icon: "🧺"},
		{ID: "trash", Name: "Take out the trash", Icon: "🗑️"},
		{ID: "bed", Name: "Make the bed", Icon: "🛏️"},
		{ID: "litterbox", Name: "Clean the litter box", Icon: "🐾"},
	}
}

// DefaultWeeklyMissions returns the fixed weekly deep-clean rotation, one
// focus area per weekday.
func DefaultWeeklyMissions() []*WeeklyMission {
	return []*WeeklyMission{
		{ID: "kitchen", Name: "Deep clean: kitchen", Day: WeekdayMon, Icon: "🍳"},
		{ID: "bathroom", Name: "Deep clean: bathroom", Day: WeekdayTue, Icon: "🚽"},
		{ID: "bedroom", Name: "Deep clean: bedroom", Day: WeekdayWed, Icon: "🛏️"},
		{ID: "livingroom", Name: "Deep clean: living room", Day: WeekdayThu, Icon: "🛋️"},
		{ID: "common", Name: "Deep clean: shared areas", Day: WeekdayFri, Icon: "🧹"},
		{ID: "cats", Name: "Deep clean: litter station", Day: WeekdaySat, Icon: "🐾"},
		{ID: "planning", Name: "Review and rest", Day: WeekdaySun, Icon: "🧘"},
	}
}

package models

import "time"

// Weekday is the tag used for weekly recurrence, habit frequency and the
// weekly mission plan. Indexing matches time.Weekday: 0=Sun .. 6=Sat.
type Weekday string

const (
	WeekdaySun Weekday = "Sun"
	WeekdayMon Weekday = "Mon"
	WeekdayTue Weekday = "Tue"
	WeekdayWed Weekday = "Wed"
	WeekdayThu Weekday = "Thu"
	WeekdayFri Weekday = "Fri"
	WeekdaySat Weekday = "Sat"
)

// Weekdays lists all weekday tags in time.Weekday order.
var Weekdays = [7]Weekday{
	WeekdaySun, WeekdayMon, WeekdayTue, WeekdayWed, WeekdayThu, WeekdayFri, WeekdaySat,
}

// WeekdayOf returns the weekday tag for the given time.
func WeekdayOf(t time.Time) Weekday {
	return Weekdays[int(t.Weekday())]
}

// IsValid reports whether w is one of the seven weekday tags.
func (w Weekday) IsValid() bool {
	for _, d := range Weekdays {
		if d == w {
			return true
		}
	}
	return false
}

// ContainsWeekday reports whether the set contains the given tag.
func ContainsWeekday(days []Weekday, w Weekday) bool {
	for _, d := range days {
		if d == w {
			return true
		}
	}
	return false
}

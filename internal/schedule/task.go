package schedule

import (
	"fmt"
	"strconv"
	"time"
)

// Location is a named stop on a trip.
type Location struct {
	Name    string
	Address string
}

// Task is a trip scheduled for one day.
type Task struct {
	Title string

	// Day is the day of month the task applies to (1-31).
	Day int

	// Date pins the task to one calendar day. It is only consulted by
	// MatchFullDate and may be left zero otherwise.
	Date time.Time

	Departure   Location
	Destination Location
	Waypoints   []Location
}

// HasDate reports whether the task is pinned to a calendar date.
func (t Task) HasDate() bool {
	return !t.Date.IsZero()
}

// Stops returns departure, waypoints and destination in travel order.
func (t Task) Stops() []Location {
	stops := make([]Location, 0, len(t.Waypoints)+2)
	stops = append(stops, t.Departure)
	stops = append(stops, t.Waypoints...)
	stops = append(stops, t.Destination)
	return stops
}

// MatchMode selects how a selected day is compared with a task.
type MatchMode int

const (
	// MatchDayOfMonth compares only the day of month. A task on "the 15th"
	// matches the 15th of any month that appears in the window.
	MatchDayOfMonth MatchMode = iota

	// MatchFullDate compares year, month and day.
	MatchFullDate
)

// String returns the config spelling of the mode.
func (m MatchMode) String() string {
	switch m {
	case MatchFullDate:
		return "date"
	default:
		return "day"
	}
}

// ParseMatchMode parses "day" or "date". The empty string means "day".
func ParseMatchMode(s string) (MatchMode, error) {
	switch s {
	case "", "day":
		return MatchDayOfMonth, nil
	case "date":
		return MatchFullDate, nil
	default:
		return MatchDayOfMonth, fmt.Errorf("unknown match mode %q (want \"day\" or \"date\")", s)
	}
}

const dateKeyLayout = "2006-01-02"

func taskKey(mode MatchMode, t Task) (string, error) {
	if mode == MatchFullDate {
		if !t.HasDate() {
			return "", fmt.Errorf("%w: %q", ErrMissingDate, t.Title)
		}
		return t.Date.Format(dateKeyLayout), nil
	}
	return strconv.Itoa(t.Day), nil
}

func dayKey(mode MatchMode, d DayDescriptor) string {
	if mode == MatchFullDate {
		return d.Date.Format(dateKeyLayout)
	}
	return strconv.Itoa(d.Day)
}

// Package schedule derives the seven-day schedule window around today
// and resolves which trip belongs to the selected day.
package schedule

import (
	"time"

	"github.com/google/uuid"
)

const (
	// WindowSize is the number of days in a generated window.
	WindowSize = 7

	// TodayIndex is the position of the reference day inside the window.
	TodayIndex = 2
)

// DayDescriptor is the display data for one calendar day of the window.
type DayDescriptor struct {
	// ID is an opaque key for list rendering. It changes on every generation.
	ID      string
	Day     int
	Weekday string
	IsToday bool

	// Date is the first instant of the calendar day in the reference
	// location. That is usually midnight but not on days a clock change skips it.
	Date time.Time
}

// Equal reports whether two descriptors denote the same logical day.
// The ID and the underlying Date are ignored.
func (d DayDescriptor) Equal(other DayDescriptor) bool {
	return d.Day == other.Day && d.Weekday == other.Weekday
}

// Generator produces day windows anchored on a reference instant.
type Generator struct {
	labeler WeekdayLabeler
	newID   func() string
}

// NewGenerator creates a Generator that labels weekdays with l.
// A nil labeler falls back to English abbreviations.
func NewGenerator(l WeekdayLabeler) *Generator {
	if l == nil {
		l = DefaultLabeler()
	}
	return &Generator{
		labeler: l,
		newID:   uuid.NewString,
	}
}

// Generate returns the window spanning two days before ref through four
// days after it, in ref's location.
func (g *Generator) Generate(ref time.Time) ([]DayDescriptor, error) {
	if err := validateReference(ref); err != nil {
		return nil, err
	}

	year, month, day := ref.Date()
	loc := ref.Location()
	window := make([]DayDescriptor, 0, WindowSize)

	for offset := 0; offset < WindowSize; offset++ {
		// Civil dates are counted in UTC, which has no clock changes.
		civil := time.Date(year, month, day-TodayIndex+offset, 0, 0, 0, 0, time.UTC)
		cy, cm, cd := civil.Date()
		window = append(window, DayDescriptor{
			ID:      g.newID(),
			Day:     cd,
			Weekday: g.labeler.WeekdayLabel(civil.Weekday()),
			IsToday: cy == year && cm == month && cd == day,
			Date:    StartOfDay(cy, cm, cd, loc),
		})
	}

	return window, nil
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay returns the first instant of the civil date year-month-day in loc.
// Day overflow is normalised, so day may run past either end of the month.
// When a clock change skips local midnight the day starts at the transition.
func StartOfDay(year int, month time.Month, day int, loc *time.Location) time.Time {
	year, month, day = time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()

	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if y, m, d := t.Date(); y == year && m == month && d == day {
		return t
	}
	// Midnight is in a gap and resolved into the previous day.
	if _, end := t.ZoneBounds(); !end.IsZero() {
		return end
	}
	return t
}

func validateReference(ref time.Time) error {
	if ref.IsZero() {
		return &InvalidInputError{Instant: ref, Reason: "zero time"}
	}
	first := ref.AddDate(0, 0, -TodayIndex)
	last := ref.AddDate(0, 0, WindowSize-TodayIndex-1)
	if first.Year() < 1 || last.Year() > 9999 {
		return &InvalidInputError{Instant: ref, Reason: "window outside years 1-9999"}
	}
	return nil
}

// Today returns the descriptor marked as today, or false if none is.
func Today(window []DayDescriptor) (DayDescriptor, bool) {
	for _, d := range window {
		if d.IsToday {
			return d, true
		}
	}
	return DayDescriptor{}, false
}

// IndexOf returns the position of day in window by Equal, or -1.
func IndexOf(window []DayDescriptor, day DayDescriptor) int {
	for i, d := range window {
		if d.Equal(day) {
			return i
		}
	}
	return -1
}

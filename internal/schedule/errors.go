package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidInput is returned when a reference instant cannot anchor a window.
	ErrInvalidInput = errors.New("invalid reference instant")

	// ErrInvalidSelection is returned when a day outside the current window is selected.
	ErrInvalidSelection = errors.New("day is not in the current window")

	// ErrDuplicateTask is returned when two tasks share the same day key.
	ErrDuplicateTask = errors.New("duplicate task for day")

	// ErrMissingDate is returned when full-date matching is requested for a task without a date.
	ErrMissingDate = errors.New("task has no date")
)

// InvalidInputError describes a reference instant that was rejected.
type InvalidInputError struct {
	Instant time.Time
	Reason  string
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidInput, e.Reason)
}

// Unwrap returns ErrInvalidInput so callers can use errors.Is.
func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// InvalidSelectionError describes a selection that does not belong to the window.
type InvalidSelectionError struct {
	Day DayDescriptor
}

// Error implements the error interface.
func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("%s: %d (%s)", ErrInvalidSelection, e.Day.Day, e.Day.Weekday)
}

// Unwrap returns ErrInvalidSelection so callers can use errors.Is.
func (e *InvalidSelectionError) Unwrap() error {
	return ErrInvalidSelection
}

// AsInvalidSelection checks if an error is an InvalidSelectionError and returns it.
func AsInvalidSelection(err error) (*InvalidSelectionError, bool) {
	var selErr *InvalidSelectionError
	ok := errors.As(err, &selErr)
	return selErr, ok
}

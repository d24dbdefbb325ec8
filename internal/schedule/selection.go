package schedule

// Selection is the highlighted day of a window. The zero value is the
// NoSelection state; it only exists before the first window is generated.
type Selection struct {
	day      DayDescriptor
	selected bool
}

// Initial returns the selection for a freshly generated window: the day
// marked today, or the first day when none is.
func Initial(window []DayDescriptor) Selection {
	return Selection{}.fallback(window)
}

// Day returns the selected day. ok is false in the NoSelection state.
func (s Selection) Day() (DayDescriptor, bool) {
	return s.day, s.selected
}

// IsSelected reports whether the selection holds a day.
func (s Selection) IsSelected() bool {
	return s.selected
}

// Is reports whether d is the selected day.
func (s Selection) Is(d DayDescriptor) bool {
	return s.selected && s.day.Equal(d)
}

// Select moves the selection to d. Selecting a day that is not part of
// window is a caller bug and returns an InvalidSelectionError; the
// receiver is returned unchanged in that case.
func (s Selection) Select(window []DayDescriptor, d DayDescriptor) (Selection, error) {
	idx := IndexOf(window, d)
	if idx < 0 {
		return s, &InvalidSelectionError{Day: d}
	}
	return Selection{day: window[idx], selected: true}, nil
}

// Reconcile keeps the selection valid for a regenerated window. A day
// still present is rebound to its new descriptor; otherwise the
// selection falls back to today, then to the first day.
func (s Selection) Reconcile(window []DayDescriptor) Selection {
	if s.selected {
		if idx := IndexOf(window, s.day); idx >= 0 {
			return Selection{day: window[idx], selected: true}
		}
	}
	return s.fallback(window)
}

// Move steps the selection by delta days inside window, stopping at
// either end.
func (s Selection) Move(window []DayDescriptor, delta int) Selection {
	s = s.Reconcile(window)
	if !s.selected {
		return s
	}

	idx := IndexOf(window, s.day) + delta
	if idx < 0 {
		idx = 0
	}
	if idx > len(window)-1 {
		idx = len(window) - 1
	}
	return Selection{day: window[idx], selected: true}
}

// Index returns the position of the selected day in window, or -1.
func (s Selection) Index(window []DayDescriptor) int {
	if !s.selected {
		return -1
	}
	return IndexOf(window, s.day)
}

func (s Selection) fallback(window []DayDescriptor) Selection {
	if len(window) == 0 {
		return Selection{}
	}
	if today, ok := Today(window); ok {
		return Selection{day: today, selected: true}
	}
	return Selection{day: window[0], selected: true}
}

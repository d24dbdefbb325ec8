package components

import "github.com/hy4ri/reco/internal/schedule"

// DaySelectedMsg is emitted when the strip selection moves to a new day.
type DaySelectedMsg struct {
	Day schedule.DayDescriptor
}

// TabChangedMsg is emitted when the active tab changes.
type TabChangedMsg struct {
	Tab Tab
}

// CopyRequestMsg is emitted when the user yanks a location.
type CopyRequestMsg struct {
	Location schedule.Location
}

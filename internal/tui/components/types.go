package components

// Tab represents a top-level tab.
type Tab int

const (
	TabSchedule Tab = iota
	TabHistory
	TabVehicle
)

// TabInfo holds display metadata for a tab.
type TabInfo struct {
	Tab         Tab
	Icon        string
	Name        string
	Placeholder string // shown in place of content for tabs without one
}

// DefaultTabs returns the tabs in display order.
func DefaultTabs() []TabInfo {
	return []TabInfo{
		{Tab: TabSchedule, Icon: "🗓", Name: "Schedule"},
		{Tab: TabHistory, Icon: "🕘", Name: "History", Placeholder: "History"},
		{Tab: TabVehicle, Icon: "🚗", Name: "Vehicle", Placeholder: "Vehicle"},
	}
}

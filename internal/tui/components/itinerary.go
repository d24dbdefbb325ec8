package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/reco/internal/schedule"
	"github.com/hy4ri/reco/internal/tui/styles"
	"github.com/hy4ri/reco/internal/tui/utils"
)

// NoScheduleMessage is shown when the selected day has no trip.
const NoScheduleMessage = "No schedule."

type rowKind int

const (
	rowDeparture rowKind = iota
	rowWaypointGroup
	rowWaypoint
	rowDestination
)

type itineraryRow struct {
	kind     rowKind
	location schedule.Location
}

// ItineraryModel shows the trip for the selected day.
type ItineraryModel struct {
	keys          KeyMap
	task          schedule.Task
	hasTask       bool
	expanded      bool
	cursor        int
	rows          []itineraryRow
	rowLines      []int // first viewport line of each row
	width, height int
	focused       bool
	viewport      viewport.Model
	viewportReady bool
}

// NewItinerary creates an empty itinerary. expanded sets whether the
// waypoint group starts open.
func NewItinerary(keys KeyMap, expanded bool) *ItineraryModel {
	return &ItineraryModel{
		keys:     keys,
		expanded: expanded,
		focused:  true,
	}
}

// Init implements Component.
func (m *ItineraryModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (m *ItineraryModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m, m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *ItineraryModel) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if !m.hasTask {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.ToggleWaypoints):
		m.ToggleWaypoints()
	case key.Matches(msg, m.keys.Copy):
		loc, ok := m.SelectedLocation()
		if !ok {
			return nil
		}
		return func() tea.Msg {
			return CopyRequestMsg{Location: loc}
		}
	}
	return nil
}

// SetTask shows task, or the empty state when ok is false.
func (m *ItineraryModel) SetTask(task schedule.Task, ok bool) {
	m.task = task
	m.hasTask = ok
	m.cursor = 0
	m.rebuildRows()
}

// HasTask reports whether a trip is shown.
func (m *ItineraryModel) HasTask() bool {
	return m.hasTask
}

// ToggleWaypoints opens or closes the waypoint group.
func (m *ItineraryModel) ToggleWaypoints() {
	var kind rowKind
	if m.cursor < len(m.rows) {
		kind = m.rows[m.cursor].kind
	}

	m.expanded = !m.expanded
	m.rebuildRows()

	switch kind {
	case rowWaypoint:
		m.cursor = m.groupRow()
	case rowDestination:
		m.cursor = len(m.rows) - 1
	}
	m.syncViewport()
}

// Expanded reports whether the waypoint group is open.
func (m *ItineraryModel) Expanded() bool {
	return m.expanded
}

// SelectedLocation returns the location under the cursor. The waypoint
// group header is not a location.
func (m *ItineraryModel) SelectedLocation() (schedule.Location, bool) {
	if !m.hasTask || m.cursor >= len(m.rows) {
		return schedule.Location{}, false
	}
	row := m.rows[m.cursor]
	if row.kind == rowWaypointGroup {
		return schedule.Location{}, false
	}
	return row.location, true
}

func (m *ItineraryModel) groupRow() int {
	for i, r := range m.rows {
		if r.kind == rowWaypointGroup {
			return i
		}
	}
	return 0
}

func (m *ItineraryModel) rebuildRows() {
	m.rows = m.rows[:0]
	if !m.hasTask {
		m.syncViewport()
		return
	}

	m.rows = append(m.rows, itineraryRow{kind: rowDeparture, location: m.task.Departure})
	m.rows = append(m.rows, itineraryRow{kind: rowWaypointGroup})
	if m.expanded {
		for _, w := range m.task.Waypoints {
			m.rows = append(m.rows, itineraryRow{kind: rowWaypoint, location: w})
		}
	}
	m.rows = append(m.rows, itineraryRow{kind: rowDestination, location: m.task.Destination})
	m.syncViewport()
}

func (m *ItineraryModel) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > len(m.rows)-1 {
		m.cursor = len(m.rows) - 1
	}
	m.syncViewport()
}

// View implements Component.
func (m *ItineraryModel) View() string {
	if !m.hasTask {
		return styles.EmptyState.
			Width(m.width).
			Height(m.height).
			Render(NoScheduleMessage)
	}
	if !m.viewportReady {
		return m.renderContent()
	}
	return m.viewport.View()
}

// SetSize implements Component.
func (m *ItineraryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if !m.viewportReady {
		m.viewport = viewport.New(width, height)
		m.viewportReady = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = height
	}
	m.syncViewport()
}

// Focus sets focus on the itinerary.
func (m *ItineraryModel) Focus() {
	m.focused = true
}

// Blur removes focus.
func (m *ItineraryModel) Blur() {
	m.focused = false
}

// Focused returns focus state.
func (m *ItineraryModel) Focused() bool {
	return m.focused
}

// syncViewport re-renders the content and scrolls the cursor into view.
func (m *ItineraryModel) syncViewport() {
	if !m.viewportReady {
		return
	}
	m.viewport.SetContent(m.renderContent())
	if m.cursor >= len(m.rowLines) {
		return
	}

	top := m.rowLines[m.cursor]
	bottom := top + 1 // location rows are two lines
	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
	} else if bottom >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height + 1)
	}
}

func (m *ItineraryModel) renderContent() string {
	var b strings.Builder
	m.rowLines = m.rowLines[:0]
	line := 0

	write := func(s string) {
		b.WriteString(s)
		b.WriteString("\n")
		line += strings.Count(s, "\n") + 1
	}

	title := "Task"
	if m.task.Title != "" {
		title = m.task.Title
	}
	write(styles.Subtitle.Render(title))
	write("")

	for i, row := range m.rows {
		switch row.kind {
		case rowDeparture:
			write(styles.SectionHeader.Render("Departure"))
		case rowWaypointGroup:
			write(styles.SectionHeader.Render("Waypoints"))
		case rowDestination:
			write(styles.SectionHeader.Render("Destination"))
		}

		m.rowLines = append(m.rowLines, line)
		write(m.renderRow(i, row))

		if row.kind == rowDeparture || row.kind == rowDestination ||
			(row.kind == rowWaypointGroup && !m.expanded) ||
			(row.kind == rowWaypoint && (i+1 >= len(m.rows) || m.rows[i+1].kind != rowWaypoint)) {
			write("")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m *ItineraryModel) renderRow(i int, row itineraryRow) string {
	selected := i == m.cursor && m.focused
	style := styles.LocationItem
	if selected {
		style = styles.LocationSelected
	}

	if row.kind == rowWaypointGroup {
		arrow := "▸"
		if m.expanded {
			arrow = "▾"
		}
		label := fmt.Sprintf("%s %d waypoint(s)", arrow, len(m.task.Waypoints))
		return style.Render(styles.LocationName.Render(label))
	}

	maxWidth := m.width - 4
	if maxWidth < 10 {
		maxWidth = 10
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.LocationName.Render(utils.TruncateString(row.location.Name, maxWidth)),
		styles.LocationAddress.Render(utils.TruncateString(row.location.Address, maxWidth)),
	)
	return style.Render(content)
}

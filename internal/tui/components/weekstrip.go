package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/reco/internal/schedule"
	"github.com/hy4ri/reco/internal/tui/styles"
	"github.com/hy4ri/reco/internal/tui/utils"
)

// WeekStripModel renders the seven-day strip and owns the selection.
type WeekStripModel struct {
	keys          KeyMap
	window        []schedule.DayDescriptor
	selection     schedule.Selection
	plan          *schedule.Plan
	width, height int
	focused       bool
}

// NewWeekStrip creates an empty strip. Call SetWindow before use.
func NewWeekStrip(keys KeyMap) *WeekStripModel {
	return &WeekStripModel{
		keys:    keys,
		focused: true,
	}
}

// Init implements Component.
func (w *WeekStripModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (w *WeekStripModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !w.focused {
			return w, nil
		}
		return w, w.handleKeyMsg(msg)
	}
	return w, nil
}

func (w *WeekStripModel) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if len(w.window) == 0 {
		return nil
	}

	prev := w.selection
	switch {
	case key.Matches(msg, w.keys.PrevDay):
		w.selection = w.selection.Move(w.window, -1)
	case key.Matches(msg, w.keys.NextDay):
		w.selection = w.selection.Move(w.window, 1)
	case key.Matches(msg, w.keys.Today):
		w.selection = schedule.Initial(w.window)
	case key.Matches(msg, w.keys.JumpDay):
		idx := int(msg.String()[0] - '1')
		if idx < len(w.window) {
			// Index comes from the window itself, so this cannot fail.
			w.selection, _ = w.selection.Select(w.window, w.window[idx])
		}
	default:
		return nil
	}

	day, _ := w.selection.Day()
	if prevDay, ok := prev.Day(); ok && prevDay.Equal(day) {
		return nil
	}
	return func() tea.Msg {
		return DaySelectedMsg{Day: day}
	}
}

// View implements Component.
func (w *WeekStripModel) View() string {
	if len(w.window) == 0 {
		return ""
	}

	labels := make([]string, len(w.window))
	for i, d := range w.window {
		labels[i] = d.Weekday
	}
	// Day numbers take two cells; pad so every cell has the same width.
	inner := utils.MaxWidth(labels...)
	if inner < 2 {
		inner = 2
	}
	cellWidth := inner + 4

	cells := make([]string, 0, len(w.window))
	for _, d := range w.window {
		style := styles.StripCell
		switch {
		case w.selection.Is(d) && w.focused:
			style = styles.StripCellSelected
		case d.IsToday:
			style = styles.StripCellToday
		}

		mark := " "
		if w.plan.HasTask(d) {
			mark = styles.StripTaskMark.Render("•")
		}

		content := lipgloss.JoinVertical(lipgloss.Center,
			fmt.Sprintf("%2d", d.Day),
			d.Weekday,
			mark,
		)
		cells = append(cells, style.Width(cellWidth).Render(content))
	}

	return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " ")
}

// SetSize implements Component.
func (w *WeekStripModel) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// Focus sets focus on the strip.
func (w *WeekStripModel) Focus() {
	w.focused = true
}

// Blur removes focus.
func (w *WeekStripModel) Blur() {
	w.focused = false
}

// Focused returns focus state.
func (w *WeekStripModel) Focused() bool {
	return w.focused
}

// SetWindow replaces the window and reconciles the selection against it.
func (w *WeekStripModel) SetWindow(window []schedule.DayDescriptor) {
	w.window = window
	w.selection = w.selection.Reconcile(window)
}

// SetPlan sets the plan used to mark days that have a trip.
func (w *WeekStripModel) SetPlan(plan *schedule.Plan) {
	w.plan = plan
}

// Select moves the selection to day. Days outside the window are rejected.
func (w *WeekStripModel) Select(day schedule.DayDescriptor) error {
	sel, err := w.selection.Select(w.window, day)
	if err != nil {
		return err
	}
	w.selection = sel
	return nil
}

// Window returns the current window.
func (w *WeekStripModel) Window() []schedule.DayDescriptor {
	return w.window
}

// Selected returns the selected day.
func (w *WeekStripModel) Selected() (schedule.DayDescriptor, bool) {
	return w.selection.Day()
}

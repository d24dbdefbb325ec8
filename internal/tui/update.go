package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/reco/internal/schedule"
	"github.com/hy4ri/reco/internal/tui/components"
	"go.uber.org/zap"
)

// dayChangedMsg fires when the wall clock crosses midnight.
type dayChangedMsg time.Time

// copiedMsg reports the result of a clipboard write.
type copiedMsg struct {
	name string
	err  error
}

// notifiedMsg reports the result of a desktop notification.
type notifiedMsg struct {
	err error
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.layout()
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case components.DaySelectedMsg:
		a.statusMsg = ""
		a.resolveSelected()
		return a, nil

	case components.TabChangedMsg:
		a.focusSchedule(msg.Tab == components.TabSchedule)
		return a, nil

	case components.CopyRequestMsg:
		return a, a.copyCmd(msg.Location)

	case copiedMsg:
		if msg.err != nil {
			a.err = msg.err
			a.log.Warn("clipboard write failed", zap.Error(msg.err))
			return a, nil
		}
		a.err = nil
		a.statusMsg = "Copied address of " + msg.name
		return a, nil

	case notifiedMsg:
		if msg.err != nil {
			a.log.Warn("notification failed", zap.Error(msg.err))
		}
		return a, nil

	case dayChangedMsg:
		return a, tea.Batch(a.scheduleMidnight(), a.rollOver())
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		a.layout()
		return nil
	case key.Matches(msg, a.keys.NextTab), key.Matches(msg, a.keys.PrevTab):
		_, cmd := a.tabs.Update(msg)
		return cmd
	}

	// The strip gets first refusal; keys it does not bind go to the itinerary.
	if _, cmd := a.strip.Update(msg); cmd != nil {
		return cmd
	}
	_, cmd := a.itinerary.Update(msg)
	return cmd
}

// focusSchedule hands keys to the schedule panes or takes them away.
func (a *App) focusSchedule(on bool) {
	for _, c := range []components.Focusable{a.strip, a.itinerary} {
		if on {
			c.Focus()
		} else {
			c.Blur()
		}
	}
}

func (a *App) copyCmd(loc schedule.Location) tea.Cmd {
	copyText := a.copyText
	return func() tea.Msg {
		return copiedMsg{name: loc.Name, err: copyText(loc.Address)}
	}
}

// notifyTodayCmd sends a desktop notification when today has a trip.
func (a *App) notifyTodayCmd() tea.Cmd {
	if !a.config.Notifications.Enabled {
		return nil
	}
	today, ok := schedule.Today(a.strip.Window())
	if !ok {
		return nil
	}
	task, ok := a.lookup(today)
	if !ok {
		return nil
	}

	title := "Trip today"
	if task.Title != "" {
		title = task.Title
	}
	body := task.Departure.Name + " → " + task.Destination.Name
	notify := a.notify
	a.log.Info("notifying trip", zap.String("title", title), zap.Int("day", today.Day))

	return func() tea.Msg {
		return notifiedMsg{err: notify(title, body)}
	}
}

// rollOver regenerates the window after a midnight tick. It returns the
// notification for the new day, or nil when the date has not changed.
func (a *App) rollOver() tea.Cmd {
	before, _ := schedule.Today(a.strip.Window())
	if err := a.regenerate(); err != nil {
		a.err = err
		a.log.Error("window regeneration failed", zap.Error(err))
		return nil
	}

	after, ok := schedule.Today(a.strip.Window())
	if !ok || after.Date.Equal(before.Date) {
		a.log.Debug("midnight tick on the same day", zap.Time("today", after.Date))
		return nil
	}
	return a.notifyTodayCmd()
}

// scheduleMidnight ticks at the next local midnight so the window follows the date.
func (a *App) scheduleMidnight() tea.Cmd {
	return tea.Tick(untilMidnight(a.now(), a.location), func(t time.Time) tea.Msg {
		return dayChangedMsg(t)
	})
}

// untilMidnight returns how long after now the next local day begins in loc.
// The result is always positive.
func untilMidnight(now time.Time, loc *time.Location) time.Duration {
	now = now.In(loc)
	y, m, d := now.Date()
	next := schedule.StartOfDay(y, m, d+1, loc)
	if !next.After(now) {
		return time.Hour
	}
	return next.Sub(now)
}

// Package tui provides the terminal user interface for the schedule.
package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/hy4ri/reco/internal/config"
	"github.com/hy4ri/reco/internal/schedule"
	"github.com/hy4ri/reco/internal/tui/components"
	"go.uber.org/zap"
)

// Options carries the App's dependencies. Zero-valued hooks fall back to
// the system clock, desktop notifications and the system clipboard.
type Options struct {
	Config *config.Config
	Plan   *schedule.Plan
	Logger *zap.Logger

	// Now is the current-instant provider.
	Now func() time.Time

	Notify    func(title, message string) error
	CopyText  func(text string) error
	Labeler   *schedule.LocaleLabeler
	Generator *schedule.Generator
}

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	config    *config.Config
	plan      *schedule.Plan
	resolver  schedule.Resolver
	generator *schedule.Generator
	labeler   *schedule.LocaleLabeler
	location  *time.Location
	log       *zap.Logger
	now       func() time.Time
	notify    func(title, message string) error
	copyText  func(text string) error

	// Components
	keys      components.KeyMap
	strip     *components.WeekStripModel
	itinerary *components.ItineraryModel
	tabs      *components.TabBarModel
	help      help.Model

	// UI state
	statusMsg string
	err       error
	width     int
	height    int
}

// NewApp builds the App and generates the first window. A reference
// instant that cannot anchor a window is returned as an error.
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	labeler := opts.Labeler
	if labeler == nil {
		labeler, err = schedule.NewWeekdayLabeler(cfg.Calendar.Locale)
		if err != nil {
			return nil, err
		}
	}

	a := &App{
		config:    cfg,
		plan:      opts.Plan,
		generator: opts.Generator,
		labeler:   labeler,
		location:  loc,
		log:       opts.Logger,
		now:       opts.Now,
		notify:    opts.Notify,
		copyText:  opts.CopyText,
		keys:      components.DefaultKeyMap(cfg.UI.VimMode),
		help:      help.New(),
	}

	if a.generator == nil {
		a.generator = schedule.NewGenerator(labeler)
	}
	if a.log == nil {
		a.log = zap.NewNop()
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.notify == nil {
		a.notify = func(title, message string) error {
			return beeep.Notify(title, message, "")
		}
	}
	if a.copyText == nil {
		a.copyText = clipboard.WriteAll
	}
	if a.plan == nil {
		a.plan, err = cfg.Plan(a.now())
		if err != nil {
			return nil, fmt.Errorf("failed to build plan: %w", err)
		}
	}

	a.resolver = schedule.Resolver{Mode: a.plan.Mode()}

	a.strip = components.NewWeekStrip(a.keys)
	a.strip.SetPlan(a.plan)
	a.itinerary = components.NewItinerary(a.keys, cfg.UI.WaypointsExpanded)
	a.tabs = components.NewTabBar(a.keys)

	if err := a.regenerate(); err != nil {
		return nil, err
	}

	return a, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.scheduleMidnight(), a.notifyTodayCmd())
}

// regenerate rebuilds the window around now and re-resolves the trip.
func (a *App) regenerate() error {
	ref := a.now().In(a.location)
	window, err := a.generator.Generate(ref)
	if err != nil {
		return err
	}

	a.strip.SetWindow(window)
	a.log.Debug("window generated",
		zap.Time("reference", ref),
		zap.Int("first_day", window[0].Day),
		zap.Int("last_day", window[len(window)-1].Day),
	)
	a.resolveSelected()
	return nil
}

// resolveSelected runs resolution for the current selection.
func (a *App) resolveSelected() {
	day, ok := a.strip.Selected()
	if !ok {
		a.itinerary.SetTask(schedule.Task{}, false)
		return
	}

	task, found := a.lookup(day)
	a.itinerary.SetTask(task, found)
	a.log.Debug("day resolved", zap.Int("day", day.Day), zap.Bool("has_task", found))
}

func (a *App) lookup(day schedule.DayDescriptor) (schedule.Task, bool) {
	task, ok := a.plan.Lookup(day)
	if !ok {
		return schedule.Task{}, false
	}
	return a.resolver.Resolve(day, task)
}

// Selected returns the currently selected day.
func (a *App) Selected() (schedule.DayDescriptor, bool) {
	return a.strip.Selected()
}

// Window returns the current window.
func (a *App) Window() []schedule.DayDescriptor {
	return a.strip.Window()
}

// SelectedTask returns the trip shown for the selected day.
func (a *App) SelectedTask() (schedule.Task, bool) {
	day, ok := a.strip.Selected()
	if !ok {
		return schedule.Task{}, false
	}
	return a.lookup(day)
}

// StatusMessage returns the last status line.
func (a *App) StatusMessage() string {
	return a.statusMsg
}

package tui

import (
	"errors"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/reco/internal/config"
	"github.com/hy4ri/reco/internal/schedule"
	"github.com/hy4ri/reco/internal/tui/components"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type recorder struct {
	notified []string
	copied   []string
	copyErr  error
}

func testConfig(day int) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Calendar.Timezone = "UTC"
	cfg.Calendar.Locale = "en"
	cfg.Tasks = []config.TaskConfig{
		{
			Title:       "KTX",
			Day:         day,
			Departure:   config.LocationConfig{Name: "Seoul Station", Address: "405 Hangang-daero"},
			Destination: config.LocationConfig{Name: "Ulsan Station", Address: "177 Ulsanyeok-ro"},
			Waypoints: []config.LocationConfig{
				{Name: "Daejeon Station", Address: "215 Jungang-ro"},
			},
		},
	}
	return cfg
}

func newTestApp(t *testing.T, cfg *config.Config, clock *fakeClock) (*App, *recorder) {
	t.Helper()
	rec := &recorder{}
	app, err := NewApp(Options{
		Config: cfg,
		Now:    clock.Now,
		Notify: func(title, message string) error {
			rec.notified = append(rec.notified, title+": "+message)
			return nil
		},
		CopyText: func(text string) error {
			if rec.copyErr != nil {
				return rec.copyErr
			}
			rec.copied = append(rec.copied, text)
			return nil
		},
	})
	if err != nil {
		t.Fatalf("NewApp returned error: %v", err)
	}
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return app, rec
}

// press sends a key and feeds resulting messages back until the chain ends.
func press(a *App, k string) {
	var msg tea.Msg
	switch k {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}

	_, cmd := a.Update(msg)
	for cmd != nil {
		next := cmd()
		if next == nil {
			return
		}
		_, cmd = a.Update(next)
	}
}

func nov(day, hour int) time.Time {
	return time.Date(2024, time.November, day, hour, 0, 0, 0, time.UTC)
}

func TestApp_InitialSelectionAndResolution(t *testing.T) {
	app, _ := newTestApp(t, testConfig(15), &fakeClock{now: nov(15, 10)})

	day, ok := app.Selected()
	if !ok || day.Day != 15 || !day.IsToday {
		t.Fatalf("Expected today (15) selected, got %+v", day)
	}
	task, ok := app.SelectedTask()
	if !ok || task.Title != "KTX" {
		t.Errorf("Expected KTX on the 15th, got %+v (ok=%v)", task, ok)
	}

	view := app.View()
	for _, want := range []string{"1020's schedule", "November 15, 2024", "Seoul Station", "Ulsan Station", "Schedule"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}
}

func TestApp_SelectingDayWithoutTask(t *testing.T) {
	app, _ := newTestApp(t, testConfig(15), &fakeClock{now: nov(15, 10)})

	press(app, "h")
	press(app, "h")

	day, _ := app.Selected()
	if day.Day != 13 {
		t.Fatalf("Expected day 13 selected, got %d", day.Day)
	}
	if _, ok := app.SelectedTask(); ok {
		t.Error("Expected no task on the 13th")
	}
	if !strings.Contains(app.View(), components.NoScheduleMessage) {
		t.Error("Expected the no-schedule state")
	}

	press(app, "3")
	if _, ok := app.SelectedTask(); !ok {
		t.Error("Expected task back on the 15th")
	}
}

func TestApp_NotifyToday(t *testing.T) {
	app, rec := newTestApp(t, testConfig(15), &fakeClock{now: nov(15, 10)})

	cmd := app.notifyTodayCmd()
	if cmd == nil {
		t.Fatal("Expected notification command")
	}
	app.Update(cmd())
	if len(rec.notified) != 1 || rec.notified[0] != "KTX: Seoul Station → Ulsan Station" {
		t.Errorf("Unexpected notifications: %v", rec.notified)
	}
}

func TestApp_NoNotification(t *testing.T) {
	t.Run("trip on another day", func(t *testing.T) {
		app, _ := newTestApp(t, testConfig(17), &fakeClock{now: nov(15, 10)})
		if app.notifyTodayCmd() != nil {
			t.Error("Expected no notification")
		}
	})

	t.Run("disabled", func(t *testing.T) {
		cfg := testConfig(15)
		cfg.Notifications.Enabled = false
		app, _ := newTestApp(t, cfg, &fakeClock{now: nov(15, 10)})
		if app.notifyTodayCmd() != nil {
			t.Error("Expected no notification when disabled")
		}
	})
}

func TestApp_CopyAddress(t *testing.T) {
	app, rec := newTestApp(t, testConfig(15), &fakeClock{now: nov(15, 10)})

	press(app, "y")
	if len(rec.copied) != 1 || rec.copied[0] != "405 Hangang-daero" {
		t.Fatalf("Expected departure address copied, got %v", rec.copied)
	}
	if !strings.Contains(app.StatusMessage(), "Seoul Station") {
		t.Errorf("Expected status to name the location, got %q", app.StatusMessage())
	}

	rec.copyErr = errors.New("no clipboard")
	press(app, "y")
	if !strings.Contains(app.View(), "no clipboard") {
		t.Error("Expected clipboard error in the footer")
	}
}

func TestApp_MidnightRegeneration(t *testing.T) {
	clock := &fakeClock{now: nov(15, 23)}
	app, _ := newTestApp(t, testConfig(15), clock)

	press(app, "l") // select the 16th, still present tomorrow
	clock.now = nov(16, 0)
	app.Update(dayChangedMsg(clock.now))

	window := app.Window()
	if window[0].Day != 14 || window[len(window)-1].Day != 20 {
		t.Fatalf("Expected window 14-20, got %d-%d", window[0].Day, window[len(window)-1].Day)
	}
	if day, _ := app.Selected(); day.Day != 16 {
		t.Errorf("Expected selection kept on 16, got %d", day.Day)
	}

	press(app, "1") // the 14th drops out after two more days
	clock.now = nov(18, 0)
	app.Update(dayChangedMsg(clock.now))
	if day, _ := app.Selected(); day.Day != 18 || !day.IsToday {
		t.Errorf("Expected fallback to today (18), got %d", day.Day)
	}
}

func TestApp_RollOverNotifiesOnlyOnNewDay(t *testing.T) {
	clock := &fakeClock{now: nov(15, 23)}
	app, rec := newTestApp(t, testConfig(16), clock)

	if cmd := app.rollOver(); cmd != nil {
		t.Error("Expected no notification when the date has not changed")
	}

	clock.now = nov(16, 0)
	cmd := app.rollOver()
	if cmd == nil {
		t.Fatal("Expected notification for the new day")
	}
	cmd()
	if len(rec.notified) != 1 {
		t.Errorf("Expected 1 notification, got %v", rec.notified)
	}

	if cmd := app.rollOver(); cmd != nil {
		t.Error("Expected a repeated tick to stay quiet")
	}
}

func TestUntilMidnight(t *testing.T) {
	santiago, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	tests := []struct {
		name string
		now  time.Time
		loc  *time.Location
		want time.Duration
	}{
		{"utc evening", nov(15, 23), time.UTC, time.Hour},
		{"utc midnight", nov(16, 0), time.UTC, 24 * time.Hour},
		{"before skipped midnight", time.Date(2024, time.September, 7, 23, 30, 0, 0, santiago), santiago, 30 * time.Minute},
		{"ordinary santiago night", time.Date(2024, time.September, 9, 23, 0, 0, 0, santiago), santiago, time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := untilMidnight(tt.now, tt.loc)
			if got <= 0 {
				t.Fatalf("Expected a positive wait, got %v", got)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestApp_TabsHideSchedule(t *testing.T) {
	app, _ := newTestApp(t, testConfig(15), &fakeClock{now: nov(15, 10)})

	press(app, "tab")
	if !strings.Contains(app.View(), "History") {
		t.Error("Expected history placeholder")
	}
	if app.strip.Focused() || app.itinerary.Focused() {
		t.Error("Expected schedule panes blurred off the schedule tab")
	}
	press(app, "h")
	if day, _ := app.Selected(); day.Day != 15 {
		t.Errorf("Expected strip keys ignored off the schedule tab, got %d", day.Day)
	}

	press(app, "tab")
	press(app, "tab")
	if !app.strip.Focused() || !app.itinerary.Focused() {
		t.Error("Expected schedule panes focused again on the schedule tab")
	}
	press(app, "h")
	if day, _ := app.Selected(); day.Day != 14 {
		t.Errorf("Expected strip keys back on the schedule tab, got %d", day.Day)
	}
}

func TestApp_InvalidReference(t *testing.T) {
	_, err := NewApp(Options{
		Config: testConfig(15),
		Now:    func() time.Time { return time.Time{} },
	})
	if !errors.Is(err, schedule.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestApp_FullDateMatching(t *testing.T) {
	cfg := testConfig(0)
	cfg.Calendar.Match = "date"
	cfg.Tasks[0].Date = "2024-12-16"

	app, _ := newTestApp(t, cfg, &fakeClock{now: nov(15, 10)})
	press(app, "l")
	if _, ok := app.SelectedTask(); ok {
		t.Error("Expected December trip to stay hidden on November 16")
	}
}

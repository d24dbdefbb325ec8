package components

import (
	"errors"
	"strings"
	"testing"

	"github.com/hy4ri/reco/internal/schedule"
)

func TestWeekStrip_Navigation(t *testing.T) {
	strip := NewWeekStrip(DefaultKeyMap(true))
	window := testWindow(t)
	strip.SetWindow(window)

	day, ok := strip.Selected()
	if !ok || day.Day != 15 {
		t.Fatalf("Expected initial selection on 15, got %d (ok=%v)", day.Day, ok)
	}

	tests := []struct {
		key     string
		wantDay int
		wantMsg bool
	}{
		{"l", 16, true},
		{"right", 17, true},
		{"h", 16, true},
		{"1", 13, true},
		{"left", 13, false}, // clamped at the start
		{"7", 19, true},
		{"l", 19, false}, // clamped at the end
		{"t", 15, true},
		{"x", 15, false},
	}

	for _, tt := range tests {
		_, cmd := strip.Update(keyMsg(tt.key))
		day, _ := strip.Selected()
		if day.Day != tt.wantDay {
			t.Errorf("After %q: expected day %d, got %d", tt.key, tt.wantDay, day.Day)
		}
		if (cmd != nil) != tt.wantMsg {
			t.Errorf("After %q: expected message=%v, got cmd=%v", tt.key, tt.wantMsg, cmd != nil)
			continue
		}
		if cmd != nil {
			msg, ok := cmd().(DaySelectedMsg)
			if !ok || msg.Day.Day != tt.wantDay {
				t.Errorf("After %q: expected DaySelectedMsg for %d, got %#v", tt.key, tt.wantDay, msg)
			}
		}
	}
}

func TestWeekStrip_NoVimKeys(t *testing.T) {
	strip := NewWeekStrip(DefaultKeyMap(false))
	strip.SetWindow(testWindow(t))

	strip.Update(keyMsg("l"))
	if day, _ := strip.Selected(); day.Day != 15 {
		t.Errorf("Expected l to be unbound without vim mode, got day %d", day.Day)
	}
	strip.Update(keyMsg("right"))
	if day, _ := strip.Selected(); day.Day != 16 {
		t.Errorf("Expected right arrow to move, got day %d", day.Day)
	}
}

func TestWeekStrip_SelectRejectsOutsideDay(t *testing.T) {
	strip := NewWeekStrip(DefaultKeyMap(true))
	strip.SetWindow(testWindow(t))

	err := strip.Select(schedule.DayDescriptor{Day: 1, Weekday: "Fri"})
	if !errors.Is(err, schedule.ErrInvalidSelection) {
		t.Errorf("Expected ErrInvalidSelection, got %v", err)
	}
	if day, _ := strip.Selected(); day.Day != 15 {
		t.Errorf("Expected selection unchanged, got %d", day.Day)
	}
}

func TestWeekStrip_SetWindowReconciles(t *testing.T) {
	strip := NewWeekStrip(DefaultKeyMap(true))
	window := testWindow(t)
	strip.SetWindow(window)
	if err := strip.Select(window[0]); err != nil {
		t.Fatalf("Select returned error: %v", err)
	}

	// Next day's window no longer contains the 13th.
	next := make([]schedule.DayDescriptor, 0, len(window))
	for _, d := range window[1:] {
		d.IsToday = d.Day == 16
		next = append(next, d)
	}
	next = append(next, schedule.DayDescriptor{ID: "x", Day: 20, Weekday: "Wed"})

	strip.SetWindow(next)
	if day, _ := strip.Selected(); day.Day != 16 {
		t.Errorf("Expected fallback to today (16), got %d", day.Day)
	}
}

func TestWeekStrip_View(t *testing.T) {
	strip := NewWeekStrip(DefaultKeyMap(true))
	strip.SetWindow(testWindow(t))
	plan, err := schedule.NewPlan(schedule.MatchDayOfMonth, testTask(17))
	if err != nil {
		t.Fatalf("NewPlan returned error: %v", err)
	}
	strip.SetPlan(plan)

	view := strip.View()
	for _, want := range []string{"13", "19", "Fri", "Tue", "•"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q:\n%s", want, view)
		}
	}
	if strings.Count(view, "•") != 1 {
		t.Errorf("Expected exactly one trip marker, got %d", strings.Count(view, "•"))
	}
}

func TestWeekStrip_BlurIgnoresKeys(t *testing.T) {
	strip := NewWeekStrip(DefaultKeyMap(true))
	strip.SetWindow(testWindow(t))

	var _ Focusable = strip
	strip.Blur()
	if strip.Focused() {
		t.Fatal("Expected strip to be blurred")
	}
	if _, cmd := strip.Update(keyMsg("l")); cmd != nil {
		t.Error("Expected no command while blurred")
	}
	if day, _ := strip.Selected(); day.Day != 15 {
		t.Errorf("Expected selection to stay on 15, got %d", day.Day)
	}

	strip.Focus()
	if _, cmd := strip.Update(keyMsg("l")); cmd == nil {
		t.Error("Expected selection command after focus")
	}
}

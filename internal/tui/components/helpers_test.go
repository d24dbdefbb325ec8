package components

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/reco/internal/schedule"
)

// keyMsg builds a key message the way the terminal would deliver it.
func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func testWindow(t *testing.T) []schedule.DayDescriptor {
	t.Helper()
	window, err := schedule.NewGenerator(nil).Generate(time.Date(2024, time.November, 15, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	return window
}

func testTask(day int) schedule.Task {
	return schedule.Task{
		Title:       "KTX",
		Day:         day,
		Departure:   schedule.Location{Name: "Seoul Station", Address: "405 Hangang-daero"},
		Destination: schedule.Location{Name: "Busan Station", Address: "206 Jungang-daero"},
		Waypoints: []schedule.Location{
			{Name: "Daejeon Station", Address: "215 Jungang-ro"},
			{Name: "Dongdaegu Station", Address: "550 Dongdaegu-ro"},
		},
	}
}

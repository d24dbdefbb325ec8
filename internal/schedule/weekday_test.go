package schedule

import (
	"testing"
	"time"
)

func TestNewWeekdayLabeler(t *testing.T) {
	tests := []struct {
		tag  string
		want string // label for Friday
	}{
		{"", "Fri"},
		{"en", "Fri"},
		{"en-US", "Fri"},
		{"ko", "금"},
		{"ko-KR", "금"},
		{"sw", "Fri"}, // unsupported, falls back to English
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			l, err := NewWeekdayLabeler(tt.tag)
			if err != nil {
				t.Fatalf("NewWeekdayLabeler(%q) returned error: %v", tt.tag, err)
			}
			if got := l.WeekdayLabel(time.Friday); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNewWeekdayLabeler_Malformed(t *testing.T) {
	if _, err := NewWeekdayLabeler("not a locale!"); err == nil {
		t.Error("Expected error for malformed tag")
	}
}

func TestGenerate_LocaleOnlyAffectsLabels(t *testing.T) {
	ko, err := NewWeekdayLabeler("ko")
	if err != nil {
		t.Fatalf("NewWeekdayLabeler: %v", err)
	}
	ref := time.Date(2024, time.November, 17, 12, 0, 0, 0, time.UTC)

	enWindow, _ := NewGenerator(DefaultLabeler()).Generate(ref)
	koWindow, _ := NewGenerator(ko).Generate(ref)

	for i := range enWindow {
		if enWindow[i].Day != koWindow[i].Day {
			t.Errorf("At index %d: day %d vs %d", i, enWindow[i].Day, koWindow[i].Day)
		}
		if enWindow[i].Equal(koWindow[i]) {
			t.Errorf("At index %d: expected labels to differ between locales", i)
		}
	}
	if koWindow[TodayIndex].Weekday != "일" {
		t.Errorf("Expected Sunday label 일, got %q", koWindow[TodayIndex].Weekday)
	}
}

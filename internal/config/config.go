// Package config handles loading and saving application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hy4ri/reco/internal/schedule"
	"gopkg.in/yaml.v3"
)

const appName = "reco"

// dateLayout is the YAML spelling of task dates.
const dateLayout = "2006-01-02"

// Config represents the application configuration.
type Config struct {
	Profile       ProfileConfig      `yaml:"profile"`
	Calendar      CalendarConfig     `yaml:"calendar"`
	Notifications NotificationConfig `yaml:"notifications"`
	UI            UIConfig           `yaml:"ui"`
	Tasks         []TaskConfig       `yaml:"tasks"`
}

// ProfileConfig holds the name shown in the schedule header.
type ProfileConfig struct {
	Name string `yaml:"name"`
}

// CalendarConfig controls date arithmetic and labels.
type CalendarConfig struct {
	// Locale is a BCP 47 tag used for weekday labels only.
	Locale string `yaml:"locale"`

	// Timezone is an IANA zone name. Empty means the system local zone.
	Timezone string `yaml:"timezone,omitempty"`

	// Match is "day" (day of month) or "date" (full calendar date).
	Match string `yaml:"match"`
}

// NotificationConfig holds desktop notification settings.
type NotificationConfig struct {
	Enabled bool `yaml:"enabled"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	VimMode           bool `yaml:"vim_mode"`
	WaypointsExpanded bool `yaml:"waypoints_expanded"`
}

// LocationConfig is a named stop.
type LocationConfig struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
}

// TaskConfig is one scheduled trip.
// With neither Day nor Date set the trip is scheduled for today.
type TaskConfig struct {
	Title       string           `yaml:"title,omitempty"`
	Day         int              `yaml:"day,omitempty"`
	Date        string           `yaml:"date,omitempty"`
	Departure   LocationConfig   `yaml:"departure"`
	Destination LocationConfig   `yaml:"destination"`
	Waypoints   []LocationConfig `yaml:"waypoints,omitempty"`
}

// DefaultConfig returns a new Config with default values.
// The sample trip is scheduled for whatever day the app starts on.
func DefaultConfig() *Config {
	seoul := LocationConfig{Name: "서울역", Address: "서울특별시 용산구 한강대로 405"}
	return &Config{
		Profile: ProfileConfig{Name: "1020"},
		Calendar: CalendarConfig{
			Locale: "ko",
			Match:  schedule.MatchDayOfMonth.String(),
		},
		Notifications: NotificationConfig{Enabled: true},
		UI: UIConfig{
			VimMode:           true,
			WaypointsExpanded: true,
		},
		Tasks: []TaskConfig{
			{
				Title:       "KTX 순회",
				Departure:   seoul,
				Destination: seoul,
				Waypoints: []LocationConfig{
					{Name: "대전역", Address: "대전광역시 동구 중앙로 215"},
					{Name: "동대구역", Address: "대구광역시 동구 동대구로 550"},
					{Name: "울산역", Address: "울산광역시 울주군 삼남면 울산역로 177"},
				},
			},
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", appName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from path, or from ConfigPath when path
// is empty. If the file doesn't exist, returns a default configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	// A tasks key replaces the sample trip; without one the sample stays.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to path, or to ConfigPath when path is empty.
func Save(cfg *Config, path string) error {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks value ranges and cross-field constraints.
func (c *Config) Validate() error {
	mode, err := schedule.ParseMatchMode(c.Calendar.Match)
	if err != nil {
		return err
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	if _, err := schedule.NewWeekdayLabeler(c.Calendar.Locale); err != nil {
		return err
	}

	for i, t := range c.Tasks {
		if t.Day < 0 || t.Day > 31 {
			return fmt.Errorf("task %d: day %d out of range 1-31", i+1, t.Day)
		}
		if t.Date != "" {
			d, err := time.Parse(dateLayout, t.Date)
			if err != nil {
				return fmt.Errorf("task %d: invalid date %q: %w", i+1, t.Date, err)
			}
			if t.Day != 0 && t.Day != d.Day() {
				return fmt.Errorf("task %d: day %d does not match date %s", i+1, t.Day, t.Date)
			}
		}
		if mode == schedule.MatchFullDate && t.Date == "" && t.Day != 0 {
			return fmt.Errorf("task %d: %w (match: date needs a date)", i+1, schedule.ErrMissingDate)
		}
		if t.Departure.Name == "" || t.Destination.Name == "" {
			return fmt.Errorf("task %d: departure and destination need a name", i+1)
		}
	}

	return nil
}

// MatchMode returns the configured match mode. Call Validate first.
func (c *Config) MatchMode() schedule.MatchMode {
	mode, _ := schedule.ParseMatchMode(c.Calendar.Match)
	return mode
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Calendar.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Calendar.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Calendar.Timezone, err)
	}
	return loc, nil
}

// Plan builds the schedule plan. now anchors tasks that name neither a
// day nor a date.
func (c *Config) Plan(now time.Time) (*schedule.Plan, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}
	now = now.In(loc)

	tasks := make([]schedule.Task, 0, len(c.Tasks))
	for i, tc := range c.Tasks {
		t, err := tc.toTask(now, loc)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		tasks = append(tasks, t)
	}

	return schedule.NewPlan(c.MatchMode(), tasks...)
}

func (tc TaskConfig) toTask(now time.Time, loc *time.Location) (schedule.Task, error) {
	t := schedule.Task{
		Title:       tc.Title,
		Day:         tc.Day,
		Departure:   tc.Departure.toLocation(),
		Destination: tc.Destination.toLocation(),
	}
	for _, w := range tc.Waypoints {
		t.Waypoints = append(t.Waypoints, w.toLocation())
	}

	switch {
	case tc.Date != "":
		d, err := time.Parse(dateLayout, tc.Date)
		if err != nil {
			return schedule.Task{}, fmt.Errorf("invalid date %q: %w", tc.Date, err)
		}
		t.Date = schedule.StartOfDay(d.Year(), d.Month(), d.Day(), loc)
		t.Day = d.Day()
	case tc.Day == 0:
		y, m, d := now.In(loc).Date()
		t.Date = schedule.StartOfDay(y, m, d, loc)
		t.Day = d
	}

	return t, nil
}

func (lc LocationConfig) toLocation() schedule.Location {
	return schedule.Location{Name: lc.Name, Address: lc.Address}
}

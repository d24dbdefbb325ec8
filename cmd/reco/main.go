// Package main is the entry point for the reco schedule TUI.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
	_ "time/tzdata"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/reco/internal/config"
	"github.com/hy4ri/reco/internal/logging"
	"github.com/hy4ri/reco/internal/schedule"
	"github.com/hy4ri/reco/internal/tui"
	"go.uber.org/zap"
)

const version = "0.1.0"

const helpText = `reco - Terminal schedule strip for your trips

USAGE:
    reco [OPTIONS]

OPTIONS:
    -h, --help          Show this help message
    -v, --version       Show version information
    --init              Create a template config file
    --config PATH       Use a config file other than the default
    --date YYYY-MM-DD   Anchor the week strip on this date instead of today
    --print             Print the week and the selected trip, then exit
    --debug             Write a debug log to ./debug.log

CONFIGURATION:
    Config file: ~/.config/reco/config.yaml

KEYBINDINGS:
    h/l, ←/→    Previous/next day
    1-7         Jump to a day in the strip
    t           Back to today
    j/k, ↑/↓    Move between stops
    w, Enter    Expand/collapse waypoints
    y           Copy the highlighted address
    Tab         Switch tab
    ?           Toggle help
    q           Quit
`

const configTemplate = `# reco configuration
# Location: ~/.config/reco/config.yaml

profile:
  name: "1020"

calendar:
  # Language used for weekday labels (BCP 47: ko, en, ja, ...)
  locale: "ko"
  # IANA timezone; leave empty for the system zone
  timezone: "Asia/Seoul"
  # "day" matches trips by day of month, "date" by full calendar date
  match: "day"

notifications:
  # Desktop notification on startup when a trip is scheduled today
  enabled: true

ui:
  vim_mode: true
  waypoints_expanded: true

tasks:
  # A trip with neither day nor date is scheduled for today.
  - title: "KTX 순회"
    # day: 15
    # date: "2024-11-15"
    departure:
      name: "서울역"
      address: "서울특별시 용산구 한강대로 405"
    destination:
      name: "서울역"
      address: "서울특별시 용산구 한강대로 405"
    waypoints:
      - name: "대전역"
        address: "대전광역시 동구 중앙로 215"
      - name: "동대구역"
        address: "대구광역시 동구 동대구로 550"
      - name: "울산역"
        address: "울산광역시 울주군 삼남면 울산역로 177"
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		printOnly   bool
		debug       bool
		configPath  string
		date        string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.BoolVar(&printOnly, "print", false, "Print the schedule and exit")
	flag.BoolVar(&debug, "debug", false, "Write a debug log")
	flag.StringVar(&configPath, "config", "", "Config file path")
	flag.StringVar(&date, "date", "", "Reference date (YYYY-MM-DD)")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("reco version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate(configPath)
	}

	logger, err := logging.New(debug, logging.DefaultFile)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	now, err := clockFor(cfg, date)
	if err != nil {
		return err
	}

	if printOnly {
		return printSchedule(os.Stdout, cfg, now)
	}

	return runApp(cfg, now, logger)
}

// clockFor returns the current-instant provider. A --date override pins
// the clock to noon of that day in the configured zone.
func clockFor(cfg *config.Config, date string) (func() time.Time, error) {
	if date == "" {
		return time.Now, nil
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	d, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, &schedule.InvalidInputError{Reason: fmt.Sprintf("cannot parse --date %q", date)}
	}
	fixed := d.Add(12 * time.Hour)
	return func() time.Time { return fixed }, nil
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate(path string) error {
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		if !confirmOverwrite(os.Stdin, os.Stdout, path) {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// confirmOverwrite asks on w and reads one answer from r. Anything but y is a no.
func confirmOverwrite(r io.Reader, w io.Writer, path string) bool {
	fmt.Fprintf(w, "Config file already exists: %s\n", path)
	fmt.Fprint(w, "Overwrite? [y/N]: ")

	var response string
	if _, err := fmt.Fscanln(r, &response); err != nil {
		return false
	}
	return response == "y" || response == "Y"
}

// printSchedule writes the window and today's trip as plain text.
func printSchedule(w io.Writer, cfg *config.Config, now func() time.Time) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	labeler, err := schedule.NewWeekdayLabeler(cfg.Calendar.Locale)
	if err != nil {
		return err
	}
	plan, err := cfg.Plan(now())
	if err != nil {
		return err
	}

	window, err := schedule.NewGenerator(labeler).Generate(now().In(loc))
	if err != nil {
		return err
	}
	selected, _ := schedule.Initial(window).Day()

	fmt.Fprintf(w, "%s's schedule - %s\n\n", cfg.Profile.Name, labeler.LongDate(selected.Date))
	for _, d := range window {
		marker := " "
		if d.IsToday {
			marker = "*"
		}
		trip := ""
		if plan.HasTask(d) {
			trip = " •"
		}
		fmt.Fprintf(w, "%s %2d %s%s\n", marker, d.Day, d.Weekday, trip)
	}
	fmt.Fprintln(w)

	task, ok := plan.Lookup(selected)
	if !ok {
		fmt.Fprintln(w, "No schedule.")
		return nil
	}

	if task.Title != "" {
		fmt.Fprintln(w, task.Title)
	}
	for i, stop := range task.Stops() {
		role := "via"
		switch i {
		case 0:
			role = "from"
		case len(task.Waypoints) + 1:
			role = "to"
		}
		fmt.Fprintf(w, "  %-4s %s (%s)\n", role, stop.Name, stop.Address)
	}
	return nil
}

// runApp starts the main TUI application.
func runApp(cfg *config.Config, now func() time.Time, logger *zap.Logger) error {
	app, err := tui.NewApp(tui.Options{
		Config: cfg,
		Logger: logger,
		Now:    now,
	})
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color.
	Highlight = lipgloss.AdaptiveColor{Light: "#1E8E3E", Dark: "#34C759"}

	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}

	cellBackground = lipgloss.AdaptiveColor{Light: "#E6E6E6", Dark: "#2A2A2A"}
	barBackground  = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the style for the schedule header
	// NOTE: No margins - they break viewport scroll sync line counting
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings such as the month
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)
)

// Week strip styles. Every cell has the same padding so the strip keeps
// its width when the selection moves.
var (
	StripCell = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Align(lipgloss.Center).
			Background(cellBackground)

	StripCellSelected = StripCell.
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(Highlight)

	StripCellToday = StripCell.
			Bold(true).
			Foreground(SuccessColor)

	// StripTaskMark flags days that have a trip
	StripTaskMark = lipgloss.NewStyle().
			Foreground(WarningColor)
)

// Itinerary styles
var (
	SectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle).
			Underline(true)

	LocationName = lipgloss.NewStyle().
			Bold(true)

	LocationAddress = lipgloss.NewStyle().
			Foreground(Subtle)

	LocationItem = lipgloss.NewStyle().
			PaddingLeft(2)

	LocationSelected = lipgloss.NewStyle().
				PaddingLeft(1).
				BorderLeft(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeftForeground(Highlight).
				Background(lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A2A"})

	// EmptyState is the "no schedule" panel
	EmptyState = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle).
			Align(lipgloss.Center).
			AlignVertical(lipgloss.Center)
)

// StatusBar styles
var (
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(barBackground).
			Padding(0, 1)

	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(barBackground).
			Bold(true)

	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(barBackground).
				Bold(true)
)

// Help styles
var (
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Tab bar styles
var (
	TabBar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Subtle).
		PaddingLeft(1).
		PaddingRight(1)

	Tab = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(Subtle)

	TabActive = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Highlight)
)

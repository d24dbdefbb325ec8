package components

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings shared by the schedule components.
// It implements help.KeyMap.
type KeyMap struct {
	PrevDay         key.Binding
	NextDay         key.Binding
	Today           key.Binding
	JumpDay         key.Binding
	Up              key.Binding
	Down            key.Binding
	ToggleWaypoints key.Binding
	Copy            key.Binding
	NextTab         key.Binding
	PrevTab         key.Binding
	Help            key.Binding
	Quit            key.Binding
}

// DefaultKeyMap returns the default bindings. With vimMode the h/j/k/l
// keys are bound alongside the arrows.
func DefaultKeyMap(vimMode bool) KeyMap {
	arrows := func(arrow, vim string) []string {
		if vimMode {
			return []string{arrow, vim}
		}
		return []string{arrow}
	}
	helpKey := func(arrow, vim string) string {
		if vimMode {
			return arrow + "/" + vim
		}
		return arrow
	}

	return KeyMap{
		PrevDay: key.NewBinding(
			key.WithKeys(arrows("left", "h")...),
			key.WithHelp(helpKey("←", "h"), "prev day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys(arrows("right", "l")...),
			key.WithHelp(helpKey("→", "l"), "next day"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		JumpDay: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "jump to day"),
		),
		Up: key.NewBinding(
			key.WithKeys(arrows("up", "k")...),
			key.WithHelp(helpKey("↑", "k"), "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(arrows("down", "j")...),
			key.WithHelp(helpKey("↓", "j"), "down"),
		),
		ToggleWaypoints: key.NewBinding(
			key.WithKeys("w", " ", "enter"),
			key.WithHelp("w", "toggle waypoints"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy address"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.Today, k.JumpDay},
		{k.Up, k.Down, k.ToggleWaypoints, k.Copy},
		{k.NextTab, k.PrevTab, k.Help, k.Quit},
	}
}

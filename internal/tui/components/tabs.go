package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/reco/internal/tui/styles"
)

// TabBarModel renders the bottom tab bar.
type TabBarModel struct {
	keys   KeyMap
	tabs   []TabInfo
	active int
	width  int
}

// NewTabBar creates a tab bar with the default tabs.
func NewTabBar(keys KeyMap) *TabBarModel {
	return &TabBarModel{
		keys: keys,
		tabs: DefaultTabs(),
	}
}

// Init implements Component.
func (t *TabBarModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (t *TabBarModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch {
	case key.Matches(keyMsg, t.keys.NextTab):
		t.active = (t.active + 1) % len(t.tabs)
	case key.Matches(keyMsg, t.keys.PrevTab):
		t.active = (t.active - 1 + len(t.tabs)) % len(t.tabs)
	default:
		return t, nil
	}

	tab := t.tabs[t.active].Tab
	return t, func() tea.Msg {
		return TabChangedMsg{Tab: tab}
	}
}

// View implements Component.
func (t *TabBarModel) View() string {
	rendered := make([]string, 0, len(t.tabs))
	for i, tab := range t.tabs {
		style := styles.Tab
		if i == t.active {
			style = styles.TabActive
		}
		rendered = append(rendered, style.Render(tab.Icon+" "+tab.Name))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if t.width > 0 {
		return styles.TabBar.Width(t.width).Render(bar)
	}
	return styles.TabBar.Render(bar)
}

// SetSize implements Component.
func (t *TabBarModel) SetSize(width, _ int) {
	t.width = width
}

// Active returns the active tab.
func (t *TabBarModel) Active() TabInfo {
	return t.tabs[t.active]
}

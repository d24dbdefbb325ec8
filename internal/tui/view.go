package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/reco/internal/tui/styles"
)

// headerHeight covers title, date line, blank, strip (3 lines) and a blank.
const headerHeight = 7

// layout propagates the terminal size to the components.
func (a *App) layout() {
	contentWidth := a.width - styles.App.GetHorizontalFrameSize()
	bodyHeight := a.height - styles.App.GetVerticalFrameSize() - headerHeight -
		lipgloss.Height(a.tabs.View()) - lipgloss.Height(a.footer())
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	a.strip.SetSize(contentWidth, 3)
	a.itinerary.SetSize(contentWidth, bodyHeight)
	a.tabs.SetSize(contentWidth, 1)
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	if tab := a.tabs.Active(); tab.Placeholder != "" {
		b.WriteString(styles.Title.Render(tab.Icon + " " + tab.Name))
		b.WriteString("\n\n")
		b.WriteString(styles.HelpDesc.Render(tab.Placeholder))
		b.WriteString("\n\n")
	} else {
		b.WriteString(a.header())
		b.WriteString("\n")
		b.WriteString(a.itinerary.View())
		b.WriteString("\n")
	}

	b.WriteString(a.tabs.View())
	b.WriteString("\n")
	b.WriteString(a.footer())

	return styles.App.Render(b.String())
}

func (a *App) header() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(a.config.Profile.Name + "'s schedule"))
	b.WriteString("\n")
	if day, ok := a.strip.Selected(); ok {
		b.WriteString(styles.Subtitle.Render(a.labeler.LongDate(day.Date)))
	}
	b.WriteString("\n\n")
	b.WriteString(a.strip.View())
	b.WriteString("\n")

	return b.String()
}

func (a *App) footer() string {
	if a.err != nil {
		return styles.StatusBarError.Render("Error: " + a.err.Error())
	}
	if a.statusMsg != "" {
		return styles.StatusBarSuccess.Render(a.statusMsg)
	}
	return a.help.View(a.keys)
}

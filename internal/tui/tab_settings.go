package tui

import (
	"strings"

	"tally/internal/config"
	"tally/internal/tui/components"
	"tally/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateSettingsTab(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "1":
		a.activeTab = tabLedger
	case "2":
		a.activeTab = tabCategories
	case "j", "down":
		if a.themeCursor < len(theme.All)-1 {
			a.themeCursor++
		}
	case "k", "up":
		if a.themeCursor > 0 {
			a.themeCursor--
		}
	case "enter":
		chosen := theme.All[a.themeCursor]
		theme.SetActive(chosen.Name)
		a.cfg.Appearance.Theme = chosen.Name
		if err := config.Save(a.cfg); err != nil {
			a.settingsMsg = "Could not save config: " + err.Error()
		} else {
			a.settingsMsg = "Theme saved"
		}
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a App) renderSettingsTab() string {
	cw := a.width - 4
	if cw > 100 {
		cw = 100
	}

	t := theme.Active
	selStyle := lipgloss.NewStyle().Foreground(t.Accent)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var rows []string
	for i, th := range theme.All {
		marker := "( )"
		if th.Name == a.cfg.Appearance.Theme {
			marker = "(o)"
		}
		line := marker + " " + th.Name
		if i == a.themeCursor {
			rows = append(rows, selStyle.Render("▸ "+line))
		} else {
			rows = append(rows, dimStyle.Render("  "+line))
		}
	}

	if a.settingsMsg != "" {
		rows = append(rows, "", dimStyle.Render("  "+a.settingsMsg))
	}
	rows = append(rows, "", dimStyle.Render("  Config: "+config.ConfigPath()))

	return components.ContentCard("Theme", strings.Join(rows, "\n"), cw)
}

// Package components provides reusable TUI widgets for the tally app.
package components

import (
	"strings"

	"tally/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  string // shortcut shown next to the name
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Ledger", Key: "1"},
	{Name: "Categories", Key: "2"},
	{Name: "Settings", Key: "3"},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var parts []string
	for i, tab := range Tabs {
		style := inactiveStyle
		if i == activeIdx {
			style = activeStyle
		}
		parts = append(parts, keyStyle.Render(tab.Key+" ")+style.Render(tab.Name))
	}

	bar := "  " + strings.Join(parts, "   ")

	underline := lipgloss.NewStyle().
		Foreground(t.Border).
		Render(strings.Repeat("─", max(width, 0)))

	return bar + "\n" + underline
}

// TabAtX returns the tab index under column x, or -1.
func TabAtX(x int) int {
	pos := 2
	for i, tab := range Tabs {
		w := len(tab.Key) + 1 + len(tab.Name)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 3
	}
	return -1
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

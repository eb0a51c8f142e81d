package components

import (
	"strings"

	"tally/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// keypadLayout mirrors the physical key order of the entry pad.
var keypadLayout = [][]string{
	{"7", "8", "9", "⌫"},
	{"4", "5", "6", "AC"},
	{"1", "2", "3", "."},
	{"0", "OK"},
}

// RenderKeypad renders the entry keypad. The keys are display-only;
// input arrives through the normal key handler.
func RenderKeypad(width int) string {
	t := theme.Active

	keyW := 7
	digitStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.TextPrimary).
		Width(keyW).
		Align(lipgloss.Center)

	actionStyle := digitStyle.
		Foreground(t.Accent).
		BorderForeground(t.BorderBright)

	var rows []string
	for _, row := range keypadLayout {
		var keys []string
		for _, k := range row {
			style := digitStyle
			if k == "OK" || k == "AC" || k == "⌫" {
				style = actionStyle
			}
			w := keyW
			if k == "OK" {
				// OK spans the rest of the bottom row.
				w = (keyW+2)*3 - 2
				style = style.Width(w)
			}
			keys = append(keys, style.Render(k))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}

	pad := strings.Join(rows, "\n")
	if width > lipgloss.Width(pad) {
		pad = lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(pad)
	}
	return pad
}

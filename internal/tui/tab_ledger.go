package tui

import (
	"fmt"
	"strings"

	"tally/internal/cli"
	"tally/internal/ledger"
	"tally/internal/model"
	"tally/internal/tui/components"
	"tally/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateLedgerTab(key string) (tea.Model, tea.Cmd) {
	// Category selection takes over the tab until commit or cancel.
	if a.led.State() == ledger.StateSelecting {
		cats := a.led.Categories()
		// The list can shrink while a pick is pending (a category removed
		// from the other tab), so the cursor is re-clamped every time.
		if a.catCursor >= len(cats) {
			a.catCursor = len(cats) - 1
		}
		switch key {
		case "j", "down":
			if a.catCursor < len(cats)-1 {
				a.catCursor++
			}
		case "k", "up":
			if a.catCursor > 0 {
				a.catCursor--
			}
		case "enter", " ":
			if err := a.led.CommitCategory(cats[a.catCursor].ID); err != nil {
				a.flash = err.Error()
			}
			a.catCursor = 0
			a.clampHistCursor()
		case "esc":
			a.led.CancelSelection()
			a.catCursor = 0
		}
		return a, nil
	}

	// Keypad tokens
	if len(key) == 1 && (key[0] == '.' || (key[0] >= '0' && key[0] <= '9')) {
		a.led.Input(rune(key[0]))
		return a, nil
	}

	switch key {
	case "backspace":
		a.led.Backspace()
	case "c", "esc":
		if a.searchQuery != "" && key == "esc" {
			a.searchQuery = ""
			a.clampHistCursor()
			return a, nil
		}
		a.led.Clear()
	case "enter", "o":
		if err := a.led.ConfirmAmount(); err != nil {
			a.flash = "That doesn't parse as an amount"
		}
	case "j", "down":
		if a.histCursor < len(a.visibleRecords())-1 {
			a.histCursor++
		}
	case "k", "up":
		if a.histCursor > 0 {
			a.histCursor--
		}
	case "g":
		a.histCursor = 0
	case "G":
		a.histCursor = len(a.visibleRecords()) - 1
		if a.histCursor < 0 {
			a.histCursor = 0
		}
	case "e":
		if rec, ok := a.selectedRecord(); ok {
			if err := a.led.StartEdit(rec.ID); err != nil {
				a.flash = err.Error()
			}
		}
	case "d", "x":
		if rec, ok := a.selectedRecord(); ok {
			a.led.DeleteRecord(rec.ID)
			a.clampHistCursor()
		}
	case "/":
		a.searching = true
		a.searchInput = newSearchInput()
		a.searchInput.Focus()
		return a, a.searchInput.Cursor.BlinkCmd()
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.searching = false
		a.searchQuery = ""
		a.clampHistCursor()
		return a, nil
	case "enter":
		a.searching = false
		a.searchQuery = a.searchInput.Value()
		a.histCursor = 0
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

// visibleRecords applies the search query to the display list.
func (a App) visibleRecords() []model.Record {
	return filterRecords(a.led.Records(), a.led.Categories(), a.searchQuery)
}

// filterRecords matches records whose category name, category id, or
// amount text contains the query, case-insensitively.
func filterRecords(records []model.Record, cats []model.Category, query string) []model.Record {
	if query == "" {
		return records
	}
	q := strings.ToLower(query)

	names := make(map[string]string, len(cats))
	for _, c := range cats {
		names[c.ID] = strings.ToLower(c.Name)
	}

	var out []model.Record
	for _, rec := range records {
		switch {
		case strings.Contains(strings.ToLower(rec.CategoryID), q),
			strings.Contains(names[rec.CategoryID], q),
			strings.Contains(ledger.FormatAmount(rec.Amount), q):
			out = append(out, rec)
		}
	}
	return out
}

func (a App) selectedRecord() (model.Record, bool) {
	recs := a.visibleRecords()
	if a.histCursor < 0 || a.histCursor >= len(recs) {
		return model.Record{}, false
	}
	return recs[a.histCursor], true
}

func (a *App) clampHistCursor() {
	n := len(a.visibleRecords())
	if a.histCursor >= n {
		a.histCursor = n - 1
	}
	if a.histCursor < 0 {
		a.histCursor = 0
	}
}

func (a App) renderLedgerTab() string {
	cw := a.width - 4
	if cw > 100 {
		cw = 100
	}

	var b strings.Builder
	cur := a.cfg.Appearance.Currency

	entryLabel := "Entry"
	if id, editing := a.led.EditingID(); editing {
		entryLabel = "Editing " + id
	}
	b.WriteString(components.MetricCardRow([][2]string{
		{"Total", cli.FormatMoney(cur, a.led.Total())},
		{entryLabel, cur + a.led.Buffer()},
	}, cw))
	b.WriteString("\n")

	if a.led.State() == ledger.StateSelecting {
		b.WriteString(a.renderCategoryPicker(cw))
		return b.String()
	}

	b.WriteString(a.renderHistory(cw))
	b.WriteString("\n")
	b.WriteString(components.RenderKeypad(cw))
	return b.String()
}

func (a App) renderCategoryPicker(cw int) string {
	t := theme.Active
	v := a.led.View()

	title := fmt.Sprintf("Pick a category for %s", cli.FormatMoney(a.cfg.Appearance.Currency, v.Pending))
	if v.EditingID != "" {
		if v.Pending == 0 {
			title = "Amount is 0 - picking any category deletes the record"
		} else {
			title = fmt.Sprintf("Pick a category for the edited record (%s)",
				cli.FormatMoney(a.cfg.Appearance.Currency, v.Pending))
		}
	}

	cursorStyle := lipgloss.NewStyle().Background(t.SurfaceHover).Foreground(t.TextPrimary)
	normalStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var rows []string
	for i, cat := range v.Categories {
		line := fmt.Sprintf(" %s %s %s ", categoryStyle(cat.Color).Render("■"), IconGlyph(cat.Icon), cat.Name)
		if i == a.catCursor {
			rows = append(rows, cursorStyle.Render("▸"+line))
		} else {
			rows = append(rows, normalStyle.Render(" "+line))
		}
	}

	return components.ContentCard(title, strings.Join(rows, "\n"), cw)
}

func (a App) renderHistory(cw int) string {
	t := theme.Active
	recs := a.visibleRecords()
	cur := a.cfg.Appearance.Currency

	title := "History"
	if a.searchQuery != "" {
		title = fmt.Sprintf("History /%s (%d)", a.searchQuery, len(recs))
	}
	if a.searching {
		return components.ContentCard(title, " / "+a.searchInput.View(), cw)
	}

	if len(recs) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).Render("  Nothing here yet - type an amount below.")
		return components.ContentCard(title, empty, cw)
	}

	// Window the list around the cursor.
	maxRows := a.height - 16
	if maxRows < 3 {
		maxRows = 3
	}
	start := 0
	if a.histCursor >= maxRows {
		start = a.histCursor - maxRows + 1
	}
	end := start + maxRows
	if end > len(recs) {
		end = len(recs)
	}

	cursorStyle := lipgloss.NewStyle().Background(t.SurfaceHover)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var rows []string
	for i := start; i < end; i++ {
		rec := recs[i]
		name, color, icon := rec.CategoryID, "#FFFFFF", ""
		if cat, ok := a.led.Category(rec.CategoryID); ok {
			name, color, icon = cat.Name, cat.Color, cat.Icon
		}

		line := fmt.Sprintf(" %s %s %-14s %8s  %s",
			categoryStyle(color).Render("■"),
			IconGlyph(icon),
			name,
			cli.FormatMoney(cur, rec.Amount),
			dimStyle.Render(cli.FormatDate(rec.Date)),
		)
		if i == a.histCursor {
			rows = append(rows, cursorStyle.Render("▸"+line))
		} else {
			rows = append(rows, " "+line)
		}
	}
	if end < len(recs) {
		rows = append(rows, dimStyle.Render(fmt.Sprintf("  … %d more", len(recs)-end)))
	}

	return components.ContentCard(title, strings.Join(rows, "\n"), cw)
}

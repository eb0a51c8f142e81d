// Package tui provides the interactive single-page tracker: keypad
// entry, category selection, history, and category management.
package tui

import (
	"strings"

	"tally/internal/cli"
	"tally/internal/config"
	"tally/internal/ledger"
	"tally/internal/tui/components"
	"tally/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabLedger = iota
	tabCategories
	tabSettings
)

const minTerminalWidth = 60

// App is the root Bubble Tea model. All ledger state lives in the
// ledger controller; the app only keeps view state.
type App struct {
	led *ledger.Ledger
	cfg config.Config

	width     int
	height    int
	activeTab int
	showHelp  bool

	// flash is a one-shot message line, usually a rejection from the core.
	flash string

	// Ledger tab state
	histCursor  int
	catCursor   int // selector cursor while picking a category
	searching   bool
	searchInput textinput.Model
	searchQuery string

	// Categories tab state
	catsCursor int
	form       *huh.Form
	formMode   int // formNone, formAdd, formEdit, formDelete
	formVals   *categoryForm

	// Settings tab state
	themeCursor int
	settingsMsg string
}

const (
	formNone = iota
	formAdd
	formEdit
	formDelete
)

// categoryForm collects the huh form fields for add/edit/delete.
type categoryForm struct {
	id      string
	name    string
	color   string
	icon    string
	cascade bool
	confirm bool
}

// NewApp creates the TUI model over an already-loaded ledger.
func NewApp(led *ledger.Ledger, cfg config.Config) App {
	a := App{led: led, cfg: cfg}
	for i, t := range theme.All {
		if t.Name == cfg.Appearance.Theme {
			a.themeCursor = i
		}
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width)
		}
		return a, nil

	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonLeft && msg.Y <= 1 {
			if tab := components.TabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// A category form intercepts everything while open.
		if a.activeTab == tabCategories && a.form != nil {
			return a.updateCategoryForm(msg)
		}

		// Search input intercepts everything while active.
		if a.activeTab == tabLedger && a.searching {
			return a.updateSearch(msg)
		}

		a.flash = ""

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "shift+tab":
			a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
			return a, nil
		}

		switch a.activeTab {
		case tabLedger:
			return a.updateLedgerTab(key)
		case tabCategories:
			return a.updateCategoriesTab(key)
		case tabSettings:
			return a.updateSettingsTab(key)
		}
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}
	if a.width < minTerminalWidth {
		return "\n  Terminal too narrow - need at least 60 columns.\n"
	}

	t := theme.Active
	var b strings.Builder

	b.WriteString(components.RenderTabBar(a.activeTab, a.width))
	b.WriteString("\n")

	if a.showHelp {
		b.WriteString(a.renderHelp())
	} else {
		switch a.activeTab {
		case tabLedger:
			b.WriteString(a.renderLedgerTab())
		case tabCategories:
			b.WriteString(a.renderCategoriesTab())
		case tabSettings:
			b.WriteString(a.renderSettingsTab())
		}
	}

	if a.flash != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(t.Orange).Render("  " + a.flash))
	}

	b.WriteString("\n")
	b.WriteString(components.RenderStatusBar(
		a.width,
		a.statusHints(),
		cli.FormatMoney(a.cfg.Appearance.Currency, a.led.Total()),
	))

	return b.String()
}

func (a App) statusHints() string {
	switch {
	case a.activeTab == tabLedger && a.led.State() == ledger.StateSelecting:
		return "[j/k]pick  [enter]save  [esc]cancel"
	case a.activeTab == tabLedger:
		return "[0-9 .]amount  [enter]ok  [e]dit  [d]elete  [/]search  [?]help  [q]uit"
	case a.activeTab == tabCategories:
		return "[j/k]move  [a]dd  [e]dit  [d]elete  [?]help  [q]uit"
	default:
		return "[j/k]move  [enter]apply  [?]help  [q]uit"
	}
}

func (a App) renderHelp() string {
	t := theme.Active
	key := lipgloss.NewStyle().Foreground(t.Accent)
	txt := lipgloss.NewStyle().Foreground(t.TextMuted)

	lines := []string{
		"",
		"  " + key.Render("0-9 .") + txt.Render("   type an amount"),
		"  " + key.Render("enter") + txt.Render("   confirm amount, then pick a category"),
		"  " + key.Render("bksp") + txt.Render("    delete last digit"),
		"  " + key.Render("c") + txt.Render("       clear entry"),
		"  " + key.Render("j/k") + txt.Render("     move through history / lists"),
		"  " + key.Render("e") + txt.Render("       edit the selected record (amount 0 deletes it)"),
		"  " + key.Render("d") + txt.Render("       delete the selected record or category"),
		"  " + key.Render("/") + txt.Render("       search history"),
		"  " + key.Render("tab") + txt.Render("     switch tabs"),
		"  " + key.Render("q") + txt.Render("       quit"),
		"",
	}
	return strings.Join(lines, "\n")
}

// categoryStyle derives the lipgloss style for a category color. This
// is recomputed from the current category list on every render, so the
// visual theme follows category edits immediately.
func categoryStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "category or amount"
	ti.CharLimit = 64
	ti.Width = 30
	return ti
}

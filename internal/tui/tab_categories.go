package tui

import (
	"fmt"
	"strings"

	"tally/internal/cli"
	"tally/internal/model"
	"tally/internal/tui/components"
	"tally/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateCategoriesTab(key string) (tea.Model, tea.Cmd) {
	cats := a.led.Categories()

	switch key {
	// Number shortcuts from the tab bar. On the ledger tab the digits
	// belong to the keypad instead.
	case "1":
		a.activeTab = tabLedger
	case "3":
		a.activeTab = tabSettings
	case "j", "down":
		if a.catsCursor < len(cats)-1 {
			a.catsCursor++
		}
	case "k", "up":
		if a.catsCursor > 0 {
			a.catsCursor--
		}
	case "a":
		a.formVals = &categoryForm{color: "#8E8279", icon: "tag"}
		a.formMode = formAdd
		a.form = a.newCategoryForm(true)
		return a, a.form.Init()
	case "e":
		if a.catsCursor < len(cats) {
			cat := cats[a.catsCursor]
			a.formVals = &categoryForm{id: cat.ID, name: cat.Name, color: cat.Color, icon: cat.Icon}
			a.formMode = formEdit
			a.form = a.newCategoryForm(false)
			return a, a.form.Init()
		}
	case "d":
		if a.catsCursor >= len(cats) {
			break
		}
		cat := cats[a.catsCursor]
		if cat.ID == model.FallbackCategoryID {
			a.flash = "The default category cannot be removed"
			break
		}
		a.formVals = &categoryForm{id: cat.ID, name: cat.Name}
		a.formMode = formDelete
		a.form = a.newDeleteForm(cat)
		return a, a.form.Init()
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

// newCategoryForm builds the add/edit form. The id field only appears
// on add; it is immutable once a category exists.
func (a *App) newCategoryForm(withID bool) *huh.Form {
	fields := []huh.Field{}
	if withID {
		fields = append(fields, huh.NewInput().
			Title("ID").
			Description("Short immutable key, e.g. coffee").
			Value(&a.formVals.id))
	}
	fields = append(fields,
		huh.NewInput().
			Title("Name").
			Value(&a.formVals.name),
		huh.NewInput().
			Title("Color").
			Description("Hex value, e.g. #B38B4D").
			Value(&a.formVals.color),
		huh.NewSelect[string]().
			Title("Icon").
			Options(iconOptions()...).
			Value(&a.formVals.icon),
	)

	return huh.NewForm(huh.NewGroup(fields...)).WithWidth(a.width)
}

func iconOptions() []huh.Option[string] {
	var opts []huh.Option[string]
	for _, id := range IconIDs() {
		opts = append(opts, huh.NewOption(IconGlyph(id)+" "+id, id))
	}
	return opts
}

// newDeleteForm builds the removal confirmation with the cascade choice.
func (a *App) newDeleteForm(cat model.Category) *huh.Form {
	n := 0
	for _, rec := range a.led.Records() {
		if rec.CategoryID == cat.ID {
			n++
		}
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[bool]().
			Title(fmt.Sprintf("Delete %q (%s)?", cat.Name, cli.FormatCount(n))).
			Options(
				huh.NewOption("Move its records to Others", false),
				huh.NewOption("Delete its records too", true),
			).
			Value(&a.formVals.cascade),
		huh.NewConfirm().
			Title("Really delete?").
			Affirmative("Delete").
			Negative("Keep").
			Value(&a.formVals.confirm),
	)).WithWidth(a.width)
}

func (a App) updateCategoryForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		a.formMode = formNone
		return a, nil
	}
	if a.form.State != huh.StateCompleted {
		return a, cmd
	}

	mode := a.formMode
	vals := a.formVals
	a.form = nil
	a.formMode = formNone
	a.formVals = nil

	var err error
	switch mode {
	case formAdd:
		err = a.led.AddCategory(model.Category{
			ID: vals.id, Name: vals.name, Color: vals.color, Icon: vals.icon,
		})
	case formEdit:
		err = a.led.UpdateCategory(model.Category{
			ID: vals.id, Name: vals.name, Color: vals.color, Icon: vals.icon,
		})
	case formDelete:
		if vals.confirm {
			err = a.led.RemoveCategory(vals.id, vals.cascade)
		}
	}
	if err != nil {
		a.flash = err.Error()
	}
	a.clampHistCursor()
	if n := len(a.led.Categories()); a.catsCursor >= n {
		a.catsCursor = n - 1
	}
	return a, nil
}

func (a App) renderCategoriesTab() string {
	cw := a.width - 4
	if cw > 100 {
		cw = 100
	}

	if a.form != nil {
		return components.ContentCard("Category", a.form.View(), cw)
	}

	t := theme.Active
	cur := a.cfg.Appearance.Currency

	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, rec := range a.led.Records() {
		totals[rec.CategoryID] += rec.Amount
		counts[rec.CategoryID]++
	}

	cursorStyle := lipgloss.NewStyle().Background(t.SurfaceHover)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var rows []string
	for i, cat := range a.led.Categories() {
		line := fmt.Sprintf(" %s %s %-16s %10s  %s",
			categoryStyle(cat.Color).Render("■"),
			IconGlyph(cat.Icon),
			cat.Name,
			cli.FormatMoney(cur, totals[cat.ID]),
			dimStyle.Render(cli.FormatCount(counts[cat.ID])),
		)
		if i == a.catsCursor {
			rows = append(rows, cursorStyle.Render("▸"+line))
		} else {
			rows = append(rows, " "+line)
		}
	}

	return components.ContentCard("Categories", strings.Join(rows, "\n"), cw)
}

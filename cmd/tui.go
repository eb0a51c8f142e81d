package cmd

import (
	"fmt"

	"tally/internal/tui"
	"tally/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive tracker",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	led, cfg, closeDB, err := openLedger()
	if err != nil {
		return err
	}
	defer closeDB()

	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor so the category hex colors always produce ANSI codes;
	// lipgloss may otherwise fall back to a colorless profile.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(led, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

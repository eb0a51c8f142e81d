// Package cmd implements the tally CLI commands.
package cmd

import (
	"fmt"
	"os"

	"tally/internal/config"
	"tally/internal/ledger"
	"tally/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagVerbose bool
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "Personal expense tracker",
	Long:  "Track daily expenses from the terminal: keypad-style entry, categories, running total.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override the ledger data directory")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose logging")

	cobra.OnInitialize(func() {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		if flagVerbose {
			log.SetLevel(logrus.DebugLevel)
		} else {
			log.SetLevel(logrus.WarnLevel)
		}
	})
}

// openLedger is the shared setup path used by all commands: load the
// config, open the snapshot database, and build the ledger over it.
// The returned func closes the database.
func openLedger() (*ledger.Ledger, config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		// A broken config file should not lock the user out of their data.
		log.WithError(err).Warn("config unreadable, using defaults")
		cfg = config.DefaultConfig()
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}

	db, err := store.Open(config.DBPath(cfg))
	if err != nil {
		return nil, cfg, nil, fmt.Errorf("opening ledger database: %w", err)
	}

	led := ledger.New(db, log)
	return led, cfg, func() { _ = db.Close() }, nil
}

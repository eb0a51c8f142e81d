package cmd

import (
	"fmt"

	"tally/internal/cli"

	"github.com/spf13/cobra"
)

var totalCmd = &cobra.Command{
	Use:   "total",
	Short: "Print the running total",
	RunE:  runTotal,
}

func init() {
	rootCmd.AddCommand(totalCmd)
}

func runTotal(_ *cobra.Command, _ []string) error {
	led, cfg, closeDB, err := openLedger()
	if err != nil {
		return err
	}
	defer closeDB()

	fmt.Println(cli.FormatMoney(cfg.Appearance.Currency, led.Total()))
	return nil
}

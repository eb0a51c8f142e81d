package cmd

import (
	"fmt"
	"strconv"

	"tally/internal/cli"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <amount> <category>",
	Short: "Record a new expense",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("amount %q is not a number", args[0])
	}

	led, cfg, closeDB, err := openLedger()
	if err != nil {
		return err
	}
	defer closeDB()

	rec, err := led.AddExpense(amount, args[1])
	if err != nil {
		return fmt.Errorf("adding expense: %w", err)
	}

	cat, _ := led.Category(rec.CategoryID)
	fmt.Printf("  Recorded %s under %s (id %s)\n",
		cli.FormatMoney(cfg.Appearance.Currency, rec.Amount), cat.Name, rec.ID)
	fmt.Printf("  Total: %s\n", cli.FormatMoney(cfg.Appearance.Currency, led.Total()))
	return nil
}

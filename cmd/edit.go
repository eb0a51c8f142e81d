package cmd

import (
	"fmt"

	"tally/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagEditAmount   float64
	flagEditCategory string
)

var editCmd = &cobra.Command{
	Use:   "edit <record-id>",
	Short: "Change an expense's amount or category",
	Long: `Change an expense's amount or category.

Setting the amount to 0 deletes the record instead of keeping a
zero-amount entry.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().Float64VarP(&flagEditAmount, "amount", "a", -1, "New amount (0 deletes the record)")
	editCmd.Flags().StringVarP(&flagEditCategory, "category", "c", "", "New category id")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	led, cfg, closeDB, err := openLedger()
	if err != nil {
		return err
	}
	defer closeDB()

	var amount *float64
	if cmd.Flags().Changed("amount") {
		amount = &flagEditAmount
	}
	var category *string
	if cmd.Flags().Changed("category") {
		category = &flagEditCategory
	}
	if amount == nil && category == nil {
		return fmt.Errorf("nothing to change: pass --amount and/or --category")
	}

	rec, deleted, err := led.EditRecord(args[0], amount, category)
	if err != nil {
		return fmt.Errorf("editing record: %w", err)
	}

	cur := cfg.Appearance.Currency
	if deleted {
		fmt.Printf("  Amount 0: record %s deleted (was %s).\n", rec.ID, cli.FormatMoney(cur, rec.Amount))
	} else {
		fmt.Printf("  Updated record %s: %s, category %s.\n", rec.ID, cli.FormatMoney(cur, rec.Amount), rec.CategoryID)
	}
	fmt.Printf("  Total: %s\n", cli.FormatMoney(cur, led.Total()))
	return nil
}

package cmd

import (
	"fmt"

	"tally/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Spending summary with per-category breakdown",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	led, cfg, closeDB, err := openLedger()
	if err != nil {
		return err
	}
	defer closeDB()

	records := led.Records()
	if len(records) == 0 {
		fmt.Println("\n  No expenses recorded yet.")
		fmt.Println("  Try: tally add 12.50 food")
		return nil
	}

	cur := cfg.Appearance.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle("TALLY"))
	fmt.Println()

	// Per-category subtotals, in category display order.
	byCategory := make(map[string]float64)
	counts := make(map[string]int)
	for _, rec := range records {
		byCategory[rec.CategoryID] += rec.Amount
		counts[rec.CategoryID]++
	}

	rows := [][]string{}
	for _, cat := range led.Categories() {
		if counts[cat.ID] == 0 {
			continue
		}
		rows = append(rows, []string{
			cli.Swatch(cat.Color) + " " + cat.Name,
			cli.FormatCount(counts[cat.ID]),
			cli.FormatMoney(cur, byCategory[cat.ID]),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", cli.FormatCount(len(records)), cli.FormatMoney(cur, led.Total())})

	fmt.Println(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Entries", "Spent"},
		Rows:    rows,
	}))

	return nil
}

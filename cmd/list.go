package cmd

import (
	"fmt"

	"tally/internal/cli"

	"github.com/spf13/cobra"
)

var flagListAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded expenses, most recent first",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVarP(&flagListAll, "all", "a", false, "Show all records, not just the most recent")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	led, cfg, closeDB, err := openLedger()
	if err != nil {
		return err
	}
	defer closeDB()

	records := led.Records()
	if len(records) == 0 {
		fmt.Println("\n  No expenses recorded yet.")
		return nil
	}

	limit := cfg.General.ListLimit
	if flagListAll || limit <= 0 || limit > len(records) {
		limit = len(records)
	}

	cur := cfg.Appearance.Currency
	rows := make([][]string, 0, limit+2)
	for _, rec := range records[:limit] {
		name := rec.CategoryID
		swatch := " "
		if cat, ok := led.Category(rec.CategoryID); ok {
			name = cat.Name
			swatch = cli.Swatch(cat.Color)
		}
		rows = append(rows, []string{
			rec.ID,
			cli.FormatDate(rec.Date),
			swatch + " " + name,
			cli.FormatMoney(cur, rec.Amount),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", "", cli.FormatCount(len(records)), cli.FormatMoney(cur, led.Total())})

	fmt.Println()
	fmt.Println(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "When", "Category", "Amount"},
		Rows:    rows,
	}))

	if limit < len(records) {
		fmt.Printf("  Showing %d of %d; use --all for the rest.\n", limit, len(records))
	}
	return nil
}

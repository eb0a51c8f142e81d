package cmd

import (
	"fmt"

	"tally/internal/cli"
	"tally/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagCatIcon    string
	flagCatName    string
	flagCatColor   string
	flagCatCascade bool
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cat"},
	Short:   "Manage expense categories",
	RunE:    runCategoriesList,
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <id> <name> <color>",
	Short: "Add a category (color is a hex value like #B38B4D)",
	Args:  cobra.ExactArgs(3),
	RunE:  runCategoriesAdd,
}

var categoriesEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a category's name, color, or icon",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesEdit,
}

var categoriesRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a category",
	Long: `Remove a category.

Records in the removed category move to "others" unless --cascade is
given, which deletes them along with the category. The "others"
category itself cannot be removed.`,
	Args: cobra.ExactArgs(1),
	RunE: runCategoriesRm,
}

func init() {
	categoriesAddCmd.Flags().StringVar(&flagCatIcon, "icon", "", "Icon identifier")
	categoriesEditCmd.Flags().StringVar(&flagCatName, "name", "", "New display name")
	categoriesEditCmd.Flags().StringVar(&flagCatColor, "color", "", "New hex color")
	categoriesEditCmd.Flags().StringVar(&flagCatIcon, "icon", "", "New icon identifier")
	categoriesRmCmd.Flags().BoolVar(&flagCatCascade, "cascade", false, "Also delete the category's records")

	categoriesCmd.AddCommand(categoriesAddCmd, categoriesEditCmd, categoriesRmCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runCategoriesList(_ *cobra.Command, _ []string) error {
	led, cfg, closeDB, err := openLedger()
	if err != nil {
		return err
	}
	defer closeDB()

	counts := make(map[string]int)
	totals := make(map[string]float64)
	for _, rec := range led.Records() {
		counts[rec.CategoryID]++
		totals[rec.CategoryID] += rec.Amount
	}

	rows := [][]string{}
	for _, cat := range led.Categories() {
		rows = append(rows, []string{
			cli.Swatch(cat.Color) + " " + cat.ID,
			cat.Name,
			cat.Icon,
			cli.FormatCount(counts[cat.ID]),
			cli.FormatMoney(cfg.Appearance.Currency, totals[cat.ID]),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Name", "Icon", "Entries", "Spent"},
		Rows:    rows,
	}))
	return nil
}

func runCategoriesAdd(_ *cobra.Command, args []string) error {
	led, _, closeDB, err := openLedger()
	if err != nil {
		return err
	}
	defer closeDB()

	cat := model.Category{ID: args[0], Name: args[1], Color: args[2], Icon: flagCatIcon}
	if err := led.AddCategory(cat); err != nil {
		return fmt.Errorf("adding category: %w", err)
	}
	fmt.Printf("  Added category %s (%s).\n", cat.ID, cat.Name)
	return nil
}

func runCategoriesEdit(cmd *cobra.Command, args []string) error {
	led, _, closeDB, err := openLedger()
	if err != nil {
		return err
	}
	defer closeDB()

	cat, ok := led.Category(args[0])
	if !ok {
		return fmt.Errorf("no category %q", args[0])
	}
	if cmd.Flags().Changed("name") {
		cat.Name = flagCatName
	}
	if cmd.Flags().Changed("color") {
		cat.Color = flagCatColor
	}
	if cmd.Flags().Changed("icon") {
		cat.Icon = flagCatIcon
	}

	if err := led.UpdateCategory(cat); err != nil {
		return fmt.Errorf("editing category: %w", err)
	}
	fmt.Printf("  Updated category %s.\n", cat.ID)
	return nil
}

func runCategoriesRm(_ *cobra.Command, args []string) error {
	led, _, closeDB, err := openLedger()
	if err != nil {
		return err
	}
	defer closeDB()

	before := len(led.Records())
	if err := led.RemoveCategory(args[0], flagCatCascade); err != nil {
		return fmt.Errorf("removing category: %w", err)
	}

	if flagCatCascade {
		fmt.Printf("  Removed category %s and %s.\n", args[0], cli.FormatCount(before-len(led.Records())))
	} else {
		fmt.Printf("  Removed category %s; its records moved to %q.\n", args[0], model.FallbackCategoryID)
	}
	return nil
}

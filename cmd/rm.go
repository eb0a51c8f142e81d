package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <record-id>",
	Short: "Delete an expense record",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(_ *cobra.Command, args []string) error {
	led, _, closeDB, err := openLedger()
	if err != nil {
		return err
	}
	defer closeDB()

	// Deleting an unknown id is a no-op, so report what happened either way.
	if _, ok := led.Record(args[0]); !ok {
		fmt.Printf("  No record %s; nothing to delete.\n", args[0])
		return nil
	}
	led.DeleteRecord(args[0])
	fmt.Printf("  Deleted record %s.\n", args[0])
	return nil
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkrasnov/bankt/internal/timebank"
)

var rmCmd = &cobra.Command{
	Use:     "rm [entry-id]",
	Aliases: []string{"delete"},
	Short:   "Delete a time entry",
	Long: `Delete a time entry by id or unique id prefix. The running overtime
session cannot be deleted; stop it first.`,
	Args: cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		ledger, err := openLedger()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		entry, err := ledger.FindByPrefix(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := ledger.DeleteEntry(entry.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🗑️  Deleted %s entry from %s (%s)\n",
			entry.Type,
			timebank.FormatDate(entry.StartTime),
			timebank.FormatMinutes(entry.Duration))
		fmt.Printf("Net balance: %s\n", timebank.FormatMinutes(ledger.Bank().NetBalance))
	}),
}

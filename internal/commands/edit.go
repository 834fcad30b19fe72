package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkrasnov/bankt/internal/parser"
	"github.com/dkrasnov/bankt/internal/timebank"
)

var editCmd = &cobra.Command{
	Use:   "edit <entry-id>",
	Short: "Edit an existing time entry",
	Long: `Edit a completed or planned entry by id or unique id prefix.
The running overtime session cannot be edited; stop it first.

Examples:
  bankt edit 1f3a -d "on-call incident"
  bankt edit 1f3a --from "14/12/2025 08:00" --to "12:30"`,
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

		updated := *entry

		if cmd.Flags().Changed("desc") {
			updated.Description, _ = cmd.Flags().GetString("desc")
		}

		fromInput, _ := cmd.Flags().GetString("from")
		toInput, _ := cmd.Flags().GetString("to")
		if fromInput != "" || toInput != "" {
			if fromInput == "" {
				fromInput = updated.StartTime.Format("02/01/2006 15:04")
			}
			if toInput == "" && updated.EndTime != nil {
				toInput = updated.EndTime.Format("02/01/2006 15:04")
			}

			start, end, err := parser.ParseRange(fromInput, toInput)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}

			duration := timebank.CalculateDuration(start, end)
			if duration <= 0 {
				fmt.Printf("Error: %v\n", timebank.ErrInvalidRange)
				return
			}

			updated.StartTime = start
			updated.EndTime = &end
			updated.Duration = duration
		}

		if err := ledger.EditEntry(updated); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✏️  Updated %s entry from %s (%s)\n",
			updated.Type,
			timebank.FormatDate(updated.StartTime),
			timebank.FormatMinutes(updated.Duration))
		fmt.Printf("Net balance: %s\n", timebank.FormatMinutes(ledger.Bank().NetBalance))
	}),
}

func init() {
	editCmd.Flags().String("from", "", "New start (dd/mm/yyyy hh:mm, dd/mm/yyyy, or hh:mm)")
	editCmd.Flags().String("to", "", "New end (same formats; bare hh:mm uses the start date)")
	editCmd.Flags().StringP("desc", "d", "", "New description")
}

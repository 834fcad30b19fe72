package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkrasnov/bankt/internal/parser"
	"github.com/dkrasnov/bankt/internal/timebank"
	"github.com/dkrasnov/bankt/internal/tui"
)

var absenceCmd = &cobra.Command{
	Use:   "absence",
	Short: "Plan an absence against your banked time",
	Long: `Plan an absence. Opens the interactive form by default; pass --from and --to
for direct entry. Overdrawing the net balance is allowed but flagged.

Examples:
  bankt absence --from "15/12/2025 09:00" --to "17:30" -d "dentist"
  bankt absence                                 # interactive form`,
	Args: cobra.NoArgs,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		fromInput, _ := cmd.Flags().GetString("from")
		toInput, _ := cmd.Flags().GetString("to")
		description, _ := cmd.Flags().GetString("desc")

		ledger, err := openLedger()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if fromInput == "" || toInput == "" {
			// Interactive absence form
			if err := tui.RunAbsenceFormTUI(ledger); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		start, end, err := parser.ParseRange(fromInput, toInput)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		entry, warn, err := ledger.AddAbsence(start, end, description)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("📅 Absence planned: %s to %s (%s)\n",
			timebank.FormatDate(entry.StartTime),
			timebank.FormatTime(*entry.EndTime),
			timebank.FormatMinutes(entry.Duration))
		if warn != nil {
			fmt.Printf("⚠️  %s\n", warn)
		}
		fmt.Printf("Net balance: %s\n", timebank.FormatMinutes(ledger.Bank().NetBalance))
	}),
}

func init() {
	absenceCmd.Flags().String("from", "", "Absence start (dd/mm/yyyy hh:mm, dd/mm/yyyy, or hh:mm)")
	absenceCmd.Flags().String("to", "", "Absence end (same formats; bare hh:mm uses the start date)")
	absenceCmd.Flags().StringP("desc", "d", "", "Description for the absence")
}

package commands

import (
	"fmt"
	"os/user"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkrasnov/bankt/internal/models"
	"github.com/dkrasnov/bankt/internal/parser"
	"github.com/dkrasnov/bankt/internal/timebank"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a monthly time bank report",
	Long: `Render the plain-text report for one month: one line per entry plus the
signed net total for that month.

Examples:
  bankt report                      # current month
  bankt report --month 11/2025
  bankt report --user "Jane Doe"`,
	Args: cobra.NoArgs,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		ledger, err := openLedger()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		month := time.Now()
		if input, _ := cmd.Flags().GetString("month"); input != "" {
			month, err = parser.ParseMonth(input)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
		}

		userName, _ := cmd.Flags().GetString("user")
		if userName == "" {
			userName = defaultUserName()
		}

		entries := entriesInMonth(ledger.Bank().Entries, month)
		net := timebank.CalculateBalances(entries).NetBalance
		fmt.Println(timebank.GenerateReportText(userName, entries, net))
	}),
}

// entriesInMonth keeps entries whose start time falls in the same local
// month as the reference time.
func entriesInMonth(entries []models.TimeEntry, ref time.Time) []models.TimeEntry {
	var out []models.TimeEntry
	for _, e := range entries {
		start := e.StartTime.In(ref.Location())
		if start.Year() == ref.Year() && start.Month() == ref.Month() {
			out = append(out, e)
		}
	}
	return out
}

func defaultUserName() string {
	if u, err := user.Current(); err == nil {
		if u.Name != "" {
			return u.Name
		}
		return u.Username
	}
	return "Time bank"
}

func init() {
	reportCmd.Flags().String("month", "", "Report month as mm/yyyy (default: current month)")
	reportCmd.Flags().String("user", "", "Name printed on the report header")
}

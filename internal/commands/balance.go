package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dkrasnov/bankt/internal/timebank"
)

var balanceCmd = &cobra.Command{
	Use:     "balance",
	Aliases: []string{"bal"},
	Short:   "Show balances and statistics",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		ledger, err := openLedger()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		bank := ledger.Bank()
		stats := timebank.CalculateStats(bank)

		fmt.Println("Time bank")
		fmt.Println(strings.Repeat("-", 32))
		fmt.Printf("%-20s%s\n", "Overtime", timebank.FormatMinutes(bank.OvertimeBalance))
		fmt.Printf("%-20s%s\n", "Absence", timebank.FormatMinutes(bank.AbsenceBalance))
		fmt.Printf("%-20s%s\n", "Net balance", timebank.FormatMinutes(bank.NetBalance))
		fmt.Println(strings.Repeat("-", 32))
		fmt.Printf("%-20s%d\n", "Entries", len(bank.Entries))
		fmt.Printf("%-20s%d\n", "Active days", stats.ActiveDays)
		fmt.Printf("%-20s%d\n", "Longest streak", stats.LongestStreak)
		fmt.Printf("%-20s%.1fh\n", "Avg overtime/day", stats.AverageOvertimePerDay)

		if active := ledger.ActiveEntry(); active != nil {
			fmt.Printf("\n⏱️  Session running since %s\n", timebank.FormatTime(active.StartTime))
		}
	}),
}

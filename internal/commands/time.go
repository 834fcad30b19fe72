package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkrasnov/bankt/internal/timebank"
	"github.com/dkrasnov/bankt/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start tracking overtime",
	Long: `Start an overtime session. Opens the interactive timer by default, use --no-ui for a simple start.

Examples:
  bankt start -d "release support"   # Start timer with interactive UI
  bankt start --no-ui                # Start timer without UI`,
	Args: cobra.NoArgs,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		description, _ := cmd.Flags().GetString("desc")

		ledger, err := openLedger()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		entry, err := ledger.StartOvertime(description)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		// Check if --no-ui flag is set
		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			// Simple non-interactive start
			fmt.Printf("⏱️  Started tracking overtime\n")
			fmt.Printf("Started at: %s\n", entry.StartTime.Format("15:04:05"))
		} else {
			// Interactive timer UI
			if err := tui.RunTimerTUI(ledger); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		}
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running overtime session",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		ledger, err := openLedger()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		entry, err := ledger.StopOvertime()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		bank := ledger.Bank()
		fmt.Printf("⏹️  Stopped tracking overtime\n")
		fmt.Printf("Session duration: %s\n", timebank.FormatMinutes(entry.Duration))
		fmt.Printf("Net balance: %s\n", timebank.FormatMinutes(bank.NetBalance))
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current overtime tracking status",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		ledger, err := openLedger()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		entry := ledger.ActiveEntry()
		if entry == nil {
			fmt.Println("No active overtime session")
			return
		}

		elapsed := time.Since(entry.StartTime)
		fmt.Printf("⏱️  Currently tracking overtime\n")
		if entry.Description != "" {
			fmt.Printf("Description: %s\n", entry.Description)
		}
		fmt.Printf("Started at: %s\n", entry.StartTime.Format("15:04:05"))
		fmt.Printf("Elapsed time: %s\n", formatDuration(elapsed))
	}),
}

func init() {
	startCmd.Flags().StringP("desc", "d", "", "Description for the overtime session")
	startCmd.Flags().Bool("no-ui", false, "Start timer without interactive UI")
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	} else {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
}

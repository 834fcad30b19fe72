package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkrasnov/bankt/internal/db"
	"github.com/dkrasnov/bankt/internal/timebank"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "bankt",
	Short: "A CLI overtime time bank",
	Long: `bankt is a command-line time bank: track overtime, plan absences
against the accrued balance, and review balances, statistics, and reports
from the terminal.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bankt %s (commit %s, built %s)\n", version, commit, date)
	},
}

// initDB initializes the database and panics on error
func initDB() {
	if err := db.Initialize(); err != nil {
		panic(err) // For now, panic on DB init failure
	}
}

// withDB wraps a command function to initialize the database first
func withDB(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initDB()
		fn(cmd, args)
	}
}

// openLedger loads the persisted ledger and wires it to the snapshot store.
func openLedger() (*timebank.Ledger, error) {
	bank, err := db.LoadTimeBank()
	if err != nil {
		return nil, err
	}
	return timebank.NewLedger(bank, db.Store{}), nil
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands here
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(absenceCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}

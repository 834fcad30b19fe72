package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dkrasnov/bankt/internal/models"
	"github.com/dkrasnov/bankt/internal/timebank"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List time entries",
	Long:    "List time entries, most recent first, with optional type and status filters",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		ledger, err := openLedger()
		if err != nil {
			fmt.Printf("Error fetching entries: %v\n", err)
			return
		}

		entries := ledger.Bank().Entries
		typeFilter, _ := cmd.Flags().GetString("type")
		statusFilter, _ := cmd.Flags().GetString("status")
		entries = filterEntries(entries, typeFilter, statusFilter)

		if len(entries) == 0 {
			fmt.Println("No time entries yet. Use 'bankt start' to track overtime or 'bankt absence' to plan an absence.")
			return
		}

		// Most recent first for display
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].StartTime.After(entries[j].StartTime)
		})

		// Print table header
		fmt.Printf("%-10s %-9s %-10s %-17s %-7s %-9s %s\n", "ID", "TYPE", "STATUS", "START", "END", "DURATION", "DESCRIPTION")
		fmt.Println(strings.Repeat("-", 80))

		// Print each entry
		for _, entry := range entries {
			end := "-"
			if entry.EndTime != nil {
				end = timebank.FormatTime(*entry.EndTime)
			}

			duration := timebank.FormatMinutes(entry.Duration)
			if entry.Status == models.StatusActive {
				duration = "..."
			}

			// Truncate description if too long
			description := entry.Description
			if len(description) > 30 {
				description = description[:27] + "..."
			}

			fmt.Printf("%-10s %-9s %-10s %-17s %-7s %-9s %s\n",
				shortID(entry.ID),
				entry.Type,
				entry.Status,
				entry.StartTime.Format("02/01/2006 15:04"),
				end,
				duration,
				description)
		}
	}),
}

// shortID returns the first id segment, enough to address an entry
// with rm/edit.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func filterEntries(entries []models.TimeEntry, typeFilter, statusFilter string) []models.TimeEntry {
	if typeFilter == "" && statusFilter == "" {
		return entries
	}
	var filtered []models.TimeEntry
	for _, e := range entries {
		if typeFilter != "" && string(e.Type) != typeFilter {
			continue
		}
		if statusFilter != "" && string(e.Status) != statusFilter {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func init() {
	listCmd.Flags().StringP("type", "t", "", "Filter by type: overtime, absence")
	listCmd.Flags().StringP("status", "s", "", "Filter by status: active, completed, planned")
}

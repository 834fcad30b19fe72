package timebank

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dkrasnov/bankt/internal/models"
)

// GenerateReportText renders a plain-text report: the user's name, one
// line per entry sorted ascending by start time, and a signed total.
// Absence durations are reported negative, overtime positive.
func GenerateReportText(userName string, entries []models.TimeEntry, netBalance int) string {
	sorted := make([]models.TimeEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	var b strings.Builder
	b.WriteString(userName)

	for _, e := range sorted {
		end := "ongoing"
		if e.EndTime != nil {
			end = FormatTime(*e.EndTime)
		}

		minutes := e.Duration
		if e.Type == models.TypeAbsence {
			minutes = -minutes
		}

		fmt.Fprintf(&b, "\n%s - %s to %s ~ %s",
			FormatDateShort(e.StartTime), FormatTime(e.StartTime), end, FormatMinutes(minutes))
	}

	fmt.Fprintf(&b, "\nTotal: %s", FormatMinutes(netBalance))
	return b.String()
}

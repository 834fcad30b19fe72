package timebank

import (
	"sort"
	"time"

	"github.com/dkrasnov/bankt/internal/models"
)

// CalculateStats derives secondary metrics from a ledger snapshot.
// Calendar days are bucketed by the UTC day of each entry's start time,
// so results do not depend on the host time zone. All entries count
// toward days and streaks regardless of status.
func CalculateStats(bank models.TimeBank) models.TimeBankStats {
	stats := models.TimeBankStats{
		TotalOvertimeHours: float64(bank.OvertimeBalance) / 60,
		TotalAbsenceHours:  float64(bank.AbsenceBalance) / 60,
		NetBalanceHours:    float64(bank.NetBalance) / 60,
	}

	days := make([]time.Time, 0, len(bank.Entries))
	distinct := make(map[time.Time]struct{}, len(bank.Entries))
	for _, e := range bank.Entries {
		d := utcDay(e.StartTime)
		days = append(days, d)
		distinct[d] = struct{}{}
	}
	stats.ActiveDays = len(distinct)

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	if len(days) > 0 {
		streak, longest := 1, 1
		for i := 1; i < len(days); i++ {
			switch days[i].Sub(days[i-1]) {
			case 24 * time.Hour:
				streak++
				if streak > longest {
					longest = streak
				}
			case 0:
				// same-day duplicate: neither breaks nor extends the run
			default:
				streak = 1
			}
		}
		stats.LongestStreak = longest
	}

	if stats.ActiveDays > 0 {
		stats.AverageOvertimePerDay = stats.TotalOvertimeHours / float64(stats.ActiveDays)
	}

	return stats
}

// utcDay truncates a timestamp to midnight of its UTC calendar day.
func utcDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

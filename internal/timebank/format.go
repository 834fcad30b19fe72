package timebank

import (
	"fmt"
	"time"
)

// CalculateDuration returns the minutes between start and end, rounded
// to the nearest whole minute.
func CalculateDuration(start, end time.Time) int {
	return int(end.Sub(start).Round(time.Minute) / time.Minute)
}

// FormatMinutes renders signed minutes as "1h 30m", "45m", "-2h", "0h".
func FormatMinutes(minutes int) string {
	if minutes == 0 {
		return "0h"
	}

	sign := ""
	abs := minutes
	if minutes < 0 {
		sign = "-"
		abs = -minutes
	}

	hours := abs / 60
	mins := abs % 60
	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%s%dh %dm", sign, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%s%dh", sign, hours)
	default:
		return fmt.Sprintf("%s%dm", sign, mins)
	}
}

// FormatDate renders a readable date with time, e.g. "Jan 02, 2006 15:04".
func FormatDate(t time.Time) string {
	return t.Format("Jan 02, 2006 15:04")
}

// FormatTime renders a 24h clock time, e.g. "15:04".
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// FormatDateShort renders a numeric date, e.g. "02/01/2006".
func FormatDateShort(t time.Time) string {
	return t.Format("02/01/2006")
}

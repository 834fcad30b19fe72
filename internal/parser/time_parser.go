package parser

import (
	"fmt"
	"strings"
	"time"
)

// ParseTimestamp parses the timestamp formats accepted on the command line
// Supported formats:
// - dd/mm/yyyy hh:mm (e.g., "15/12/2025 09:30")
// - dd/mm/yyyy (midnight of that day)
// - hh:mm (that time today)
func ParseTimestamp(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if t, err := time.ParseInLocation("02/01/2006 15:04", input, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("02/01/2006", input, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("15:04", input, time.Local); err == nil {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
	}

	return time.Time{}, fmt.Errorf("invalid timestamp '%s'. Use: dd/mm/yyyy hh:mm, dd/mm/yyyy, or hh:mm", input)
}

// ParseRange parses a start/end timestamp pair. A bare hh:mm end is
// anchored to the start's date rather than today, so
// "15/12/2025 09:00" .. "17:30" means the same day.
func ParseRange(fromInput, toInput string) (time.Time, time.Time, error) {
	from, err := ParseTimestamp(fromInput)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start: %w", err)
	}

	if t, err := time.ParseInLocation("15:04", strings.TrimSpace(toInput), time.Local); err == nil {
		to := time.Date(from.Year(), from.Month(), from.Day(), t.Hour(), t.Minute(), 0, 0, time.Local)
		return from, to, nil
	}

	to, err := ParseTimestamp(toInput)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end: %w", err)
	}
	return from, to, nil
}

// ParseMonth parses a "mm/yyyy" report month into its first instant.
func ParseMonth(input string) (time.Time, error) {
	t, err := time.ParseInLocation("01/2006", strings.TrimSpace(input), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month '%s'. Use: mm/yyyy", input)
	}
	return t, nil
}

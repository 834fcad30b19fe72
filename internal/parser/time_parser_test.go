package parser_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrasnov/bankt/internal/parser"
)

func TestParseTimestamp_DateWithTime(t *testing.T) {
	got, err := parser.ParseTimestamp("15/12/2025 09:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 15, 9, 30, 0, 0, time.Local), got)
}

func TestParseTimestamp_DateOnly(t *testing.T) {
	got, err := parser.ParseTimestamp("15/12/2025")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 15, 0, 0, 0, 0, time.Local), got)
}

func TestParseTimestamp_BareTimeIsToday(t *testing.T) {
	got, err := parser.ParseTimestamp("09:30")
	require.NoError(t, err)

	now := time.Now()
	assert.Equal(t, now.Year(), got.Year())
	assert.Equal(t, now.Month(), got.Month())
	assert.Equal(t, now.Day(), got.Day())
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, 30, got.Minute())
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, input := range []string{"", "tomorrow", "2025-12-15", "25:00"} {
		_, err := parser.ParseTimestamp(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseRange_BareEndAnchorsToStartDate(t *testing.T) {
	from, to, err := parser.ParseRange("15/12/2025 09:00", "17:30")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 12, 15, 9, 0, 0, 0, time.Local), from)
	assert.Equal(t, time.Date(2025, 12, 15, 17, 30, 0, 0, time.Local), to)
}

func TestParseRange_FullTimestamps(t *testing.T) {
	from, to, err := parser.ParseRange("15/12/2025 09:00", "16/12/2025 12:00")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 12, 15, 9, 0, 0, 0, time.Local), from)
	assert.Equal(t, time.Date(2025, 12, 16, 12, 0, 0, 0, time.Local), to)
}

func TestParseRange_Invalid(t *testing.T) {
	_, _, err := parser.ParseRange("nope", "17:30")
	assert.ErrorContains(t, err, "invalid start")

	_, _, err = parser.ParseRange("15/12/2025 09:00", "later")
	assert.ErrorContains(t, err, "invalid end")
}

func TestParseMonth(t *testing.T) {
	got, err := parser.ParseMonth("11/2025")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.Local), got)

	_, err = parser.ParseMonth("2025-11")
	assert.Error(t, err)
}

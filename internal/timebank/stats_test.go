package timebank_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dkrasnov/bankt/internal/models"
	"github.com/dkrasnov/bankt/internal/timebank"
)

func bankWithStarts(starts ...time.Time) models.TimeBank {
	entries := make([]models.TimeEntry, len(starts))
	for i, s := range starts {
		entries[i] = models.TimeEntry{
			Type:      models.TypeOvertime,
			Status:    models.StatusCompleted,
			StartTime: s,
			Duration:  60,
		}
	}
	return timebank.CalculateBalances(entries)
}

func day(d int, hour int) time.Time {
	return time.Date(2025, 11, d, hour, 0, 0, 0, time.UTC)
}

func TestCalculateStats_Empty(t *testing.T) {
	stats := timebank.CalculateStats(models.TimeBank{})

	assert.Zero(t, stats.ActiveDays)
	assert.Zero(t, stats.LongestStreak)
	assert.Zero(t, stats.AverageOvertimePerDay)
}

func TestCalculateStats_ConsecutiveDays(t *testing.T) {
	stats := timebank.CalculateStats(bankWithStarts(day(3, 9), day(4, 18), day(5, 7)))

	assert.Equal(t, 3, stats.ActiveDays)
	assert.Equal(t, 3, stats.LongestStreak)
}

func TestCalculateStats_GapBreaksStreak(t *testing.T) {
	// Days 1, 2 and 4: the gap resets the run
	stats := timebank.CalculateStats(bankWithStarts(day(1, 9), day(2, 9), day(4, 9)))

	assert.Equal(t, 3, stats.ActiveDays)
	assert.Equal(t, 2, stats.LongestStreak)
}

func TestCalculateStats_SameDayDuplicates(t *testing.T) {
	// Duplicate same-day entries neither break nor extend the run
	stats := timebank.CalculateStats(bankWithStarts(day(1, 9), day(1, 20), day(2, 9), day(2, 13), day(3, 9)))

	assert.Equal(t, 3, stats.ActiveDays)
	assert.Equal(t, 3, stats.LongestStreak)
}

func TestCalculateStats_SingleEntry(t *testing.T) {
	stats := timebank.CalculateStats(bankWithStarts(day(12, 9)))

	assert.Equal(t, 1, stats.ActiveDays)
	assert.Equal(t, 1, stats.LongestStreak)
}

func TestCalculateStats_UTCDayBucketing(t *testing.T) {
	// 01:00 on the 10th at UTC+3 is still the 9th in UTC, so both
	// entries land in the same bucket
	offset := time.FixedZone("UTC+3", 3*60*60)
	late := time.Date(2025, 11, 10, 1, 0, 0, 0, offset)
	sameUTC := time.Date(2025, 11, 9, 20, 0, 0, 0, time.UTC)

	stats := timebank.CalculateStats(bankWithStarts(late, sameUTC))

	assert.Equal(t, 1, stats.ActiveDays)
	assert.Equal(t, 1, stats.LongestStreak)
}

func TestCalculateStats_HourConversionsAndAverage(t *testing.T) {
	entries := []models.TimeEntry{
		{Type: models.TypeOvertime, Status: models.StatusCompleted, StartTime: day(1, 9), Duration: 90},
		{Type: models.TypeOvertime, Status: models.StatusCompleted, StartTime: day(2, 9), Duration: 90},
		{Type: models.TypeAbsence, Status: models.StatusPlanned, StartTime: day(3, 9), Duration: 60},
	}

	stats := timebank.CalculateStats(timebank.CalculateBalances(entries))

	assert.InDelta(t, 3.0, stats.TotalOvertimeHours, 1e-9)
	assert.InDelta(t, 1.0, stats.TotalAbsenceHours, 1e-9)
	assert.InDelta(t, 2.0, stats.NetBalanceHours, 1e-9)
	assert.Equal(t, 3, stats.ActiveDays)
	assert.InDelta(t, 1.0, stats.AverageOvertimePerDay, 1e-9)
}

func TestCalculateStats_CountsAllStatuses(t *testing.T) {
	entries := []models.TimeEntry{
		{Type: models.TypeOvertime, Status: models.StatusActive, StartTime: day(1, 9)},
		{Type: models.TypeAbsence, Status: models.StatusPlanned, StartTime: day(2, 9), Duration: 60},
	}

	stats := timebank.CalculateStats(timebank.CalculateBalances(entries))

	// Active entries are excluded from balances but still count as days
	assert.Equal(t, 2, stats.ActiveDays)
	assert.Equal(t, 2, stats.LongestStreak)
}

package timebank_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrasnov/bankt/internal/models"
	"github.com/dkrasnov/bankt/internal/timebank"
)

func entry(entryType models.EntryType, status models.EntryStatus, duration int) models.TimeEntry {
	return models.TimeEntry{
		ID:        "e-" + string(entryType) + "-" + string(status),
		Type:      entryType,
		Status:    status,
		StartTime: time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC),
		Duration:  duration,
	}
}

func TestCalculateBalances_Empty(t *testing.T) {
	bank := timebank.CalculateBalances(nil)

	assert.Zero(t, bank.OvertimeBalance)
	assert.Zero(t, bank.AbsenceBalance)
	assert.Zero(t, bank.NetBalance)
}

func TestCalculateBalances_NetInvariant(t *testing.T) {
	entries := []models.TimeEntry{
		entry(models.TypeOvertime, models.StatusCompleted, 120),
		entry(models.TypeOvertime, models.StatusCompleted, 45),
		entry(models.TypeAbsence, models.StatusPlanned, 240),
	}

	bank := timebank.CalculateBalances(entries)

	assert.Equal(t, 165, bank.OvertimeBalance)
	assert.Equal(t, 240, bank.AbsenceBalance)
	assert.Equal(t, bank.OvertimeBalance-bank.AbsenceBalance, bank.NetBalance)
	assert.Equal(t, -75, bank.NetBalance)
}

func TestCalculateBalances_ExcludesActive(t *testing.T) {
	entries := []models.TimeEntry{
		entry(models.TypeOvertime, models.StatusCompleted, 60),
		// Active entries never count, whatever their type or duration
		entry(models.TypeOvertime, models.StatusActive, 9999),
		entry(models.TypeAbsence, models.StatusActive, 9999),
	}

	bank := timebank.CalculateBalances(entries)

	assert.Equal(t, 60, bank.OvertimeBalance)
	assert.Zero(t, bank.AbsenceBalance)
	assert.Equal(t, 60, bank.NetBalance)
}

func TestCalculateBalances_OrderIndependent(t *testing.T) {
	a := entry(models.TypeOvertime, models.StatusCompleted, 30)
	b := entry(models.TypeAbsence, models.StatusPlanned, 90)
	c := entry(models.TypeOvertime, models.StatusCompleted, 75)

	forward := timebank.CalculateBalances([]models.TimeEntry{a, b, c})
	backward := timebank.CalculateBalances([]models.TimeEntry{c, b, a})

	require.Equal(t, forward.OvertimeBalance, backward.OvertimeBalance)
	require.Equal(t, forward.AbsenceBalance, backward.AbsenceBalance)
	require.Equal(t, forward.NetBalance, backward.NetBalance)
}

package db_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrasnov/bankt/internal/db"
	"github.com/dkrasnov/bankt/internal/models"
)

func initTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, db.InitializeAt(filepath.Join(t.TempDir(), "bankt.db")))
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
}

func TestLoadTimeBank_EmptySlot(t *testing.T) {
	initTestDB(t)

	bank, err := db.LoadTimeBank()
	require.NoError(t, err)

	assert.Zero(t, bank.OvertimeBalance)
	assert.Zero(t, bank.AbsenceBalance)
	assert.Zero(t, bank.NetBalance)
	assert.NotNil(t, bank.Entries)
	assert.Empty(t, bank.Entries)
}

func TestSaveLoadTimeBank_RoundTrip(t *testing.T) {
	initTestDB(t)

	end := time.Date(2025, 11, 3, 20, 5, 0, 0, time.UTC)
	bank := models.TimeBank{
		OvertimeBalance: 125,
		AbsenceBalance:  180,
		NetBalance:      -55,
		Entries: []models.TimeEntry{
			{
				ID:          "e1",
				Type:        models.TypeOvertime,
				Status:      models.StatusCompleted,
				StartTime:   time.Date(2025, 11, 3, 18, 0, 0, 123000000, time.UTC),
				EndTime:     &end,
				Duration:    125,
				Description: "release support",
			},
			{
				ID:        "e2",
				Type:      models.TypeAbsence,
				Status:    models.StatusPlanned,
				StartTime: time.Date(2025, 11, 7, 9, 0, 0, 0, time.UTC),
				Duration:  180,
				UserID:    "u1",
			},
		},
	}

	require.NoError(t, db.SaveTimeBank(bank))

	loaded, err := db.LoadTimeBank()
	require.NoError(t, err)

	assert.Equal(t, bank.OvertimeBalance, loaded.OvertimeBalance)
	assert.Equal(t, bank.AbsenceBalance, loaded.AbsenceBalance)
	assert.Equal(t, bank.NetBalance, loaded.NetBalance)
	require.Len(t, loaded.Entries, 2)

	first := loaded.Entries[0]
	assert.Equal(t, "e1", first.ID)
	assert.Equal(t, models.TypeOvertime, first.Type)
	assert.Equal(t, "release support", first.Description)
	// Timestamps survive to the millisecond and beyond
	assert.True(t, first.StartTime.Equal(bank.Entries[0].StartTime))
	require.NotNil(t, first.EndTime)
	assert.True(t, first.EndTime.Equal(end))

	second := loaded.Entries[1]
	assert.Nil(t, second.EndTime)
	assert.Equal(t, "u1", second.UserID)
}

func TestSaveTimeBank_OverwritesSlot(t *testing.T) {
	initTestDB(t)

	require.NoError(t, db.SaveTimeBank(models.TimeBank{NetBalance: 10}))
	require.NoError(t, db.SaveTimeBank(models.TimeBank{NetBalance: 20}))

	loaded, err := db.LoadTimeBank()
	require.NoError(t, err)
	assert.Equal(t, 20, loaded.NetBalance)
}

func TestLoadTimeBank_CorruptPayloadFallsBack(t *testing.T) {
	initTestDB(t)

	snap := models.Snapshot{
		Slot:      "timebank",
		Payload:   []byte("{not json"),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, db.DB.Create(&snap).Error)

	bank, err := db.LoadTimeBank()
	require.NoError(t, err)
	assert.Empty(t, bank.Entries)
	assert.Zero(t, bank.NetBalance)
}

func TestStore_SavesThroughPersisterInterface(t *testing.T) {
	initTestDB(t)

	store := db.Store{}
	require.NoError(t, store.Save(models.TimeBank{NetBalance: 45}))

	loaded, err := db.LoadTimeBank()
	require.NoError(t, err)
	assert.Equal(t, 45, loaded.NetBalance)
}

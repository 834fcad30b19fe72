package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dkrasnov/bankt/internal/models"
)

// snapshotSlot is the single named slot holding the serialized ledger.
const snapshotSlot = "timebank"

// LoadTimeBank reads the persisted ledger. A missing slot yields the
// zero-valued initial ledger; so does a corrupt payload, after printing
// a notice, rather than failing the whole program.
func LoadTimeBank() (models.TimeBank, error) {
	var snap models.Snapshot
	err := DB.First(&snap, "slot = ?", snapshotSlot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return emptyTimeBank(), nil
		}
		return models.TimeBank{}, fmt.Errorf("failed to load time bank: %w", err)
	}

	var bank models.TimeBank
	if err := json.Unmarshal(snap.Payload, &bank); err != nil {
		fmt.Fprintf(os.Stderr, "warning: corrupt time bank snapshot, starting fresh: %v\n", err)
		return emptyTimeBank(), nil
	}
	if bank.Entries == nil {
		bank.Entries = []models.TimeEntry{}
	}

	return bank, nil
}

// SaveTimeBank upserts the full ledger into the snapshot slot. The JSON
// payload carries timestamps in RFC 3339 so they round-trip exactly.
func SaveTimeBank(bank models.TimeBank) error {
	payload, err := json.Marshal(bank)
	if err != nil {
		return fmt.Errorf("failed to encode time bank: %w", err)
	}

	snap := models.Snapshot{
		Slot:      snapshotSlot,
		Payload:   payload,
		UpdatedAt: time.Now(),
	}

	return DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot"}},
		UpdateAll: true,
	}).Create(&snap).Error
}

// Store adapts this package to the ledger's Persister interface.
type Store struct{}

func (Store) Save(bank models.TimeBank) error {
	return SaveTimeBank(bank)
}

func emptyTimeBank() models.TimeBank {
	return models.TimeBank{Entries: []models.TimeEntry{}}
}

package timebank

import (
	"github.com/dkrasnov/bankt/internal/models"
)

// CalculateBalances derives the ledger aggregates from the entries in a
// single pass. Active entries are excluded because their duration is
// provisional. Order independent, no side effects.
func CalculateBalances(entries []models.TimeEntry) models.TimeBank {
	bank := models.TimeBank{Entries: entries}

	for _, e := range entries {
		if !e.Counted() {
			continue
		}
		switch e.Type {
		case models.TypeOvertime:
			bank.OvertimeBalance += e.Duration
		case models.TypeAbsence:
			bank.AbsenceBalance += e.Duration
		}
	}

	bank.NetBalance = bank.OvertimeBalance - bank.AbsenceBalance
	return bank
}

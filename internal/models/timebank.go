package models

import (
	"time"
)

// TimeBank is the aggregate ledger: all entries plus derived balances.
// Balances are always recomputed from the entries, never edited directly.
type TimeBank struct {
	OvertimeBalance int         `json:"overtimeBalance"` // minutes
	AbsenceBalance  int         `json:"absenceBalance"`  // minutes
	NetBalance      int         `json:"netBalance"`      // overtime - absence, may go negative
	Entries         []TimeEntry `json:"entries"`
	UserID          string      `json:"userId,omitempty"`
}

// TimeBankStats holds derived metrics over a ledger snapshot.
// Never persisted, recomputed on demand.
type TimeBankStats struct {
	TotalOvertimeHours    float64 `json:"total_overtime_hours"`
	TotalAbsenceHours     float64 `json:"total_absence_hours"`
	NetBalanceHours       float64 `json:"net_balance_hours"`
	ActiveDays            int     `json:"active_days"`
	LongestStreak         int     `json:"longest_streak"`
	AverageOvertimePerDay float64 `json:"average_overtime_per_day"`
}

// Snapshot is a persisted ledger slot. The whole TimeBank is stored as
// one JSON payload under a fixed slot name.
type Snapshot struct {
	Slot      string    `gorm:"primarykey" json:"slot"`
	Payload   []byte    `gorm:"not null" json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
}

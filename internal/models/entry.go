package models

import (
	"time"
)

// EntryType distinguishes banked overtime from planned absence
type EntryType string

const (
	TypeOvertime EntryType = "overtime"
	TypeAbsence  EntryType = "absence"
)

// EntryStatus represents the lifecycle status of a time entry
type EntryStatus string

const (
	StatusActive    EntryStatus = "active"    // overtime session in progress
	StatusCompleted EntryStatus = "completed" // finished overtime session
	StatusPlanned   EntryStatus = "planned"   // scheduled absence
)

// TimeEntry represents one recorded or in-progress interval.
// Overtime entries move active -> completed; absences are created
// directly as planned and never pass through active.
type TimeEntry struct {
	ID          string      `json:"id"`
	Type        EntryType   `json:"type"`
	StartTime   time.Time   `json:"startTime"`
	EndTime     *time.Time  `json:"endTime,omitempty"`
	Duration    int         `json:"duration"` // minutes; 0 while active
	Description string      `json:"description,omitempty"`
	Status      EntryStatus `json:"status"`
	UserID      string      `json:"userId,omitempty"` // reserved for a future backend, never filtered on
}

// Counted reports whether the entry contributes to balances.
// Active entries carry a provisional zero duration and are excluded.
func (e TimeEntry) Counted() bool {
	return e.Status == StatusCompleted || e.Status == StatusPlanned
}

package timebank

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionActive indicates an overtime session is already running.
	ErrSessionActive = errors.New("an overtime session is already active")
	// ErrNoActiveSession indicates stop was requested with nothing running.
	ErrNoActiveSession = errors.New("no active overtime session")
	// ErrEntryActive indicates a delete/edit targeted the running session.
	ErrEntryActive = errors.New("entry belongs to the active session, stop it first")
	// ErrInvalidRange indicates an absence whose end is not after its start.
	ErrInvalidRange = errors.New("end time must be after start time")
	// ErrEntryNotFound indicates no entry matches the given id.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrAmbiguousID indicates an id prefix matched more than one entry.
	ErrAmbiguousID = errors.New("id prefix matches more than one entry")
)

// InsufficientBalanceWarning is advisory only: the absence exceeds the
// banked net balance but is still created. The caller decides how to
// present the overdraft.
type InsufficientBalanceWarning struct {
	Requested int // absence duration in minutes
	Available int // net balance before the absence, minutes
}

func (w *InsufficientBalanceWarning) Error() string {
	return fmt.Sprintf("absence of %s exceeds net balance of %s",
		FormatMinutes(w.Requested), FormatMinutes(w.Available))
}

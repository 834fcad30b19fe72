package timebank

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkrasnov/bankt/internal/models"
)

// Persister stores the full ledger after every successful mutation.
// Saving is fire-and-forget: a failed save is reported but does not
// roll back the in-memory state.
type Persister interface {
	Save(bank models.TimeBank) error
}

// Ledger owns the entry set and the single optional active overtime
// session. All mutations recompute the derived balances and persist the
// result. Not safe for concurrent use; the CLI drives it from a single
// goroutine.
type Ledger struct {
	bank     models.TimeBank
	activeID string
	store    Persister
	now      func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// NewLedger wraps a loaded snapshot. Balances are recomputed from the
// entries so a stale snapshot cannot carry wrong aggregates. A nil
// persister disables saving.
func NewLedger(bank models.TimeBank, store Persister, opts ...Option) *Ledger {
	derived := CalculateBalances(bank.Entries)
	derived.UserID = bank.UserID

	l := &Ledger{
		bank:  derived,
		store: store,
		now:   time.Now,
	}

	// Pick up an active session left behind by a previous run.
	for _, e := range l.bank.Entries {
		if e.Status == models.StatusActive {
			l.activeID = e.ID
			break
		}
	}

	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Bank returns a copy of the current ledger snapshot.
func (l *Ledger) Bank() models.TimeBank {
	bank := l.bank
	bank.Entries = make([]models.TimeEntry, len(l.bank.Entries))
	copy(bank.Entries, l.bank.Entries)
	return bank
}

// ActiveEntry returns a copy of the running overtime session, or nil.
func (l *Ledger) ActiveEntry() *models.TimeEntry {
	if l.activeID == "" {
		return nil
	}
	if i := l.indexOf(l.activeID); i >= 0 {
		e := l.bank.Entries[i]
		return &e
	}
	return nil
}

// StartOvertime begins a new overtime session. Fails with
// ErrSessionActive while another session is running.
func (l *Ledger) StartOvertime(description string) (*models.TimeEntry, error) {
	if l.activeID != "" {
		return nil, ErrSessionActive
	}

	entry := models.TimeEntry{
		ID:          uuid.NewString(),
		Type:        models.TypeOvertime,
		StartTime:   l.now(),
		Duration:    0,
		Description: description,
		Status:      models.StatusActive,
	}

	l.bank.Entries = append(l.bank.Entries, entry)
	l.activeID = entry.ID
	l.recompute()
	l.persist()

	return &entry, nil
}

// StopOvertime completes the running session, fixing its end time and
// duration. Fails with ErrNoActiveSession when nothing is running.
func (l *Ledger) StopOvertime() (*models.TimeEntry, error) {
	if l.activeID == "" {
		return nil, ErrNoActiveSession
	}

	i := l.indexOf(l.activeID)
	if i < 0 {
		// Active pointer without a backing entry should not happen;
		// clear it and report as no session.
		l.activeID = ""
		return nil, ErrNoActiveSession
	}

	end := l.now()
	entry := &l.bank.Entries[i]
	entry.EndTime = &end
	entry.Duration = CalculateDuration(entry.StartTime, end)
	entry.Status = models.StatusCompleted

	l.activeID = ""
	l.recompute()
	l.persist()

	stopped := *entry
	return &stopped, nil
}

// AddAbsence plans an absence over [start, end). The end must strictly
// follow the start. When the duration exceeds the current net balance
// the entry is still created and an advisory warning is returned.
func (l *Ledger) AddAbsence(start, end time.Time, description string) (*models.TimeEntry, *InsufficientBalanceWarning, error) {
	duration := CalculateDuration(start, end)
	if duration <= 0 {
		return nil, nil, ErrInvalidRange
	}

	var warn *InsufficientBalanceWarning
	if duration > l.bank.NetBalance {
		warn = &InsufficientBalanceWarning{
			Requested: duration,
			Available: l.bank.NetBalance,
		}
	}

	entry := models.TimeEntry{
		ID:          uuid.NewString(),
		Type:        models.TypeAbsence,
		StartTime:   start,
		EndTime:     &end,
		Duration:    duration,
		Description: description,
		Status:      models.StatusPlanned,
	}

	l.bank.Entries = append(l.bank.Entries, entry)
	l.recompute()
	l.persist()

	return &entry, warn, nil
}

// DeleteEntry removes the entry with the given id. The active session
// cannot be deleted, stop it first.
func (l *Ledger) DeleteEntry(id string) error {
	if id != "" && id == l.activeID {
		return ErrEntryActive
	}

	i := l.indexOf(id)
	if i < 0 {
		return ErrEntryNotFound
	}

	l.bank.Entries = append(l.bank.Entries[:i], l.bank.Entries[i+1:]...)
	l.recompute()
	l.persist()
	return nil
}

// EditEntry replaces the stored entry with the same id. The active
// session cannot be edited. No field-level validation is applied beyond
// what creation already guaranteed.
func (l *Ledger) EditEntry(updated models.TimeEntry) error {
	if updated.ID != "" && updated.ID == l.activeID {
		return ErrEntryActive
	}

	i := l.indexOf(updated.ID)
	if i < 0 {
		return ErrEntryNotFound
	}

	l.bank.Entries[i] = updated
	l.recompute()
	l.persist()
	return nil
}

// FindByPrefix resolves an entry from a unique id prefix, as typed on
// the command line.
func (l *Ledger) FindByPrefix(prefix string) (*models.TimeEntry, error) {
	if prefix == "" {
		return nil, ErrEntryNotFound
	}

	var found *models.TimeEntry
	for i := range l.bank.Entries {
		if strings.HasPrefix(l.bank.Entries[i].ID, prefix) {
			if found != nil {
				return nil, ErrAmbiguousID
			}
			e := l.bank.Entries[i]
			found = &e
		}
	}

	if found == nil {
		return nil, ErrEntryNotFound
	}
	return found, nil
}

func (l *Ledger) indexOf(id string) int {
	for i := range l.bank.Entries {
		if l.bank.Entries[i].ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) recompute() {
	userID := l.bank.UserID
	l.bank = CalculateBalances(l.bank.Entries)
	l.bank.UserID = userID
}

func (l *Ledger) persist() {
	if l.store == nil {
		return
	}
	if err := l.store.Save(l.bank); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save time bank: %v\n", err)
	}
}

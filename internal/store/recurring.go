package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/haushalt/ledger/internal/errs"
	"github.com/haushalt/ledger/internal/ledger"
)

// AddRecurringEntry creates a recurring income entry with a fresh id.
func (s *Store) AddRecurringEntry(e ledger.RecurringEntry) (ledger.RecurringEntry, error) {
	if err := validateRecurringEntry(e); err != nil {
		return ledger.RecurringEntry{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requirePerson(e.PersonID); err != nil {
		return ledger.RecurringEntry{}, err
	}
	if err := s.requireAccount(e.AccountID); err != nil {
		return ledger.RecurringEntry{}, err
	}
	if err := s.requireCategory(e.CategoryID); err != nil {
		return ledger.RecurringEntry{}, err
	}
	e.ID = uuid.New()
	e.EndDate = cloneDatePtr(e.EndDate)
	s.recurringEntries.add(e.ID, e)
	return e, nil
}

// UpdateRecurringEntry replaces the record matched by id.
func (s *Store) UpdateRecurringEntry(e ledger.RecurringEntry) error {
	if err := validateRecurringEntry(e); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recurringEntries.get(e.ID); !ok {
		return errs.ErrNotFound
	}
	if err := s.requirePerson(e.PersonID); err != nil {
		return err
	}
	if err := s.requireAccount(e.AccountID); err != nil {
		return err
	}
	if err := s.requireCategory(e.CategoryID); err != nil {
		return err
	}
	e.EndDate = cloneDatePtr(e.EndDate)
	s.recurringEntries.set(e.ID, e)
	return nil
}

// DeleteRecurringEntry removes the entry and cascades to its amount schedule
// overrides.
func (s *Store) DeleteRecurringEntry(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recurringEntries.get(id); !ok {
		return errs.ErrNotFound
	}
	schedIDs := make(map[uuid.UUID]struct{})
	for _, a := range s.amountSchedules.list() {
		if a.EntryID == id {
			schedIDs[a.ID] = struct{}{}
		}
	}
	s.amountSchedules.removeAll(schedIDs)
	s.recurringEntries.remove(id)
	return nil
}

// AddAmountSchedule creates an amount override for an existing recurring entry.
func (s *Store) AddAmountSchedule(a ledger.AmountSchedule) (ledger.AmountSchedule, error) {
	if err := validateAmountSchedule(a); err != nil {
		return ledger.AmountSchedule{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recurringEntries.get(a.EntryID); !ok {
		return ledger.AmountSchedule{}, fmt.Errorf("%w: recurring entry %s", errs.ErrDanglingReference, a.EntryID)
	}
	a.ID = uuid.New()
	a.EndDate = cloneDatePtr(a.EndDate)
	s.amountSchedules.add(a.ID, a)
	return a, nil
}

// UpdateAmountSchedule replaces the record matched by id.
func (s *Store) UpdateAmountSchedule(a ledger.AmountSchedule) error {
	if err := validateAmountSchedule(a); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.amountSchedules.get(a.ID); !ok {
		return errs.ErrNotFound
	}
	if _, ok := s.recurringEntries.get(a.EntryID); !ok {
		return fmt.Errorf("%w: recurring entry %s", errs.ErrDanglingReference, a.EntryID)
	}
	a.EndDate = cloneDatePtr(a.EndDate)
	s.amountSchedules.set(a.ID, a)
	return nil
}

// DeleteAmountSchedule removes a single override.
func (s *Store) DeleteAmountSchedule(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.amountSchedules.get(id); !ok {
		return errs.ErrNotFound
	}
	s.amountSchedules.remove(id)
	return nil
}

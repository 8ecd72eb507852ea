package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/haushalt/ledger/internal/errs"
	"github.com/haushalt/ledger/internal/ledger"
)

// AddPerson creates a person with a fresh id.
func (s *Store) AddPerson(p ledger.Person) (ledger.Person, error) {
	if err := validatePerson(p); err != nil {
		return ledger.Person{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.New()
	s.persons.add(p.ID, p)
	return p, nil
}

// UpdatePerson replaces the record matched by id.
func (s *Store) UpdatePerson(p ledger.Person) error {
	if err := validatePerson(p); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.persons.get(p.ID); !ok {
		return errs.ErrNotFound
	}
	s.persons.set(p.ID, p)
	return nil
}

// DeletePerson removes the person and cascades to their accounts, transactions,
// recurring entries (with amount schedules), subscriptions, debts, and
// investments. The removal sets are collected first and applied in one step, so
// no intermediate state with dangling references is ever observable.
func (s *Store) DeletePerson(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.persons.get(id); !ok {
		return errs.ErrNotFound
	}

	accountIDs := make(map[uuid.UUID]struct{})
	for _, a := range s.accounts.list() {
		if a.PersonID == id {
			accountIDs[a.ID] = struct{}{}
		}
	}
	s.cascadeRemove(map[uuid.UUID]struct{}{id: {}}, accountIDs)

	for _, inv := range s.investments.list() {
		if inv.PersonID == id {
			s.investments.remove(inv.ID)
		}
	}
	s.persons.remove(id)
	s.accounts.removeAll(accountIDs)
	return nil
}

// cascadeRemove deletes every transaction, recurring entry (plus its amount
// schedules), subscription, and debt that references one of the given persons
// or accounts. Balances of accounts that survive the cascade are decremented
// for each removed transaction, keeping the balance invariant intact. Caller
// must hold the write lock.
func (s *Store) cascadeRemove(personIDs, accountIDs map[uuid.UUID]struct{}) {
	hit := func(personID, accountID uuid.UUID) bool {
		if _, ok := personIDs[personID]; ok {
			return true
		}
		_, ok := accountIDs[accountID]
		return ok
	}

	txIDs := make(map[uuid.UUID]struct{})
	for _, t := range s.transactions.list() {
		if !hit(t.PersonID, t.AccountID) {
			continue
		}
		txIDs[t.ID] = struct{}{}
		if _, removed := accountIDs[t.AccountID]; !removed {
			if acc, ok := s.accounts.get(t.AccountID); ok {
				acc.Balance = acc.Balance.Sub(t.Amount)
				s.accounts.set(acc.ID, acc)
			}
		}
	}
	s.transactions.removeAll(txIDs)

	entryIDs := make(map[uuid.UUID]struct{})
	for _, e := range s.recurringEntries.list() {
		if hit(e.PersonID, e.AccountID) {
			entryIDs[e.ID] = struct{}{}
		}
	}
	s.recurringEntries.removeAll(entryIDs)

	schedIDs := make(map[uuid.UUID]struct{})
	for _, a := range s.amountSchedules.list() {
		if _, ok := entryIDs[a.EntryID]; ok {
			schedIDs[a.ID] = struct{}{}
		}
	}
	s.amountSchedules.removeAll(schedIDs)

	subIDs := make(map[uuid.UUID]struct{})
	for _, sub := range s.subscriptions.list() {
		if hit(sub.PersonID, sub.AccountID) {
			subIDs[sub.ID] = struct{}{}
		}
	}
	s.subscriptions.removeAll(subIDs)

	debtIDs := make(map[uuid.UUID]struct{})
	for _, d := range s.debts.list() {
		if hit(d.PersonID, d.AccountID) {
			debtIDs[d.ID] = struct{}{}
		}
	}
	s.debts.removeAll(debtIDs)
}

// requirePerson reports a dangling reference when the person does not exist.
// Caller must hold the lock.
func (s *Store) requirePerson(id uuid.UUID) error {
	if _, ok := s.persons.get(id); !ok {
		return fmt.Errorf("%w: person %s", errs.ErrDanglingReference, id)
	}
	return nil
}

func (s *Store) requireAccount(id uuid.UUID) error {
	if _, ok := s.accounts.get(id); !ok {
		return fmt.Errorf("%w: account %s", errs.ErrDanglingReference, id)
	}
	return nil
}

func (s *Store) requireCategory(id uuid.UUID) error {
	if _, ok := s.categories.get(id); !ok {
		return fmt.Errorf("%w: category %s", errs.ErrDanglingReference, id)
	}
	return nil
}

package store

import (
	"github.com/google/uuid"

	"github.com/haushalt/ledger/internal/errs"
	"github.com/haushalt/ledger/internal/ledger"
)

// AddAccount creates an account with a fresh id. The owning person must exist.
func (s *Store) AddAccount(a ledger.Account) (ledger.Account, error) {
	if err := validateAccount(a); err != nil {
		return ledger.Account{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requirePerson(a.PersonID); err != nil {
		return ledger.Account{}, err
	}
	a.ID = uuid.New()
	s.accounts.add(a.ID, a)
	return a, nil
}

// UpdateAccount replaces the record matched by id. The balance field is carried
// verbatim: it is derived state, but updates replace the full record.
func (s *Store) UpdateAccount(a ledger.Account) error {
	if err := validateAccount(a); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts.get(a.ID); !ok {
		return errs.ErrNotFound
	}
	if err := s.requirePerson(a.PersonID); err != nil {
		return err
	}
	s.accounts.set(a.ID, a)
	return nil
}

// DeleteAccount removes the account and cascades to its transactions, recurring
// entries (with amount schedules), subscriptions, and debts. Investments are
// person-scoped and survive.
func (s *Store) DeleteAccount(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts.get(id); !ok {
		return errs.ErrNotFound
	}
	accountIDs := map[uuid.UUID]struct{}{id: {}}
	s.cascadeRemove(map[uuid.UUID]struct{}{}, accountIDs)
	s.accounts.removeAll(accountIDs)
	return nil
}

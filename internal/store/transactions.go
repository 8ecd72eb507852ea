package store

import (
	"github.com/google/uuid"

	"github.com/haushalt/ledger/internal/errs"
	"github.com/haushalt/ledger/internal/ledger"
)

// AddTransaction appends the transaction and adds its amount to the referenced
// account's balance. A missing person, account, or category is a dangling
// reference and nothing is mutated.
func (s *Store) AddTransaction(t ledger.Transaction) (ledger.Transaction, error) {
	if err := validateTransaction(t); err != nil {
		return ledger.Transaction{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requirePerson(t.PersonID); err != nil {
		return ledger.Transaction{}, err
	}
	if err := s.requireAccount(t.AccountID); err != nil {
		return ledger.Transaction{}, err
	}
	if err := s.requireCategory(t.CategoryID); err != nil {
		return ledger.Transaction{}, err
	}
	t.ID = uuid.New()
	s.transactions.add(t.ID, t)
	acc, _ := s.accounts.get(t.AccountID)
	acc.Balance = acc.Balance.Add(t.Amount)
	s.accounts.set(acc.ID, acc)
	return t, nil
}

// UpdateTransaction replaces the record matched by id. When the amount or the
// account changed, the old amount is reverted from the old account and the new
// amount applied to the new account; both steps happen under one lock so no
// intermediate balance is observable.
func (s *Store) UpdateTransaction(t ledger.Transaction) error {
	if err := validateTransaction(t); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.transactions.get(t.ID)
	if !ok {
		return errs.ErrNotFound
	}
	if err := s.requirePerson(t.PersonID); err != nil {
		return err
	}
	if err := s.requireCategory(t.CategoryID); err != nil {
		return err
	}
	if err := s.requireAccount(t.AccountID); err != nil {
		return err
	}
	if !old.Amount.Equal(t.Amount) || old.AccountID != t.AccountID {
		// Check both sides before touching either balance.
		if err := s.requireAccount(old.AccountID); err != nil {
			return err
		}
		oldAcc, _ := s.accounts.get(old.AccountID)
		oldAcc.Balance = oldAcc.Balance.Sub(old.Amount)
		s.accounts.set(oldAcc.ID, oldAcc)
		newAcc, _ := s.accounts.get(t.AccountID)
		newAcc.Balance = newAcc.Balance.Add(t.Amount)
		s.accounts.set(newAcc.ID, newAcc)
	}
	s.transactions.set(t.ID, t)
	return nil
}

// DeleteTransaction subtracts the amount from its account's balance, then
// removes the record.
func (s *Store) DeleteTransaction(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.transactions.get(id)
	if !ok {
		return errs.ErrNotFound
	}
	if err := s.requireAccount(t.AccountID); err != nil {
		return err
	}
	acc, _ := s.accounts.get(t.AccountID)
	acc.Balance = acc.Balance.Sub(t.Amount)
	s.accounts.set(acc.ID, acc)
	s.transactions.remove(id)
	return nil
}

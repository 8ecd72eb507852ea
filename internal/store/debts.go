package store

import (
	"github.com/google/uuid"

	"github.com/haushalt/ledger/internal/errs"
	"github.com/haushalt/ledger/internal/ledger"
)

// AddDebt creates a debt with a fresh id. Amortization bounds
// (0 <= remaining <= total) are enforced here and on every update.
func (s *Store) AddDebt(d ledger.Debt) (ledger.Debt, error) {
	if err := validateDebt(d); err != nil {
		return ledger.Debt{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requirePerson(d.PersonID); err != nil {
		return ledger.Debt{}, err
	}
	if err := s.requireAccount(d.AccountID); err != nil {
		return ledger.Debt{}, err
	}
	d.ID = uuid.New()
	d.EndDate = cloneDatePtr(d.EndDate)
	d.InterestRate = cloneDecimalPtr(d.InterestRate)
	s.debts.add(d.ID, d)
	return d, nil
}

// UpdateDebt replaces the record matched by id.
func (s *Store) UpdateDebt(d ledger.Debt) error {
	if err := validateDebt(d); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.debts.get(d.ID); !ok {
		return errs.ErrNotFound
	}
	if err := s.requirePerson(d.PersonID); err != nil {
		return err
	}
	if err := s.requireAccount(d.AccountID); err != nil {
		return err
	}
	d.EndDate = cloneDatePtr(d.EndDate)
	d.InterestRate = cloneDecimalPtr(d.InterestRate)
	s.debts.set(d.ID, d)
	return nil
}

// DeleteDebt removes the debt.
func (s *Store) DeleteDebt(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.debts.get(id); !ok {
		return errs.ErrNotFound
	}
	s.debts.remove(id)
	return nil
}

package store

import (
	"github.com/google/uuid"

	"github.com/haushalt/ledger/internal/errs"
	"github.com/haushalt/ledger/internal/ledger"
)

// AddInvestment creates an investment with a fresh id.
func (s *Store) AddInvestment(inv ledger.Investment) (ledger.Investment, error) {
	if err := validateInvestment(inv); err != nil {
		return ledger.Investment{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requirePerson(inv.PersonID); err != nil {
		return ledger.Investment{}, err
	}
	inv.ID = uuid.New()
	s.investments.add(inv.ID, inv)
	return inv, nil
}

// UpdateInvestment replaces the record matched by id.
func (s *Store) UpdateInvestment(inv ledger.Investment) error {
	if err := validateInvestment(inv); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.investments.get(inv.ID); !ok {
		return errs.ErrNotFound
	}
	if err := s.requirePerson(inv.PersonID); err != nil {
		return err
	}
	s.investments.set(inv.ID, inv)
	return nil
}

// DeleteInvestment removes the investment.
func (s *Store) DeleteInvestment(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.investments.get(id); !ok {
		return errs.ErrNotFound
	}
	s.investments.remove(id)
	return nil
}

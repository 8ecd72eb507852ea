// Package store implements the ledger store: the single source of truth for all
// nine entity collections. Every public operation either completes fully or
// returns an error with the state unchanged; referential integrity and the
// account-balance invariant hold after every call.
package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/haushalt/ledger/internal/date"
	"github.com/haushalt/ledger/internal/errs"
	"github.com/haushalt/ledger/internal/ledger"
)

// Store owns all ledger entities in memory. It is guarded by a single RWMutex:
// multi-step operations (cascades, balance revert/apply) run under one write
// lock and are never observable half-applied.
type Store struct {
	mu               sync.RWMutex
	persons          collection[ledger.Person]
	accounts         collection[ledger.Account]
	categories       collection[ledger.Category]
	transactions     collection[ledger.Transaction]
	recurringEntries collection[ledger.RecurringEntry]
	amountSchedules  collection[ledger.AmountSchedule]
	subscriptions    collection[ledger.Subscription]
	debts            collection[ledger.Debt]
	investments      collection[ledger.Investment]
}

// New constructs an empty store.
func New() *Store {
	return &Store{
		persons:          newCollection[ledger.Person](),
		accounts:         newCollection[ledger.Account](),
		categories:       newCollection[ledger.Category](),
		transactions:     newCollection[ledger.Transaction](),
		recurringEntries: newCollection[ledger.RecurringEntry](),
		amountSchedules:  newCollection[ledger.AmountSchedule](),
		subscriptions:    newCollection[ledger.Subscription](),
		debts:            newCollection[ledger.Debt](),
		investments:      newCollection[ledger.Investment](),
	}
}

// SeedCategories inserts categories with their given ids. Used on first run to
// install the default starter set before any user data exists.
func (s *Store) SeedCategories(cats []ledger.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range cats {
		s.categories.add(c.ID, c)
	}
}

// --- Read accessors. All return copies; callers never see live state. ---

func (s *Store) Persons() []ledger.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persons.list()
}

func (s *Store) Person(id uuid.UUID) (ledger.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.persons.get(id)
	if !ok {
		return ledger.Person{}, errs.ErrNotFound
	}
	return p, nil
}

func (s *Store) Accounts() []ledger.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accounts.list()
}

func (s *Store) Account(id uuid.UUID) (ledger.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts.get(id)
	if !ok {
		return ledger.Account{}, errs.ErrNotFound
	}
	return a, nil
}

func (s *Store) Categories() []ledger.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories.list()
}

func (s *Store) Category(id uuid.UUID) (ledger.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories.get(id)
	if !ok {
		return ledger.Category{}, errs.ErrNotFound
	}
	return c, nil
}

func (s *Store) Transactions() []ledger.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transactions.list()
}

func (s *Store) Transaction(id uuid.UUID) (ledger.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transactions.get(id)
	if !ok {
		return ledger.Transaction{}, errs.ErrNotFound
	}
	return t, nil
}

func (s *Store) RecurringEntries() []ledger.RecurringEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recurringEntries.list()
}

func (s *Store) RecurringEntry(id uuid.UUID) (ledger.RecurringEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.recurringEntries.get(id)
	if !ok {
		return ledger.RecurringEntry{}, errs.ErrNotFound
	}
	return e, nil
}

func (s *Store) AmountSchedules() []ledger.AmountSchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.amountSchedules.list()
}

func (s *Store) AmountSchedule(id uuid.UUID) (ledger.AmountSchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.amountSchedules.get(id)
	if !ok {
		return ledger.AmountSchedule{}, errs.ErrNotFound
	}
	return a, nil
}

func (s *Store) Subscriptions() []ledger.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subscriptions.list()
}

func (s *Store) Subscription(id uuid.UUID) (ledger.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.subscriptions.get(id)
	if !ok {
		return ledger.Subscription{}, errs.ErrNotFound
	}
	return sub, nil
}

func (s *Store) Debts() []ledger.Debt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.debts.list()
}

func (s *Store) Debt(id uuid.UUID) (ledger.Debt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.debts.get(id)
	if !ok {
		return ledger.Debt{}, errs.ErrNotFound
	}
	return d, nil
}

func (s *Store) Investments() []ledger.Investment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.investments.list()
}

func (s *Store) Investment(id uuid.UUID) (ledger.Investment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.investments.get(id)
	if !ok {
		return ledger.Investment{}, errs.ErrNotFound
	}
	return inv, nil
}

// --- Internal clone helpers. The store owns its copies of pointer fields so
// callers cannot mutate stored state through a retained pointer. ---

func cloneDatePtr(d *date.Date) *date.Date {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}

func cloneDecimalPtr(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}

package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/haushalt/ledger/internal/errs"
	"github.com/haushalt/ledger/internal/ledger"
)

// AddCategory creates a category with a fresh id.
func (s *Store) AddCategory(c ledger.Category) (ledger.Category, error) {
	if err := validateCategory(c); err != nil {
		return ledger.Category{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = uuid.New()
	s.categories.add(c.ID, c)
	return c, nil
}

// UpdateCategory replaces the record matched by id.
func (s *Store) UpdateCategory(c ledger.Category) error {
	if err := validateCategory(c); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories.get(c.ID); !ok {
		return errs.ErrNotFound
	}
	s.categories.set(c.ID, c)
	return nil
}

// DeleteCategory removes the category unless any transaction, recurring entry,
// or subscription still references it, in which case nothing is mutated.
func (s *Store) DeleteCategory(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories.get(id); !ok {
		return errs.ErrNotFound
	}
	for _, t := range s.transactions.list() {
		if t.CategoryID == id {
			return fmt.Errorf("%w: referenced by transaction %s", errs.ErrCategoryInUse, t.ID)
		}
	}
	for _, e := range s.recurringEntries.list() {
		if e.CategoryID == id {
			return fmt.Errorf("%w: referenced by recurring entry %s", errs.ErrCategoryInUse, e.ID)
		}
	}
	for _, sub := range s.subscriptions.list() {
		if sub.CategoryID == id {
			return fmt.Errorf("%w: referenced by subscription %s", errs.ErrCategoryInUse, sub.ID)
		}
	}
	s.categories.remove(id)
	return nil
}

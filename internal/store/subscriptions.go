package store

import (
	"github.com/google/uuid"

	"github.com/haushalt/ledger/internal/errs"
	"github.com/haushalt/ledger/internal/ledger"
)

// AddSubscription creates a subscription with a fresh id.
func (s *Store) AddSubscription(sub ledger.Subscription) (ledger.Subscription, error) {
	if err := validateSubscription(sub); err != nil {
		return ledger.Subscription{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requirePerson(sub.PersonID); err != nil {
		return ledger.Subscription{}, err
	}
	if err := s.requireAccount(sub.AccountID); err != nil {
		return ledger.Subscription{}, err
	}
	if err := s.requireCategory(sub.CategoryID); err != nil {
		return ledger.Subscription{}, err
	}
	sub.ID = uuid.New()
	sub.EndDate = cloneDatePtr(sub.EndDate)
	s.subscriptions.add(sub.ID, sub)
	return sub, nil
}

// UpdateSubscription replaces the record matched by id.
func (s *Store) UpdateSubscription(sub ledger.Subscription) error {
	if err := validateSubscription(sub); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subscriptions.get(sub.ID); !ok {
		return errs.ErrNotFound
	}
	if err := s.requirePerson(sub.PersonID); err != nil {
		return err
	}
	if err := s.requireAccount(sub.AccountID); err != nil {
		return err
	}
	if err := s.requireCategory(sub.CategoryID); err != nil {
		return err
	}
	sub.EndDate = cloneDatePtr(sub.EndDate)
	s.subscriptions.set(sub.ID, sub)
	return nil
}

// DeleteSubscription removes the subscription.
func (s *Store) DeleteSubscription(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subscriptions.get(id); !ok {
		return errs.ErrNotFound
	}
	s.subscriptions.remove(id)
	return nil
}

package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/haushalt/ledger/internal/errs"
	"github.com/haushalt/ledger/internal/ledger"
)

// ExportSnapshot returns a structurally complete copy of all nine collections
// with a fresh generation timestamp.
func (s *Store) ExportSnapshot() ledger.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := ledger.Snapshot{
		Timestamp:        time.Now().UTC(),
		Persons:          s.persons.list(),
		Accounts:         s.accounts.list(),
		Categories:       s.categories.list(),
		Transactions:     s.transactions.list(),
		RecurringEntries: s.recurringEntries.list(),
		AmountSchedules:  s.amountSchedules.list(),
		Subscriptions:    s.subscriptions.list(),
		Debts:            s.debts.list(),
		Investments:      s.investments.list(),
	}
	// Detach pointer fields so the snapshot is immune to later caller edits.
	for i := range snap.RecurringEntries {
		snap.RecurringEntries[i].EndDate = cloneDatePtr(snap.RecurringEntries[i].EndDate)
	}
	for i := range snap.AmountSchedules {
		snap.AmountSchedules[i].EndDate = cloneDatePtr(snap.AmountSchedules[i].EndDate)
	}
	for i := range snap.Subscriptions {
		snap.Subscriptions[i].EndDate = cloneDatePtr(snap.Subscriptions[i].EndDate)
	}
	for i := range snap.Debts {
		snap.Debts[i].EndDate = cloneDatePtr(snap.Debts[i].EndDate)
		snap.Debts[i].InterestRate = cloneDecimalPtr(snap.Debts[i].InterestRate)
	}
	return snap
}

// ImportSnapshot validates the snapshot and atomically replaces all nine
// collections. On any validation failure the store is left untouched.
func (s *Store) ImportSnapshot(snap ledger.Snapshot) error {
	next, err := buildCollections(snap)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persons = next.persons
	s.accounts = next.accounts
	s.categories = next.categories
	s.transactions = next.transactions
	s.recurringEntries = next.recurringEntries
	s.amountSchedules = next.amountSchedules
	s.subscriptions = next.subscriptions
	s.debts = next.debts
	s.investments = next.investments
	return nil
}

type collections struct {
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

func importErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errs.ErrImport, fmt.Sprintf(format, args...))
}

// buildCollections constructs fresh collections from the snapshot, checking id
// uniqueness, field validity, and referential integrity before anything is
// swapped in.
func buildCollections(snap ledger.Snapshot) (*collections, error) {
	c := &collections{
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

	addUnique := func(seen map[uuid.UUID]struct{}, kind string, id uuid.UUID) error {
		if id == uuid.Nil {
			return importErr("%s with empty id", kind)
		}
		if _, dup := seen[id]; dup {
			return importErr("duplicate %s id %s", kind, id)
		}
		seen[id] = struct{}{}
		return nil
	}

	seen := make(map[uuid.UUID]struct{})
	for _, p := range snap.Persons {
		if err := addUnique(seen, "person", p.ID); err != nil {
			return nil, err
		}
		if err := validatePerson(p); err != nil {
			return nil, importErr("person %s: %v", p.ID, err)
		}
		c.persons.add(p.ID, p)
	}

	seen = make(map[uuid.UUID]struct{})
	for _, a := range snap.Accounts {
		if err := addUnique(seen, "account", a.ID); err != nil {
			return nil, err
		}
		if err := validateAccount(a); err != nil {
			return nil, importErr("account %s: %v", a.ID, err)
		}
		if _, ok := c.persons.get(a.PersonID); !ok {
			return nil, importErr("account %s references unknown person %s", a.ID, a.PersonID)
		}
		c.accounts.add(a.ID, a)
	}

	seen = make(map[uuid.UUID]struct{})
	for _, cat := range snap.Categories {
		if err := addUnique(seen, "category", cat.ID); err != nil {
			return nil, err
		}
		if err := validateCategory(cat); err != nil {
			return nil, importErr("category %s: %v", cat.ID, err)
		}
		c.categories.add(cat.ID, cat)
	}

	checkRefs := func(kind string, id, personID, accountID, categoryID uuid.UUID) error {
		if _, ok := c.persons.get(personID); !ok {
			return importErr("%s %s references unknown person %s", kind, id, personID)
		}
		if _, ok := c.accounts.get(accountID); !ok {
			return importErr("%s %s references unknown account %s", kind, id, accountID)
		}
		if categoryID != uuid.Nil {
			if _, ok := c.categories.get(categoryID); !ok {
				return importErr("%s %s references unknown category %s", kind, id, categoryID)
			}
		}
		return nil
	}

	seen = make(map[uuid.UUID]struct{})
	for _, t := range snap.Transactions {
		if err := addUnique(seen, "transaction", t.ID); err != nil {
			return nil, err
		}
		if err := validateTransaction(t); err != nil {
			return nil, importErr("transaction %s: %v", t.ID, err)
		}
		if err := checkRefs("transaction", t.ID, t.PersonID, t.AccountID, t.CategoryID); err != nil {
			return nil, err
		}
		c.transactions.add(t.ID, t)
	}

	seen = make(map[uuid.UUID]struct{})
	for _, e := range snap.RecurringEntries {
		if err := addUnique(seen, "recurring entry", e.ID); err != nil {
			return nil, err
		}
		if err := validateRecurringEntry(e); err != nil {
			return nil, importErr("recurring entry %s: %v", e.ID, err)
		}
		if err := checkRefs("recurring entry", e.ID, e.PersonID, e.AccountID, e.CategoryID); err != nil {
			return nil, err
		}
		e.EndDate = cloneDatePtr(e.EndDate)
		c.recurringEntries.add(e.ID, e)
	}

	seen = make(map[uuid.UUID]struct{})
	for _, a := range snap.AmountSchedules {
		if err := addUnique(seen, "amount schedule", a.ID); err != nil {
			return nil, err
		}
		if err := validateAmountSchedule(a); err != nil {
			return nil, importErr("amount schedule %s: %v", a.ID, err)
		}
		if _, ok := c.recurringEntries.get(a.EntryID); !ok {
			return nil, importErr("amount schedule %s references unknown recurring entry %s", a.ID, a.EntryID)
		}
		a.EndDate = cloneDatePtr(a.EndDate)
		c.amountSchedules.add(a.ID, a)
	}

	seen = make(map[uuid.UUID]struct{})
	for _, sub := range snap.Subscriptions {
		if err := addUnique(seen, "subscription", sub.ID); err != nil {
			return nil, err
		}
		if err := validateSubscription(sub); err != nil {
			return nil, importErr("subscription %s: %v", sub.ID, err)
		}
		if err := checkRefs("subscription", sub.ID, sub.PersonID, sub.AccountID, sub.CategoryID); err != nil {
			return nil, err
		}
		sub.EndDate = cloneDatePtr(sub.EndDate)
		c.subscriptions.add(sub.ID, sub)
	}

	seen = make(map[uuid.UUID]struct{})
	for _, d := range snap.Debts {
		if err := addUnique(seen, "debt", d.ID); err != nil {
			return nil, err
		}
		if err := validateDebt(d); err != nil {
			return nil, importErr("debt %s: %v", d.ID, err)
		}
		if err := checkRefs("debt", d.ID, d.PersonID, d.AccountID, uuid.Nil); err != nil {
			return nil, err
		}
		d.EndDate = cloneDatePtr(d.EndDate)
		d.InterestRate = cloneDecimalPtr(d.InterestRate)
		c.debts.add(d.ID, d)
	}

	seen = make(map[uuid.UUID]struct{})
	for _, inv := range snap.Investments {
		if err := addUnique(seen, "investment", inv.ID); err != nil {
			return nil, err
		}
		if err := validateInvestment(inv); err != nil {
			return nil, importErr("investment %s: %v", inv.ID, err)
		}
		if _, ok := c.persons.get(inv.PersonID); !ok {
			return nil, importErr("investment %s references unknown person %s", inv.ID, inv.PersonID)
		}
		c.investments.add(inv.ID, inv)
	}

	return c, nil
}

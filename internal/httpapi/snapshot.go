package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/haushalt/ledger/internal/errs"
	"github.com/haushalt/ledger/internal/ledger"
)

// exportSnapshot serves the full ledger state in the interchange format.
func (s *Server) exportSnapshot(w http.ResponseWriter, r *http.Request) {
	toJSON(w, http.StatusOK, s.st.ExportSnapshot())
}

// importPayload mirrors ledger.Snapshot with pointer slices so a missing
// collection key is distinguishable from an empty one.
type importPayload struct {
	Timestamp        *time.Time               `json:"timestamp"`
	Persons          *[]ledger.Person         `json:"persons"`
	Accounts         *[]ledger.Account        `json:"accounts"`
	Categories       *[]ledger.Category       `json:"categories"`
	Transactions     *[]ledger.Transaction    `json:"transactions"`
	RecurringEntries *[]ledger.RecurringEntry `json:"recurringEntries"`
	AmountSchedules  *[]ledger.AmountSchedule `json:"amountSchedules"`
	Subscriptions    *[]ledger.Subscription   `json:"subscriptions"`
	Debts            *[]ledger.Debt           `json:"debts"`
	Investments      *[]ledger.Investment     `json:"investments"`
}

// importSnapshot replaces the entire ledger state with the uploaded snapshot.
// The payload is validated in full before anything is applied: a rejected
// import leaves the current state untouched.
func (s *Server) importSnapshot(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}
	var payload importPayload
	if !decodeJSON(w, r, &payload) {
		return
	}
	snap, err := payload.toSnapshot()
	if err != nil {
		writeStoreErr(w, err)
		return
	}
	if err := s.st.ImportSnapshot(snap); err != nil {
		writeStoreErr(w, err)
		return
	}
	s.persist(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (p importPayload) toSnapshot() (ledger.Snapshot, error) {
	missing := func(key string) (ledger.Snapshot, error) {
		return ledger.Snapshot{}, fmt.Errorf("%w: missing collection %q", errs.ErrImport, key)
	}
	switch {
	case p.Persons == nil:
		return missing("persons")
	case p.Accounts == nil:
		return missing("accounts")
	case p.Categories == nil:
		return missing("categories")
	case p.Transactions == nil:
		return missing("transactions")
	case p.RecurringEntries == nil:
		return missing("recurringEntries")
	case p.AmountSchedules == nil:
		return missing("amountSchedules")
	case p.Subscriptions == nil:
		return missing("subscriptions")
	case p.Debts == nil:
		return missing("debts")
	case p.Investments == nil:
		return missing("investments")
	}
	snap := ledger.Snapshot{
		Persons:          *p.Persons,
		Accounts:         *p.Accounts,
		Categories:       *p.Categories,
		Transactions:     *p.Transactions,
		RecurringEntries: *p.RecurringEntries,
		AmountSchedules:  *p.AmountSchedules,
		Subscriptions:    *p.Subscriptions,
		Debts:            *p.Debts,
		Investments:      *p.Investments,
	}
	if p.Timestamp != nil {
		snap.Timestamp = *p.Timestamp
	}
	return snap, nil
}

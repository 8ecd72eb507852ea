package forecast

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/haushalt/ledger/internal/date"
	"github.com/haushalt/ledger/internal/ledger"
)

const (
	upcomingWindowDays = 30
	upcomingLimit      = 5
)

// Payment is one upcoming withdrawal within the short-horizon window. Amount is
// always a negative magnitude: this view answers "what will be withdrawn soon",
// so recurring income is intentionally excluded.
type Payment struct {
	ID        uuid.UUID
	Kind      DetailKind
	Name      string
	PersonID  uuid.UUID
	AccountID uuid.UUID
	Date      date.Date
	Amount    decimal.Decimal
}

// UpcomingPayments returns at most the five earliest subscription and debt
// payments due within the next 30 days, sorted by occurrence date.
//
// Monthly obligations with a day-of-month anchor are dated at that day in the
// current month, rolled forward one month when the day has already passed.
// Subscriptions without an anchor (or with a non-monthly frequency) are
// included permissively and dated today.
func UpcomingPayments(snap ledger.Snapshot, today date.Date) []Payment {
	windowEnd := today.AddDays(upcomingWindowDays)
	var out []Payment

	for _, sub := range snap.Subscriptions {
		if sub.EndDate != nil && sub.EndDate.Before(today) {
			continue
		}
		due := today
		if sub.Frequency == ledger.FrequencyMonthly && sub.DayOfMonth >= 1 {
			due = nextMonthlyDate(today, sub.DayOfMonth)
			if due.After(windowEnd) {
				continue
			}
		}
		out = append(out, Payment{
			ID:        sub.ID,
			Kind:      DetailSubscription,
			Name:      sub.Name,
			PersonID:  sub.PersonID,
			AccountID: sub.AccountID,
			Date:      due,
			Amount:    sub.Amount.Abs().Neg(),
		})
	}

	for _, d := range snap.Debts {
		if d.RemainingAmount.Sign() <= 0 {
			continue
		}
		due := nextMonthlyDate(today, d.DayOfMonth)
		if due.After(windowEnd) {
			continue
		}
		out = append(out, Payment{
			ID:        d.ID,
			Kind:      DetailDebt,
			Name:      d.Name,
			PersonID:  d.PersonID,
			AccountID: d.AccountID,
			Date:      due,
			Amount:    d.MonthlyPayment.Neg(),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if len(out) > upcomingLimit {
		out = out[:upcomingLimit]
	}
	return out
}

// nextMonthlyDate anchors dayOfMonth in the current month and rolls forward one
// month when that day already passed. Out-of-range days normalize through the
// calendar (the 31st in February becomes early March).
func nextMonthlyDate(today date.Date, dayOfMonth int) date.Date {
	due := date.New(today.Year(), today.Month(), dayOfMonth)
	if due.Day() < today.Day() {
		due = due.AddMonths(1)
	}
	return due
}

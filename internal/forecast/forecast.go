// Package forecast derives forward-looking projections from a ledger snapshot.
// Everything here is a pure function over snapshot values: the engine never
// mutates its input and never touches the live store.
package forecast

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/haushalt/ledger/internal/date"
	"github.com/haushalt/ledger/internal/ledger"
)

// Horizon is the requested forward time span for a projection.
type Horizon string

const (
	HorizonFiveWeeks Horizon = "5w"
	HorizonSixMonths Horizon = "6m"
	HorizonTwoYears  Horizon = "2y"
)

// ParseHorizon maps the API token to a Horizon.
func ParseHorizon(s string) (Horizon, error) {
	switch Horizon(s) {
	case HorizonFiveWeeks, HorizonSixMonths, HorizonTwoYears:
		return Horizon(s), nil
	}
	return "", fmt.Errorf("unknown horizon %q", s)
}

// End returns the last day covered by the horizon, counted from today. The
// five-week horizon is still bucketed at month granularity, yielding one or
// two monthly buckets.
func (h Horizon) End(today date.Date) date.Date {
	switch h {
	case HorizonFiveWeeks:
		return today.AddDays(5 * 7)
	case HorizonTwoYears:
		return today.AddYears(2)
	default:
		return today.AddMonths(6)
	}
}

// DetailKind tags a detail line with the obligation that produced it.
type DetailKind string

const (
	DetailRecurring    DetailKind = "recurring"
	DetailSubscription DetailKind = "subscription"
	DetailDebt         DetailKind = "debt"
)

// Detail is one obligation's contribution to a monthly bucket. Amount is
// signed: income positive, expenses negative.
type Detail struct {
	Kind   DetailKind
	Name   string
	Amount decimal.Decimal
}

// Period is one monthly forecast bucket.
type Period struct {
	Month    date.Date
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
	Details  []Detail
}

// Projection is the full long-horizon forecast: ordered monthly buckets plus
// derived summary totals. Percentages are relative to the absolute initial
// balance and defined as zero when the initial balance is zero.
type Projection struct {
	InitialBalance decimal.Decimal
	Periods        []Period
	TotalIncome    decimal.Decimal
	TotalExpenses  decimal.Decimal
	NetChange      decimal.Decimal
	FinalBalance   decimal.Decimal
	IncomePercent  decimal.Decimal
	ExpensePercent decimal.Decimal
	BalancePercent decimal.Decimal
}

// Project expands the snapshot's recurring entries, subscriptions, and debts
// into monthly buckets from the first of the current month through today plus
// the horizon, accumulating a running balance on top of the current total
// account balance.
//
// Only monthly and yearly obligations populate the buckets; daily and weekly
// frequencies are out of scope for month-granularity projection.
func Project(snap ledger.Snapshot, today date.Date, h Horizon) Projection {
	initial := TotalBalance(snap.Accounts)
	end := h.End(today)

	overrides := make(map[uuid.UUID][]ledger.AmountSchedule)
	for _, a := range snap.AmountSchedules {
		overrides[a.EntryID] = append(overrides[a.EntryID], a)
	}

	p := Projection{InitialBalance: initial}
	running := initial
	for cursor := today.StartOfMonth(); !cursor.After(end); cursor = cursor.AddMonths(1) {
		var income, expenses decimal.Decimal
		var details []Detail

		for _, e := range snap.RecurringEntries {
			if !active(e.StartDate, e.EndDate, cursor) {
				continue
			}
			switch e.Frequency {
			case ledger.FrequencyMonthly:
				amt := entryAmountAt(e, overrides[e.ID], cursor)
				income = income.Add(amt)
				details = append(details, Detail{Kind: DetailRecurring, Name: e.Name, Amount: amt})
			case ledger.FrequencyYearly:
				if cursor.Month() == e.StartDate.Month() {
					amt := entryAmountAt(e, overrides[e.ID], cursor)
					income = income.Add(amt)
					details = append(details, Detail{Kind: DetailRecurring, Name: e.Name, Amount: amt})
				}
			}
		}

		for _, sub := range snap.Subscriptions {
			if sub.Frequency != ledger.FrequencyMonthly || !active(sub.StartDate, sub.EndDate, cursor) {
				continue
			}
			expenses = expenses.Add(sub.Amount)
			details = append(details, Detail{Kind: DetailSubscription, Name: sub.Name, Amount: sub.Amount.Neg()})
		}

		for _, d := range snap.Debts {
			if d.EndDate != nil && d.EndDate.Before(cursor) {
				continue
			}
			if d.MonthlyPayment.Sign() <= 0 {
				continue
			}
			expenses = expenses.Add(d.MonthlyPayment)
			details = append(details, Detail{Kind: DetailDebt, Name: d.Name, Amount: d.MonthlyPayment.Neg()})
		}

		sort.SliceStable(details, func(i, j int) bool {
			return details[i].Amount.GreaterThan(details[j].Amount)
		})

		running = running.Add(income).Sub(expenses)
		p.Periods = append(p.Periods, Period{
			Month:    cursor,
			Income:   income,
			Expenses: expenses,
			Balance:  running,
			Details:  details,
		})
		p.TotalIncome = p.TotalIncome.Add(income)
		p.TotalExpenses = p.TotalExpenses.Add(expenses)
	}

	p.NetChange = p.TotalIncome.Sub(p.TotalExpenses)
	p.FinalBalance = initial.Add(p.NetChange)
	p.IncomePercent = percentOf(p.TotalIncome, initial)
	p.ExpensePercent = percentOf(p.TotalExpenses, initial)
	p.BalancePercent = percentOf(p.NetChange, initial)
	return p
}

// active reports whether an obligation contributes to the cursor month: it has
// started by the cursor and has not ended before it.
func active(start date.Date, end *date.Date, cursor date.Date) bool {
	if end != nil && end.Before(cursor) {
		return false
	}
	return !start.After(cursor)
}

// entryAmountAt resolves the amount for a recurring entry in the cursor month.
// The amount schedule override whose [startDate, endDate) slice contains the
// cursor wins; when slices overlap, the one starting latest wins. Without a
// matching override the entry's own amount applies.
func entryAmountAt(e ledger.RecurringEntry, schedules []ledger.AmountSchedule, cursor date.Date) decimal.Decimal {
	amt := e.Amount
	var best *ledger.AmountSchedule
	for i := range schedules {
		sched := schedules[i]
		if sched.StartDate.After(cursor) {
			continue
		}
		if sched.EndDate != nil && !cursor.Before(*sched.EndDate) {
			continue
		}
		if best == nil || sched.StartDate.After(best.StartDate) {
			best = &schedules[i]
		}
	}
	if best != nil {
		amt = best.Amount
	}
	return amt
}

var hundred = decimal.NewFromInt(100)

// percentOf returns part relative to |base| as a percentage, zero when base is
// zero.
func percentOf(part, base decimal.Decimal) decimal.Decimal {
	if base.IsZero() {
		return decimal.Zero
	}
	return part.Div(base.Abs()).Mul(hundred)
}

package forecast

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/haushalt/ledger/internal/date"
	"github.com/haushalt/ledger/internal/ledger"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func datePtr(s string) *date.Date {
	d := date.MustParse(s)
	return &d
}

func baseSnapshot() ledger.Snapshot {
	personID := uuid.New()
	accountID := uuid.New()
	categoryID := uuid.New()
	return ledger.Snapshot{
		Persons: []ledger.Person{{ID: personID, Name: "Anna"}},
		Accounts: []ledger.Account{{
			ID:       accountID,
			PersonID: personID,
			Name:     "Girokonto",
			Type:     ledger.AccountTypeGiro,
			Balance:  dec("1000"),
			Currency: "EUR",
		}},
		Categories: []ledger.Category{{ID: categoryID, Name: "Sonstiges", Type: ledger.CategoryTypeExpense}},
	}
}

func ids(snap ledger.Snapshot) (person, account, category uuid.UUID) {
	return snap.Persons[0].ID, snap.Accounts[0].ID, snap.Categories[0].ID
}

func TestProjectSixMonths(t *testing.T) {
	snap := baseSnapshot()
	personID, accountID, categoryID := ids(snap)

	snap.RecurringEntries = []ledger.RecurringEntry{{
		ID: uuid.New(), PersonID: personID, AccountID: accountID, CategoryID: categoryID,
		Name: "Gehalt", Amount: dec("2000"),
		StartDate: date.MustParse("2024-04-15"), Frequency: ledger.FrequencyMonthly,
	}}
	snap.Subscriptions = []ledger.Subscription{{
		ID: uuid.New(), PersonID: personID, AccountID: accountID, CategoryID: categoryID,
		Name: "Fitnessstudio", Amount: dec("15"),
		StartDate: date.MustParse("2024-03-15"), Frequency: ledger.FrequencyMonthly,
	}}
	snap.Debts = []ledger.Debt{{
		ID: uuid.New(), PersonID: personID, AccountID: accountID,
		Name: "Autokredit", Type: ledger.DebtTypeCredit,
		TotalAmount: dec("2400"), RemainingAmount: dec("2400"),
		MonthlyPayment: dec("200"),
		StartDate:      date.MustParse("2023-06-01"), DayOfMonth: 1,
	}}

	today := date.MustParse("2024-06-15")
	proj := Project(snap, today, HorizonSixMonths)

	require.True(t, proj.InitialBalance.Equal(dec("1000")))
	require.NotEmpty(t, proj.Periods)
	require.True(t, proj.Periods[0].Month.Equal(date.MustParse("2024-06-01")))

	for _, p := range proj.Periods {
		require.True(t, p.Income.Equal(dec("2000")), "month %s income", p.Month)
		require.True(t, p.Expenses.Equal(dec("215")), "month %s expenses", p.Month)
	}
	require.True(t, proj.Periods[0].Balance.Equal(dec("2785")), "running balance after month 1")
	require.True(t, proj.Periods[5].Balance.Equal(dec("11710")), "running balance after month 6")
}

func TestProjectDetailLinesSorted(t *testing.T) {
	snap := baseSnapshot()
	personID, accountID, categoryID := ids(snap)

	snap.RecurringEntries = []ledger.RecurringEntry{{
		ID: uuid.New(), PersonID: personID, AccountID: accountID, CategoryID: categoryID,
		Name: "Gehalt", Amount: dec("2000"),
		StartDate: date.MustParse("2024-01-01"), Frequency: ledger.FrequencyMonthly,
	}}
	snap.Subscriptions = []ledger.Subscription{{
		ID: uuid.New(), PersonID: personID, AccountID: accountID, CategoryID: categoryID,
		Name: "Netflix", Amount: dec("9.99"),
		StartDate: date.MustParse("2024-01-01"), Frequency: ledger.FrequencyMonthly,
	}}
	snap.Debts = []ledger.Debt{{
		ID: uuid.New(), PersonID: personID, AccountID: accountID,
		Name: "Kredit", Type: ledger.DebtTypeCredit,
		TotalAmount: dec("5000"), RemainingAmount: dec("3000"),
		MonthlyPayment: dec("250"),
		StartDate:      date.MustParse("2023-01-01"), DayOfMonth: 1,
	}}

	proj := Project(snap, date.MustParse("2024-06-15"), HorizonSixMonths)
	require.NotEmpty(t, proj.Periods)
	details := proj.Periods[0].Details
	require.Len(t, details, 3)
	require.Equal(t, "Gehalt", details[0].Name)
	require.True(t, details[0].Amount.Equal(dec("2000")))
	require.Equal(t, "Netflix", details[1].Name)
	require.True(t, details[1].Amount.Equal(dec("-9.99")))
	require.Equal(t, "Kredit", details[2].Name)
	require.True(t, details[2].Amount.Equal(dec("-250")))
}

func TestProjectYearlyEntryOnlyInStartMonth(t *testing.T) {
	snap := baseSnapshot()
	personID, accountID, categoryID := ids(snap)

	snap.RecurringEntries = []ledger.RecurringEntry{{
		ID: uuid.New(), PersonID: personID, AccountID: accountID, CategoryID: categoryID,
		Name: "Weihnachtsgeld", Amount: dec("1500"),
		StartDate: date.MustParse("2023-11-20"), Frequency: ledger.FrequencyYearly,
	}}

	proj := Project(snap, date.MustParse("2024-06-15"), HorizonSixMonths)
	for _, p := range proj.Periods {
		want := dec("0")
		if p.Month.Month() == 11 {
			want = dec("1500")
		}
		require.True(t, p.Income.Equal(want), "month %s", p.Month)
	}
	require.True(t, proj.TotalIncome.Equal(dec("1500")), "exactly one yearly occurrence in the horizon")
}

func TestProjectNotYetStartedAndEndedAreExcluded(t *testing.T) {
	snap := baseSnapshot()
	personID, accountID, categoryID := ids(snap)

	snap.RecurringEntries = []ledger.RecurringEntry{
		{
			ID: uuid.New(), PersonID: personID, AccountID: accountID, CategoryID: categoryID,
			Name: "Zukunft", Amount: dec("100"),
			StartDate: date.MustParse("2024-09-10"), Frequency: ledger.FrequencyMonthly,
		},
		{
			ID: uuid.New(), PersonID: personID, AccountID: accountID, CategoryID: categoryID,
			Name: "Vorbei", Amount: dec("100"),
			StartDate: date.MustParse("2023-01-01"), EndDate: datePtr("2024-05-31"),
			Frequency: ledger.FrequencyMonthly,
		},
	}

	proj := Project(snap, date.MustParse("2024-06-15"), HorizonSixMonths)
	require.True(t, proj.Periods[0].Income.Equal(dec("0")), "June: one not started, one ended")
	// The future entry starts contributing with the September bucket.
	for _, p := range proj.Periods {
		if p.Month.Equal(date.MustParse("2024-09-01")) {
			require.True(t, p.Income.Equal(dec("100")))
		}
	}
}

func TestProjectDailyWeeklyNotExpanded(t *testing.T) {
	snap := baseSnapshot()
	personID, accountID, categoryID := ids(snap)

	snap.RecurringEntries = []ledger.RecurringEntry{{
		ID: uuid.New(), PersonID: personID, AccountID: accountID, CategoryID: categoryID,
		Name: "Taschengeld", Amount: dec("5"),
		StartDate: date.MustParse("2024-01-01"), Frequency: ledger.FrequencyWeekly,
	}}

	proj := Project(snap, date.MustParse("2024-06-15"), HorizonSixMonths)
	require.True(t, proj.TotalIncome.Equal(dec("0")))
}

func TestProjectAmountScheduleOverride(t *testing.T) {
	snap := baseSnapshot()
	personID, accountID, categoryID := ids(snap)

	entryID := uuid.New()
	snap.RecurringEntries = []ledger.RecurringEntry{{
		ID: entryID, PersonID: personID, AccountID: accountID, CategoryID: categoryID,
		Name: "Gehalt", Amount: dec("2000"),
		StartDate: date.MustParse("2024-01-01"), Frequency: ledger.FrequencyMonthly,
	}}
	snap.AmountSchedules = []ledger.AmountSchedule{
		{
			ID: uuid.New(), EntryID: entryID, Amount: dec("2200"),
			StartDate: date.MustParse("2024-07-01"), EndDate: datePtr("2024-09-01"),
		},
		// Overlapping slice starting later wins inside its window.
		{
			ID: uuid.New(), EntryID: entryID, Amount: dec("2400"),
			StartDate: date.MustParse("2024-08-01"), EndDate: datePtr("2024-10-01"),
		},
	}

	proj := Project(snap, date.MustParse("2024-06-15"), HorizonSixMonths)
	byMonth := map[string]decimal.Decimal{}
	for _, p := range proj.Periods {
		byMonth[p.Month.String()] = p.Income
	}
	require.True(t, byMonth["2024-06-01"].Equal(dec("2000")), "before any override")
	require.True(t, byMonth["2024-07-01"].Equal(dec("2200")), "first override")
	require.True(t, byMonth["2024-08-01"].Equal(dec("2400")), "later-starting override wins")
	require.True(t, byMonth["2024-09-01"].Equal(dec("2400")), "second override still live, first expired")
	require.True(t, byMonth["2024-10-01"].Equal(dec("2000")), "end date is exclusive")
}

func TestProjectFiveWeekHorizonBuckets(t *testing.T) {
	snap := baseSnapshot()
	proj := Project(snap, date.MustParse("2024-06-15"), HorizonFiveWeeks)
	// Five weeks from mid-June reaches late July: June and July buckets.
	require.Len(t, proj.Periods, 2)
	require.True(t, proj.Periods[0].Month.Equal(date.MustParse("2024-06-01")))
	require.True(t, proj.Periods[1].Month.Equal(date.MustParse("2024-07-01")))
}

func TestProjectZeroInitialBalancePercentGuards(t *testing.T) {
	snap := baseSnapshot()
	snap.Accounts[0].Balance = dec("0")
	personID, accountID, categoryID := ids(snap)
	snap.RecurringEntries = []ledger.RecurringEntry{{
		ID: uuid.New(), PersonID: personID, AccountID: accountID, CategoryID: categoryID,
		Name: "Gehalt", Amount: dec("2000"),
		StartDate: date.MustParse("2024-01-01"), Frequency: ledger.FrequencyMonthly,
	}}

	proj := Project(snap, date.MustParse("2024-06-15"), HorizonSixMonths)
	require.True(t, proj.IncomePercent.IsZero())
	require.True(t, proj.ExpensePercent.IsZero())
	require.True(t, proj.BalancePercent.IsZero())
}

func TestParseHorizon(t *testing.T) {
	for _, ok := range []string{"5w", "6m", "2y"} {
		h, err := ParseHorizon(ok)
		require.NoError(t, err)
		require.Equal(t, Horizon(ok), h)
	}
	_, err := ParseHorizon("3d")
	require.Error(t, err)
}

func TestUpcomingPaymentsRollForward(t *testing.T) {
	snap := baseSnapshot()
	personID, accountID, categoryID := ids(snap)
	snap.Subscriptions = []ledger.Subscription{{
		ID: uuid.New(), PersonID: personID, AccountID: accountID, CategoryID: categoryID,
		Name: "Netflix", Amount: dec("9.99"),
		StartDate: date.MustParse("2024-01-01"), Frequency: ledger.FrequencyMonthly,
		DayOfMonth: 15,
	}}

	payments := UpcomingPayments(snap, date.MustParse("2024-03-20"))
	require.Len(t, payments, 1)
	require.True(t, payments[0].Date.Equal(date.MustParse("2024-04-15")), "15th already passed, rolled to next month")
	require.True(t, payments[0].Amount.Equal(dec("-9.99")))
	require.Equal(t, DetailSubscription, payments[0].Kind)
}

func TestUpcomingPaymentsWindowAndLimit(t *testing.T) {
	snap := baseSnapshot()
	personID, accountID, categoryID := ids(snap)

	today := date.MustParse("2024-03-01")
	for day := 2; day <= 8; day++ {
		snap.Subscriptions = append(snap.Subscriptions, ledger.Subscription{
			ID: uuid.New(), PersonID: personID, AccountID: accountID, CategoryID: categoryID,
			Name: "Abo", Amount: dec("5"),
			StartDate: date.MustParse("2024-01-01"), Frequency: ledger.FrequencyMonthly,
			DayOfMonth: day,
		})
	}

	payments := UpcomingPayments(snap, today)
	require.Len(t, payments, 5, "capped at the five earliest")
	for i := 1; i < len(payments); i++ {
		require.False(t, payments[i].Date.Before(payments[i-1].Date), "sorted ascending by date")
	}
}

func TestUpcomingPaymentsSkipsSettledDebtAndEnded(t *testing.T) {
	snap := baseSnapshot()
	personID, accountID, categoryID := ids(snap)
	today := date.MustParse("2024-03-01")

	snap.Debts = []ledger.Debt{
		{
			ID: uuid.New(), PersonID: personID, AccountID: accountID,
			Name: "Abbezahlt", Type: ledger.DebtTypePersonal,
			TotalAmount: dec("1000"), RemainingAmount: dec("0"),
			MonthlyPayment: dec("100"),
			StartDate:      date.MustParse("2023-01-01"), DayOfMonth: 5,
		},
		{
			ID: uuid.New(), PersonID: personID, AccountID: accountID,
			Name: "Offen", Type: ledger.DebtTypeCredit,
			TotalAmount: dec("1000"), RemainingAmount: dec("400"),
			MonthlyPayment: dec("100"),
			StartDate:      date.MustParse("2023-01-01"), DayOfMonth: 5,
		},
	}
	snap.Subscriptions = []ledger.Subscription{{
		ID: uuid.New(), PersonID: personID, AccountID: accountID, CategoryID: categoryID,
		Name: "Gekündigt", Amount: dec("7"),
		StartDate: date.MustParse("2023-01-01"), EndDate: datePtr("2024-01-31"),
		Frequency: ledger.FrequencyMonthly, DayOfMonth: 10,
	}}

	payments := UpcomingPayments(snap, today)
	require.Len(t, payments, 1)
	require.Equal(t, "Offen", payments[0].Name)
	require.True(t, payments[0].Amount.Equal(dec("-100")))
	require.True(t, payments[0].Date.Equal(date.MustParse("2024-03-05")))
}

func TestAggregateGuards(t *testing.T) {
	inv := Investments([]ledger.Investment{{
		ID:                   uuid.New(),
		AssetName:            "Staub",
		AssetType:            ledger.AssetTypeOther,
		Units:                dec("0"),
		PurchasePricePerUnit: dec("0"),
		CurrentPricePerUnit:  dec("100"),
	}})
	require.True(t, inv.ProfitPercent.IsZero(), "zero cost basis must not divide")

	payoff := DebtPayoffPercent(ledger.Debt{TotalAmount: dec("0"), RemainingAmount: dec("0")})
	require.True(t, payoff.IsZero(), "zero total must not divide")

	half := DebtPayoffPercent(ledger.Debt{TotalAmount: dec("1000"), RemainingAmount: dec("500")})
	require.True(t, half.Equal(dec("50")))
}

func TestRealizedMonth(t *testing.T) {
	today := date.MustParse("2024-03-20")
	txs := []ledger.Transaction{
		{Date: date.MustParse("2024-03-01"), Amount: dec("2000")},
		{Date: date.MustParse("2024-03-05"), Amount: dec("-50")},
		{Date: date.MustParse("2024-03-17"), Amount: dec("-120.50")},
		{Date: date.MustParse("2024-02-28"), Amount: dec("-999")},
		{Date: date.MustParse("2023-03-10"), Amount: dec("500")},
	}
	income, expense := RealizedMonth(txs, today)
	require.True(t, income.Equal(dec("2000")))
	require.True(t, expense.Equal(dec("170.50")))
}

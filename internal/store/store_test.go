package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/haushalt/ledger/internal/date"
	"github.com/haushalt/ledger/internal/errs"
	"github.com/haushalt/ledger/internal/ledger"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func datePtr(s string) *date.Date {
	d := date.MustParse(s)
	return &d
}

type fixture struct {
	st       *Store
	person   ledger.Person
	account  ledger.Account
	category ledger.Category
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	st := New()
	p, err := st.AddPerson(ledger.Person{Name: "Anna"})
	require.NoError(t, err)
	a, err := st.AddAccount(ledger.Account{
		PersonID: p.ID,
		Name:     "Girokonto",
		Type:     ledger.AccountTypeGiro,
		Balance:  dec("1000"),
		Currency: "EUR",
	})
	require.NoError(t, err)
	c, err := st.AddCategory(ledger.Category{Name: "Lebensmittel", Type: ledger.CategoryTypeExpense, Color: "#ff0000"})
	require.NoError(t, err)
	return fixture{st: st, person: p, account: a, category: c}
}

func (f fixture) balance(t *testing.T) decimal.Decimal {
	t.Helper()
	a, err := f.st.Account(f.account.ID)
	require.NoError(t, err)
	return a.Balance
}

func (f fixture) addTransaction(t *testing.T, amount string, day string) ledger.Transaction {
	t.Helper()
	tx, err := f.st.AddTransaction(ledger.Transaction{
		Date:       date.MustParse(day),
		PersonID:   f.person.ID,
		AccountID:  f.account.ID,
		CategoryID: f.category.ID,
		Amount:     dec(amount),
	})
	require.NoError(t, err)
	return tx
}

func TestTransactionBalanceInvariant(t *testing.T) {
	f := newFixture(t)

	tx := f.addTransaction(t, "-50.25", "2024-03-01")
	require.True(t, f.balance(t).Equal(dec("949.75")))

	f.addTransaction(t, "200", "2024-03-02")
	require.True(t, f.balance(t).Equal(dec("1149.75")))

	// Amount change reverts the old amount and applies the new one.
	tx.Amount = dec("-100")
	require.NoError(t, f.st.UpdateTransaction(tx))
	require.True(t, f.balance(t).Equal(dec("1100")))

	require.NoError(t, f.st.DeleteTransaction(tx.ID))
	require.True(t, f.balance(t).Equal(dec("1200")))
}

func TestTransactionMoveBetweenAccounts(t *testing.T) {
	f := newFixture(t)
	other, err := f.st.AddAccount(ledger.Account{
		PersonID: f.person.ID,
		Name:     "Sparbuch",
		Type:     ledger.AccountTypeSavings,
		Balance:  dec("500"),
		Currency: "EUR",
	})
	require.NoError(t, err)

	tx := f.addTransaction(t, "-80", "2024-03-05")
	require.True(t, f.balance(t).Equal(dec("920")))

	tx.AccountID = other.ID
	require.NoError(t, f.st.UpdateTransaction(tx))

	require.True(t, f.balance(t).Equal(dec("1000")), "old account reverted")
	moved, err := f.st.Account(other.ID)
	require.NoError(t, err)
	require.True(t, moved.Balance.Equal(dec("420")), "new account charged")
}

func TestAddTransactionDanglingReference(t *testing.T) {
	f := newFixture(t)
	before := f.balance(t)

	_, err := f.st.AddTransaction(ledger.Transaction{
		Date:       date.MustParse("2024-03-01"),
		PersonID:   f.person.ID,
		AccountID:  uuid.New(),
		CategoryID: f.category.ID,
		Amount:     dec("-10"),
	})
	require.ErrorIs(t, err, errs.ErrDanglingReference)
	require.True(t, f.balance(t).Equal(before), "failed add must not touch balances")
	require.Empty(t, f.st.Transactions())
}

func TestDeletePersonCascades(t *testing.T) {
	f := newFixture(t)
	f.addTransaction(t, "-10", "2024-03-01")

	entry, err := f.st.AddRecurringEntry(ledger.RecurringEntry{
		PersonID:   f.person.ID,
		AccountID:  f.account.ID,
		CategoryID: f.category.ID,
		Name:       "Gehalt",
		Amount:     dec("2000"),
		StartDate:  date.MustParse("2024-01-01"),
		Frequency:  ledger.FrequencyMonthly,
	})
	require.NoError(t, err)
	_, err = f.st.AddAmountSchedule(ledger.AmountSchedule{
		EntryID:   entry.ID,
		StartDate: date.MustParse("2024-06-01"),
		Amount:    dec("2100"),
	})
	require.NoError(t, err)
	_, err = f.st.AddSubscription(ledger.Subscription{
		PersonID:   f.person.ID,
		AccountID:  f.account.ID,
		CategoryID: f.category.ID,
		Name:       "Netflix",
		Amount:     dec("9.99"),
		StartDate:  date.MustParse("2024-01-01"),
		Frequency:  ledger.FrequencyMonthly,
		DayOfMonth: 15,
	})
	require.NoError(t, err)
	_, err = f.st.AddDebt(ledger.Debt{
		PersonID:        f.person.ID,
		AccountID:       f.account.ID,
		Name:            "Autokredit",
		Type:            ledger.DebtTypeCredit,
		TotalAmount:     dec("12000"),
		RemainingAmount: dec("8000"),
		MonthlyPayment:  dec("250"),
		StartDate:       date.MustParse("2023-01-01"),
		DayOfMonth:      1,
	})
	require.NoError(t, err)
	_, err = f.st.AddInvestment(ledger.Investment{
		PersonID:             f.person.ID,
		AssetName:            "MSCI World",
		AssetType:            ledger.AssetTypeStock,
		PurchaseDate:         date.MustParse("2022-05-01"),
		Units:                dec("10"),
		PurchasePricePerUnit: dec("80"),
		CurrentPricePerUnit:  dec("95"),
		Currency:             "EUR",
	})
	require.NoError(t, err)

	require.NoError(t, f.st.DeletePerson(f.person.ID))

	require.Empty(t, f.st.Persons())
	require.Empty(t, f.st.Accounts())
	require.Empty(t, f.st.Transactions())
	require.Empty(t, f.st.RecurringEntries())
	require.Empty(t, f.st.AmountSchedules())
	require.Empty(t, f.st.Subscriptions())
	require.Empty(t, f.st.Debts())
	require.Empty(t, f.st.Investments())
	// Categories are household-level and survive.
	require.Len(t, f.st.Categories(), 1)
}

func TestDeleteAccountCascades(t *testing.T) {
	f := newFixture(t)
	f.addTransaction(t, "-10", "2024-03-01")
	_, err := f.st.AddSubscription(ledger.Subscription{
		PersonID:   f.person.ID,
		AccountID:  f.account.ID,
		CategoryID: f.category.ID,
		Name:       "Spotify",
		Amount:     dec("10.99"),
		StartDate:  date.MustParse("2024-01-01"),
		Frequency:  ledger.FrequencyMonthly,
	})
	require.NoError(t, err)
	inv, err := f.st.AddInvestment(ledger.Investment{
		PersonID:             f.person.ID,
		AssetName:            "Bund 2030",
		AssetType:            ledger.AssetTypeBond,
		PurchaseDate:         date.MustParse("2023-01-01"),
		Units:                dec("5"),
		PurchasePricePerUnit: dec("100"),
		CurrentPricePerUnit:  dec("101"),
		Currency:             "EUR",
	})
	require.NoError(t, err)

	require.NoError(t, f.st.DeleteAccount(f.account.ID))

	require.Empty(t, f.st.Accounts())
	require.Empty(t, f.st.Transactions())
	require.Empty(t, f.st.Subscriptions())
	// Person and person-scoped investments survive an account deletion.
	require.Len(t, f.st.Persons(), 1)
	_, err = f.st.Investment(inv.ID)
	require.NoError(t, err)
}

func TestDeleteCategoryInUse(t *testing.T) {
	f := newFixture(t)
	f.addTransaction(t, "-5", "2024-03-01")

	err := f.st.DeleteCategory(f.category.ID)
	require.ErrorIs(t, err, errs.ErrCategoryInUse)
	require.Len(t, f.st.Categories(), 1)

	require.NoError(t, f.st.DeleteTransaction(f.st.Transactions()[0].ID))
	require.NoError(t, f.st.DeleteCategory(f.category.ID))
	require.Empty(t, f.st.Categories())
}

func TestDeleteRecurringEntryRemovesSchedules(t *testing.T) {
	f := newFixture(t)
	entry, err := f.st.AddRecurringEntry(ledger.RecurringEntry{
		PersonID:   f.person.ID,
		AccountID:  f.account.ID,
		CategoryID: f.category.ID,
		Name:       "Gehalt",
		Amount:     dec("2000"),
		StartDate:  date.MustParse("2024-01-01"),
		Frequency:  ledger.FrequencyMonthly,
	})
	require.NoError(t, err)
	_, err = f.st.AddAmountSchedule(ledger.AmountSchedule{
		EntryID:   entry.ID,
		StartDate: date.MustParse("2024-06-01"),
		EndDate:   datePtr("2024-09-01"),
		Amount:    dec("2500"),
	})
	require.NoError(t, err)

	require.NoError(t, f.st.DeleteRecurringEntry(entry.ID))
	require.Empty(t, f.st.RecurringEntries())
	require.Empty(t, f.st.AmountSchedules())
}

func TestAmountScheduleRequiresEntry(t *testing.T) {
	f := newFixture(t)
	_, err := f.st.AddAmountSchedule(ledger.AmountSchedule{
		EntryID:   uuid.New(),
		StartDate: date.MustParse("2024-01-01"),
		Amount:    dec("100"),
	})
	require.ErrorIs(t, err, errs.ErrDanglingReference)
}

func TestDebtValidationBounds(t *testing.T) {
	f := newFixture(t)
	base := ledger.Debt{
		PersonID:        f.person.ID,
		AccountID:       f.account.ID,
		Name:            "Kredit",
		Type:            ledger.DebtTypeCredit,
		TotalAmount:     dec("1000"),
		RemainingAmount: dec("500"),
		MonthlyPayment:  dec("50"),
		StartDate:       date.MustParse("2024-01-01"),
		DayOfMonth:      1,
	}

	d := base
	d.RemainingAmount = dec("1200")
	_, err := f.st.AddDebt(d)
	require.ErrorIs(t, err, errs.ErrInvalid)

	d = base
	d.RemainingAmount = dec("-1")
	_, err = f.st.AddDebt(d)
	require.ErrorIs(t, err, errs.ErrInvalid)

	d = base
	d.DayOfMonth = 32
	_, err = f.st.AddDebt(d)
	require.ErrorIs(t, err, errs.ErrInvalid)

	_, err = f.st.AddDebt(base)
	require.NoError(t, err)
}

func TestSubscriptionValidation(t *testing.T) {
	f := newFixture(t)
	sub := ledger.Subscription{
		PersonID:   f.person.ID,
		AccountID:  f.account.ID,
		CategoryID: f.category.ID,
		Name:       "Zeitung",
		Amount:     dec("-5"),
		StartDate:  date.MustParse("2024-01-01"),
		Frequency:  ledger.FrequencyMonthly,
	}
	_, err := f.st.AddSubscription(sub)
	require.ErrorIs(t, err, errs.ErrInvalid, "amounts are stored as positive magnitudes")

	sub.Amount = dec("5")
	sub.EndDate = datePtr("2023-01-01")
	_, err = f.st.AddSubscription(sub)
	require.ErrorIs(t, err, errs.ErrInvalid, "end before start")
}

func TestSnapshotRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.addTransaction(t, "-42", "2024-03-01")
	_, err := f.st.AddSubscription(ledger.Subscription{
		PersonID:   f.person.ID,
		AccountID:  f.account.ID,
		CategoryID: f.category.ID,
		Name:       "Netflix",
		Amount:     dec("9.99"),
		StartDate:  date.MustParse("2024-01-01"),
		Frequency:  ledger.FrequencyMonthly,
		DayOfMonth: 15,
	})
	require.NoError(t, err)

	snap := f.st.ExportSnapshot()
	require.False(t, snap.Timestamp.IsZero())

	restored := New()
	require.NoError(t, restored.ImportSnapshot(snap))

	require.Equal(t, f.st.Persons(), restored.Persons())
	require.Equal(t, f.st.Accounts(), restored.Accounts())
	require.Equal(t, f.st.Categories(), restored.Categories())
	require.Equal(t, f.st.Transactions(), restored.Transactions())
	require.Equal(t, f.st.Subscriptions(), restored.Subscriptions())
}

func TestImportRejectsBrokenReference(t *testing.T) {
	f := newFixture(t)
	f.addTransaction(t, "-1", "2024-03-01")
	before := f.st.ExportSnapshot()

	bad := f.st.ExportSnapshot()
	bad.Transactions[0].AccountID = uuid.New()

	err := f.st.ImportSnapshot(bad)
	require.ErrorIs(t, err, errs.ErrImport)

	// The failed import must leave the store exactly as it was.
	after := f.st.ExportSnapshot()
	require.Equal(t, before.Persons, after.Persons)
	require.Equal(t, before.Accounts, after.Accounts)
	require.Equal(t, before.Transactions, after.Transactions)
}

func TestImportRejectsDuplicateIDs(t *testing.T) {
	f := newFixture(t)
	snap := f.st.ExportSnapshot()
	snap.Persons = append(snap.Persons, snap.Persons[0])

	err := New().ImportSnapshot(snap)
	require.ErrorIs(t, err, errs.ErrImport)
}

func TestUpdateNotFound(t *testing.T) {
	f := newFixture(t)
	err := f.st.UpdatePerson(ledger.Person{ID: uuid.New(), Name: "Niemand"})
	require.ErrorIs(t, err, errs.ErrNotFound)

	err = f.st.DeleteTransaction(uuid.New())
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestListingsKeepInsertionOrder(t *testing.T) {
	st := New()
	names := []string{"Anna", "Ben", "Clara", "David"}
	for _, n := range names {
		_, err := st.AddPerson(ledger.Person{Name: n})
		require.NoError(t, err)
	}
	got := st.Persons()
	require.Len(t, got, len(names))
	for i, n := range names {
		require.Equal(t, n, got[i].Name)
	}
}

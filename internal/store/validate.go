package store

import (
	"fmt"

	"github.com/haushalt/ledger/internal/errs"
	"github.com/haushalt/ledger/internal/ledger"
)

func invalid(msg string) error { return fmt.Errorf("%w: %s", errs.ErrInvalid, msg) }

func validAccountType(t ledger.AccountType) bool {
	switch t {
	case ledger.AccountTypeGiro, ledger.AccountTypeDebitCard, ledger.AccountTypeSavings,
		ledger.AccountTypeCash, ledger.AccountTypeOther:
		return true
	}
	return false
}

func validCategoryType(t ledger.CategoryType) bool {
	return t == ledger.CategoryTypeIncome || t == ledger.CategoryTypeExpense
}

func validFrequency(f ledger.Frequency) bool {
	switch f {
	case ledger.FrequencyDaily, ledger.FrequencyWeekly, ledger.FrequencyMonthly, ledger.FrequencyYearly:
		return true
	}
	return false
}

func validDebtType(t ledger.DebtType) bool {
	return t == ledger.DebtTypePersonal || t == ledger.DebtTypeCredit
}

func validAssetType(t ledger.AssetType) bool {
	switch t {
	case ledger.AssetTypeStock, ledger.AssetTypeBond, ledger.AssetTypeCrypto,
		ledger.AssetTypeRealEstate, ledger.AssetTypeOther:
		return true
	}
	return false
}

func validatePerson(p ledger.Person) error {
	if p.Name == "" {
		return invalid("person name required")
	}
	return nil
}

func validateAccount(a ledger.Account) error {
	if a.Name == "" {
		return invalid("account name required")
	}
	if !validAccountType(a.Type) {
		return invalid("unknown account type")
	}
	if a.Currency == "" {
		return invalid("account currency required")
	}
	return nil
}

func validateCategory(c ledger.Category) error {
	if c.Name == "" {
		return invalid("category name required")
	}
	if !validCategoryType(c.Type) {
		return invalid("category type must be income or expense")
	}
	return nil
}

func validateTransaction(t ledger.Transaction) error {
	if t.Date.IsZero() {
		return invalid("transaction date required")
	}
	return nil
}

func validateRecurringEntry(e ledger.RecurringEntry) error {
	if e.Name == "" {
		return invalid("recurring entry name required")
	}
	if e.Amount.Sign() <= 0 {
		return invalid("recurring entry amount must be positive")
	}
	if !validFrequency(e.Frequency) {
		return invalid("unknown frequency")
	}
	if e.StartDate.IsZero() {
		return invalid("recurring entry start date required")
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return invalid("recurring entry end date before start date")
	}
	return nil
}

func validateAmountSchedule(a ledger.AmountSchedule) error {
	if a.Amount.Sign() <= 0 {
		return invalid("amount schedule amount must be positive")
	}
	if a.StartDate.IsZero() {
		return invalid("amount schedule start date required")
	}
	if a.EndDate != nil && a.EndDate.Before(a.StartDate) {
		return invalid("amount schedule end date before start date")
	}
	return nil
}

func validateSubscription(sub ledger.Subscription) error {
	if sub.Name == "" {
		return invalid("subscription name required")
	}
	if sub.Amount.Sign() <= 0 {
		return invalid("subscription amount must be positive")
	}
	if !validFrequency(sub.Frequency) {
		return invalid("unknown frequency")
	}
	if sub.StartDate.IsZero() {
		return invalid("subscription start date required")
	}
	if sub.EndDate != nil && sub.EndDate.Before(sub.StartDate) {
		return invalid("subscription end date before start date")
	}
	if sub.DayOfMonth != 0 && (sub.DayOfMonth < 1 || sub.DayOfMonth > 31) {
		return invalid("day of month must be within 1-31")
	}
	return nil
}

func validateDebt(d ledger.Debt) error {
	if d.Name == "" {
		return invalid("debt name required")
	}
	if !validDebtType(d.Type) {
		return invalid("debt type must be personal or credit")
	}
	if d.TotalAmount.Sign() < 0 {
		return invalid("debt total amount must not be negative")
	}
	if d.RemainingAmount.Sign() < 0 || d.RemainingAmount.GreaterThan(d.TotalAmount) {
		return invalid("debt remaining amount must be within 0 and total amount")
	}
	if d.MonthlyPayment.Sign() < 0 {
		return invalid("debt monthly payment must not be negative")
	}
	if d.DayOfMonth < 1 || d.DayOfMonth > 31 {
		return invalid("day of month must be within 1-31")
	}
	if d.StartDate.IsZero() {
		return invalid("debt start date required")
	}
	if d.EndDate != nil && d.EndDate.Before(d.StartDate) {
		return invalid("debt end date before start date")
	}
	return nil
}

func validateInvestment(inv ledger.Investment) error {
	if inv.AssetName == "" {
		return invalid("investment asset name required")
	}
	if !validAssetType(inv.AssetType) {
		return invalid("unknown asset type")
	}
	if inv.Units.Sign() < 0 {
		return invalid("investment units must not be negative")
	}
	if inv.PurchasePricePerUnit.Sign() < 0 || inv.CurrentPricePerUnit.Sign() < 0 {
		return invalid("investment prices must not be negative")
	}
	if inv.PurchaseDate.IsZero() {
		return invalid("investment purchase date required")
	}
	return nil
}

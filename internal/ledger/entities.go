// Package ledger defines the domain entities of the household ledger: people,
// their accounts, realized transactions, and the recurring obligations the
// forecast engine expands into future cash flow.
package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/haushalt/ledger/internal/date"
)

// AccountType enumerates the kind of account a person holds.
type AccountType string

const (
	AccountTypeGiro      AccountType = "giro_account"
	AccountTypeDebitCard AccountType = "debit_card"
	AccountTypeSavings   AccountType = "savings"
	AccountTypeCash      AccountType = "cash"
	AccountTypeOther     AccountType = "other"
)

// CategoryType splits categories into the income and expense sides of the ledger.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Frequency describes how often a recurring obligation occurs.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// DebtType distinguishes informal personal debts from credit agreements.
type DebtType string

const (
	DebtTypePersonal DebtType = "personal"
	DebtTypeCredit   DebtType = "credit"
)

// AssetType enumerates the broad class of an investment holding.
type AssetType string

const (
	AssetTypeStock      AssetType = "stock"
	AssetTypeBond       AssetType = "bond"
	AssetTypeCrypto     AssetType = "crypto"
	AssetTypeRealEstate AssetType = "real_estate"
	AssetTypeOther      AssetType = "other"
)

// Person is the root entity; every other entity is owned by or references a person.
type Person struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Account belongs to one person. Balance is a derived-but-stored running total:
// the store keeps it equal to the sum of all transactions referencing the account.
type Account struct {
	ID       uuid.UUID       `json:"id"`
	PersonID uuid.UUID       `json:"personId"`
	Name     string          `json:"name"`
	Type     AccountType     `json:"type"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

// Category labels transactions and recurring obligations on either the income
// or expense side. Color is an opaque display hint carried for the UI.
type Category struct {
	ID    uuid.UUID    `json:"id"`
	Name  string       `json:"name"`
	Type  CategoryType `json:"type"`
	Color string       `json:"color"`
}

// Transaction is a realized cash movement. Amount is signed: positive for
// income, negative for expense.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Date        date.Date       `json:"date"`
	PersonID    uuid.UUID       `json:"personId"`
	AccountID   uuid.UUID       `json:"accountId"`
	CategoryID  uuid.UUID       `json:"categoryId"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	IsRecurring bool            `json:"isRecurring"`
}

// RecurringEntry is declarative future income. It never materializes into
// transactions; the forecast engine projects it instead.
type RecurringEntry struct {
	ID          uuid.UUID       `json:"id"`
	PersonID    uuid.UUID       `json:"personId"`
	AccountID   uuid.UUID       `json:"accountId"`
	CategoryID  uuid.UUID       `json:"categoryId"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	StartDate   date.Date       `json:"startDate"`
	EndDate     *date.Date      `json:"endDate"`
	Frequency   Frequency       `json:"frequency"`
	Description string          `json:"description"`
}

// AmountSchedule is a time-sliced override of a RecurringEntry's amount. The
// override applies while the cursor month falls within [StartDate, EndDate).
type AmountSchedule struct {
	ID        uuid.UUID       `json:"id"`
	EntryID   uuid.UUID       `json:"entryId"`
	StartDate date.Date       `json:"startDate"`
	EndDate   *date.Date      `json:"endDate"`
	Amount    decimal.Decimal `json:"amount"`
}

// Subscription is a declarative recurring expense. DayOfMonth, when set (1-31),
// anchors the upcoming-payment date for monthly subscriptions.
type Subscription struct {
	ID          uuid.UUID       `json:"id"`
	PersonID    uuid.UUID       `json:"personId"`
	AccountID   uuid.UUID       `json:"accountId"`
	CategoryID  uuid.UUID       `json:"categoryId"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	StartDate   date.Date       `json:"startDate"`
	EndDate     *date.Date      `json:"endDate"`
	Frequency   Frequency       `json:"frequency"`
	DayOfMonth  int             `json:"dayOfMonth,omitempty"`
	Description string          `json:"description"`
}

// Debt is a recurring obligation plus amortization state. RemainingAmount is
// kept within [0, TotalAmount] by store validation.
type Debt struct {
	ID              uuid.UUID        `json:"id"`
	PersonID        uuid.UUID        `json:"personId"`
	AccountID       uuid.UUID        `json:"accountId"`
	Name            string           `json:"name"`
	Type            DebtType         `json:"type"`
	TotalAmount     decimal.Decimal  `json:"totalAmount"`
	RemainingAmount decimal.Decimal  `json:"remainingAmount"`
	InterestRate    *decimal.Decimal `json:"interestRate,omitempty"`
	MonthlyPayment  decimal.Decimal  `json:"monthlyPayment"`
	StartDate       date.Date        `json:"startDate"`
	EndDate         *date.Date       `json:"endDate"`
	DayOfMonth      int              `json:"dayOfMonth"`
	Description     string           `json:"description"`
}

// Investment is a valuation entity; it is person-scoped and takes no part in
// cash-flow scheduling.
type Investment struct {
	ID                   uuid.UUID       `json:"id"`
	PersonID             uuid.UUID       `json:"personId"`
	AssetName            string          `json:"assetName"`
	AssetType            AssetType       `json:"assetType"`
	PurchaseDate         date.Date       `json:"purchaseDate"`
	Units                decimal.Decimal `json:"units"`
	PurchasePricePerUnit decimal.Decimal `json:"purchasePricePerUnit"`
	CurrentPricePerUnit  decimal.Decimal `json:"currentPricePerUnit"`
	Currency             string          `json:"currency"`
	Notes                string          `json:"notes"`
}

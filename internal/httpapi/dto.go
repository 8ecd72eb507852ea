package httpapi

import (
	"github.com/google/uuid"
	"github.com/govalues/money"
	"github.com/shopspring/decimal"

	"github.com/haushalt/ledger/internal/date"
	"github.com/haushalt/ledger/internal/forecast"
	"github.com/haushalt/ledger/internal/ledger"
)

// formatMoney renders a decimal amount in the given ISO 4217 currency, e.g.
// "EUR 12.34". Returns "" when the currency code is unknown.
func formatMoney(currency string, d decimal.Decimal) string {
	curr, err := money.ParseCurr(currency)
	if err != nil {
		return ""
	}
	minor := d.Shift(int32(curr.Scale())).Round(0).IntPart()
	amt, err := money.NewAmountFromMinorUnits(currency, minor)
	if err != nil {
		return ""
	}
	return amt.String()
}

type personRequest struct {
	Name string `json:"name"`
}

type personResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func toPersonResponse(p ledger.Person) personResponse {
	return personResponse{ID: p.ID, Name: p.Name}
}

type accountRequest struct {
	PersonID uuid.UUID          `json:"person_id"`
	Name     string             `json:"name"`
	Type     ledger.AccountType `json:"type"`
	Balance  decimal.Decimal    `json:"balance"`
	Currency string             `json:"currency"`
}

func (r accountRequest) toDomain() ledger.Account {
	return ledger.Account{
		PersonID: r.PersonID,
		Name:     r.Name,
		Type:     r.Type,
		Balance:  r.Balance,
		Currency: r.Currency,
	}
}

type accountResponse struct {
	ID               uuid.UUID          `json:"id"`
	PersonID         uuid.UUID          `json:"person_id"`
	Name             string             `json:"name"`
	Type             ledger.AccountType `json:"type"`
	Balance          decimal.Decimal    `json:"balance"`
	BalanceFormatted string             `json:"balance_formatted,omitempty"`
	Currency         string             `json:"currency"`
}

func toAccountResponse(a ledger.Account) accountResponse {
	return accountResponse{
		ID:               a.ID,
		PersonID:         a.PersonID,
		Name:             a.Name,
		Type:             a.Type,
		Balance:          a.Balance,
		BalanceFormatted: formatMoney(a.Currency, a.Balance),
		Currency:         a.Currency,
	}
}

type categoryRequest struct {
	Name  string              `json:"name"`
	Type  ledger.CategoryType `json:"type"`
	Color string              `json:"color"`
}

type categoryResponse struct {
	ID    uuid.UUID           `json:"id"`
	Name  string              `json:"name"`
	Type  ledger.CategoryType `json:"type"`
	Color string              `json:"color"`
}

func toCategoryResponse(c ledger.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name, Type: c.Type, Color: c.Color}
}

type transactionRequest struct {
	Date        date.Date       `json:"date"`
	PersonID    uuid.UUID       `json:"person_id"`
	AccountID   uuid.UUID       `json:"account_id"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	IsRecurring bool            `json:"is_recurring"`
}

func (r transactionRequest) toDomain() ledger.Transaction {
	return ledger.Transaction{
		Date:        r.Date,
		PersonID:    r.PersonID,
		AccountID:   r.AccountID,
		CategoryID:  r.CategoryID,
		Amount:      r.Amount,
		Description: r.Description,
		IsRecurring: r.IsRecurring,
	}
}

type transactionResponse struct {
	ID          uuid.UUID       `json:"id"`
	Date        date.Date       `json:"date"`
	PersonID    uuid.UUID       `json:"person_id"`
	AccountID   uuid.UUID       `json:"account_id"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	IsRecurring bool            `json:"is_recurring"`
}

func toTransactionResponse(t ledger.Transaction) transactionResponse {
	return transactionResponse{
		ID:          t.ID,
		Date:        t.Date,
		PersonID:    t.PersonID,
		AccountID:   t.AccountID,
		CategoryID:  t.CategoryID,
		Amount:      t.Amount,
		Description: t.Description,
		IsRecurring: t.IsRecurring,
	}
}

type recurringEntryRequest struct {
	PersonID    uuid.UUID        `json:"person_id"`
	AccountID   uuid.UUID        `json:"account_id"`
	CategoryID  uuid.UUID        `json:"category_id"`
	Name        string           `json:"name"`
	Amount      decimal.Decimal  `json:"amount"`
	StartDate   date.Date        `json:"start_date"`
	EndDate     *date.Date       `json:"end_date,omitempty"`
	Frequency   ledger.Frequency `json:"frequency"`
	Description string           `json:"description"`
}

func (r recurringEntryRequest) toDomain() ledger.RecurringEntry {
	return ledger.RecurringEntry{
		PersonID:    r.PersonID,
		AccountID:   r.AccountID,
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Amount:      r.Amount,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Frequency:   r.Frequency,
		Description: r.Description,
	}
}

type recurringEntryResponse struct {
	ID          uuid.UUID        `json:"id"`
	PersonID    uuid.UUID        `json:"person_id"`
	AccountID   uuid.UUID        `json:"account_id"`
	CategoryID  uuid.UUID        `json:"category_id"`
	Name        string           `json:"name"`
	Amount      decimal.Decimal  `json:"amount"`
	StartDate   date.Date        `json:"start_date"`
	EndDate     *date.Date       `json:"end_date,omitempty"`
	Frequency   ledger.Frequency `json:"frequency"`
	Description string           `json:"description"`
}

func toRecurringEntryResponse(e ledger.RecurringEntry) recurringEntryResponse {
	return recurringEntryResponse{
		ID:          e.ID,
		PersonID:    e.PersonID,
		AccountID:   e.AccountID,
		CategoryID:  e.CategoryID,
		Name:        e.Name,
		Amount:      e.Amount,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Frequency:   e.Frequency,
		Description: e.Description,
	}
}

type amountScheduleRequest struct {
	EntryID   uuid.UUID       `json:"entry_id"`
	StartDate date.Date       `json:"start_date"`
	EndDate   *date.Date      `json:"end_date,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
}

func (r amountScheduleRequest) toDomain() ledger.AmountSchedule {
	return ledger.AmountSchedule{
		EntryID:   r.EntryID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Amount:    r.Amount,
	}
}

type amountScheduleResponse struct {
	ID        uuid.UUID       `json:"id"`
	EntryID   uuid.UUID       `json:"entry_id"`
	StartDate date.Date       `json:"start_date"`
	EndDate   *date.Date      `json:"end_date,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
}

func toAmountScheduleResponse(s ledger.AmountSchedule) amountScheduleResponse {
	return amountScheduleResponse{
		ID:        s.ID,
		EntryID:   s.EntryID,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Amount:    s.Amount,
	}
}

type subscriptionRequest struct {
	PersonID    uuid.UUID        `json:"person_id"`
	AccountID   uuid.UUID        `json:"account_id"`
	CategoryID  uuid.UUID        `json:"category_id"`
	Name        string           `json:"name"`
	Amount      decimal.Decimal  `json:"amount"`
	StartDate   date.Date        `json:"start_date"`
	EndDate     *date.Date       `json:"end_date,omitempty"`
	Frequency   ledger.Frequency `json:"frequency"`
	DayOfMonth  int              `json:"day_of_month,omitempty"`
	Description string           `json:"description"`
}

func (r subscriptionRequest) toDomain() ledger.Subscription {
	return ledger.Subscription{
		PersonID:    r.PersonID,
		AccountID:   r.AccountID,
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Amount:      r.Amount,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Frequency:   r.Frequency,
		DayOfMonth:  r.DayOfMonth,
		Description: r.Description,
	}
}

type subscriptionResponse struct {
	ID          uuid.UUID        `json:"id"`
	PersonID    uuid.UUID        `json:"person_id"`
	AccountID   uuid.UUID        `json:"account_id"`
	CategoryID  uuid.UUID        `json:"category_id"`
	Name        string           `json:"name"`
	Amount      decimal.Decimal  `json:"amount"`
	StartDate   date.Date        `json:"start_date"`
	EndDate     *date.Date       `json:"end_date,omitempty"`
	Frequency   ledger.Frequency `json:"frequency"`
	DayOfMonth  int              `json:"day_of_month,omitempty"`
	Description string           `json:"description"`
}

func toSubscriptionResponse(s ledger.Subscription) subscriptionResponse {
	return subscriptionResponse{
		ID:          s.ID,
		PersonID:    s.PersonID,
		AccountID:   s.AccountID,
		CategoryID:  s.CategoryID,
		Name:        s.Name,
		Amount:      s.Amount,
		StartDate:   s.StartDate,
		EndDate:     s.EndDate,
		Frequency:   s.Frequency,
		DayOfMonth:  s.DayOfMonth,
		Description: s.Description,
	}
}

type debtRequest struct {
	PersonID        uuid.UUID        `json:"person_id"`
	AccountID       uuid.UUID        `json:"account_id"`
	Name            string           `json:"name"`
	Type            ledger.DebtType  `json:"type"`
	TotalAmount     decimal.Decimal  `json:"total_amount"`
	RemainingAmount decimal.Decimal  `json:"remaining_amount"`
	InterestRate    *decimal.Decimal `json:"interest_rate,omitempty"`
	MonthlyPayment  decimal.Decimal  `json:"monthly_payment"`
	StartDate       date.Date        `json:"start_date"`
	EndDate         *date.Date       `json:"end_date,omitempty"`
	DayOfMonth      int              `json:"day_of_month"`
	Description     string           `json:"description"`
}

func (r debtRequest) toDomain() ledger.Debt {
	return ledger.Debt{
		PersonID:        r.PersonID,
		AccountID:       r.AccountID,
		Name:            r.Name,
		Type:            r.Type,
		TotalAmount:     r.TotalAmount,
		RemainingAmount: r.RemainingAmount,
		InterestRate:    r.InterestRate,
		MonthlyPayment:  r.MonthlyPayment,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		DayOfMonth:      r.DayOfMonth,
		Description:     r.Description,
	}
}

type debtResponse struct {
	ID              uuid.UUID        `json:"id"`
	PersonID        uuid.UUID        `json:"person_id"`
	AccountID       uuid.UUID        `json:"account_id"`
	Name            string           `json:"name"`
	Type            ledger.DebtType  `json:"type"`
	TotalAmount     decimal.Decimal  `json:"total_amount"`
	RemainingAmount decimal.Decimal  `json:"remaining_amount"`
	InterestRate    *decimal.Decimal `json:"interest_rate,omitempty"`
	MonthlyPayment  decimal.Decimal  `json:"monthly_payment"`
	StartDate       date.Date        `json:"start_date"`
	EndDate         *date.Date       `json:"end_date,omitempty"`
	DayOfMonth      int              `json:"day_of_month"`
	Description     string           `json:"description"`
	PayoffPercent   decimal.Decimal  `json:"payoff_percent"`
}

func toDebtResponse(d ledger.Debt) debtResponse {
	return debtResponse{
		ID:              d.ID,
		PersonID:        d.PersonID,
		AccountID:       d.AccountID,
		Name:            d.Name,
		Type:            d.Type,
		TotalAmount:     d.TotalAmount,
		RemainingAmount: d.RemainingAmount,
		InterestRate:    d.InterestRate,
		MonthlyPayment:  d.MonthlyPayment,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		DayOfMonth:      d.DayOfMonth,
		Description:     d.Description,
		PayoffPercent:   forecast.DebtPayoffPercent(d),
	}
}

type investmentRequest struct {
	PersonID             uuid.UUID        `json:"person_id"`
	AssetName            string           `json:"asset_name"`
	AssetType            ledger.AssetType `json:"asset_type"`
	PurchaseDate         date.Date        `json:"purchase_date"`
	Units                decimal.Decimal  `json:"units"`
	PurchasePricePerUnit decimal.Decimal  `json:"purchase_price_per_unit"`
	CurrentPricePerUnit  decimal.Decimal  `json:"current_price_per_unit"`
	Currency             string           `json:"currency"`
	Notes                string           `json:"notes"`
}

func (r investmentRequest) toDomain() ledger.Investment {
	return ledger.Investment{
		PersonID:             r.PersonID,
		AssetName:            r.AssetName,
		AssetType:            r.AssetType,
		PurchaseDate:         r.PurchaseDate,
		Units:                r.Units,
		PurchasePricePerUnit: r.PurchasePricePerUnit,
		CurrentPricePerUnit:  r.CurrentPricePerUnit,
		Currency:             r.Currency,
		Notes:                r.Notes,
	}
}

type investmentResponse struct {
	ID                   uuid.UUID        `json:"id"`
	PersonID             uuid.UUID        `json:"person_id"`
	AssetName            string           `json:"asset_name"`
	AssetType            ledger.AssetType `json:"asset_type"`
	PurchaseDate         date.Date        `json:"purchase_date"`
	Units                decimal.Decimal  `json:"units"`
	PurchasePricePerUnit decimal.Decimal  `json:"purchase_price_per_unit"`
	CurrentPricePerUnit  decimal.Decimal  `json:"current_price_per_unit"`
	Currency             string           `json:"currency"`
	Notes                string           `json:"notes"`
	Value                decimal.Decimal  `json:"value"`
	ValueFormatted       string           `json:"value_formatted,omitempty"`
}

func toInvestmentResponse(i ledger.Investment) investmentResponse {
	value := i.Units.Mul(i.CurrentPricePerUnit)
	return investmentResponse{
		ID:                   i.ID,
		PersonID:             i.PersonID,
		AssetName:            i.AssetName,
		AssetType:            i.AssetType,
		PurchaseDate:         i.PurchaseDate,
		Units:                i.Units,
		PurchasePricePerUnit: i.PurchasePricePerUnit,
		CurrentPricePerUnit:  i.CurrentPricePerUnit,
		Currency:             i.Currency,
		Notes:                i.Notes,
		Value:                value,
		ValueFormatted:       formatMoney(i.Currency, value),
	}
}

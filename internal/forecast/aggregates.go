package forecast

import (
	"github.com/shopspring/decimal"

	"github.com/haushalt/ledger/internal/date"
	"github.com/haushalt/ledger/internal/ledger"
)

// TotalBalance sums the stored balances of all accounts.
func TotalBalance(accounts []ledger.Account) decimal.Decimal {
	var sum decimal.Decimal
	for _, a := range accounts {
		sum = sum.Add(a.Balance)
	}
	return sum
}

// RealizedMonth sums the realized transactions of today's calendar month:
// income from positive amounts, expense as the positive magnitude of negative
// amounts.
func RealizedMonth(transactions []ledger.Transaction, today date.Date) (income, expense decimal.Decimal) {
	for _, t := range transactions {
		if t.Date.Year() != today.Year() || t.Date.Month() != today.Month() {
			continue
		}
		switch {
		case t.Amount.Sign() > 0:
			income = income.Add(t.Amount)
		case t.Amount.Sign() < 0:
			expense = expense.Add(t.Amount.Abs())
		}
	}
	return income, expense
}

// InvestmentSummary aggregates current valuation against cost basis.
type InvestmentSummary struct {
	Value         decimal.Decimal
	Cost          decimal.Decimal
	Profit        decimal.Decimal
	ProfitPercent decimal.Decimal
}

// Investments values all holdings at current prices. ProfitPercent is zero when
// the cost basis is zero.
func Investments(investments []ledger.Investment) InvestmentSummary {
	var s InvestmentSummary
	for _, inv := range investments {
		s.Value = s.Value.Add(inv.Units.Mul(inv.CurrentPricePerUnit))
		s.Cost = s.Cost.Add(inv.Units.Mul(inv.PurchasePricePerUnit))
	}
	s.Profit = s.Value.Sub(s.Cost)
	s.ProfitPercent = percentOf(s.Profit, s.Cost)
	return s
}

// DebtPayoffPercent reports how much of the debt has been repaid, zero when the
// total amount is zero.
func DebtPayoffPercent(d ledger.Debt) decimal.Decimal {
	if d.TotalAmount.IsZero() {
		return decimal.Zero
	}
	return d.TotalAmount.Sub(d.RemainingAmount).Div(d.TotalAmount).Mul(hundred)
}

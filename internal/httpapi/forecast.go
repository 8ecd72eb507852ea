package httpapi

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/haushalt/ledger/internal/date"
	"github.com/haushalt/ledger/internal/forecast"
)

type forecastDetail struct {
	Kind   forecast.DetailKind `json:"kind"`
	Name   string              `json:"name"`
	Amount decimal.Decimal     `json:"amount"`
}

type forecastPeriod struct {
	Month    date.Date        `json:"month"`
	Income   decimal.Decimal  `json:"income"`
	Expenses decimal.Decimal  `json:"expenses"`
	Balance  decimal.Decimal  `json:"balance"`
	Details  []forecastDetail `json:"details"`
}

type forecastResponse struct {
	Horizon        forecast.Horizon `json:"horizon"`
	InitialBalance decimal.Decimal  `json:"initial_balance"`
	Periods        []forecastPeriod `json:"periods"`
	TotalIncome    decimal.Decimal  `json:"total_income"`
	TotalExpenses  decimal.Decimal  `json:"total_expenses"`
	NetChange      decimal.Decimal  `json:"net_change"`
	FinalBalance   decimal.Decimal  `json:"final_balance"`
	IncomePercent  decimal.Decimal  `json:"income_percent"`
	ExpensePercent decimal.Decimal  `json:"expense_percent"`
	BalancePercent decimal.Decimal  `json:"balance_percent"`
}

// getForecast runs the long-horizon projection. The horizon query parameter
// defaults to six months.
func (s *Server) getForecast(w http.ResponseWriter, r *http.Request) {
	h := forecast.HorizonSixMonths
	if q := r.URL.Query().Get("horizon"); q != "" {
		parsed, err := forecast.ParseHorizon(q)
		if err != nil {
			badRequest(w, err.Error())
			return
		}
		h = parsed
	}

	proj := forecast.Project(s.st.ExportSnapshot(), s.today(), h)

	resp := forecastResponse{
		Horizon:        h,
		InitialBalance: proj.InitialBalance,
		Periods:        make([]forecastPeriod, 0, len(proj.Periods)),
		TotalIncome:    proj.TotalIncome,
		TotalExpenses:  proj.TotalExpenses,
		NetChange:      proj.NetChange,
		FinalBalance:   proj.FinalBalance,
		IncomePercent:  proj.IncomePercent,
		ExpensePercent: proj.ExpensePercent,
		BalancePercent: proj.BalancePercent,
	}
	for _, p := range proj.Periods {
		fp := forecastPeriod{
			Month:    p.Month,
			Income:   p.Income,
			Expenses: p.Expenses,
			Balance:  p.Balance,
			Details:  make([]forecastDetail, 0, len(p.Details)),
		}
		for _, d := range p.Details {
			fp.Details = append(fp.Details, forecastDetail{Kind: d.Kind, Name: d.Name, Amount: d.Amount})
		}
		resp.Periods = append(resp.Periods, fp)
	}
	toJSON(w, http.StatusOK, resp)
}

type paymentResponse struct {
	ID        uuid.UUID           `json:"id"`
	Kind      forecast.DetailKind `json:"kind"`
	Name      string              `json:"name"`
	PersonID  uuid.UUID           `json:"person_id"`
	AccountID uuid.UUID           `json:"account_id"`
	Date      date.Date           `json:"date"`
	Amount    decimal.Decimal     `json:"amount"`
}

func (s *Server) upcomingPayments(w http.ResponseWriter, r *http.Request) {
	payments := forecast.UpcomingPayments(s.st.ExportSnapshot(), s.today())
	out := make([]paymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, paymentResponse{
			ID:        p.ID,
			Kind:      p.Kind,
			Name:      p.Name,
			PersonID:  p.PersonID,
			AccountID: p.AccountID,
			Date:      p.Date,
			Amount:    p.Amount,
		})
	}
	toJSON(w, http.StatusOK, out)
}

type summaryResponse struct {
	TotalBalance   decimal.Decimal `json:"total_balance"`
	MonthIncome    decimal.Decimal `json:"month_income"`
	MonthExpenses  decimal.Decimal `json:"month_expenses"`
	MonthNet       decimal.Decimal `json:"month_net"`
	TotalDebt      decimal.Decimal `json:"total_debt"`
	InvestmentGain decimal.Decimal `json:"investment_gain"`
}

// getSummary aggregates the dashboard numbers: current balances, the realized
// cash flow of the current calendar month, open debt, and investment profit.
func (s *Server) getSummary(w http.ResponseWriter, r *http.Request) {
	snap := s.st.ExportSnapshot()
	today := s.today()

	income, expenses := forecast.RealizedMonth(snap.Transactions, today)
	var totalDebt decimal.Decimal
	for _, d := range snap.Debts {
		totalDebt = totalDebt.Add(d.RemainingAmount)
	}
	inv := forecast.Investments(snap.Investments)

	toJSON(w, http.StatusOK, summaryResponse{
		TotalBalance:   forecast.TotalBalance(snap.Accounts),
		MonthIncome:    income,
		MonthExpenses:  expenses,
		MonthNet:       income.Sub(expenses),
		TotalDebt:      totalDebt,
		InvestmentGain: inv.Profit,
	})
}

type investmentSummaryResponse struct {
	Value         decimal.Decimal `json:"value"`
	Cost          decimal.Decimal `json:"cost"`
	Profit        decimal.Decimal `json:"profit"`
	ProfitPercent decimal.Decimal `json:"profit_percent"`
}

func (s *Server) investmentsSummary(w http.ResponseWriter, r *http.Request) {
	inv := forecast.Investments(s.st.Investments())
	toJSON(w, http.StatusOK, investmentSummaryResponse{
		Value:         inv.Value,
		Cost:          inv.Cost,
		Profit:        inv.Profit,
		ProfitPercent: inv.ProfitPercent,
	})
}

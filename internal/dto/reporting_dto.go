package dto

import (
	"time"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// DateRangeQuery binds the fromDate/toDate query parameters shared by the range reports.
// toDate is inclusive at day granularity.
type DateRangeQuery struct {
	FromDate string `form:"fromDate" binding:"required,datetime=2006-01-02"`
	ToDate   string `form:"toDate" binding:"required,datetime=2006-01-02"`
}

// Range converts the query into a half-open range [fromDate 00:00, toDate+1 00:00) in UTC.
func (q DateRangeQuery) Range() (domain.DateRange, error) {
	from, err := time.Parse(dateLayout, q.FromDate)
	if err != nil {
		return domain.DateRange{}, err
	}
	to, err := time.Parse(dateLayout, q.ToDate)
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.NewDateRange(from, to.AddDate(0, 0, 1)), nil
}

// DayBookQuery binds a single date (YYYY-MM-DD); an empty date means today.
type DayBookQuery struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// DayBookResponse is the unified feed for a date.
type DayBookResponse struct {
	Date         string                      `json:"date"`
	Transactions []domain.UnifiedTransaction `json:"transactions"`
	Summary      struct {
		Income   decimal.Decimal `json:"income"`
		Expenses decimal.Decimal `json:"expenses"`
		Count    int             `json:"count"`
	} `json:"summary"`
}

// ToDayBookResponse totals the rows for display.
func ToDayBookResponse(date time.Time, rows []domain.UnifiedTransaction) DayBookResponse {
	response := DayBookResponse{
		Date:         date.Format(dateLayout),
		Transactions: rows,
	}
	if response.Transactions == nil {
		response.Transactions = []domain.UnifiedTransaction{}
	}

	income, expenses := decimal.Zero, decimal.Zero
	for _, row := range rows {
		if row.Type == domain.Income {
			income = income.Add(row.Amount)
		} else {
			expenses = expenses.Add(row.Amount)
		}
	}
	response.Summary.Income = income
	response.Summary.Expenses = expenses
	response.Summary.Count = len(rows)
	return response
}

// CategoryAmountResponse is one line of a category breakdown.
type CategoryAmountResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// ProfitAndLossResponse represents the profit and loss report response
type ProfitAndLossResponse struct {
	FromDate         string                     `json:"fromDate"`
	ToDate           string                     `json:"toDate"`
	Income           decimal.Decimal            `json:"income"`
	Expenses         decimal.Decimal            `json:"expenses"`
	NetProfit        decimal.Decimal            `json:"netProfit"`
	IncomeBreakdown  []CategoryAmountResponse   `json:"incomeBreakdown"`
	ExpenseBreakdown []CategoryAmountResponse   `json:"expenseBreakdown"`
	Estimate         domain.GrossMarginEstimate `json:"grossMarginEstimate"`
}

// ToProfitAndLossResponse converts a domain P&L statement to a DTO response
func ToProfitAndLossResponse(pl *domain.PLStatement) ProfitAndLossResponse {
	return ProfitAndLossResponse{
		FromDate:         pl.Range.From.Format(dateLayout),
		ToDate:           pl.Range.To.AddDate(0, 0, -1).Format(dateLayout),
		Income:           pl.Income,
		Expenses:         pl.Expenses,
		NetProfit:        pl.NetProfit,
		IncomeBreakdown:  toCategoryAmounts(pl.IncomeBreakdown),
		ExpenseBreakdown: toCategoryAmounts(pl.ExpenseBreakdown),
		Estimate:         pl.Estimate,
	}
}

// toCategoryAmounts lists the breakdown in a stable category order.
func toCategoryAmounts(b domain.CategoryBreakdown) []CategoryAmountResponse {
	out := make([]CategoryAmountResponse, 0, len(b))
	for _, c := range domain.Categories {
		if amount, ok := b[c]; ok {
			out = append(out, CategoryAmountResponse{Category: string(c), Amount: amount})
		}
	}
	return out
}

// CashFlowResponse represents the cash flow report response
type CashFlowResponse struct {
	FromDate         string                  `json:"fromDate"`
	ToDate           string                  `json:"toDate"`
	CashIn           decimal.Decimal         `json:"cashIn"`
	CashOut          decimal.Decimal         `json:"cashOut"`
	NetCashFlow      decimal.Decimal         `json:"netCashFlow"`
	CashInBreakdown  domain.PaymentBreakdown `json:"cashInBreakdown"`
	CashOutBreakdown domain.PaymentBreakdown `json:"cashOutBreakdown"`
}

// ToCashFlowResponse converts a domain cash flow to a DTO response
func ToCashFlowResponse(cf *domain.CashFlow) CashFlowResponse {
	return CashFlowResponse{
		FromDate:         cf.Range.From.Format(dateLayout),
		ToDate:           cf.Range.To.AddDate(0, 0, -1).Format(dateLayout),
		CashIn:           cf.CashIn,
		CashOut:          cf.CashOut,
		NetCashFlow:      cf.NetCashFlow,
		CashInBreakdown:  cf.CashInBreakdown,
		CashOutBreakdown: cf.CashOutBreakdown,
	}
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf        string             `json:"asOf"`
	Assets      domain.Assets      `json:"assets"`
	Liabilities domain.Liabilities `json:"liabilities"`
	Equity      decimal.Decimal    `json:"equity"`
}

// ToBalanceSheetResponse converts a domain balance sheet to a DTO response
func ToBalanceSheetResponse(bs *domain.BalanceSheet) BalanceSheetResponse {
	return BalanceSheetResponse{
		AsOf:        bs.AsOf.Format(time.RFC3339),
		Assets:      bs.Assets,
		Liabilities: bs.Liabilities,
		Equity:      bs.Equity,
	}
}

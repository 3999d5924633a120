package reconciliation

import (
	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultCOGSRatio is the assumed cost-of-goods ratio for the gross-margin estimate.
var DefaultCOGSRatio = decimal.NewFromFloat(0.60)

// GrossMarginLabel marks the estimate as a heuristic everywhere it is displayed.
const GrossMarginLabel = "heuristic estimate: assumed COGS ratio, not derived from product costs"

// ComputeProfitAndLoss applies accrual rules:
//
//	income   = POS totals + revenue order totals + primary non-SALES ledger income
//	expenses = received PO amounts + primary ledger expense
//
// A correction nets against the side of the entry it reverses.
func ComputeProfitAndLoss(rng domain.DateRange, src Sources, cogsRatio decimal.Decimal) domain.PLStatement {
	incomeBreakdown := domain.CategoryBreakdown{}
	expenseBreakdown := domain.CategoryBreakdown{}

	salesIncome := decimal.Zero
	for _, s := range src.Sales {
		salesIncome = salesIncome.Add(s.Total)
	}
	for _, o := range RevenueOrders(src.Orders) {
		salesIncome = salesIncome.Add(o.Total)
	}
	if !salesIncome.IsZero() {
		incomeBreakdown.Add(domain.CategorySales, salesIncome)
	}

	for _, e := range FilterPrimary(src.Ledger) {
		typ, amount := e.Effect()
		switch typ {
		case domain.Income:
			// Primary SALES rows would duplicate revenue already read from the source collections.
			if e.Category != domain.CategorySales {
				incomeBreakdown.Add(e.Category, amount)
			}
		case domain.Expense:
			expenseBreakdown.Add(e.Category, amount)
		}
	}

	for _, po := range ReceivedPurchaseOrders(src.PurchaseOrders) {
		expenseBreakdown.Add(domain.CategoryPurchase, po.RecognizedAmount())
	}

	income := incomeBreakdown.Total()
	expenses := expenseBreakdown.Total()

	return domain.PLStatement{
		Range:            rng,
		Income:           income,
		Expenses:         expenses,
		NetProfit:        income.Sub(expenses),
		IncomeBreakdown:  incomeBreakdown,
		ExpenseBreakdown: expenseBreakdown,
		Estimate:         EstimateGrossMargin(salesIncome, cogsRatio),
	}
}

// EstimateGrossMargin applies an assumed COGS ratio to sales income.
func EstimateGrossMargin(salesIncome, cogsRatio decimal.Decimal) domain.GrossMarginEstimate {
	if cogsRatio.IsNegative() || cogsRatio.GreaterThan(decimal.NewFromInt(1)) {
		cogsRatio = DefaultCOGSRatio
	}
	cogs := salesIncome.Mul(cogsRatio).Round(2)
	return domain.GrossMarginEstimate{
		Label:                GrossMarginLabel,
		COGSRatio:            cogsRatio,
		SalesIncome:          salesIncome,
		EstimatedCOGS:        cogs,
		EstimatedGrossProfit: salesIncome.Sub(cogs),
	}
}

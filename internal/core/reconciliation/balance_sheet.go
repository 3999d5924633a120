package reconciliation

import (
	"time"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSheetInputs is the full history plus current positions.
type BalanceSheetInputs struct {
	History   Sources // all-time sales, orders and ledger entries
	Credits   []domain.CreditTransaction
	Vendors   []domain.Vendor
	Inventory []domain.InventoryLine
}

// ReconstructCash rebuilds the cash position from history: CASH sales (the paid
// part), COD revenue orders, CASH credit collections and primary CASH ledger
// income, minus primary CASH ledger expense. Collections stay out of income but
// turn a receivable into cash. Vendor payments reduce a payable and are not
// deducted.
func ReconstructCash(history Sources) decimal.Decimal {
	cash := decimal.Zero

	for _, s := range history.Sales {
		if s.PaymentMethod.Normalize() == domain.MethodCash {
			cash = cash.Add(s.PaidAmount)
		}
	}
	for _, o := range RevenueOrders(history.Orders) {
		if o.PaymentMethod.Normalize() == domain.MethodCOD {
			cash = cash.Add(o.Total)
		}
	}
	for _, e := range history.Ledger {
		if e.PaymentMethod.Normalize() != domain.MethodCash {
			continue
		}
		reason := Classify(e)
		if reason == ShadowCreditCollection {
			cash = cash.Add(e.Amount)
			continue
		}
		if reason != NotShadow {
			continue
		}
		typ, amount := e.Effect()
		switch typ {
		case domain.Income:
			if e.Category != domain.CategorySales {
				cash = cash.Add(amount)
			}
		case domain.Expense:
			cash = cash.Sub(amount)
		}
	}
	return cash
}

// OutstandingReceivables sums the due amount of every open credit.
func OutstandingReceivables(credits []domain.CreditTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, c := range credits {
		if c.DueAmount.IsPositive() {
			total = total.Add(c.DueAmount)
		}
	}
	return total
}

// OutstandingPayables sums max(0, balance) over vendors.
func OutstandingPayables(vendors []domain.Vendor) decimal.Decimal {
	total := decimal.Zero
	for _, v := range vendors {
		total = total.Add(v.OutstandingPayable())
	}
	return total
}

// InventoryValue sums costPrice × quantity over every product and warehouse.
func InventoryValue(lines []domain.InventoryLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Value())
	}
	return total
}

// ComputeBalanceSheet is a full reconstruction, not an incrementally maintained balance.
func ComputeBalanceSheet(asOf time.Time, in BalanceSheetInputs) domain.BalanceSheet {
	assets := domain.Assets{
		Cash:        ReconstructCash(in.History),
		Inventory:   InventoryValue(in.Inventory),
		Receivables: OutstandingReceivables(in.Credits),
	}
	assets.Total = assets.Cash.Add(assets.Inventory).Add(assets.Receivables)

	payables := OutstandingPayables(in.Vendors)
	liabilities := domain.Liabilities{Payables: payables, Total: payables}

	return domain.BalanceSheet{
		AsOf:        asOf,
		Assets:      assets,
		Liabilities: liabilities,
		Equity:      assets.Total.Sub(liabilities.Total),
	}
}

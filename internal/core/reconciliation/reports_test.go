package reconciliation_test

import (
	"testing"
	"time"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/SscSPs/retail_ledger_app/internal/core/reconciliation"
	"github.com/stretchr/testify/assert"
)

func TestComputeProfitAndLossExcludesShadows(t *testing.T) {
	settlement := entry("settle", domain.Income, domain.CategorySales, 600, domain.MethodCash, day1)
	settlement.Description = "Credit settlement for sale s2"

	src := reconciliation.Sources{
		Ledger: []domain.LedgerEntry{
			related(entry("mirror-s1", domain.Income, domain.CategorySales, 500, domain.MethodCash, day1), "s1"),
			related(entry("mirror-o1", domain.Income, domain.CategorySales, 1200, domain.MethodCOD, day1), "o1"),
			related(entry("mirror-po", domain.Expense, domain.CategoryPurchase, 2000, domain.MethodCredit, day1), "po1"),
			entry("vpay", domain.Expense, domain.CategoryVendorPay, 2000, domain.MethodCash, day1),
			settlement,
			entry("manual-sales", domain.Income, domain.CategorySales, 40, domain.MethodCash, day1),
			entry("scrap", domain.Income, domain.CategoryOther, 150, domain.MethodCash, day1),
			entry("salary", domain.Expense, domain.CategorySalary, 10000, domain.MethodBankTransfer, day1),
			entry("power", domain.Expense, domain.CategoryUtility, 900, domain.MethodFonePay, day1),
		},
		Sales: []domain.Sale{
			sale("s1", 500, 500, domain.MethodCash, day1),
			sale("s2", 1000, 400, domain.MethodCash, day1),
		},
		Orders: []domain.Order{
			order("o1", domain.OrderConfirmed, 1200, domain.MethodCOD, day1),
			order("o2", domain.OrderCompleted, 300, domain.MethodBankTransfer, day1),
			order("o3", domain.OrderShipped, 700, domain.MethodCOD, day1),
			order("o4", domain.OrderPending, 800, domain.MethodCOD, day1),
		},
		PurchaseOrders: []domain.PurchaseOrder{
			purchaseOrder("po1", domain.POReceived, 2000, nil, day1),
			purchaseOrder("po2", domain.POPending, 5000, nil, day1),
		},
	}

	pl := reconciliation.ComputeProfitAndLoss(domain.DayRange(day1), src, reconciliation.DefaultCOGSRatio)

	// 500 + 1000 sales, 1200 + 300 revenue orders, 150 misc income
	assert.True(t, d(3150).Equal(pl.Income), "income was %s", pl.Income)
	// 2000 PO + 10000 salary + 900 utility
	assert.True(t, d(12900).Equal(pl.Expenses), "expenses were %s", pl.Expenses)
	assert.True(t, d(-9750).Equal(pl.NetProfit))

	assert.True(t, d(3000).Equal(pl.IncomeBreakdown[domain.CategorySales]))
	assert.True(t, d(150).Equal(pl.IncomeBreakdown[domain.CategoryOther]))
	assert.True(t, d(2000).Equal(pl.ExpenseBreakdown[domain.CategoryPurchase]))
	_, hasVendorPay := pl.ExpenseBreakdown[domain.CategoryVendorPay]
	assert.False(t, hasVendorPay)

	assert.True(t, d(1800).Equal(pl.Estimate.EstimatedCOGS))
	assert.True(t, d(1200).Equal(pl.Estimate.EstimatedGrossProfit))
	assert.Equal(t, reconciliation.GrossMarginLabel, pl.Estimate.Label)
	assert.False(t, pl.Estimate.EstimatedGrossProfit.Equal(pl.NetProfit), "estimate must stay separate from net profit")
}

func TestEstimateGrossMarginRejectsOutOfRangeRatio(t *testing.T) {
	est := reconciliation.EstimateGrossMargin(d(1000), d(1.5))
	assert.True(t, reconciliation.DefaultCOGSRatio.Equal(est.COGSRatio))
	assert.True(t, d(600).Equal(est.EstimatedCOGS))
}

func TestComputeCashFlowBucketsAndCompleteness(t *testing.T) {
	src := reconciliation.Sources{
		Ledger: []domain.LedgerEntry{
			related(entry("mirror", domain.Income, domain.CategorySales, 500, domain.MethodCash, day1), "s1"),
			entry("vpay", domain.Expense, domain.CategoryVendorPay, 700, domain.MethodCheque, day1),
			entry("tips", domain.Income, domain.CategoryOther, 20, "ESEWA", day1),
			entry("odd-expense", domain.Expense, domain.CategoryOther, 35, "BARTER", day1),
			entry("rent", domain.Expense, domain.CategoryRent, 5000, domain.MethodBankTransfer, day1),
		},
		Sales: []domain.Sale{
			sale("s1", 500, 500, domain.MethodCash, day1),
			sale("s2", 800, 0, domain.MethodCredit, day1),
			sale("s3", 250, 250, "fonepay", day1),
			sale("s4", 90, 90, "", day1),
		},
		Orders: []domain.Order{
			order("o1", domain.OrderConfirmed, 1200, domain.MethodCOD, day1),
			order("o2", domain.OrderCompleted, 300, domain.MethodBankTransfer, day1),
			order("o3", domain.OrderCancelled, 999, domain.MethodCOD, day1),
		},
		PurchaseOrders: []domain.PurchaseOrder{
			purchaseOrder("po1", domain.POReceived, 2000, nil, day1),
		},
	}

	cf := reconciliation.ComputeCashFlow(domain.DayRange(day1), src)

	assert.True(t, d(500+1200+20+90).Equal(cf.CashInBreakdown.Cash), "cash in was %s", cf.CashInBreakdown.Cash)
	assert.True(t, d(800).Equal(cf.CashInBreakdown.Credit))
	assert.True(t, d(250).Equal(cf.CashInBreakdown.FonePay))
	assert.True(t, d(300).Equal(cf.CashInBreakdown.BankTransfer))
	assert.True(t, cf.CashInBreakdown.Unclassified.IsZero())

	assert.True(t, d(2000).Equal(cf.CashOutBreakdown.Credit))
	assert.True(t, d(700).Equal(cf.CashOutBreakdown.Cheque), "vendor payments count as cash out")
	assert.True(t, d(5000).Equal(cf.CashOutBreakdown.BankTransfer))
	assert.True(t, d(35).Equal(cf.CashOutBreakdown.Unclassified))

	assert.True(t, cf.CashInBreakdown.Total().Equal(cf.CashIn))
	assert.True(t, cf.CashOutBreakdown.Total().Equal(cf.CashOut))
	assert.True(t, d(3160).Equal(cf.CashIn))
	assert.True(t, d(7735).Equal(cf.CashOut))
	assert.True(t, cf.CashIn.Sub(cf.CashOut).Equal(cf.NetCashFlow))
}

func TestIncomingAndOutgoingBuckets(t *testing.T) {
	assert.Equal(t, domain.BucketCash, reconciliation.IncomingBucket(domain.MethodCOD))
	assert.Equal(t, domain.BucketCash, reconciliation.IncomingBucket("MYSTERY"))
	assert.Equal(t, domain.BucketUnclassified, reconciliation.OutgoingBucket("MYSTERY"))
	assert.Equal(t, domain.BucketCheque, reconciliation.OutgoingBucket("check"))
}

func TestComputeBalanceSheet(t *testing.T) {
	settlement := entry("settle", domain.Income, domain.CategorySales, 600, domain.MethodCash, day2)
	settlement.Description = "credit settlement for sale s2"

	in := reconciliation.BalanceSheetInputs{
		History: reconciliation.Sources{
			Sales: []domain.Sale{
				sale("s1", 500, 500, domain.MethodCash, day1),
				sale("s2", 1000, 400, domain.MethodCash, day1),
				sale("s3", 700, 700, domain.MethodFonePay, day1),
			},
			Orders: []domain.Order{
				order("o1", domain.OrderCompleted, 1200, domain.MethodCOD, day1),
				order("o2", domain.OrderConfirmed, 300, domain.MethodBankTransfer, day1),
				order("o3", domain.OrderPending, 450, domain.MethodCOD, day1),
			},
			Ledger: []domain.LedgerEntry{
				entry("scrap", domain.Income, domain.CategoryOther, 100, domain.MethodCash, day1),
				entry("tea", domain.Expense, domain.CategoryOther, 60, domain.MethodCash, day1),
				entry("rent", domain.Expense, domain.CategoryRent, 5000, domain.MethodBankTransfer, day1),
				entry("vpay", domain.Expense, domain.CategoryVendorPay, 1000, domain.MethodCash, day2),
				settlement,
			},
		},
		Credits: []domain.CreditTransaction{
			{CreditID: "c1", TotalAmount: d(1000), PaidAmount: d(1000), DueAmount: d(0)},
			{CreditID: "c2", TotalAmount: d(300), PaidAmount: d(300), DueAmount: d(0)},
		},
		Vendors: []domain.Vendor{
			{VendorID: "v1", Balance: d(1500)},
			{VendorID: "v2", Balance: d(-10)},
		},
		Inventory: []domain.InventoryLine{
			{ProductID: "p1", WarehouseID: "w1", Quantity: 10, CostPrice: d(25)},
			{ProductID: "p1", WarehouseID: "w2", Quantity: 4, CostPrice: d(25)},
			{ProductID: "p2", WarehouseID: "w1", Quantity: 30},
		},
	}

	asOf := time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC)
	bs := reconciliation.ComputeBalanceSheet(asOf, in)

	// 500 + 400 paid cash sales + 1200 COD + 600 collected + 100 income - 60 expense
	assert.True(t, d(2740).Equal(bs.Assets.Cash), "cash was %s", bs.Assets.Cash)
	assert.True(t, d(350).Equal(bs.Assets.Inventory))
	assert.True(t, bs.Assets.Receivables.IsZero())
	assert.True(t, d(3090).Equal(bs.Assets.Total))
	assert.True(t, d(1500).Equal(bs.Liabilities.Payables))
	assert.True(t, d(1500).Equal(bs.Liabilities.Total))
	assert.True(t, d(1590).Equal(bs.Equity))
	assert.True(t, asOf.Equal(bs.AsOf))
}

func TestComputeBalanceSheet_CollectingReceivableKeepsAssets(t *testing.T) {
	history := reconciliation.Sources{
		Sales: []domain.Sale{sale("s1", 1000, 400, domain.MethodCash, day1)},
	}
	before := reconciliation.ComputeBalanceSheet(day1, reconciliation.BalanceSheetInputs{
		History: history,
		Credits: []domain.CreditTransaction{{CreditID: "c1", TotalAmount: d(1000), PaidAmount: d(400), DueAmount: d(600)}},
	})

	collection := entry("settle", domain.Income, domain.CategorySales, 600, domain.MethodCash, day2)
	collection.Description = "Credit settlement for sale s1"
	history.Ledger = append(history.Ledger, collection)
	after := reconciliation.ComputeBalanceSheet(day2, reconciliation.BalanceSheetInputs{
		History: history,
		Credits: []domain.CreditTransaction{{CreditID: "c1", TotalAmount: d(1000), PaidAmount: d(1000), DueAmount: d(0)}},
	})

	assert.True(t, d(400).Equal(before.Assets.Cash))
	assert.True(t, d(600).Equal(before.Assets.Receivables))
	assert.True(t, d(1000).Equal(after.Assets.Cash), "cash was %s", after.Assets.Cash)
	assert.True(t, after.Assets.Receivables.IsZero())
	assert.True(t, before.Assets.Total.Equal(after.Assets.Total), "before %s, after %s", before.Assets.Total, after.Assets.Total)
	assert.True(t, before.Equity.Equal(after.Equity))
}

func TestComputeBalanceSheet_NonCashCollectionIsNotCash(t *testing.T) {
	collection := entry("settle", domain.Income, domain.CategorySales, 600, domain.MethodFonePay, day2)
	collection.Description = "Credit settlement for sale s1"

	cash := reconciliation.ReconstructCash(reconciliation.Sources{
		Sales:  []domain.Sale{sale("s1", 1000, 400, domain.MethodCash, day1)},
		Ledger: []domain.LedgerEntry{collection},
	})

	assert.True(t, d(400).Equal(cash), "cash was %s", cash)
}

func TestCorrectionsNetToZero(t *testing.T) {
	rent := entry("rent", domain.Expense, domain.CategoryRent, 5000, domain.MethodCash, day1)
	manualSales := entry("manual-sales", domain.Income, domain.CategorySales, 40, domain.MethodCash, day1)
	scrap := entry("scrap", domain.Income, domain.CategoryOther, 150, domain.MethodFonePay, day1)

	testCases := []struct {
		name     string
		original domain.LedgerEntry
	}{
		{"expense", rent},
		{"manual sales income", manualSales},
		{"other income", scrap},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := reconciliation.Sources{Ledger: []domain.LedgerEntry{
				tc.original,
				correctionOf(tc.original, "fix", day1),
			}}
			rng := domain.DayRange(day1)

			pl := reconciliation.ComputeProfitAndLoss(rng, src, reconciliation.DefaultCOGSRatio)
			assert.True(t, pl.Income.IsZero(), "income was %s", pl.Income)
			assert.True(t, pl.Expenses.IsZero(), "expenses were %s", pl.Expenses)
			assert.True(t, pl.NetProfit.IsZero())

			cf := reconciliation.ComputeCashFlow(rng, src)
			assert.True(t, cf.CashIn.IsZero(), "cash in was %s", cf.CashIn)
			assert.True(t, cf.CashOut.IsZero(), "cash out was %s", cf.CashOut)

			cash := reconciliation.ReconstructCash(src)
			assert.True(t, cash.IsZero(), "cash was %s", cash)
		})
	}
}

func TestCorrectionInLaterPeriodReducesThatPeriod(t *testing.T) {
	rent := entry("rent", domain.Expense, domain.CategoryRent, 5000, domain.MethodBankTransfer, day1)
	src := reconciliation.Sources{Ledger: []domain.LedgerEntry{correctionOf(rent, "fix", day2)}}

	pl := reconciliation.ComputeProfitAndLoss(domain.DayRange(day2), src, reconciliation.DefaultCOGSRatio)

	assert.True(t, pl.Income.IsZero())
	assert.True(t, d(-5000).Equal(pl.Expenses), "expenses were %s", pl.Expenses)
	assert.True(t, d(5000).Equal(pl.NetProfit))
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionSource identifies which stream a day-book row came from.
type TransactionSource string

const (
	SourceLedger   TransactionSource = "LEDGER"
	SourcePOS      TransactionSource = "POS"
	SourceOnline   TransactionSource = "ONLINE"
	SourcePurchase TransactionSource = "PURCHASE"
)

// UnifiedTransaction is one row of the day book.
type UnifiedTransaction struct {
	ID            string            `json:"id"`
	Date          time.Time         `json:"date"`
	Type          EntryType         `json:"type"`
	Category      LedgerCategory    `json:"category"`
	Description   string            `json:"description"`
	Amount        decimal.Decimal   `json:"amount"`
	PaymentMethod PaymentMethod     `json:"paymentMethod"`
	Source        TransactionSource `json:"source"`
	PerformedBy   string            `json:"performedBy,omitempty"`
}

// CategoryBreakdown maps a ledger category to its total.
type CategoryBreakdown map[LedgerCategory]decimal.Decimal

// Add accumulates amount under category.
func (b CategoryBreakdown) Add(category LedgerCategory, amount decimal.Decimal) {
	b[category] = b[category].Add(amount)
}

// Total sums every category.
func (b CategoryBreakdown) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range b {
		total = total.Add(v)
	}
	return total
}

// GrossMarginEstimate is an explicitly labeled heuristic. It is never used to
// derive NetProfit.
type GrossMarginEstimate struct {
	Label                string          `json:"label"`
	COGSRatio            decimal.Decimal `json:"cogsRatio"`
	SalesIncome          decimal.Decimal `json:"salesIncome"`
	EstimatedCOGS        decimal.Decimal `json:"estimatedCOGS"`
	EstimatedGrossProfit decimal.Decimal `json:"estimatedGrossProfit"`
}

// PLStatement is the profit and loss statement for a range.
type PLStatement struct {
	Range            DateRange           `json:"range"`
	Income           decimal.Decimal     `json:"income"`
	Expenses         decimal.Decimal     `json:"expenses"`
	NetProfit        decimal.Decimal     `json:"netProfit"`
	IncomeBreakdown  CategoryBreakdown   `json:"incomeBreakdown"`
	ExpenseBreakdown CategoryBreakdown   `json:"expenseBreakdown"`
	Estimate         GrossMarginEstimate `json:"estimate"`
}

// CashBucket is a payment-method bucket of the cash-flow statement.
type CashBucket string

const (
	BucketCash         CashBucket = "cash"
	BucketBankTransfer CashBucket = "bankTransfer"
	BucketFonePay      CashBucket = "fonePay"
	BucketCheque       CashBucket = "cheque"
	BucketCredit       CashBucket = "credit"
	// BucketUnclassified only appears on the cash-out side, for expense methods
	// that map to no known bucket.
	BucketUnclassified CashBucket = "unclassified"
)

// PaymentBreakdown holds one total per cash bucket.
type PaymentBreakdown struct {
	Cash         decimal.Decimal `json:"cash"`
	BankTransfer decimal.Decimal `json:"bankTransfer"`
	FonePay      decimal.Decimal `json:"fonePay"`
	Cheque       decimal.Decimal `json:"cheque"`
	Credit       decimal.Decimal `json:"credit"`
	Unclassified decimal.Decimal `json:"unclassified"`
}

// Add accumulates amount into bucket.
func (b *PaymentBreakdown) Add(bucket CashBucket, amount decimal.Decimal) {
	switch bucket {
	case BucketCash:
		b.Cash = b.Cash.Add(amount)
	case BucketBankTransfer:
		b.BankTransfer = b.BankTransfer.Add(amount)
	case BucketFonePay:
		b.FonePay = b.FonePay.Add(amount)
	case BucketCheque:
		b.Cheque = b.Cheque.Add(amount)
	case BucketCredit:
		b.Credit = b.Credit.Add(amount)
	default:
		b.Unclassified = b.Unclassified.Add(amount)
	}
}

// Total sums every bucket.
func (b PaymentBreakdown) Total() decimal.Decimal {
	return b.Cash.Add(b.BankTransfer).Add(b.FonePay).Add(b.Cheque).Add(b.Credit).Add(b.Unclassified)
}

// CashFlow is the accrual-basis cash-flow statement for a range.
type CashFlow struct {
	Range            DateRange        `json:"range"`
	CashIn           decimal.Decimal  `json:"cashIn"`
	CashOut          decimal.Decimal  `json:"cashOut"`
	NetCashFlow      decimal.Decimal  `json:"netCashFlow"`
	CashInBreakdown  PaymentBreakdown `json:"cashInBreakdown"`
	CashOutBreakdown PaymentBreakdown `json:"cashOutBreakdown"`
}

// Assets section of the balance sheet.
type Assets struct {
	Cash        decimal.Decimal `json:"cash"`
	Inventory   decimal.Decimal `json:"inventory"`
	Receivables decimal.Decimal `json:"receivables"`
	Total       decimal.Decimal `json:"total"`
}

// Liabilities section of the balance sheet.
type Liabilities struct {
	Payables decimal.Decimal `json:"payables"`
	Total    decimal.Decimal `json:"total"`
}

// BalanceSheet is a point-in-time reconstruction from all history.
type BalanceSheet struct {
	AsOf        time.Time       `json:"asOf"`
	Assets      Assets          `json:"assets"`
	Liabilities Liabilities     `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
}

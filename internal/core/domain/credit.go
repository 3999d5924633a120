package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CreditStatus is derived from a credit's amounts; it is never stored.
type CreditStatus string

const (
	CreditOpen             CreditStatus = "OPEN"
	CreditPartiallySettled CreditStatus = "PARTIALLY_SETTLED"
	CreditSettled          CreditStatus = "SETTLED"
)

// SettlementRecord is one payment applied against a credit.
type SettlementRecord struct {
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	SettledBy     string          `json:"settledBy"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Notes         *string         `json:"notes,omitempty"`
}

// CreditTransaction tracks the unpaid part of a sale.
// Invariant: PaidAmount + DueAmount == TotalAmount, DueAmount never increases.
type CreditTransaction struct {
	CreditID          string             `json:"creditID"`
	CustomerID        string             `json:"customerID"`
	SaleID            string             `json:"saleID"`
	TotalAmount       decimal.Decimal    `json:"totalAmount"`
	PaidAmount        decimal.Decimal    `json:"paidAmount"`
	DueAmount         decimal.Decimal    `json:"dueAmount"`
	SettlementHistory []SettlementRecord `json:"settlementHistory"`
	SettledAt         *time.Time         `json:"settledAt,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	Version           int64              `json:"-"`
}

// Status derives the state machine position from the amounts.
func (c CreditTransaction) Status() CreditStatus {
	switch {
	case c.DueAmount.Sign() <= 0:
		return CreditSettled
	case len(c.SettlementHistory) > 0 && c.DueAmount.LessThan(c.TotalAmount):
		return CreditPartiallySettled
	default:
		return CreditOpen
	}
}

// CheckInvariant verifies the amount invariant within AmountTolerance.
func (c CreditTransaction) CheckInvariant() error {
	if c.DueAmount.IsNegative() {
		return fmt.Errorf("credit %s has negative due amount %s", c.CreditID, c.DueAmount.String())
	}
	if c.PaidAmount.Add(c.DueAmount).Sub(c.TotalAmount).Abs().GreaterThan(AmountTolerance) {
		return fmt.Errorf("credit %s: paid %s + due %s != total %s",
			c.CreditID, c.PaidAmount.String(), c.DueAmount.String(), c.TotalAmount.String())
	}
	if c.DueAmount.IsZero() != (c.SettledAt != nil) {
		return fmt.Errorf("credit %s: settledAt does not match due amount %s", c.CreditID, c.DueAmount.String())
	}
	return nil
}

// ErrSettlementAmount is returned by ApplySettlement; callers translate it into
// their own error taxonomy.
type ErrSettlementAmount struct {
	Amount decimal.Decimal
	Due    decimal.Decimal
}

func (e *ErrSettlementAmount) Error() string {
	if e.Amount.Sign() <= 0 {
		return fmt.Sprintf("settlement amount must be positive, got %s", e.Amount.String())
	}
	return fmt.Sprintf("settlement amount %s exceeds due amount %s", e.Amount.String(), e.Due.String())
}

// ApplySettlement records a payment of amount against the credit. It fails without
// mutating anything when amount <= 0 or amount > DueAmount.
func (c *CreditTransaction) ApplySettlement(rec SettlementRecord) error {
	if rec.Amount.Sign() <= 0 || rec.Amount.GreaterThan(c.DueAmount) {
		return &ErrSettlementAmount{Amount: rec.Amount, Due: c.DueAmount}
	}

	c.PaidAmount = c.PaidAmount.Add(rec.Amount)
	c.DueAmount = c.DueAmount.Sub(rec.Amount)
	c.SettlementHistory = append(c.SettlementHistory, rec)
	if c.DueAmount.IsZero() && c.SettledAt == nil {
		settledAt := rec.Date
		c.SettledAt = &settledAt
	}
	return nil
}

// SettlementDescription is the ledger description for a settlement of this credit.
// It always carries CreditSettlementMarker so reconciliation treats it as a shadow.
func (c CreditTransaction) SettlementDescription(notes *string) string {
	desc := fmt.Sprintf("Credit settlement for sale %s", c.SaleID)
	if notes != nil && *notes != "" {
		desc += " - " + *notes
	}
	return desc
}

package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Vendor is a supplier. Balance is the outstanding payable and is never negative.
type Vendor struct {
	VendorID string          `json:"vendorID"`
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
	IsActive bool            `json:"isActive"`
	AuditFields
}

// VendorPayment is one entry in a vendor's payment history.
type VendorPayment struct {
	PaymentID     string          `json:"paymentID"`
	VendorID      string          `json:"vendorID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	PerformedBy   string          `json:"performedBy"`
	Notes         *string         `json:"notes,omitempty"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	PaidAt        time.Time       `json:"paidAt"`
}

// ErrPaymentAmount is returned when a payment is not positive or exceeds the balance.
type ErrPaymentAmount struct {
	Amount  decimal.Decimal
	Balance decimal.Decimal
}

func (e *ErrPaymentAmount) Error() string {
	if e.Amount.Sign() <= 0 {
		return fmt.Sprintf("payment amount must be positive, got %s", e.Amount.String())
	}
	return fmt.Sprintf("payment amount %s exceeds vendor balance %s", e.Amount.String(), e.Balance.String())
}

// ApplyPayment reduces the balance by amount.
func (v *Vendor) ApplyPayment(amount decimal.Decimal) error {
	if amount.Sign() <= 0 || amount.GreaterThan(v.Balance) {
		return &ErrPaymentAmount{Amount: amount, Balance: v.Balance}
	}
	v.Balance = v.Balance.Sub(amount)
	return nil
}

// OutstandingPayable is the balance floored at zero.
func (v Vendor) OutstandingPayable() decimal.Decimal {
	if v.Balance.IsNegative() {
		return decimal.Zero
	}
	return v.Balance
}

package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SaleSourcePOS marks sales rung up at the point-of-sale counter.
const SaleSourcePOS = "POS"

// SaleItem is a line on a POS sale.
type SaleItem struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// LineTotal returns quantity × unit price.
func (i SaleItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// Sale is a point-of-sale transaction. Revenue is recognized for the full total
// at CreatedAt regardless of how much was paid.
type Sale struct {
	SaleID        string          `json:"saleID"`
	CreatedAt     time.Time       `json:"createdAt"`
	Items         []SaleItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	DueAmount     decimal.Decimal `json:"dueAmount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	CustomerID    *string         `json:"customerID,omitempty"`
	PerformedBy   string          `json:"performedBy"`
	Source        string          `json:"source"`
}

// CheckInvariant verifies paidAmount + dueAmount == total.
func (s Sale) CheckInvariant() error {
	if s.Total.IsNegative() || s.PaidAmount.IsNegative() || s.DueAmount.IsNegative() {
		return fmt.Errorf("sale %s has negative amounts", s.SaleID)
	}
	if s.PaidAmount.Add(s.DueAmount).Sub(s.Total).Abs().GreaterThan(AmountTolerance) {
		return fmt.Errorf("sale %s: paid %s + due %s != total %s",
			s.SaleID, s.PaidAmount.String(), s.DueAmount.String(), s.Total.String())
	}
	return nil
}

// ItemsTotal sums the line totals.
func (s Sale) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

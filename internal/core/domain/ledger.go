package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates whether a ledger entry recognizes income or expense.
type EntryType string

const (
	Income  EntryType = "INCOME"
	Expense EntryType = "EXPENSE"
)

// IsValid reports whether the entry type is known.
func (t EntryType) IsValid() bool {
	return t == Income || t == Expense
}

// Opposite returns the type used for an offsetting correction.
func (t EntryType) Opposite() EntryType {
	if t == Income {
		return Expense
	}
	return Income
}

// LedgerCategory classifies a ledger entry for breakdowns and reconciliation.
type LedgerCategory string

const (
	CategorySales     LedgerCategory = "SALES"
	CategoryPurchase  LedgerCategory = "PURCHASE"
	CategoryVendorPay LedgerCategory = "VENDOR_PAY"
	CategorySalary    LedgerCategory = "SALARY"
	CategoryRent      LedgerCategory = "RENT"
	CategoryUtility   LedgerCategory = "UTILITY"
	CategoryOther     LedgerCategory = "OTHER"
)

// Categories lists every known category in display order.
var Categories = []LedgerCategory{
	CategorySales,
	CategoryPurchase,
	CategoryVendorPay,
	CategorySalary,
	CategoryRent,
	CategoryUtility,
	CategoryOther,
}

// IsValid reports whether the category is one of the known categories.
func (c LedgerCategory) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// CreditSettlementMarker is embedded in the description of every ledger entry posted
// by a credit settlement.
const CreditSettlementMarker = "credit settlement"

// LedgerEntry is an immutable income or expense record. Corrections are posted as
// offsetting entries; entries are never updated or deleted.
type LedgerEntry struct {
	EntryID       string          `json:"entryID"`
	Date          time.Time       `json:"date"`
	Type          EntryType       `json:"type"`
	Category      LedgerCategory  `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	RelatedID     *string         `json:"relatedID,omitempty"` // Source-collection record this entry shadows
	CorrectsID    *string         `json:"correctsID,omitempty"` // Entry this one offsets
	PerformedBy   string          `json:"performedBy"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// HasRelatedID reports whether the entry is linked to a source-collection record.
func (e LedgerEntry) HasRelatedID() bool {
	return e.RelatedID != nil && *e.RelatedID != ""
}

// IsCorrection reports whether the entry offsets an earlier entry.
func (e LedgerEntry) IsCorrection() bool {
	return e.CorrectsID != nil && *e.CorrectsID != ""
}

// Effect returns the type the entry counts toward and its signed amount. A
// correction reduces the side of the entry it reverses instead of adding to
// the opposite side.
func (e LedgerEntry) Effect() (EntryType, decimal.Decimal) {
	if e.IsCorrection() {
		return e.Type.Opposite(), e.Amount.Neg()
	}
	return e.Type, e.Amount
}

// IsCreditSettlement reports whether the entry was posted by a credit settlement.
// A correction is never one, whatever its reason says.
func (e LedgerEntry) IsCreditSettlement() bool {
	return e.Category == CategorySales && e.Type == Income && !e.IsCorrection() &&
		strings.Contains(strings.ToLower(e.Description), CreditSettlementMarker)
}

// Validate checks the fields every entry must carry, regardless of who posts it.
func (e LedgerEntry) Validate() error {
	if !e.Type.IsValid() {
		return fmt.Errorf("unknown ledger entry type %q", e.Type)
	}
	if !e.Category.IsValid() {
		return fmt.Errorf("unknown ledger category %q", e.Category)
	}
	if e.Amount.IsNegative() {
		return fmt.Errorf("ledger amount must not be negative, got %s", e.Amount.String())
	}
	if e.Date.IsZero() {
		return fmt.Errorf("ledger entry date is required")
	}
	return nil
}

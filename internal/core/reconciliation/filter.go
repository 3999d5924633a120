// Package reconciliation turns the ledger and the source collections (POS sales,
// online orders, purchase orders) into a single non-duplicated financial record
// and derives the day book, profit and loss, cash flow and balance sheet from it.
//
// Everything here is pure: callers fetch the inputs and pass them in.
package reconciliation

import "github.com/SscSPs/retail_ledger_app/internal/core/domain"

// ShadowReason explains why an entry is excluded from reporting.
type ShadowReason string

const (
	NotShadow ShadowReason = ""
	// SALES entry auto-posted for a sale or an order confirmation.
	ShadowSaleMirror ShadowReason = "sale_mirror"
	// PURCHASE entry auto-posted at GRN time.
	ShadowPurchaseMirror ShadowReason = "purchase_mirror"
	// Cash paid against an already recognized payable.
	ShadowVendorPayment ShadowReason = "vendor_payment"
	// Cash collected against revenue recognized at sale time.
	ShadowCreditCollection ShadowReason = "credit_collection"
)

// Classify returns why entry is a shadow, or NotShadow for primary entries.
func Classify(entry domain.LedgerEntry) ShadowReason {
	switch entry.Category {
	case domain.CategorySales:
		if entry.HasRelatedID() {
			return ShadowSaleMirror
		}
		if entry.IsCreditSettlement() {
			return ShadowCreditCollection
		}
	case domain.CategoryPurchase:
		if entry.HasRelatedID() {
			return ShadowPurchaseMirror
		}
	case domain.CategoryVendorPay:
		return ShadowVendorPayment
	}
	return NotShadow
}

// IsShadow reports whether entry must be left out of reporting.
func IsShadow(entry domain.LedgerEntry) bool {
	return Classify(entry) != NotShadow
}

// FilterPrimary returns the entries that must be reported, preserving order.
func FilterPrimary(entries []domain.LedgerEntry) []domain.LedgerEntry {
	primary := make([]domain.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if !IsShadow(e) {
			primary = append(primary, e)
		}
	}
	return primary
}

// VendorPayments returns the VENDOR_PAY entries. They stay out of P&L but are
// real transfers of funds for the cash-flow statement.
func VendorPayments(entries []domain.LedgerEntry) []domain.LedgerEntry {
	out := make([]domain.LedgerEntry, 0)
	for _, e := range entries {
		if Classify(e) == ShadowVendorPayment {
			out = append(out, e)
		}
	}
	return out
}

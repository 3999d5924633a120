package dto

import (
	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SettleVendorPaymentRequest is the body of POST /vendors/:vendorID/payments.
type SettleVendorPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,settlement_method"`
	Notes         *string         `json:"notes,omitempty" binding:"omitempty,max=500"`
}

// VendorResponse is a vendor with its outstanding payable.
type VendorResponse struct {
	VendorID string          `json:"vendorID"`
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
	IsActive bool            `json:"isActive"`
}

// ToVendorResponse converts a domain vendor.
func ToVendorResponse(v *domain.Vendor) VendorResponse {
	return VendorResponse{
		VendorID: v.VendorID,
		Name:     v.Name,
		Balance:  v.Balance,
		IsActive: v.IsActive,
	}
}

// ListVendorPaymentsResponse wraps a vendor's payment history.
type ListVendorPaymentsResponse struct {
	VendorID string                 `json:"vendorID"`
	Payments []domain.VendorPayment `json:"payments"`
}

package services

import (
	"context"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/SscSPs/retail_ledger_app/internal/dto"
)

// CreditReaderSvc defines read operations for customer credits
type CreditReaderSvc interface {
	GetCredit(ctx context.Context, creditID string) (*domain.CreditTransaction, error)

	// ListOutstandingCredits lists a customer's credits that still have a due amount.
	ListOutstandingCredits(ctx context.Context, customerID string) ([]domain.CreditTransaction, error)
}

// CreditSettlerSvc applies payments against credits.
type CreditSettlerSvc interface {
	// SettleCredit applies a payment, decrements the customer's total due and
	// posts the settlement ledger entry as one unit.
	SettleCredit(ctx context.Context, creditID string, req dto.SettleCreditRequest, actorID string) (*domain.CreditTransaction, error)
}

// CreditSvcFacade combines all credit-related service interfaces
type CreditSvcFacade interface {
	CreditReaderSvc
	CreditSettlerSvc
}

// VendorReaderSvc defines read operations for vendors
type VendorReaderSvc interface {
	GetVendor(ctx context.Context, vendorID string) (*domain.Vendor, error)
	ListVendorPayments(ctx context.Context, vendorID string) ([]domain.VendorPayment, error)
}

// VendorSettlerSvc pays down vendor balances.
type VendorSettlerSvc interface {
	// SettleVendorPayment reduces the vendor balance, records the payment and
	// posts a VENDOR_PAY ledger entry as one unit.
	SettleVendorPayment(ctx context.Context, vendorID string, req dto.SettleVendorPaymentRequest, actorID string) (*domain.VendorPayment, error)
}

// VendorSvcFacade combines all vendor-related service interfaces
type VendorSvcFacade interface {
	VendorReaderSvc
	VendorSettlerSvc
}

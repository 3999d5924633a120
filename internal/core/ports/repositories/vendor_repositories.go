package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// VendorReader defines read operations for vendor data
type VendorReader interface {
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
	ListVendorPayments(ctx context.Context, vendorID string) ([]domain.VendorPayment, error)
}

// VendorWriter defines write operations for vendor data
type VendorWriter interface {
	// FindVendorByIDForUpdate locks the vendor row for the rest of tx.
	FindVendorByIDForUpdate(ctx context.Context, tx pgx.Tx, vendorID string) (*domain.Vendor, error)

	// AdjustBalanceInTx adds delta to the vendor balance and returns the new balance.
	AdjustBalanceInTx(ctx context.Context, tx pgx.Tx, vendorID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) (decimal.Decimal, error)

	SaveVendorPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.VendorPayment) error
}

// VendorRepositoryFacade combines all vendor repository interfaces
type VendorRepositoryFacade interface {
	VendorReader
	VendorWriter
}

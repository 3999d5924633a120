package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CreditReader defines read operations for credit transactions
type CreditReader interface {
	FindCreditByID(ctx context.Context, creditID string) (*domain.CreditTransaction, error)

	// ListOutstandingCredits returns credits with a positive due amount. A nil
	// customerID lists across all customers.
	ListOutstandingCredits(ctx context.Context, customerID *string) ([]domain.CreditTransaction, error)
}

// CreditWriter defines write operations for credit transactions
type CreditWriter interface {
	SaveCreditInTx(ctx context.Context, tx pgx.Tx, credit domain.CreditTransaction) error

	// FindCreditByIDForUpdate locks the credit row for the rest of tx.
	FindCreditByIDForUpdate(ctx context.Context, tx pgx.Tx, creditID string) (*domain.CreditTransaction, error)

	// UpdateCreditInTx writes amounts, history and settledAt. It fails with
	// ErrConcurrentUpdate when credit.Version no longer matches the stored row.
	UpdateCreditInTx(ctx context.Context, tx pgx.Tx, credit domain.CreditTransaction) error
}

// CreditRepositoryFacade combines all credit repository interfaces
type CreditRepositoryFacade interface {
	CreditReader
	CreditWriter
}

// CustomerRepository maintains the per-customer aggregate due.
type CustomerRepository interface {
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// AdjustTotalDueInTx adds delta to totalDue, flooring the result at zero.
	AdjustTotalDueInTx(ctx context.Context, tx pgx.Tx, customerID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) error
}

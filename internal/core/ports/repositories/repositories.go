package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager scopes multi-store writes (a settlement touches the
// credit row, the customer aggregate and the ledger) to one pgx transaction.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	// Rollback is a no-op on a transaction that already finished.
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// RepositoryProvider bundles every store the service container wires.
type RepositoryProvider struct {
	TxManager         TransactionManager
	LedgerRepo        LedgerRepositoryFacade
	SaleRepo          SaleRepository
	OrderRepo         OrderRepository
	PurchaseOrderRepo PurchaseOrderRepository
	CreditRepo        CreditRepositoryFacade
	CustomerRepo      CustomerRepository
	VendorRepo        VendorRepositoryFacade
	InventoryRepo     InventoryRepository
	UserRepo          UserReader
}

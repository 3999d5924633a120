package pgsql

import (
	portsrepo "github.com/SscSPs/retail_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:         &BaseRepository{Pool: dbPool},
		LedgerRepo:        newPgxLedgerRepository(dbPool),
		SaleRepo:          newPgxSaleRepository(dbPool),
		OrderRepo:         newPgxOrderRepository(dbPool),
		PurchaseOrderRepo: newPgxPurchaseOrderRepository(dbPool),
		CreditRepo:        newPgxCreditRepository(dbPool),
		CustomerRepo:      newPgxCustomerRepository(dbPool),
		VendorRepo:        newPgxVendorRepository(dbPool),
		InventoryRepo:     newPgxInventoryRepository(dbPool),
		UserRepo:          newPgxUserRepository(dbPool),
	}
}

package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// SaleRepository reads and writes POS sales.
type SaleRepository interface {
	// QuerySales returns sales created in [from, to), newest first.
	QuerySales(ctx context.Context, from, to time.Time) ([]domain.Sale, error)

	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	SaveSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error
}

// OrderRepository reads online orders and records status changes.
type OrderRepository interface {
	// QueryOrders returns orders matching the filter, newest first.
	QueryOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)

	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// FindOrderByIDForUpdate locks the order row for the rest of tx.
	FindOrderByIDForUpdate(ctx context.Context, tx pgx.Tx, orderID string) (*domain.Order, error)

	UpdateOrderStatusInTx(ctx context.Context, tx pgx.Tx, order domain.Order) error
}

// PurchaseOrderRepository reads purchase orders and records goods receipt.
type PurchaseOrderRepository interface {
	// QueryPurchaseOrders returns purchase orders whose recognition date
	// (received_at, else created_at) falls in [from, to), newest first.
	QueryPurchaseOrders(ctx context.Context, from, to time.Time) ([]domain.PurchaseOrder, error)

	FindPurchaseOrderByIDForUpdate(ctx context.Context, tx pgx.Tx, poID string) (*domain.PurchaseOrder, error)

	// MarkReceivedInTx persists status, received quantities, received total and receipt audit fields.
	MarkReceivedInTx(ctx context.Context, tx pgx.Tx, po domain.PurchaseOrder) error
}

package repositories

import (
	"context"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// InventoryRepository reads stock valuation lines and records received stock.
type InventoryRepository interface {
	// ListInventoryLines returns one line per product and warehouse, priced at cost.
	ListInventoryLines(ctx context.Context) ([]domain.InventoryLine, error)

	IncrementStockInTx(ctx context.Context, tx pgx.Tx, productID, warehouseID string, quantity int64) error
}

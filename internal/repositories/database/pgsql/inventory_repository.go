package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/retail_ledger_app/internal/models"
	"github.com/SscSPs/retail_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInventoryRepository struct {
	BaseRepository
}

func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepository {
	return &PgxInventoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InventoryRepository = (*PgxInventoryRepository)(nil)

func (r *PgxInventoryRepository) ListInventoryLines(ctx context.Context) ([]domain.InventoryLine, error) {
	query := `
		SELECT i.product_id, i.warehouse_id, i.quantity, p.cost_price
		FROM inventory i
		LEFT JOIN products p ON p.product_id = i.product_id
		ORDER BY i.product_id, i.warehouse_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, mapPgError(err, "failed to query inventory")
	}
	defer rows.Close()

	var lines []domain.InventoryLine
	for rows.Next() {
		var m models.InventoryLine
		if err := rows.Scan(&m.ProductID, &m.WarehouseID, &m.Quantity, &m.CostPrice); err != nil {
			return nil, mapPgError(err, "failed to scan inventory line")
		}
		lines = append(lines, mapping.ToDomainInventoryLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "error iterating inventory")
	}
	return lines, nil
}

func (r *PgxInventoryRepository) IncrementStockInTx(ctx context.Context, tx pgx.Tx, productID, warehouseID string, quantity int64) error {
	query := `
		INSERT INTO inventory (product_id, warehouse_id, quantity, last_updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (product_id, warehouse_id) DO UPDATE SET
			quantity = inventory.quantity + EXCLUDED.quantity,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	if _, err := tx.Exec(ctx, query, productID, warehouseID, quantity); err != nil {
		return mapPgError(err, fmt.Sprintf("failed to increment stock of %s in %s", productID, warehouseID))
	}
	return nil
}

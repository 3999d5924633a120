package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/retail_ledger_app/internal/apperrors"
	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/retail_ledger_app/internal/models"
	"github.com/SscSPs/retail_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const purchaseOrderColumns = `po_id, vendor_id, items, total_amount, received_total_amount,
	status, created_by, received_by, created_at, received_at`

type PgxPurchaseOrderRepository struct {
	BaseRepository
}

func newPgxPurchaseOrderRepository(pool *pgxpool.Pool) portsrepo.PurchaseOrderRepository {
	return &PgxPurchaseOrderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PurchaseOrderRepository = (*PgxPurchaseOrderRepository)(nil)

func scanPurchaseOrder(row pgx.Row) (domain.PurchaseOrder, error) {
	var m models.PurchaseOrder
	err := row.Scan(
		&m.POID, &m.VendorID, &m.Items, &m.TotalAmount, &m.ReceivedTotalAmount,
		&m.Status, &m.CreatedBy, &m.ReceivedBy, &m.CreatedAt, &m.ReceivedAt,
	)
	if err != nil {
		return domain.PurchaseOrder{}, err
	}
	return mapping.ToDomainPurchaseOrder(m), nil
}

func (r *PgxPurchaseOrderRepository) QueryPurchaseOrders(ctx context.Context, from, to time.Time) ([]domain.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders
		WHERE COALESCE(received_at, created_at) >= $1 AND COALESCE(received_at, created_at) < $2
		ORDER BY COALESCE(received_at, created_at) DESC, po_id DESC;`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, mapPgError(err, "failed to query purchase orders")
	}
	defer rows.Close()

	var orders []domain.PurchaseOrder
	for rows.Next() {
		po, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, mapPgError(err, "failed to scan purchase order")
		}
		orders = append(orders, po)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "error iterating purchase orders")
	}
	return orders, nil
}

func (r *PgxPurchaseOrderRepository) FindPurchaseOrderByIDForUpdate(ctx context.Context, tx pgx.Tx, poID string) (*domain.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE po_id = $1 FOR UPDATE;`
	po, err := scanPurchaseOrder(tx.QueryRow(ctx, query, poID))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to lock purchase order %s", poID))
	}
	return &po, nil
}

func (r *PgxPurchaseOrderRepository) MarkReceivedInTx(ctx context.Context, tx pgx.Tx, po domain.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders
		SET status = $2, items = $3, received_total_amount = $4, received_by = $5, received_at = $6
		WHERE po_id = $1 AND status = 'PENDING';
	`
	cmdTag, err := tx.Exec(ctx, query,
		po.POID, string(po.Status), mapping.ToModelPurchaseOrderItems(po.Items),
		po.ReceivedTotalAmount, po.ReceivedBy, po.ReceivedAt,
	)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to mark purchase order %s received", po.POID))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("purchase order %s is no longer pending: %w", po.POID, apperrors.ErrConcurrentUpdate)
	}
	return nil
}

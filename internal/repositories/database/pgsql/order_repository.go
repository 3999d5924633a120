package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/retail_ledger_app/internal/apperrors"
	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/retail_ledger_app/internal/models"
	"github.com/SscSPs/retail_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `order_id, order_number, created_at, status, items, total,
	payment_method, customer_id, performed_by, processed_by, confirmed_at`

type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepository {
	return &PgxOrderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OrderRepository = (*PgxOrderRepository)(nil)

func scanOrder(row pgx.Row) (domain.Order, error) {
	var m models.Order
	err := row.Scan(
		&m.OrderID, &m.OrderNumber, &m.CreatedAt, &m.Status, &m.Items, &m.Total,
		&m.PaymentMethod, &m.CustomerID, &m.PerformedBy, &m.ProcessedBy, &m.ConfirmedAt,
	)
	if err != nil {
		return domain.Order{}, err
	}
	return mapping.ToDomainOrder(m), nil
}

func (r *PgxOrderRepository) QueryOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	var args []any
	var where []string
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		args = append(args, statuses)
		where = append(where, fmt.Sprintf("status = ANY($%d)", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where = append(where, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where = append(where, fmt.Sprintf("created_at < $%d", len(args)))
	}

	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC, order_id DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, "failed to query orders")
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, mapPgError(err, "failed to scan order")
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "error iterating orders")
	}
	return orders, nil
}

func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1;`
	order, err := scanOrder(r.Pool.QueryRow(ctx, query, orderID))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to find order %s", orderID))
	}
	return &order, nil
}

func (r *PgxOrderRepository) FindOrderByIDForUpdate(ctx context.Context, tx pgx.Tx, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1 FOR UPDATE;`
	order, err := scanOrder(tx.QueryRow(ctx, query, orderID))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to lock order %s", orderID))
	}
	return &order, nil
}

func (r *PgxOrderRepository) UpdateOrderStatusInTx(ctx context.Context, tx pgx.Tx, order domain.Order) error {
	query := `UPDATE orders SET status = $2, processed_by = $3, confirmed_at = $4 WHERE order_id = $1;`
	cmdTag, err := tx.Exec(ctx, query, order.OrderID, string(order.Status), order.ProcessedBy, order.ConfirmedAt)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to update order %s", order.OrderID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

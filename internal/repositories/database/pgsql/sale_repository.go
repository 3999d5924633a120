package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/retail_ledger_app/internal/models"
	"github.com/SscSPs/retail_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const saleColumns = `sale_id, created_at, items, total, paid_amount, due_amount,
	payment_method, customer_id, performed_by, source`

type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepository {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepository = (*PgxSaleRepository)(nil)

func scanSale(row pgx.Row) (domain.Sale, error) {
	var m models.Sale
	err := row.Scan(
		&m.SaleID, &m.CreatedAt, &m.Items, &m.Total, &m.PaidAmount, &m.DueAmount,
		&m.PaymentMethod, &m.CustomerID, &m.PerformedBy, &m.Source,
	)
	if err != nil {
		return domain.Sale{}, err
	}
	return mapping.ToDomainSale(m), nil
}

func (r *PgxSaleRepository) QuerySales(ctx context.Context, from, to time.Time) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at DESC, sale_id DESC;`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, mapPgError(err, "failed to query sales")
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, mapPgError(err, "failed to scan sale")
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "error iterating sales")
	}
	return sales, nil
}

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_id = $1;`
	sale, err := scanSale(r.Pool.QueryRow(ctx, query, saleID))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to find sale %s", saleID))
	}
	return &sale, nil
}

func (r *PgxSaleRepository) SaveSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error {
	m := mapping.ToModelSale(sale)
	query := `INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	_, err := tx.Exec(ctx, query,
		m.SaleID, m.CreatedAt, m.Items, m.Total, m.PaidAmount, m.DueAmount,
		m.PaymentMethod, m.CustomerID, m.PerformedBy, m.Source,
	)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to insert sale %s", sale.SaleID))
	}
	return nil
}

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
	"github.com/shopspring/decimal"
)

const vendorColumns = `vendor_id, name, balance, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxVendorRepository struct {
	BaseRepository
}

func newPgxVendorRepository(pool *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

func scanVendor(row pgx.Row) (domain.Vendor, error) {
	var m models.Vendor
	err := row.Scan(
		&m.VendorID, &m.Name, &m.Balance, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Vendor{}, err
	}
	return mapping.ToDomainVendor(m), nil
}

func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE vendor_id = $1;`
	vendor, err := scanVendor(r.Pool.QueryRow(ctx, query, vendorID))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to find vendor %s", vendorID))
	}
	return &vendor, nil
}

func (r *PgxVendorRepository) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors ORDER BY name ASC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, mapPgError(err, "failed to list vendors")
	}
	defer rows.Close()

	var vendors []domain.Vendor
	for rows.Next() {
		vendor, err := scanVendor(rows)
		if err != nil {
			return nil, mapPgError(err, "failed to scan vendor")
		}
		vendors = append(vendors, vendor)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "error iterating vendors")
	}
	return vendors, nil
}

func (r *PgxVendorRepository) ListVendorPayments(ctx context.Context, vendorID string) ([]domain.VendorPayment, error) {
	query := `
		SELECT payment_id, vendor_id, amount, payment_method, performed_by, notes, balance_after, paid_at
		FROM vendor_payments
		WHERE vendor_id = $1
		ORDER BY paid_at DESC, payment_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, vendorID)
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to list payments for vendor %s", vendorID))
	}
	defer rows.Close()

	payments := []domain.VendorPayment{}
	for rows.Next() {
		var m models.VendorPayment
		if err := rows.Scan(
			&m.PaymentID, &m.VendorID, &m.Amount, &m.PaymentMethod, &m.PerformedBy, &m.Notes, &m.BalanceAfter, &m.PaidAt,
		); err != nil {
			return nil, mapPgError(err, "failed to scan vendor payment")
		}
		payments = append(payments, mapping.ToDomainVendorPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "error iterating vendor payments")
	}
	return payments, nil
}

func (r *PgxVendorRepository) FindVendorByIDForUpdate(ctx context.Context, tx pgx.Tx, vendorID string) (*domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE vendor_id = $1 FOR UPDATE;`
	vendor, err := scanVendor(tx.QueryRow(ctx, query, vendorID))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to lock vendor %s", vendorID))
	}
	return &vendor, nil
}

func (r *PgxVendorRepository) AdjustBalanceInTx(ctx context.Context, tx pgx.Tx, vendorID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) (decimal.Decimal, error) {
	query := `
		UPDATE vendors
		SET balance = balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE vendor_id = $1
		RETURNING balance;
	`
	var balance decimal.Decimal
	if err := tx.QueryRow(ctx, query, vendorID, delta, updatedAt, updatedBy).Scan(&balance); err != nil {
		return decimal.Zero, mapPgError(err, fmt.Sprintf("failed to adjust balance for vendor %s", vendorID))
	}
	return balance, nil
}

func (r *PgxVendorRepository) SaveVendorPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.VendorPayment) error {
	m := mapping.ToModelVendorPayment(payment)
	query := `
		INSERT INTO vendor_payments (payment_id, vendor_id, amount, payment_method, performed_by, notes, balance_after, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query,
		m.PaymentID, m.VendorID, m.Amount, m.PaymentMethod, m.PerformedBy, m.Notes, m.BalanceAfter, m.PaidAt,
	)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to insert vendor payment %s", payment.PaymentID))
	}
	return nil
}

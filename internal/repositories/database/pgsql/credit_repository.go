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
	"github.com/shopspring/decimal"
)

const creditColumns = `credit_id, customer_id, sale_id, total_amount, paid_amount, due_amount,
	settlement_history, settled_at, created_at, version`

type PgxCreditRepository struct {
	BaseRepository
}

func newPgxCreditRepository(pool *pgxpool.Pool) portsrepo.CreditRepositoryFacade {
	return &PgxCreditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CreditRepositoryFacade = (*PgxCreditRepository)(nil)

func scanCredit(row pgx.Row) (*domain.CreditTransaction, error) {
	var m models.CreditTransaction
	if err := row.Scan(
		&m.CreditID, &m.CustomerID, &m.SaleID, &m.TotalAmount, &m.PaidAmount, &m.DueAmount,
		&m.SettlementHistory, &m.SettledAt, &m.CreatedAt, &m.Version,
	); err != nil {
		return nil, err
	}
	credit := mapping.ToDomainCreditTransaction(m)
	return &credit, nil
}

func (r *PgxCreditRepository) FindCreditByID(ctx context.Context, creditID string) (*domain.CreditTransaction, error) {
	query := `SELECT ` + creditColumns + ` FROM credit_transactions WHERE credit_id = $1;`
	credit, err := scanCredit(r.Pool.QueryRow(ctx, query, creditID))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to find credit %s", creditID))
	}
	return credit, nil
}

func (r *PgxCreditRepository) ListOutstandingCredits(ctx context.Context, customerID *string) ([]domain.CreditTransaction, error) {
	query := `SELECT ` + creditColumns + ` FROM credit_transactions
		WHERE due_amount > 0 AND ($1::text IS NULL OR customer_id = $1)
		ORDER BY created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, mapPgError(err, "failed to list outstanding credits")
	}
	defer rows.Close()

	credits := []domain.CreditTransaction{}
	for rows.Next() {
		credit, err := scanCredit(rows)
		if err != nil {
			return nil, mapPgError(err, "failed to scan credit")
		}
		credits = append(credits, *credit)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "error iterating credits")
	}
	return credits, nil
}

func (r *PgxCreditRepository) SaveCreditInTx(ctx context.Context, tx pgx.Tx, credit domain.CreditTransaction) error {
	m := mapping.ToModelCreditTransaction(credit)
	query := `INSERT INTO credit_transactions (` + creditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 1);`
	_, err := tx.Exec(ctx, query,
		m.CreditID, m.CustomerID, m.SaleID, m.TotalAmount, m.PaidAmount, m.DueAmount,
		m.SettlementHistory, m.SettledAt, m.CreatedAt,
	)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to insert credit %s", credit.CreditID))
	}
	return nil
}

func (r *PgxCreditRepository) FindCreditByIDForUpdate(ctx context.Context, tx pgx.Tx, creditID string) (*domain.CreditTransaction, error) {
	query := `SELECT ` + creditColumns + ` FROM credit_transactions WHERE credit_id = $1 FOR UPDATE;`
	credit, err := scanCredit(tx.QueryRow(ctx, query, creditID))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to lock credit %s", creditID))
	}
	return credit, nil
}

func (r *PgxCreditRepository) UpdateCreditInTx(ctx context.Context, tx pgx.Tx, credit domain.CreditTransaction) error {
	m := mapping.ToModelCreditTransaction(credit)
	query := `
		UPDATE credit_transactions
		SET paid_amount = $2, due_amount = $3, settlement_history = $4, settled_at = $5, version = version + 1
		WHERE credit_id = $1 AND version = $6;
	`
	cmdTag, err := tx.Exec(ctx, query, m.CreditID, m.PaidAmount, m.DueAmount, m.SettlementHistory, m.SettledAt, m.Version)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to update credit %s", credit.CreditID))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("credit %s changed since it was read: %w", credit.CreditID, apperrors.ErrConcurrentUpdate)
	}
	return nil
}

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepository {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepository = (*PgxCustomerRepository)(nil)

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `
		SELECT customer_id, name, phone, total_due, created_at, created_by, last_updated_at, last_updated_by
		FROM customers WHERE customer_id = $1;
	`
	var m models.Customer
	err := r.Pool.QueryRow(ctx, query, customerID).Scan(
		&m.CustomerID, &m.Name, &m.Phone, &m.TotalDue,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to find customer %s", customerID))
	}
	customer := mapping.ToDomainCustomer(m)
	return &customer, nil
}

func (r *PgxCustomerRepository) AdjustTotalDueInTx(ctx context.Context, tx pgx.Tx, customerID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE customers
		SET total_due = GREATEST(total_due + $2, 0), last_updated_at = $3, last_updated_by = $4
		WHERE customer_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, customerID, delta, updatedAt, updatedBy)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to adjust total due for customer %s", customerID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

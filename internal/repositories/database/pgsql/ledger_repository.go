package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/retail_ledger_app/internal/apperrors"
	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/retail_ledger_app/internal/models"
	"github.com/SscSPs/retail_ledger_app/internal/utils/mapping"
	"github.com/SscSPs/retail_ledger_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ledgerColumns = `entry_id, entry_date, entry_type, category, amount, description,
	payment_method, related_id, corrects_id, performed_by, created_at`

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func scanLedgerEntries(rows pgx.Rows) ([]domain.LedgerEntry, error) {
	defer rows.Close()
	var result []models.LedgerEntry
	for rows.Next() {
		var m models.LedgerEntry
		if err := rows.Scan(
			&m.EntryID, &m.EntryDate, &m.EntryType, &m.Category, &m.Amount, &m.Description,
			&m.PaymentMethod, &m.RelatedID, &m.CorrectsID, &m.PerformedBy, &m.CreatedAt,
		); err != nil {
			return nil, mapPgError(err, "failed to scan ledger entry")
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "error iterating ledger entries")
	}
	return mapping.ToDomainLedgerEntries(result), nil
}

func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE entry_id = $1;`
	var m models.LedgerEntry
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&m.EntryID, &m.EntryDate, &m.EntryType, &m.Category, &m.Amount, &m.Description,
		&m.PaymentMethod, &m.RelatedID, &m.CorrectsID, &m.PerformedBy, &m.CreatedAt,
	)
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to find ledger entry %s", entryID))
	}
	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}

func (r *PgxLedgerRepository) QueryEntries(ctx context.Context, from, to time.Time, entryType *domain.EntryType) ([]domain.LedgerEntry, error) {
	args := []any{from, to}
	where := []string{"entry_date >= $1", "entry_date < $2"}
	if entryType != nil {
		args = append(args, string(*entryType))
		where = append(where, fmt.Sprintf("entry_type = $%d", len(args)))
	}

	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY entry_date DESC, created_at DESC, entry_id DESC;`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, "failed to query ledger entries")
	}
	return scanLedgerEntries(rows)
}

func (r *PgxLedgerRepository) ListEntries(ctx context.Context, limit int, nextToken *string, entryType *domain.EntryType) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	var args []any
	var where []string
	if entryType != nil {
		args = append(args, string(*entryType))
		where = append(where, fmt.Sprintf("entry_type = $%d", len(args)))
	}
	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.ID)
		n := len(args)
		where = append(where, fmt.Sprintf("(entry_date, created_at, entry_id) < ($%d, $%d, $%d)", n-2, n-1, n))
	}

	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	args = append(args, limit+1) // one extra row tells us whether another page exists
	query += fmt.Sprintf(` ORDER BY entry_date DESC, created_at DESC, entry_id DESC LIMIT $%d;`, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, mapPgError(err, "failed to list ledger entries")
	}
	entries, err := scanLedgerEntries(rows)
	if err != nil {
		return nil, nil, err
	}

	var next *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{Date: last.Date, CreatedAt: last.CreatedAt, ID: last.EntryID})
		next = &token
	}
	return entries, next, nil
}

func (r *PgxLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	return saveLedgerEntry(ctx, r.Pool, entry)
}

func (r *PgxLedgerRepository) SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) error {
	return saveLedgerEntry(ctx, tx, entry)
}

func saveLedgerEntry(ctx context.Context, q querier, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	query := `INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err := q.Exec(ctx, query,
		m.EntryID, m.EntryDate, m.EntryType, m.Category, m.Amount, m.Description,
		m.PaymentMethod, m.RelatedID, m.CorrectsID, m.PerformedBy, m.CreatedAt,
	)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to insert ledger entry %s", entry.EntryID))
	}
	return nil
}

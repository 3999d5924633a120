package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// LedgerReader defines read operations on the append-only ledger.
type LedgerReader interface {
	// FindEntryByID retrieves a single entry.
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// QueryEntries returns entries dated in [from, to), newest first.
	// A nil entryType returns both income and expense.
	QueryEntries(ctx context.Context, from, to time.Time, entryType *domain.EntryType) ([]domain.LedgerEntry, error)

	// ListEntries returns one page of entries, newest first, and the token for the next page.
	ListEntries(ctx context.Context, limit int, nextToken *string, entryType *domain.EntryType) ([]domain.LedgerEntry, *string, error)
}

// LedgerWriter appends entries. There is no update or delete.
type LedgerWriter interface {
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error
	SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a row of the append-only ledger_entries table.
type LedgerEntry struct {
	EntryID       string          `db:"entry_id"`
	EntryDate     time.Time       `db:"entry_date"`
	EntryType     string          `db:"entry_type"`
	Category      string          `db:"category"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	PaymentMethod string          `db:"payment_method"`
	RelatedID     *string         `db:"related_id"` // Nullable
	CorrectsID    *string         `db:"corrects_id"` // Nullable
	PerformedBy   string          `db:"performed_by"`
	CreatedAt     time.Time       `db:"created_at"`
}

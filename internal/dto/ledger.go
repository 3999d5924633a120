package dto

import (
	"time"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerEntryRequest posts a manual income or expense entry.
type CreateLedgerEntryRequest struct {
	Date          *time.Time      `json:"date,omitempty"`
	Type          string          `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Category      string          `json:"category" binding:"required,ledger_category"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description" binding:"required,max=500"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,payment_method"`
}

// PostCorrectionRequest explains why an entry is being offset.
type PostCorrectionRequest struct {
	Reason string `json:"reason" binding:"required,max=300"`
}

// ListLedgerEntriesParams defines parameters for listing ledger entries.
type ListLedgerEntriesParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
	Type      *string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
}

// ListLedgerEntriesResponse is one page of entries.
type ListLedgerEntriesResponse struct {
	Entries   []domain.LedgerEntry `json:"entries"`
	NextToken *string              `json:"nextToken,omitempty"`
}

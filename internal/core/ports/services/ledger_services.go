package services

import (
	"context"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/SscSPs/retail_ledger_app/internal/dto"
)

// LedgerReaderSvc defines read operations for ledger entries
type LedgerReaderSvc interface {
	GetEntry(ctx context.Context, entryID string) (*domain.LedgerEntry, error)
	ListEntries(ctx context.Context, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error)
}

// LedgerWriterSvc defines write operations for manual ledger entries.
// Entries are append-only; corrections are offsetting entries.
type LedgerWriterSvc interface {
	CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, actorID string) (*domain.LedgerEntry, error)
	PostCorrection(ctx context.Context, entryID string, req dto.PostCorrectionRequest, actorID string) (*domain.LedgerEntry, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}

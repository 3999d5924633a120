package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/retail_ledger_app/internal/apperrors"
	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/retail_ledger_app/internal/dto"
	"github.com/google/uuid"
)

const defaultLedgerPageSize = 20

// ledgerService implements the LedgerSvcFacade interface. It only posts primary
// entries; shadow entries are written by the source and settlement services.
type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

func WithLedgerClock(clock func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.Clock = clock
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{ledgerRepo: ledgerRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// GetEntry retrieves a single ledger entry
func (s *ledgerService) GetEntry(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	entry, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find ledger entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

// ListEntries returns one page of entries, newest first
func (s *ledgerService) ListEntries(ctx context.Context, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultLedgerPageSize
	}

	var entryType *domain.EntryType
	if params.Type != nil && *params.Type != "" {
		t := domain.EntryType(*params.Type)
		if !t.IsValid() {
			return nil, fmt.Errorf("%w: unknown entry type %q", apperrors.ErrValidation, *params.Type)
		}
		entryType = &t
	}

	entries, nextToken, err := s.ledgerRepo.ListEntries(ctx, limit, params.NextToken, entryType)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list ledger entries from repository")
		}
		return nil, fmt.Errorf("failed to retrieve ledger entries: %w", err)
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}

	s.LogDebug(ctx, "Ledger entries listed successfully", slog.Int("count", len(entries)))
	return &dto.ListLedgerEntriesResponse{Entries: entries, NextToken: nextToken}, nil
}

// CreateEntry posts a manual primary entry such as rent, salary or misc income.
func (s *ledgerService) CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, actorID string) (*domain.LedgerEntry, error) {
	category := domain.LedgerCategory(req.Category)
	if category == domain.CategoryVendorPay {
		return nil, fmt.Errorf("%w: %s entries are only posted by vendor payments", apperrors.ErrValidation, category)
	}
	if req.Amount.IsNegative() {
		return nil, apperrors.NewInvalidAmountError("ledger amount must not be negative, got %s", req.Amount.String())
	}

	now := s.Now()
	date := now
	if req.Date != nil && !req.Date.IsZero() {
		date = req.Date.UTC()
	}

	entry := domain.LedgerEntry{
		EntryID:       uuid.NewString(),
		Date:          date,
		Type:          domain.EntryType(req.Type),
		Category:      category,
		Amount:        req.Amount,
		Description:   req.Description,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod).Normalize(),
		PerformedBy:   actorID,
		CreatedAt:     now,
	}
	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if entry.IsCreditSettlement() {
		return nil, fmt.Errorf("%w: credit settlements are only posted by the credit subsystem", apperrors.ErrValidation)
	}

	if err := s.ledgerRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save ledger entry",
			slog.String("category", string(entry.Category)),
			slog.String("amount", entry.Amount.String()))
		return nil, fmt.Errorf("failed to save ledger entry: %w", err)
	}

	s.LogInfo(ctx, "Ledger entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("type", string(entry.Type)),
		slog.String("category", string(entry.Category)),
		slog.String("amount", entry.Amount.String()))
	return &entry, nil
}

// PostCorrection offsets a primary entry with one of the opposite type. The
// original entry is left untouched.
func (s *ledgerService) PostCorrection(ctx context.Context, entryID string, req dto.PostCorrectionRequest, actorID string) (*domain.LedgerEntry, error) {
	original, err := s.GetEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if original.HasRelatedID() || original.IsCreditSettlement() || original.Category == domain.CategoryVendorPay {
		return nil, fmt.Errorf("%w: entry %s was posted by a source transaction and cannot be corrected here",
			apperrors.ErrValidation, entryID)
	}
	if original.IsCorrection() {
		return nil, fmt.Errorf("%w: entry %s is itself a correction", apperrors.ErrValidation, entryID)
	}

	now := s.Now()
	correction := domain.LedgerEntry{
		EntryID:       uuid.NewString(),
		Date:          now,
		Type:          original.Type.Opposite(),
		Category:      original.Category,
		Amount:        original.Amount,
		Description:   fmt.Sprintf("Correction of %s: %s", original.EntryID, req.Reason),
		PaymentMethod: original.PaymentMethod,
		CorrectsID:    domain.StringPtr(original.EntryID),
		PerformedBy:   actorID,
		CreatedAt:     now,
	}

	if err := s.ledgerRepo.SaveEntry(ctx, correction); err != nil {
		s.LogError(ctx, err, "Failed to save correction entry", slog.String("original_entry_id", entryID))
		return nil, fmt.Errorf("failed to save correction entry: %w", err)
	}

	s.LogInfo(ctx, "Correction entry posted",
		slog.String("original_entry_id", entryID),
		slog.String("entry_id", correction.EntryID))
	return &correction, nil
}

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
	"github.com/SscSPs/retail_ledger_app/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const settlementKindCredit = "credit"

// creditService implements the CreditSvcFacade interface
type creditService struct {
	BaseService
	txManager    portsrepo.TransactionManager
	creditRepo   portsrepo.CreditRepositoryFacade
	customerRepo portsrepo.CustomerRepository
	ledgerRepo   portsrepo.LedgerWriter
	maxRetries   int
}

// CreditServiceOption is a functional option for configuring the credit service
type CreditServiceOption func(*creditService)

// WithCreditMaxRetries sets how many times a settlement is retried after a serialization failure.
func WithCreditMaxRetries(n int) CreditServiceOption {
	return func(s *creditService) {
		if n >= 0 {
			s.maxRetries = n
		}
	}
}

// WithCreditMetrics records settlement outcomes.
func WithCreditMetrics(m *metrics.Metrics) CreditServiceOption {
	return func(s *creditService) {
		s.Metrics = m
	}
}

// WithCreditClock overrides the settlement timestamp source.
func WithCreditClock(clock func() time.Time) CreditServiceOption {
	return func(s *creditService) {
		s.Clock = clock
	}
}

// NewCreditService creates a new credit service with the provided options
func NewCreditService(txManager portsrepo.TransactionManager, creditRepo portsrepo.CreditRepositoryFacade, customerRepo portsrepo.CustomerRepository, ledgerRepo portsrepo.LedgerWriter, options ...CreditServiceOption) portssvc.CreditSvcFacade {
	svc := &creditService{
		txManager:    txManager,
		creditRepo:   creditRepo,
		customerRepo: customerRepo,
		ledgerRepo:   ledgerRepo,
		maxRetries:   3,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CreditSvcFacade = (*creditService)(nil)

// GetCredit retrieves a credit by ID
func (s *creditService) GetCredit(ctx context.Context, creditID string) (*domain.CreditTransaction, error) {
	credit, err := s.creditRepo.FindCreditByID(ctx, creditID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find credit", slog.String("credit_id", creditID))
		}
		return nil, err
	}
	return credit, nil
}

// ListOutstandingCredits lists a customer's credits with a positive due amount
func (s *creditService) ListOutstandingCredits(ctx context.Context, customerID string) ([]domain.CreditTransaction, error) {
	if customerID == "" {
		return nil, fmt.Errorf("%w: customer id is required", apperrors.ErrValidation)
	}
	credits, err := s.creditRepo.ListOutstandingCredits(ctx, &customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list outstanding credits", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to list outstanding credits: %w", err)
	}
	return credits, nil
}

// SettleCredit locks the credit, applies the payment, decrements the customer's
// total due and posts the settlement ledger entry in one transaction. The stored
// row is re-read and its invariant verified before commit.
func (s *creditService) SettleCredit(ctx context.Context, creditID string, req dto.SettleCreditRequest, actorID string) (*domain.CreditTransaction, error) {
	method := domain.PaymentMethod(req.PaymentMethod).Normalize()
	if !method.IsSettlementMethod() {
		return nil, fmt.Errorf("%w: payment method %q cannot settle a credit", apperrors.ErrValidation, req.PaymentMethod)
	}
	if req.Amount.Sign() <= 0 {
		s.Metrics.RecordSettlement(settlementKindCredit, "invalid_amount")
		return nil, apperrors.NewInvalidAmountError("settlement amount must be positive, got %s", req.Amount.String())
	}

	var settled *domain.CreditTransaction
	err := s.RunInTx(ctx, s.txManager, settlementKindCredit, s.maxRetries, func(tx pgx.Tx) error {
		credit, err := s.creditRepo.FindCreditByIDForUpdate(ctx, tx, creditID)
		if err != nil {
			return err
		}

		now := s.Now()
		record := domain.SettlementRecord{
			Amount:        req.Amount,
			Date:          now,
			SettledBy:     actorID,
			PaymentMethod: method,
			Notes:         req.Notes,
		}
		if err := credit.ApplySettlement(record); err != nil {
			var amountErr *domain.ErrSettlementAmount
			if errors.As(err, &amountErr) {
				return apperrors.NewInvalidAmountError("%s", amountErr.Error())
			}
			return err
		}

		if err := s.creditRepo.UpdateCreditInTx(ctx, tx, *credit); err != nil {
			return err
		}

		if credit.CustomerID != "" {
			if err := s.customerRepo.AdjustTotalDueInTx(ctx, tx, credit.CustomerID, req.Amount.Neg(), actorID, now); err != nil {
				return err
			}
		}

		entry := domain.LedgerEntry{
			EntryID:       uuid.NewString(),
			Date:          now,
			Type:          domain.Income,
			Category:      domain.CategorySales,
			Amount:        req.Amount,
			Description:   credit.SettlementDescription(req.Notes),
			PaymentMethod: method,
			PerformedBy:   actorID,
			CreatedAt:     now,
		}
		if err := s.ledgerRepo.SaveEntryInTx(ctx, tx, entry); err != nil {
			s.Metrics.RecordLedgerPostFailure(string(entry.Category))
			return err
		}

		stored, err := s.creditRepo.FindCreditByIDForUpdate(ctx, tx, creditID)
		if err != nil {
			return err
		}
		if err := stored.CheckInvariant(); err != nil {
			return apperrors.NewConsistencyError("%s", err.Error())
		}
		settled = stored
		return nil
	})

	if err != nil {
		s.recordFailure(ctx, err, creditID, req)
		return nil, err
	}

	s.Metrics.RecordSettlement(settlementKindCredit, "success")
	s.LogInfo(ctx, "Credit settled",
		slog.String("credit_id", creditID),
		slog.String("amount", req.Amount.String()),
		slog.String("due_amount", settled.DueAmount.String()),
		slog.String("status", string(settled.Status())))
	return settled, nil
}

func (s *creditService) recordFailure(ctx context.Context, err error, creditID string, req dto.SettleCreditRequest) {
	attrs := []any{slog.String("credit_id", creditID), slog.String("amount", req.Amount.String())}
	switch {
	case errors.Is(err, apperrors.ErrInvalidAmount):
		s.Metrics.RecordSettlement(settlementKindCredit, "invalid_amount")
		s.LogInfo(ctx, "Credit settlement rejected", append(attrs, slog.String("reason", err.Error()))...)
	case errors.Is(err, apperrors.ErrNotFound):
		s.Metrics.RecordSettlement(settlementKindCredit, "not_found")
	case errors.Is(err, apperrors.ErrConsistencyViolation):
		s.Metrics.RecordSettlement(settlementKindCredit, "consistency_violation")
		s.Metrics.RecordConsistencyViolation(settlementKindCredit)
		s.LogError(ctx, err, "Credit invariant violated after settlement write; transaction rolled back", attrs...)
	default:
		s.Metrics.RecordSettlement(settlementKindCredit, "error")
		s.LogError(ctx, err, "Failed to settle credit", attrs...)
	}
}

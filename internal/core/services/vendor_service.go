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

const settlementKindVendor = "vendor"

// vendorService implements the VendorSvcFacade interface
type vendorService struct {
	BaseService
	txManager  portsrepo.TransactionManager
	vendorRepo portsrepo.VendorRepositoryFacade
	ledgerRepo portsrepo.LedgerWriter
	maxRetries int
}

// VendorServiceOption is a functional option for configuring the vendor service
type VendorServiceOption func(*vendorService)

func WithVendorMaxRetries(n int) VendorServiceOption {
	return func(s *vendorService) {
		if n >= 0 {
			s.maxRetries = n
		}
	}
}

func WithVendorMetrics(m *metrics.Metrics) VendorServiceOption {
	return func(s *vendorService) {
		s.Metrics = m
	}
}

func WithVendorClock(clock func() time.Time) VendorServiceOption {
	return func(s *vendorService) {
		s.Clock = clock
	}
}

// NewVendorService creates a new vendor service with the provided options
func NewVendorService(txManager portsrepo.TransactionManager, vendorRepo portsrepo.VendorRepositoryFacade, ledgerRepo portsrepo.LedgerWriter, options ...VendorServiceOption) portssvc.VendorSvcFacade {
	svc := &vendorService{
		txManager:  txManager,
		vendorRepo: vendorRepo,
		ledgerRepo: ledgerRepo,
		maxRetries: 3,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.VendorSvcFacade = (*vendorService)(nil)

// GetVendor retrieves a vendor by ID
func (s *vendorService) GetVendor(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find vendor", slog.String("vendor_id", vendorID))
		}
		return nil, err
	}
	return vendor, nil
}

// ListVendorPayments returns the vendor's payment history, newest first
func (s *vendorService) ListVendorPayments(ctx context.Context, vendorID string) ([]domain.VendorPayment, error) {
	if _, err := s.GetVendor(ctx, vendorID); err != nil {
		return nil, err
	}
	payments, err := s.vendorRepo.ListVendorPayments(ctx, vendorID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vendor payments", slog.String("vendor_id", vendorID))
		return nil, fmt.Errorf("failed to list vendor payments: %w", err)
	}
	return payments, nil
}

// SettleVendorPayment pays down a vendor balance. The balance update, payment
// history row and VENDOR_PAY ledger entry commit together or not at all.
func (s *vendorService) SettleVendorPayment(ctx context.Context, vendorID string, req dto.SettleVendorPaymentRequest, actorID string) (*domain.VendorPayment, error) {
	method := domain.PaymentMethod(req.PaymentMethod).Normalize()
	if !method.IsSettlementMethod() {
		return nil, fmt.Errorf("%w: payment method %q cannot pay a vendor", apperrors.ErrValidation, req.PaymentMethod)
	}
	if req.Amount.Sign() <= 0 {
		s.Metrics.RecordSettlement(settlementKindVendor, "invalid_amount")
		return nil, apperrors.NewInvalidAmountError("payment amount must be positive, got %s", req.Amount.String())
	}

	var payment domain.VendorPayment
	err := s.RunInTx(ctx, s.txManager, settlementKindVendor, s.maxRetries, func(tx pgx.Tx) error {
		vendor, err := s.vendorRepo.FindVendorByIDForUpdate(ctx, tx, vendorID)
		if err != nil {
			return err
		}

		if err := vendor.ApplyPayment(req.Amount); err != nil {
			var amountErr *domain.ErrPaymentAmount
			if errors.As(err, &amountErr) {
				return apperrors.NewInvalidAmountError("%s", amountErr.Error())
			}
			return err
		}

		now := s.Now()
		newBalance, err := s.vendorRepo.AdjustBalanceInTx(ctx, tx, vendorID, req.Amount.Neg(), actorID, now)
		if err != nil {
			return err
		}
		if newBalance.IsNegative() || newBalance.Sub(vendor.Balance).Abs().GreaterThan(domain.AmountTolerance) {
			return apperrors.NewConsistencyError("vendor %s balance is %s after payment, expected %s",
				vendorID, newBalance.String(), vendor.Balance.String())
		}

		payment = domain.VendorPayment{
			PaymentID:     uuid.NewString(),
			VendorID:      vendorID,
			Amount:        req.Amount,
			PaymentMethod: method,
			PerformedBy:   actorID,
			Notes:         req.Notes,
			BalanceAfter:  newBalance,
			PaidAt:        now,
		}
		if err := s.vendorRepo.SaveVendorPaymentInTx(ctx, tx, payment); err != nil {
			return err
		}

		description := fmt.Sprintf("Payment to vendor %s", vendor.Name)
		if req.Notes != nil && *req.Notes != "" {
			description += " - " + *req.Notes
		}
		entry := domain.LedgerEntry{
			EntryID:       uuid.NewString(),
			Date:          now,
			Type:          domain.Expense,
			Category:      domain.CategoryVendorPay,
			Amount:        req.Amount,
			Description:   description,
			PaymentMethod: method,
			RelatedID:     domain.StringPtr(payment.PaymentID),
			PerformedBy:   actorID,
			CreatedAt:     now,
		}
		if err := s.ledgerRepo.SaveEntryInTx(ctx, tx, entry); err != nil {
			s.Metrics.RecordLedgerPostFailure(string(entry.Category))
			return err
		}
		return nil
	})

	if err != nil {
		s.recordFailure(ctx, err, vendorID, req)
		return nil, err
	}

	s.Metrics.RecordSettlement(settlementKindVendor, "success")
	s.LogInfo(ctx, "Vendor payment recorded",
		slog.String("vendor_id", vendorID),
		slog.String("payment_id", payment.PaymentID),
		slog.String("amount", req.Amount.String()),
		slog.String("balance_after", payment.BalanceAfter.String()))
	return &payment, nil
}

func (s *vendorService) recordFailure(ctx context.Context, err error, vendorID string, req dto.SettleVendorPaymentRequest) {
	attrs := []any{slog.String("vendor_id", vendorID), slog.String("amount", req.Amount.String())}
	switch {
	case errors.Is(err, apperrors.ErrInvalidAmount):
		s.Metrics.RecordSettlement(settlementKindVendor, "invalid_amount")
		s.LogInfo(ctx, "Vendor payment rejected", append(attrs, slog.String("reason", err.Error()))...)
	case errors.Is(err, apperrors.ErrNotFound):
		s.Metrics.RecordSettlement(settlementKindVendor, "not_found")
	case errors.Is(err, apperrors.ErrConsistencyViolation):
		s.Metrics.RecordSettlement(settlementKindVendor, "consistency_violation")
		s.Metrics.RecordConsistencyViolation(settlementKindVendor)
		s.LogError(ctx, err, "Vendor balance check failed after payment write; transaction rolled back", attrs...)
	default:
		s.Metrics.RecordSettlement(settlementKindVendor, "error")
		s.LogError(ctx, err, "Failed to record vendor payment", attrs...)
	}
}

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

// saleService implements the SaleService interface
type saleService struct {
	BaseService
	txManager    portsrepo.TransactionManager
	saleRepo     portsrepo.SaleRepository
	creditRepo   portsrepo.CreditWriter
	customerRepo portsrepo.CustomerRepository
	ledgerRepo   portsrepo.LedgerWriter
}

// SaleServiceOption is a functional option for configuring the sale service
type SaleServiceOption func(*saleService)

func WithSaleMetrics(m *metrics.Metrics) SaleServiceOption {
	return func(s *saleService) {
		s.Metrics = m
	}
}

func WithSaleClock(clock func() time.Time) SaleServiceOption {
	return func(s *saleService) {
		s.Clock = clock
	}
}

// NewSaleService creates a new sale service with the provided options
func NewSaleService(repos portsrepo.RepositoryProvider, options ...SaleServiceOption) portssvc.SaleService {
	svc := &saleService{
		txManager:    repos.TxManager,
		saleRepo:     repos.SaleRepo,
		creditRepo:   repos.CreditRepo,
		customerRepo: repos.CustomerRepo,
		ledgerRepo:   repos.LedgerRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SaleService = (*saleService)(nil)

// saleMethod picks the stored payment method. A sale with nothing paid is a
// credit sale whatever the client sent.
func saleMethod(req dto.RecordSaleRequest) domain.PaymentMethod {
	if req.PaidAmount.IsZero() {
		return domain.MethodCredit
	}
	method := domain.PaymentMethod(req.PaymentMethod).Normalize()
	if method == "" || method == domain.MethodCredit {
		return domain.MethodCash
	}
	return method
}

// RecordSale persists a POS sale with its shadow ledger entry and, when part of
// the total is unpaid, an open credit against the customer.
func (s *saleService) RecordSale(ctx context.Context, req dto.RecordSaleRequest, actorID string) (*domain.Sale, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: a sale needs at least one item", apperrors.ErrValidation)
	}
	if req.Total.Sign() <= 0 {
		return nil, apperrors.NewInvalidAmountError("sale total must be positive, got %s", req.Total.String())
	}
	if req.PaidAmount.IsNegative() || req.PaidAmount.GreaterThan(req.Total) {
		return nil, apperrors.NewInvalidAmountError("paid amount %s must be between 0 and total %s",
			req.PaidAmount.String(), req.Total.String())
	}

	due := req.Total.Sub(req.PaidAmount)
	customerID := domain.DerefOr(req.CustomerID, "")
	if due.Sign() > 0 {
		if customerID == "" {
			return nil, fmt.Errorf("%w: a customer is required when part of the sale is on credit", apperrors.ErrValidation)
		}
		if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, customerID)
			}
			return nil, err
		}
	}

	now := s.Now()
	items := make([]domain.SaleItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.SaleItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	sale := domain.Sale{
		SaleID:        uuid.NewString(),
		CreatedAt:     now,
		Items:         items,
		Total:         req.Total,
		PaidAmount:    req.PaidAmount,
		DueAmount:     due,
		PaymentMethod: saleMethod(req),
		PerformedBy:   actorID,
		Source:        domain.SaleSourcePOS,
	}
	if customerID != "" {
		sale.CustomerID = &customerID
	}
	if err := sale.CheckInvariant(); err != nil {
		return nil, apperrors.NewInvalidAmountError("%s", err.Error())
	}

	err := s.RunInTx(ctx, s.txManager, "sale", 0, func(tx pgx.Tx) error {
		if err := s.saleRepo.SaveSaleInTx(ctx, tx, sale); err != nil {
			return err
		}

		shadow := domain.LedgerEntry{
			EntryID:       uuid.NewString(),
			Date:          now,
			Type:          domain.Income,
			Category:      domain.CategorySales,
			Amount:        sale.Total,
			Description:   fmt.Sprintf("POS sale %s", sale.SaleID),
			PaymentMethod: sale.PaymentMethod,
			RelatedID:     domain.StringPtr(sale.SaleID),
			PerformedBy:   actorID,
			CreatedAt:     now,
		}
		if err := s.ledgerRepo.SaveEntryInTx(ctx, tx, shadow); err != nil {
			s.Metrics.RecordLedgerPostFailure(string(shadow.Category))
			return err
		}

		if due.Sign() <= 0 {
			return nil
		}
		credit := domain.CreditTransaction{
			CreditID:          uuid.NewString(),
			CustomerID:        customerID,
			SaleID:            sale.SaleID,
			TotalAmount:       sale.Total,
			PaidAmount:        sale.PaidAmount,
			DueAmount:         due,
			SettlementHistory: []domain.SettlementRecord{},
			CreatedAt:         now,
		}
		if err := s.creditRepo.SaveCreditInTx(ctx, tx, credit); err != nil {
			return err
		}
		return s.customerRepo.AdjustTotalDueInTx(ctx, tx, customerID, due, actorID, now)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record sale",
			slog.String("total", req.Total.String()),
			slog.String("paid_amount", req.PaidAmount.String()))
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	s.LogInfo(ctx, "Sale recorded",
		slog.String("sale_id", sale.SaleID),
		slog.String("total", sale.Total.String()),
		slog.String("due_amount", sale.DueAmount.String()),
		slog.String("payment_method", string(sale.PaymentMethod)))
	return &sale, nil
}

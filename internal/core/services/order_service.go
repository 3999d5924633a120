package services

import (
	"context"
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

// orderService implements the OrderService interface
type orderService struct {
	BaseService
	txManager  portsrepo.TransactionManager
	orderRepo  portsrepo.OrderRepository
	ledgerRepo portsrepo.LedgerWriter
}

// OrderServiceOption is a functional option for configuring the order service
type OrderServiceOption func(*orderService)

func WithOrderMetrics(m *metrics.Metrics) OrderServiceOption {
	return func(s *orderService) {
		s.Metrics = m
	}
}

func WithOrderClock(clock func() time.Time) OrderServiceOption {
	return func(s *orderService) {
		s.Clock = clock
	}
}

// NewOrderService creates a new order service with the provided options
func NewOrderService(txManager portsrepo.TransactionManager, orderRepo portsrepo.OrderRepository, ledgerRepo portsrepo.LedgerWriter, options ...OrderServiceOption) portssvc.OrderService {
	svc := &orderService{
		txManager:  txManager,
		orderRepo:  orderRepo,
		ledgerRepo: ledgerRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.OrderService = (*orderService)(nil)

// UpdateOrderStatus moves an order one step along its lifecycle. Confirming an
// order posts its shadow income entry in the same transaction.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, req dto.UpdateOrderStatusRequest, actorID string) (*domain.Order, error) {
	next := domain.OrderStatus(req.Status)
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: unknown order status %q", apperrors.ErrValidation, req.Status)
	}

	var updated *domain.Order
	var previous domain.OrderStatus
	err := s.RunInTx(ctx, s.txManager, "order", 0, func(tx pgx.Tx) error {
		order, err := s.orderRepo.FindOrderByIDForUpdate(ctx, tx, orderID)
		if err != nil {
			return err
		}
		previous = order.Status
		if !order.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: order %s cannot move from %s to %s",
				apperrors.ErrValidation, orderID, order.Status, next)
		}

		now := s.Now()
		order.Status = next
		order.ProcessedBy = domain.StringPtr(actorID)
		if next == domain.OrderConfirmed {
			order.ConfirmedAt = &now
		}
		if err := s.orderRepo.UpdateOrderStatusInTx(ctx, tx, *order); err != nil {
			return err
		}

		if next == domain.OrderConfirmed {
			label := order.OrderNumber
			if label == "" {
				label = order.OrderID
			}
			shadow := domain.LedgerEntry{
				EntryID:       uuid.NewString(),
				Date:          now,
				Type:          domain.Income,
				Category:      domain.CategorySales,
				Amount:        order.Total,
				Description:   fmt.Sprintf("Online order %s confirmed", label),
				PaymentMethod: order.PaymentMethod,
				RelatedID:     domain.StringPtr(order.OrderID),
				PerformedBy:   actorID,
				CreatedAt:     now,
			}
			if err := s.ledgerRepo.SaveEntryInTx(ctx, tx, shadow); err != nil {
				s.Metrics.RecordLedgerPostFailure(string(shadow.Category))
				return err
			}
		}

		updated = order
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update order status",
			slog.String("order_id", orderID),
			slog.String("status", req.Status))
		return nil, err
	}

	s.LogInfo(ctx, "Order status updated",
		slog.String("order_id", orderID),
		slog.String("from", string(previous)),
		slog.String("to", string(next)))
	return updated, nil
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
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

// purchaseOrderService implements the PurchaseOrderService interface
type purchaseOrderService struct {
	BaseService
	txManager     portsrepo.TransactionManager
	poRepo        portsrepo.PurchaseOrderRepository
	vendorRepo    portsrepo.VendorWriter
	inventoryRepo portsrepo.InventoryRepository
	ledgerRepo    portsrepo.LedgerWriter
}

// PurchaseOrderServiceOption is a functional option for configuring the purchase order service
type PurchaseOrderServiceOption func(*purchaseOrderService)

func WithPurchaseOrderMetrics(m *metrics.Metrics) PurchaseOrderServiceOption {
	return func(s *purchaseOrderService) {
		s.Metrics = m
	}
}

func WithPurchaseOrderClock(clock func() time.Time) PurchaseOrderServiceOption {
	return func(s *purchaseOrderService) {
		s.Clock = clock
	}
}

// NewPurchaseOrderService creates a new purchase order service with the provided options
func NewPurchaseOrderService(repos portsrepo.RepositoryProvider, options ...PurchaseOrderServiceOption) portssvc.PurchaseOrderService {
	svc := &purchaseOrderService{
		txManager:     repos.TxManager,
		poRepo:        repos.PurchaseOrderRepo,
		vendorRepo:    repos.VendorRepo,
		inventoryRepo: repos.InventoryRepo,
		ledgerRepo:    repos.LedgerRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PurchaseOrderService = (*purchaseOrderService)(nil)

func lineKey(productID, warehouseID string) string {
	return productID + "|" + warehouseID
}

// applyReceivedQuantities sets ReceivedQuantity on every line. Lines missing
// from received are taken as received in full.
func applyReceivedQuantities(po *domain.PurchaseOrder, received []dto.ReceivedItemRequest) error {
	overrides := make(map[string]int64, len(received))
	for _, r := range received {
		overrides[lineKey(r.ProductID, r.WarehouseID)] = r.ReceivedQuantity
	}

	for i := range po.Items {
		item := &po.Items[i]
		key := lineKey(item.ProductID, item.WarehouseID)
		qty, ok := overrides[key]
		if !ok {
			qty = item.Quantity
		}
		delete(overrides, key)
		if qty < 0 || qty > item.Quantity {
			return fmt.Errorf("%w: received quantity %d for product %s must be between 0 and %d",
				apperrors.ErrValidation, qty, item.ProductID, item.Quantity)
		}
		item.ReceivedQuantity = &qty
	}

	if len(overrides) > 0 {
		unknown := make([]string, 0, len(overrides))
		for key := range overrides {
			unknown = append(unknown, key)
		}
		sort.Strings(unknown)
		return fmt.Errorf("%w: purchase order %s has no lines %s",
			apperrors.ErrValidation, po.POID, strings.Join(unknown, ", "))
	}
	return nil
}

// ReceivePurchaseOrder records the GRN: the expense is recognized, stock is
// added, and the vendor balance grows by the received total.
func (s *purchaseOrderService) ReceivePurchaseOrder(ctx context.Context, poID string, req dto.ReceivePurchaseOrderRequest, actorID string) (*domain.PurchaseOrder, error) {
	var received *domain.PurchaseOrder
	err := s.RunInTx(ctx, s.txManager, "purchase_order", 0, func(tx pgx.Tx) error {
		po, err := s.poRepo.FindPurchaseOrderByIDForUpdate(ctx, tx, poID)
		if err != nil {
			return err
		}
		if po.Status != domain.POPending {
			return fmt.Errorf("%w: purchase order %s is %s, only PENDING orders can be received",
				apperrors.ErrDuplicate, poID, po.Status)
		}
		if err := applyReceivedQuantities(po, req.Items); err != nil {
			return err
		}

		now := s.Now()
		total := po.TotalAmount
		if len(po.Items) > 0 {
			total = po.ReceivedItemsTotal()
		}
		po.ReceivedTotalAmount = &total
		po.Status = domain.POReceived
		po.ReceivedAt = &now
		po.ReceivedBy = domain.StringPtr(actorID)

		if err := s.poRepo.MarkReceivedInTx(ctx, tx, *po); err != nil {
			return err
		}

		for _, item := range po.Items {
			if qty := item.EffectiveQuantity(); qty > 0 {
				if err := s.inventoryRepo.IncrementStockInTx(ctx, tx, item.ProductID, item.WarehouseID, qty); err != nil {
					return err
				}
			}
		}

		if _, err := s.vendorRepo.AdjustBalanceInTx(ctx, tx, po.VendorID, total, actorID, now); err != nil {
			return err
		}

		shadow := domain.LedgerEntry{
			EntryID:       uuid.NewString(),
			Date:          now,
			Type:          domain.Expense,
			Category:      domain.CategoryPurchase,
			Amount:        total,
			Description:   fmt.Sprintf("Goods received for purchase order %s", po.POID),
			PaymentMethod: domain.MethodCredit,
			RelatedID:     domain.StringPtr(po.POID),
			PerformedBy:   actorID,
			CreatedAt:     now,
		}
		if err := s.ledgerRepo.SaveEntryInTx(ctx, tx, shadow); err != nil {
			s.Metrics.RecordLedgerPostFailure(string(shadow.Category))
			return err
		}

		received = po
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to receive purchase order", slog.String("po_id", poID))
		return nil, err
	}

	s.LogInfo(ctx, "Purchase order received",
		slog.String("po_id", poID),
		slog.String("vendor_id", received.VendorID),
		slog.String("received_total", received.RecognizedAmount().String()))
	return received, nil
}

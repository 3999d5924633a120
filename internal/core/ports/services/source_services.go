package services

import (
	"context"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/SscSPs/retail_ledger_app/internal/dto"
)

// SaleService records POS sales and the credits they open.
type SaleService interface {
	RecordSale(ctx context.Context, req dto.RecordSaleRequest, actorID string) (*domain.Sale, error)
}

// OrderService moves online orders through their lifecycle.
type OrderService interface {
	UpdateOrderStatus(ctx context.Context, orderID string, req dto.UpdateOrderStatusRequest, actorID string) (*domain.Order, error)
}

// PurchaseOrderService records goods received against purchase orders.
type PurchaseOrderService interface {
	ReceivePurchaseOrder(ctx context.Context, poID string, req dto.ReceivePurchaseOrderRequest, actorID string) (*domain.PurchaseOrder, error)
}

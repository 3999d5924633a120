package dto

import "github.com/shopspring/decimal"

// SaleItemRequest is a line on a recorded sale.
type SaleItemRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// RecordSaleRequest records a POS sale. Due amount is derived as total - paidAmount.
type RecordSaleRequest struct {
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	Total         decimal.Decimal   `json:"total"`
	PaidAmount    decimal.Decimal   `json:"paidAmount"`
	PaymentMethod string            `json:"paymentMethod" binding:"omitempty,payment_method"`
	CustomerID    *string           `json:"customerID,omitempty"`
}

// UpdateOrderStatusRequest moves an online order along its lifecycle.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED SHIPPED COMPLETED CANCELLED"`
}

// ReceivedItemRequest overrides the received quantity of one purchase order line.
type ReceivedItemRequest struct {
	ProductID        string `json:"productID" binding:"required"`
	WarehouseID      string `json:"warehouseID" binding:"required"`
	ReceivedQuantity int64  `json:"receivedQuantity" binding:"min=0"`
}

// ReceivePurchaseOrderRequest records a GRN. Lines not listed are received in full.
type ReceivePurchaseOrderRequest struct {
	Items []ReceivedItemRequest `json:"items" binding:"omitempty,dive"`
}

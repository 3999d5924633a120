package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is the JSONB shape shared by sale and order items.
type LineItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name,omitempty"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Sale is a row of sales.
type Sale struct {
	SaleID        string          `db:"sale_id"`
	CreatedAt     time.Time       `db:"created_at"`
	Items         []LineItem      `db:"items"` // JSONB
	Total         decimal.Decimal `db:"total"`
	PaidAmount    decimal.Decimal `db:"paid_amount"`
	DueAmount     decimal.Decimal `db:"due_amount"`
	PaymentMethod string          `db:"payment_method"`
	CustomerID    *string         `db:"customer_id"`
	PerformedBy   string          `db:"performed_by"`
	Source        string          `db:"source"`
}

// Order is a row of orders.
type Order struct {
	OrderID       string          `db:"order_id"`
	OrderNumber   string          `db:"order_number"`
	CreatedAt     time.Time       `db:"created_at"`
	Status        string          `db:"status"`
	Items         []LineItem      `db:"items"` // JSONB
	Total         decimal.Decimal `db:"total"`
	PaymentMethod string          `db:"payment_method"`
	CustomerID    *string         `db:"customer_id"`
	PerformedBy   *string         `db:"performed_by"`
	ProcessedBy   *string         `db:"processed_by"`
	ConfirmedAt   *time.Time      `db:"confirmed_at"`
}

// PurchaseOrderItem is the JSONB shape of a purchase order line.
type PurchaseOrderItem struct {
	ProductID        string          `json:"productId"`
	WarehouseID      string          `json:"warehouseId"`
	Quantity         int64           `json:"quantity"`
	ReceivedQuantity *int64          `json:"receivedQuantity,omitempty"`
	UnitCost         decimal.Decimal `json:"unitCost"`
}

// PurchaseOrder is a row of purchase_orders.
type PurchaseOrder struct {
	POID                string              `db:"po_id"`
	VendorID            string              `db:"vendor_id"`
	Items               []PurchaseOrderItem `db:"items"` // JSONB
	TotalAmount         decimal.Decimal     `db:"total_amount"`
	ReceivedTotalAmount *decimal.Decimal    `db:"received_total_amount"`
	Status              string              `db:"status"`
	CreatedBy           string              `db:"created_by"`
	ReceivedBy          *string             `db:"received_by"`
	CreatedAt           time.Time           `db:"created_at"`
	ReceivedAt          *time.Time          `db:"received_at"`
}

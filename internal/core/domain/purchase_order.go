package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus is the receiving state of a purchase order.
type PurchaseOrderStatus string

const (
	POPending  PurchaseOrderStatus = "PENDING"
	POReceived PurchaseOrderStatus = "RECEIVED"
)

// PurchaseOrderItem is a line ordered from a vendor.
type PurchaseOrderItem struct {
	ProductID        string          `json:"productID"`
	WarehouseID      string          `json:"warehouseID"`
	Quantity         int64           `json:"quantity"`
	ReceivedQuantity *int64          `json:"receivedQuantity,omitempty"`
	UnitCost         decimal.Decimal `json:"unitCost"`
}

// EffectiveQuantity is the received quantity when known, else the ordered quantity.
func (i PurchaseOrderItem) EffectiveQuantity() int64 {
	if i.ReceivedQuantity != nil {
		return *i.ReceivedQuantity
	}
	return i.Quantity
}

// PurchaseOrder is an order placed with a vendor. Its expense is recognized at GRN time.
type PurchaseOrder struct {
	POID                string              `json:"poID"`
	VendorID            string              `json:"vendorID"`
	Items               []PurchaseOrderItem `json:"items"`
	TotalAmount         decimal.Decimal     `json:"totalAmount"`
	ReceivedTotalAmount *decimal.Decimal    `json:"receivedTotalAmount,omitempty"`
	Status              PurchaseOrderStatus `json:"status"`
	CreatedBy           string              `json:"createdBy"`
	ReceivedBy          *string             `json:"receivedBy,omitempty"`
	CreatedAt           time.Time           `json:"createdAt"`
	ReceivedAt          *time.Time          `json:"receivedAt,omitempty"`
}

// IsReceived reports whether the expense has been recognized.
func (p PurchaseOrder) IsReceived() bool {
	return p.Status == POReceived
}

// RecognizedAmount is receivedTotalAmount ?? totalAmount.
func (p PurchaseOrder) RecognizedAmount() decimal.Decimal {
	if p.ReceivedTotalAmount != nil {
		return *p.ReceivedTotalAmount
	}
	return p.TotalAmount
}

// RecognitionDate is the GRN date, falling back to creation for records
// received before the receipt timestamp was tracked.
func (p PurchaseOrder) RecognitionDate() time.Time {
	if p.ReceivedAt != nil && !p.ReceivedAt.IsZero() {
		return *p.ReceivedAt
	}
	return p.CreatedAt
}

// ActorID returns receivedBy, falling back to createdBy.
func (p PurchaseOrder) ActorID() string {
	return DerefOr(p.ReceivedBy, p.CreatedBy)
}

// ReceivedItemsTotal prices the effective quantities at unit cost.
func (p PurchaseOrder) ReceivedItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.Items {
		total = total.Add(item.UnitCost.Mul(decimal.NewFromInt(item.EffectiveQuantity())))
	}
	return total
}

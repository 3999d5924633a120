package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vendor is a row of vendors.
type Vendor struct {
	VendorID string          `db:"vendor_id"`
	Name     string          `db:"name"`
	Balance  decimal.Decimal `db:"balance"`
	IsActive bool            `db:"is_active"`
	AuditFields
}

// VendorPayment is a row of vendor_payments.
type VendorPayment struct {
	PaymentID     string          `db:"payment_id"`
	VendorID      string          `db:"vendor_id"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentMethod string          `db:"payment_method"`
	PerformedBy   string          `db:"performed_by"`
	Notes         *string         `db:"notes"`
	BalanceAfter  decimal.Decimal `db:"balance_after"`
	PaidAt        time.Time       `db:"paid_at"`
}

// InventoryLine joins inventory with the product cost price.
type InventoryLine struct {
	ProductID   string           `db:"product_id"`
	WarehouseID string           `db:"warehouse_id"`
	Quantity    int64            `db:"quantity"`
	CostPrice   *decimal.Decimal `db:"cost_price"` // Nullable
}

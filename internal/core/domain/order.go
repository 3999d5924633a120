package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an online order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// RevenueOrderStatuses are the statuses under which an order counts as revenue.
var RevenueOrderStatuses = []OrderStatus{OrderConfirmed, OrderCompleted}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderShipped, OrderCompleted, OrderCancelled},
	OrderShipped:   {OrderCompleted},
}

// IsValid reports whether the status is known.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is a line on an online order.
type OrderItem struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Order is an online storefront order. It is dated by placement (CreatedAt) and
// recognized as revenue only once confirmed.
type Order struct {
	OrderID       string          `json:"orderID"`
	OrderNumber   string          `json:"orderNumber"`
	CreatedAt     time.Time       `json:"createdAt"`
	Status        OrderStatus     `json:"status"`
	Items         []OrderItem     `json:"items"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	CustomerID    *string         `json:"customerID,omitempty"`
	PerformedBy   *string         `json:"performedBy,omitempty"`
	ProcessedBy   *string         `json:"processedBy,omitempty"` // older records only carry this
	ConfirmedAt   *time.Time      `json:"confirmedAt,omitempty"`
}

// IsRevenue reports whether the order is CONFIRMED or COMPLETED.
func (o Order) IsRevenue() bool {
	return o.Status == OrderConfirmed || o.Status == OrderCompleted
}

// ActorID returns performedBy, falling back to processedBy.
func (o Order) ActorID() string {
	if o.PerformedBy != nil && *o.PerformedBy != "" {
		return *o.PerformedBy
	}
	return DerefOr(o.ProcessedBy, "")
}

// OrderFilter narrows an order range query. Nil fields are unbounded.
type OrderFilter struct {
	Statuses []OrderStatus
	From     *time.Time
	To       *time.Time
}

package reconciliation_test

import (
	"time"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	day1 = time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	day2 = time.Date(2026, 4, 2, 15, 30, 0, 0, time.UTC)
)

func d(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func entry(id string, typ domain.EntryType, cat domain.LedgerCategory, amount float64, method domain.PaymentMethod, at time.Time) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:       id,
		Date:          at,
		Type:          typ,
		Category:      cat,
		Amount:        d(amount),
		Description:   string(cat) + " entry",
		PaymentMethod: method,
		PerformedBy:   "u-owner",
	}
}

func related(e domain.LedgerEntry, relatedID string) domain.LedgerEntry {
	e.RelatedID = &relatedID
	return e
}

// correctionOf builds the offsetting entry the ledger service posts for e.
func correctionOf(e domain.LedgerEntry, id string, at time.Time) domain.LedgerEntry {
	c := e
	c.EntryID = id
	c.Date = at
	c.Type = e.Type.Opposite()
	c.Description = "Correction of " + e.EntryID + ": mistyped"
	c.CorrectsID = domain.StringPtr(e.EntryID)
	return c
}

func sale(id string, total, paid float64, method domain.PaymentMethod, at time.Time) domain.Sale {
	return domain.Sale{
		SaleID:        id,
		CreatedAt:     at,
		Total:         d(total),
		PaidAmount:    d(paid),
		DueAmount:     d(total - paid),
		PaymentMethod: method,
		PerformedBy:   "u-cashier",
		Source:        domain.SaleSourcePOS,
	}
}

func order(id string, status domain.OrderStatus, total float64, method domain.PaymentMethod, at time.Time) domain.Order {
	return domain.Order{
		OrderID:       id,
		OrderNumber:   "ON-" + id,
		CreatedAt:     at,
		Status:        status,
		Total:         d(total),
		PaymentMethod: method,
		ProcessedBy:   domain.StringPtr("u-online"),
	}
}

func purchaseOrder(id string, status domain.PurchaseOrderStatus, total float64, received *float64, at time.Time) domain.PurchaseOrder {
	po := domain.PurchaseOrder{
		POID:        id,
		VendorID:    "v1",
		TotalAmount: d(total),
		Status:      status,
		CreatedBy:   "u-buyer",
		CreatedAt:   at,
	}
	if received != nil {
		r := d(*received)
		po.ReceivedTotalAmount = &r
	}
	if status == domain.POReceived {
		receivedAt := at
		po.ReceivedAt = &receivedAt
		po.ReceivedBy = domain.StringPtr("u-clerk")
	}
	return po
}

func floatPtr(v float64) *float64 {
	return &v
}

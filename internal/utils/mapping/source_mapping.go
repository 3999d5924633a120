package mapping

import (
	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/SscSPs/retail_ledger_app/internal/models"
)

func ToModelSale(d domain.Sale) models.Sale {
	items := make([]models.LineItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = models.LineItem{ProductID: it.ProductID, Name: it.Name, Quantity: it.Quantity, UnitPrice: it.UnitPrice}
	}
	return models.Sale{
		SaleID:        d.SaleID,
		CreatedAt:     d.CreatedAt,
		Items:         items,
		Total:         d.Total,
		PaidAmount:    d.PaidAmount,
		DueAmount:     d.DueAmount,
		PaymentMethod: string(d.PaymentMethod),
		CustomerID:    d.CustomerID,
		PerformedBy:   d.PerformedBy,
		Source:        d.Source,
	}
}

func ToDomainSale(m models.Sale) domain.Sale {
	items := make([]domain.SaleItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = domain.SaleItem{ProductID: it.ProductID, Name: it.Name, Quantity: it.Quantity, UnitPrice: it.UnitPrice}
	}
	return domain.Sale{
		SaleID:        m.SaleID,
		CreatedAt:     m.CreatedAt,
		Items:         items,
		Total:         m.Total,
		PaidAmount:    m.PaidAmount,
		DueAmount:     m.DueAmount,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		CustomerID:    m.CustomerID,
		PerformedBy:   m.PerformedBy,
		Source:        m.Source,
	}
}

func ToDomainOrder(m models.Order) domain.Order {
	items := make([]domain.OrderItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = domain.OrderItem{ProductID: it.ProductID, Name: it.Name, Quantity: it.Quantity, UnitPrice: it.UnitPrice}
	}
	return domain.Order{
		OrderID:       m.OrderID,
		OrderNumber:   m.OrderNumber,
		CreatedAt:     m.CreatedAt,
		Status:        domain.OrderStatus(m.Status),
		Items:         items,
		Total:         m.Total,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		CustomerID:    m.CustomerID,
		PerformedBy:   m.PerformedBy,
		ProcessedBy:   m.ProcessedBy,
		ConfirmedAt:   m.ConfirmedAt,
	}
}

func ToModelPurchaseOrderItems(ds []domain.PurchaseOrderItem) []models.PurchaseOrderItem {
	ms := make([]models.PurchaseOrderItem, len(ds))
	for i, d := range ds {
		ms[i] = models.PurchaseOrderItem{
			ProductID:        d.ProductID,
			WarehouseID:      d.WarehouseID,
			Quantity:         d.Quantity,
			ReceivedQuantity: d.ReceivedQuantity,
			UnitCost:         d.UnitCost,
		}
	}
	return ms
}

func ToDomainPurchaseOrder(m models.PurchaseOrder) domain.PurchaseOrder {
	items := make([]domain.PurchaseOrderItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = domain.PurchaseOrderItem{
			ProductID:        it.ProductID,
			WarehouseID:      it.WarehouseID,
			Quantity:         it.Quantity,
			ReceivedQuantity: it.ReceivedQuantity,
			UnitCost:         it.UnitCost,
		}
	}
	return domain.PurchaseOrder{
		POID:                m.POID,
		VendorID:            m.VendorID,
		Items:               items,
		TotalAmount:         m.TotalAmount,
		ReceivedTotalAmount: m.ReceivedTotalAmount,
		Status:              domain.PurchaseOrderStatus(m.Status),
		CreatedBy:           m.CreatedBy,
		ReceivedBy:          m.ReceivedBy,
		CreatedAt:           m.CreatedAt,
		ReceivedAt:          m.ReceivedAt,
	}
}

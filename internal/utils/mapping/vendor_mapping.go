package mapping

import (
	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/SscSPs/retail_ledger_app/internal/models"
	"github.com/shopspring/decimal"
)

func ToDomainVendor(m models.Vendor) domain.Vendor {
	return domain.Vendor{
		VendorID:    m.VendorID,
		Name:        m.Name,
		Balance:     m.Balance,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelVendorPayment(d domain.VendorPayment) models.VendorPayment {
	return models.VendorPayment{
		PaymentID:     d.PaymentID,
		VendorID:      d.VendorID,
		Amount:        d.Amount,
		PaymentMethod: string(d.PaymentMethod),
		PerformedBy:   d.PerformedBy,
		Notes:         d.Notes,
		BalanceAfter:  d.BalanceAfter,
		PaidAt:        d.PaidAt,
	}
}

func ToDomainVendorPayment(m models.VendorPayment) domain.VendorPayment {
	return domain.VendorPayment{
		PaymentID:     m.PaymentID,
		VendorID:      m.VendorID,
		Amount:        m.Amount,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		PerformedBy:   m.PerformedBy,
		Notes:         m.Notes,
		BalanceAfter:  m.BalanceAfter,
		PaidAt:        m.PaidAt,
	}
}

// ToDomainInventoryLine treats a missing product cost as zero.
func ToDomainInventoryLine(m models.InventoryLine) domain.InventoryLine {
	cost := decimal.Zero
	if m.CostPrice != nil {
		cost = *m.CostPrice
	}
	return domain.InventoryLine{
		ProductID:   m.ProductID,
		WarehouseID: m.WarehouseID,
		Quantity:    m.Quantity,
		CostPrice:   cost,
	}
}

func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:      m.UserID,
		Name:        m.Name,
		Role:        m.Role,
		DeletedAt:   m.DeletedAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

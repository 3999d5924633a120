package mapping

import (
	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/SscSPs/retail_ledger_app/internal/models"
)

func toModelSettlementHistory(ds []domain.SettlementRecord) []models.SettlementRecord {
	ms := make([]models.SettlementRecord, len(ds))
	for i, d := range ds {
		ms[i] = models.SettlementRecord{
			Amount:        d.Amount,
			Date:          d.Date,
			SettledBy:     d.SettledBy,
			PaymentMethod: string(d.PaymentMethod),
			Notes:         d.Notes,
		}
	}
	return ms
}

func toDomainSettlementHistory(ms []models.SettlementRecord) []domain.SettlementRecord {
	ds := make([]domain.SettlementRecord, len(ms))
	for i, m := range ms {
		ds[i] = domain.SettlementRecord{
			Amount:        m.Amount,
			Date:          m.Date,
			SettledBy:     m.SettledBy,
			PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
			Notes:         m.Notes,
		}
	}
	return ds
}

// ToModelCreditTransaction converts a domain credit to its row shape. The
// history is never nil so the JSONB column always holds an array.
func ToModelCreditTransaction(d domain.CreditTransaction) models.CreditTransaction {
	return models.CreditTransaction{
		CreditID:          d.CreditID,
		CustomerID:        d.CustomerID,
		SaleID:            d.SaleID,
		TotalAmount:       d.TotalAmount,
		PaidAmount:        d.PaidAmount,
		DueAmount:         d.DueAmount,
		SettlementHistory: toModelSettlementHistory(d.SettlementHistory),
		SettledAt:         d.SettledAt,
		CreatedAt:         d.CreatedAt,
		Version:           d.Version,
	}
}

func ToDomainCreditTransaction(m models.CreditTransaction) domain.CreditTransaction {
	return domain.CreditTransaction{
		CreditID:          m.CreditID,
		CustomerID:        m.CustomerID,
		SaleID:            m.SaleID,
		TotalAmount:       m.TotalAmount,
		PaidAmount:        m.PaidAmount,
		DueAmount:         m.DueAmount,
		SettlementHistory: toDomainSettlementHistory(m.SettlementHistory),
		SettledAt:         m.SettledAt,
		CreatedAt:         m.CreatedAt,
		Version:           m.Version,
	}
}

func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:  m.CustomerID,
		Name:        m.Name,
		Phone:       domain.DerefOr(m.Phone, ""),
		TotalDue:    m.TotalDue,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

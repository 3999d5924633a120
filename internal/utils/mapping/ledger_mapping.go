package mapping

import (
	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/SscSPs/retail_ledger_app/internal/models"
)

// ToModelLedgerEntry converts a domain entry to its row shape.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:       d.EntryID,
		EntryDate:     d.Date,
		EntryType:     string(d.Type),
		Category:      string(d.Category),
		Amount:        d.Amount,
		Description:   d.Description,
		PaymentMethod: string(d.PaymentMethod),
		RelatedID:     d.RelatedID,
		CorrectsID:    d.CorrectsID,
		PerformedBy:   d.PerformedBy,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainLedgerEntry converts a row to a domain entry. Stored payment methods
// are kept as written; reporting normalizes them.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:       m.EntryID,
		Date:          m.EntryDate,
		Type:          domain.EntryType(m.EntryType),
		Category:      domain.LedgerCategory(m.Category),
		Amount:        m.Amount,
		Description:   m.Description,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		RelatedID:     m.RelatedID,
		CorrectsID:    m.CorrectsID,
		PerformedBy:   m.PerformedBy,
		CreatedAt:     m.CreatedAt,
	}
}

func ToDomainLedgerEntries(ms []models.LedgerEntry) []domain.LedgerEntry {
	if ms == nil {
		return nil
	}
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}

package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/SscSPs/retail_ledger_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToModelCreditTransaction_EmptyHistoryIsArray(t *testing.T) {
	m := ToModelCreditTransaction(domain.CreditTransaction{CreditID: "c1"})
	assert.NotNil(t, m.SettlementHistory, "JSONB history must encode as [] rather than null")
	assert.Len(t, m.SettlementHistory, 0)
}

func TestToDomainCreditTransaction_History(t *testing.T) {
	at := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	m := models.CreditTransaction{
		CreditID:    "c1",
		TotalAmount: decimal.NewFromInt(1000),
		PaidAmount:  decimal.NewFromInt(400),
		DueAmount:   decimal.NewFromInt(600),
		SettlementHistory: []models.SettlementRecord{
			{Amount: decimal.NewFromInt(400), Date: at, SettledBy: "u1", PaymentMethod: "FONE_PAY"},
		},
		Version: 2,
	}

	d := ToDomainCreditTransaction(m)

	assert.Equal(t, domain.CreditPartiallySettled, d.Status())
	assert.Equal(t, domain.MethodFonePay, d.SettlementHistory[0].PaymentMethod)
	assert.Equal(t, int64(2), d.Version)
}

func TestToDomainInventoryLine_MissingCost(t *testing.T) {
	line := ToDomainInventoryLine(models.InventoryLine{ProductID: "p1", Quantity: 4})
	assert.True(t, line.Value().IsZero())

	cost := decimal.NewFromInt(25)
	line = ToDomainInventoryLine(models.InventoryLine{ProductID: "p1", Quantity: 4, CostPrice: &cost})
	assert.True(t, decimal.NewFromInt(100).Equal(line.Value()))
}

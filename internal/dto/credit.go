package dto

import (
	"time"

	"github.com/SscSPs/retail_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SettleCreditRequest is the body of POST /credits/:creditID/settlements.
type SettleCreditRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,settlement_method"`
	Notes         *string         `json:"notes,omitempty" binding:"omitempty,max=500"`
}

// CreditResponse is a credit with its derived status.
type CreditResponse struct {
	CreditID          string                    `json:"creditID"`
	CustomerID        string                    `json:"customerID"`
	SaleID            string                    `json:"saleID"`
	TotalAmount       decimal.Decimal           `json:"totalAmount"`
	PaidAmount        decimal.Decimal           `json:"paidAmount"`
	DueAmount         decimal.Decimal           `json:"dueAmount"`
	Status            domain.CreditStatus       `json:"status"`
	SettlementHistory []domain.SettlementRecord `json:"settlementHistory"`
	SettledAt         *time.Time                `json:"settledAt,omitempty"`
	CreatedAt         time.Time                 `json:"createdAt"`
}

// ToCreditResponse converts a domain credit to its response.
func ToCreditResponse(c *domain.CreditTransaction) CreditResponse {
	history := c.SettlementHistory
	if history == nil {
		history = []domain.SettlementRecord{}
	}
	return CreditResponse{
		CreditID:          c.CreditID,
		CustomerID:        c.CustomerID,
		SaleID:            c.SaleID,
		TotalAmount:       c.TotalAmount,
		PaidAmount:        c.PaidAmount,
		DueAmount:         c.DueAmount,
		Status:            c.Status(),
		SettlementHistory: history,
		SettledAt:         c.SettledAt,
		CreatedAt:         c.CreatedAt,
	}
}

// ToCreditResponses converts a slice of credits.
func ToCreditResponses(credits []domain.CreditTransaction) []CreditResponse {
	out := make([]CreditResponse, len(credits))
	for i := range credits {
		out[i] = ToCreditResponse(&credits[i])
	}
	return out
}

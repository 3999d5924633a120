package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettlementRecord is one element of the settlement_history JSONB array.
type SettlementRecord struct {
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	SettledBy     string          `json:"settledBy"`
	PaymentMethod string          `json:"paymentMethod"`
	Notes         *string         `json:"notes,omitempty"`
}

// CreditTransaction is a row of credit_transactions.
type CreditTransaction struct {
	CreditID          string             `db:"credit_id"`
	CustomerID        string             `db:"customer_id"`
	SaleID            string             `db:"sale_id"`
	TotalAmount       decimal.Decimal    `db:"total_amount"`
	PaidAmount        decimal.Decimal    `db:"paid_amount"`
	DueAmount         decimal.Decimal    `db:"due_amount"`
	SettlementHistory []SettlementRecord `db:"settlement_history"` // JSONB
	SettledAt         *time.Time         `db:"settled_at"`
	CreatedAt         time.Time          `db:"created_at"`
	Version           int64              `db:"version"`
}

// Customer is a row of customers.
type Customer struct {
	CustomerID string          `db:"customer_id"`
	Name       string          `db:"name"`
	Phone      *string         `db:"phone"`
	TotalDue   decimal.Decimal `db:"total_due"`
	AuditFields
}

package domain

import "github.com/shopspring/decimal"

// Customer carries the aggregate amount a customer still owes across all credits.
type Customer struct {
	CustomerID string          `json:"customerID"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone,omitempty"`
	TotalDue   decimal.Decimal `json:"totalDue"`
	AuditFields
}

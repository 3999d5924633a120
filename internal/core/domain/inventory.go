package domain

import "github.com/shopspring/decimal"

// InventoryLine is the stock of one product in one warehouse, priced at the
// product's cost.
type InventoryLine struct {
	ProductID   string          `json:"productID"`
	WarehouseID string          `json:"warehouseID"`
	Quantity    int64           `json:"quantity"`
	CostPrice   decimal.Decimal `json:"costPrice"`
}

// Value is costPrice × quantity. Products without a cost contribute zero.
func (l InventoryLine) Value() decimal.Decimal {
	if l.CostPrice.IsZero() || l.Quantity == 0 {
		return decimal.Zero
	}
	return l.CostPrice.Mul(decimal.NewFromInt(l.Quantity))
}

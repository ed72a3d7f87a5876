package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord is one SKU as supplied by the record store. Records are
// read-only for the lifetime of a session snapshot.
type InventoryRecord struct {
	SKU                  string          `db:"sku" json:"sku"`
	DaysSinceLastInvoice int             `db:"days_since_last_invoice" json:"days_since_last_invoice"`
	CurrentStock         int             `db:"current_stock" json:"current_stock"`
	UnitCost             decimal.Decimal `db:"unit_cost" json:"unit_cost"`
	UnitPrice            decimal.Decimal `db:"unit_price" json:"unit_price"`
	MostRecentCustomer   string          `db:"most_recent_customer" json:"most_recent_customer"`
	LastPurchaseDate     time.Time       `db:"last_purchase_date" json:"last_purchase_date"`
}

// UnitProfit is price minus cost; may be negative.
func (r *InventoryRecord) UnitProfit() decimal.Decimal {
	return r.UnitPrice.Sub(r.UnitCost)
}

// ProfitMarginPct returns the profit margin as a percentage rounded to two
// decimals. The second return is false when the margin is undefined (zero price).
func (r *InventoryRecord) ProfitMarginPct() (decimal.Decimal, bool) {
	if r.UnitPrice.IsZero() {
		return decimal.Decimal{}, false
	}
	pct := r.UnitProfit().Div(r.UnitPrice).Mul(decimal.NewFromInt(100))
	return pct.Round(2), true
}

// StockInvestment is the capital tied up in this SKU: stock on hand times unit cost.
func (r *InventoryRecord) StockInvestment() decimal.Decimal {
	return r.UnitCost.Mul(decimal.NewFromInt(int64(r.CurrentStock)))
}

// Validate enforces the ingestion contract. Records failing it never reach
// classification or margin computation.
func (r *InventoryRecord) Validate() error {
	if r.SKU == "" {
		return fmt.Errorf("sku cannot be empty")
	}
	if r.DaysSinceLastInvoice < 0 {
		return fmt.Errorf("days since last invoice cannot be negative, got %d", r.DaysSinceLastInvoice)
	}
	if r.CurrentStock < 0 {
		return fmt.Errorf("current stock cannot be negative, got %d", r.CurrentStock)
	}
	if !r.UnitPrice.IsPositive() {
		return fmt.Errorf("unit price must be positive, got %s", r.UnitPrice)
	}
	return nil
}

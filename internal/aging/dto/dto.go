package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hierroycarbono/aging-report-service/internal/model"
)

// CategoryCount is one bar of the aging chart.
type CategoryCount struct {
	Category string `json:"category"`
	Tier     string `json:"tier"`
	Color    string `json:"color"`
	Count    int    `json:"count"`
}

// Distribution is the ordered category breakdown for one snapshot.
type Distribution struct {
	SnapshotID string          `json:"snapshot_id"`
	Rows       []CategoryCount `json:"rows"`
	TotalSKUs  int             `json:"total_skus"`
}

// DetailRow mirrors the drill-down table columns, most stale rows first.
type DetailRow struct {
	SKU                  string           `json:"sku"`
	CurrentStock         int              `json:"current_stock"`
	UnitCost             decimal.Decimal  `json:"unit_cost"`
	UnitPrice            decimal.Decimal  `json:"unit_price"`
	UnitProfit           decimal.Decimal  `json:"unit_profit"`
	ProfitMarginPct      *decimal.Decimal `json:"profit_margin_pct,omitempty"`
	DaysSinceLastInvoice int              `json:"days_since_last_invoice"`
	LastPurchaseDate     time.Time        `json:"last_purchase_date"`
	MostRecentCustomer   string           `json:"most_recent_customer"`
}

// NewDetailRow maps a model record onto its drill-down row.
func NewDetailRow(rec model.InventoryRecord) DetailRow {
	row := DetailRow{
		SKU:                  rec.SKU,
		CurrentStock:         rec.CurrentStock,
		UnitCost:             rec.UnitCost,
		UnitPrice:            rec.UnitPrice,
		UnitProfit:           rec.UnitProfit(),
		DaysSinceLastInvoice: rec.DaysSinceLastInvoice,
		LastPurchaseDate:     rec.LastPurchaseDate,
		MostRecentCustomer:   rec.MostRecentCustomer,
	}
	if margin, ok := rec.ProfitMarginPct(); ok {
		row.ProfitMarginPct = &margin
	}
	return row
}

// Insight is the tier-conditioned qualitative message over a drill-down.
type Insight struct {
	Level   string `json:"level"` // "warning" or "success"
	Message string `json:"message"`
}

// DetailResult is the full drill-down for one selected category. When HasData
// is false no metrics are present and Message explains the empty state.
type DetailResult struct {
	Category               string           `json:"category"`
	Tier                   string           `json:"tier,omitempty"`
	HasData                bool             `json:"has_data"`
	SKUCount               int              `json:"sku_count"`
	TotalInvestment        decimal.Decimal  `json:"total_investment"`
	TotalInvestmentDisplay string           `json:"total_investment_display,omitempty"`
	AverageMarginPct       *decimal.Decimal `json:"average_margin_pct,omitempty"`
	AverageMarginDisplay   string           `json:"average_margin_display,omitempty"`
	Rows                   []DetailRow      `json:"rows"`
	Insight                *Insight         `json:"insight,omitempty"`
	Message                string           `json:"message,omitempty"`
}

// ViewState is the interaction state rendered to the client: "idle" with a
// prompt, or "detail" with the current drill-down.
type ViewState struct {
	State  string        `json:"state"`
	Prompt string        `json:"prompt,omitempty"`
	Detail *DetailResult `json:"detail,omitempty"`
}

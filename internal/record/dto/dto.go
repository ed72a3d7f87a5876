package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hierroycarbono/aging-report-service/internal/model"
)

// RecordRow is an inventory record plus its derived columns, shaped for the
// rendering layer's table.
type RecordRow struct {
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

// NewRecordRow maps a model record onto its display row.
func NewRecordRow(rec model.InventoryRecord) RecordRow {
	row := RecordRow{
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

// SnapshotMeta describes the current session snapshot without its rows.
type SnapshotMeta struct {
	ID            string    `json:"id"`
	Source        string    `json:"source"`
	LoadedAt      time.Time `json:"loaded_at"`
	RecordCount   int       `json:"record_count"`
	RejectedCount int       `json:"rejected_count"`
}

func NewSnapshotMeta(snap *model.Snapshot) SnapshotMeta {
	return SnapshotMeta{
		ID:            snap.ID,
		Source:        snap.Source,
		LoadedAt:      snap.LoadedAt,
		RecordCount:   len(snap.Records),
		RejectedCount: snap.RejectedCount,
	}
}

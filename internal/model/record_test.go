package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testRecord() InventoryRecord {
	return InventoryRecord{
		SKU:                  "SKU-0001",
		DaysSinceLastInvoice: 10,
		CurrentStock:         5,
		UnitCost:             decimal.NewFromInt(100),
		UnitPrice:            decimal.NewFromInt(150),
		MostRecentCustomer:   "Customer_A",
		LastPurchaseDate:     time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestInventoryRecord_DerivedValues(t *testing.T) {
	rec := testRecord()

	if got := rec.UnitProfit(); !got.Equal(decimal.NewFromInt(50)) {
		t.Errorf("UnitProfit = %s, want 50", got)
	}

	margin, ok := rec.ProfitMarginPct()
	if !ok {
		t.Fatal("Expected margin to be defined")
	}
	if !margin.Equal(decimal.NewFromFloat(33.33)) {
		t.Errorf("ProfitMarginPct = %s, want 33.33", margin)
	}

	if got := rec.StockInvestment(); !got.Equal(decimal.NewFromInt(500)) {
		t.Errorf("StockInvestment = %s, want 500", got)
	}
}

func TestInventoryRecord_NegativeProfit(t *testing.T) {
	rec := testRecord()
	rec.UnitPrice = decimal.NewFromInt(80)

	if got := rec.UnitProfit(); !got.Equal(decimal.NewFromInt(-20)) {
		t.Errorf("UnitProfit = %s, want -20", got)
	}
	margin, ok := rec.ProfitMarginPct()
	if !ok {
		t.Fatal("Expected margin to be defined")
	}
	if !margin.Equal(decimal.NewFromInt(-25)) {
		t.Errorf("ProfitMarginPct = %s, want -25", margin)
	}
}

func TestInventoryRecord_MarginUndefinedAtZeroPrice(t *testing.T) {
	rec := testRecord()
	rec.UnitPrice = decimal.Zero

	if _, ok := rec.ProfitMarginPct(); ok {
		t.Error("Expected margin to be undefined when unit price is zero")
	}
}

func TestInventoryRecord_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		mutate      func(r *InventoryRecord)
		expectError string
	}{
		{"valid record", func(r *InventoryRecord) {}, ""},
		{"empty sku", func(r *InventoryRecord) { r.SKU = "" }, "sku cannot be empty"},
		{"negative days", func(r *InventoryRecord) { r.DaysSinceLastInvoice = -3 }, "days since last invoice cannot be negative, got -3"},
		{"negative stock", func(r *InventoryRecord) { r.CurrentStock = -1 }, "current stock cannot be negative, got -1"},
		{"zero price", func(r *InventoryRecord) { r.UnitPrice = decimal.Zero }, "unit price must be positive, got 0"},
		{"negative price", func(r *InventoryRecord) { r.UnitPrice = decimal.NewFromInt(-5) }, "unit price must be positive, got -5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := testRecord()
			tc.mutate(&rec)
			err := rec.Validate()
			if tc.expectError == "" {
				if err != nil {
					t.Fatalf("Expected valid record, got error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

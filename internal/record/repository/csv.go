package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hierroycarbono/aging-report-service/internal/model"
)

// CSVRepository loads inventory records from a CSV export. The file must carry
// the exact header below; dates are ISO (2006-01-02).
type CSVRepository struct {
	path string
}

func NewCSVRepository(path string) *CSVRepository {
	return &CSVRepository{path: path}
}

var csvHeader = []string{
	"sku", "days_since_last_invoice", "current_stock",
	"unit_cost", "unit_price", "most_recent_customer", "last_purchase_date",
}

func (r *CSVRepository) FindAll(ctx context.Context) ([]model.InventoryRecord, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory file %s: %w", r.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory CSV: %w", err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("inventory CSV must have a header row")
	}

	if !headerMatches(rows[0]) {
		return nil, fmt.Errorf("inventory CSV header mismatch. Expected: %v, Got: %v", csvHeader, rows[0])
	}

	var records []model.InventoryRecord
	for i, row := range rows[1:] {
		if len(row) != len(csvHeader) {
			return nil, fmt.Errorf("inventory CSV row %d: expected %d columns, got %d", i+2, len(csvHeader), len(row))
		}
		rec, err := parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("inventory CSV row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *CSVRepository) Kind() string {
	return "csv"
}

func headerMatches(header []string) bool {
	if len(header) != len(csvHeader) {
		return false
	}
	for i, col := range header {
		if col != csvHeader[i] {
			return false
		}
	}
	return true
}

func parseRecord(row []string) (model.InventoryRecord, error) {
	days, err := strconv.Atoi(row[1])
	if err != nil {
		return model.InventoryRecord{}, fmt.Errorf("invalid days_since_last_invoice %q: %w", row[1], err)
	}
	stock, err := strconv.Atoi(row[2])
	if err != nil {
		return model.InventoryRecord{}, fmt.Errorf("invalid current_stock %q: %w", row[2], err)
	}
	cost, err := decimal.NewFromString(row[3])
	if err != nil {
		return model.InventoryRecord{}, fmt.Errorf("invalid unit_cost %q: %w", row[3], err)
	}
	price, err := decimal.NewFromString(row[4])
	if err != nil {
		return model.InventoryRecord{}, fmt.Errorf("invalid unit_price %q: %w", row[4], err)
	}
	purchased, err := time.Parse("2006-01-02", row[6])
	if err != nil {
		return model.InventoryRecord{}, fmt.Errorf("invalid last_purchase_date %q: %w", row[6], err)
	}

	return model.InventoryRecord{
		SKU:                  row[0],
		DaysSinceLastInvoice: days,
		CurrentStock:         stock,
		UnitCost:             cost,
		UnitPrice:            price,
		MostRecentCustomer:   row[5],
		LastPurchaseDate:     purchased,
	}, nil
}

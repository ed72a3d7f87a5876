package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hierroycarbono/aging-report-service/internal/model"
	"github.com/hierroycarbono/aging-report-service/internal/record"
	"github.com/hierroycarbono/aging-report-service/pkg/logger"
)

type stubRepository struct {
	records []model.InventoryRecord
	err     error
}

func (s *stubRepository) FindAll(ctx context.Context) ([]model.InventoryRecord, error) {
	return s.records, s.err
}

func (s *stubRepository) Kind() string { return "stub" }

func makeRecord(sku string, days, stock int, cost, price float64) model.InventoryRecord {
	return model.InventoryRecord{
		SKU:                  sku,
		DaysSinceLastInvoice: days,
		CurrentStock:         stock,
		UnitCost:             decimal.NewFromFloat(cost),
		UnitPrice:            decimal.NewFromFloat(price),
		MostRecentCustomer:   "Customer_A",
		LastPurchaseDate:     time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestLoad_BuildsSnapshotAndRejectsInvalid(t *testing.T) {
	repo := &stubRepository{records: []model.InventoryRecord{
		makeRecord("SKU-0001", 10, 5, 100, 150),
		makeRecord("SKU-0002", -4, 5, 100, 150), // negative days
		makeRecord("SKU-0003", 800, -1, 50, 60), // negative stock
		makeRecord("SKU-0004", 800, 2, 50, 0),   // zero price
		makeRecord("SKU-0005", 200, 3, 20, 45),
	}}
	uc := NewRecordUseCase(repo, logger.NewNopLogger())

	snap, err := uc.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(snap.Records) != 2 {
		t.Errorf("Expected 2 valid records, got %d", len(snap.Records))
	}
	if snap.RejectedCount != 3 {
		t.Errorf("Expected 3 rejected records, got %d", snap.RejectedCount)
	}
	if snap.ID == "" {
		t.Error("Expected snapshot to carry an ID")
	}
	if snap.Source != "stub" {
		t.Errorf("Expected source 'stub', got %q", snap.Source)
	}
}

func TestCurrent_BeforeLoad(t *testing.T) {
	uc := NewRecordUseCase(&stubRepository{}, logger.NewNopLogger())

	if _, err := uc.Current(); err != record.ErrNoSnapshot {
		t.Errorf("Expected ErrNoSnapshot, got %v", err)
	}
}

func TestLoad_ReplacesSnapshot(t *testing.T) {
	repo := &stubRepository{records: []model.InventoryRecord{
		makeRecord("SKU-0001", 10, 5, 100, 150),
	}}
	uc := NewRecordUseCase(repo, logger.NewNopLogger())

	first, err := uc.Load(context.Background())
	if err != nil {
		t.Fatalf("first Load failed: %v", err)
	}
	second, err := uc.Load(context.Background())
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if first.ID == second.ID {
		t.Error("Expected reload to mint a new snapshot ID")
	}

	current, err := uc.Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if current.ID != second.ID {
		t.Error("Expected Current to return the latest snapshot")
	}
}

func TestRecords_Pagination(t *testing.T) {
	var recs []model.InventoryRecord
	for i := 0; i < 7; i++ {
		recs = append(recs, makeRecord("SKU-000"+string(rune('0'+i)), i*10, 1, 10, 20))
	}
	uc := NewRecordUseCase(&stubRepository{records: recs}, logger.NewNopLogger())
	if _, err := uc.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	testCases := []struct {
		name      string
		page      int
		pageSize  int
		wantCount int
	}{
		{"first page", 1, 3, 3},
		{"middle page", 2, 3, 3},
		{"last partial page", 3, 3, 1},
		{"page past end", 5, 3, 0},
		{"defaults applied", 0, 0, 7},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			page, total, err := uc.Records(context.Background(), tc.page, tc.pageSize)
			if err != nil {
				t.Fatalf("Records failed: %v", err)
			}
			if total != 7 {
				t.Errorf("Expected total 7, got %d", total)
			}
			if len(page) != tc.wantCount {
				t.Errorf("Expected %d records on page, got %d", tc.wantCount, len(page))
			}
		})
	}
}

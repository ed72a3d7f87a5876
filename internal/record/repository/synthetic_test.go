package repository

import (
	"context"
	"reflect"
	"testing"
)

func TestSyntheticRepository_Deterministic(t *testing.T) {
	first, err := NewSyntheticRepository(100, 42).FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	second, err := NewSyntheticRepository(100, 42).FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical datasets for the same seed")
	}

	other, err := NewSyntheticRepository(100, 7).FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if reflect.DeepEqual(first, other) {
		t.Error("Expected a different seed to produce a different dataset")
	}
}

func TestSyntheticRepository_RecordsAreValid(t *testing.T) {
	records, err := NewSyntheticRepository(500, 42).FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(records) != 500 {
		t.Fatalf("Expected 500 records, got %d", len(records))
	}

	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			t.Fatalf("synthetic record %s failed validation: %v", rec.SKU, err)
		}
		if rec.DaysSinceLastInvoice >= 730 {
			t.Errorf("synthetic days out of range: %d", rec.DaysSinceLastInvoice)
		}
		if seen[rec.SKU] {
			t.Errorf("duplicate SKU %s", rec.SKU)
		}
		seen[rec.SKU] = true
	}
}

func TestSyntheticRepository_DefaultCount(t *testing.T) {
	records, err := NewSyntheticRepository(0, 1).FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(records) != 500 {
		t.Errorf("Expected default of 500 records, got %d", len(records))
	}
}

package repository

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hierroycarbono/aging-report-service/internal/model"
)

// SyntheticRepository generates a deterministic demo dataset. A fixed seed
// always produces the same records, so the report is reproducible across runs
// without a hidden process-wide cache.
type SyntheticRepository struct {
	count int
	seed  int64
}

func NewSyntheticRepository(count int, seed int64) *SyntheticRepository {
	if count <= 0 {
		count = 500
	}
	return &SyntheticRepository{count: count, seed: seed}
}

var syntheticCustomers = []string{
	"Customer_A", "Customer_B", "Customer_C", "Customer_D", "Customer_E",
	"Customer_F", "Customer_G", "Customer_H", "Customer_I", "Customer_J",
}

func (r *SyntheticRepository) FindAll(ctx context.Context) ([]model.InventoryRecord, error) {
	rng := rand.New(rand.NewSource(r.seed))
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	records := make([]model.InventoryRecord, 0, r.count)
	for i := 0; i < r.count; i++ {
		cost := decimal.NewFromFloat(10 + rng.Float64()*490).Round(2)
		price := decimal.NewFromFloat(15 + rng.Float64()*735).Round(2)

		records = append(records, model.InventoryRecord{
			SKU:                  fmt.Sprintf("SKU-%04d", i),
			DaysSinceLastInvoice: rng.Intn(730),
			CurrentStock:         rng.Intn(500),
			UnitCost:             cost,
			UnitPrice:            price,
			MostRecentCustomer:   syntheticCustomers[rng.Intn(len(syntheticCustomers))],
			LastPurchaseDate:     base.AddDate(0, 0, rng.Intn(730)),
		})
	}
	return records, nil
}

func (r *SyntheticRepository) Kind() string {
	return "synthetic"
}

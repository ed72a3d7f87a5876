package record

import (
	"context"

	"github.com/hierroycarbono/aging-report-service/internal/model"
)

// Repository is the inventory record store behind a session. Implementations
// exist for Postgres, CSV files and a deterministic synthetic generator.
type Repository interface {
	// FindAll returns every record the store currently holds.
	FindAll(ctx context.Context) ([]model.InventoryRecord, error)

	// Kind names the store flavor for snapshot metadata ("postgres", "csv", "synthetic").
	Kind() string
}

package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hierroycarbono/aging-report-service/internal/model"
)

// PGRepository reads the inventory_records table. The table is maintained by
// the upstream ERP export; this service never writes to it.
type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.InventoryRecord, error) {
	query := `
        SELECT sku, days_since_last_invoice, current_stock,
               unit_cost, unit_price, most_recent_customer, last_purchase_date
        FROM inventory_records
        ORDER BY sku
    `
	var records []model.InventoryRecord
	if err := r.DB.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to query inventory records: %w", err)
	}
	return records, nil
}

func (r *PGRepository) Kind() string {
	return "postgres"
}

package record

import (
	"context"
	"errors"

	"github.com/hierroycarbono/aging-report-service/internal/model"
)

// ErrNoSnapshot is returned before the first successful load.
var ErrNoSnapshot = errors.New("no inventory snapshot loaded")

type UseCase interface {
	// Load pulls all records from the store, drops invalid ones, and installs
	// the result as the current session snapshot. Called once at startup and
	// again on explicit reloads.
	Load(ctx context.Context) (*model.Snapshot, error)

	// Current returns the live snapshot, or ErrNoSnapshot.
	Current() (*model.Snapshot, error)

	// Records pages through the current snapshot and returns the page plus the
	// total record count.
	Records(ctx context.Context, page, pageSize int) ([]model.InventoryRecord, int, error)
}

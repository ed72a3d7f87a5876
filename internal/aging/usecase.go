package aging

import (
	"context"

	"github.com/hierroycarbono/aging-report-service/internal/aging/dto"
)

// UseCase is the aging report core: bucket distribution for the chart,
// selection-driven drill-down for the detail view, and the idle/detail
// interaction state in between.
type UseCase interface {
	// Distribution classifies every record in the current snapshot and returns
	// one row per bucket in fixed catalog order.
	Distribution(ctx context.Context) (*dto.Distribution, error)

	// Detail computes the drill-down for a category label without touching the
	// selection state. Unknown labels and empty buckets yield a no-data result,
	// never an error.
	Detail(ctx context.Context, categoryLabel string) (*dto.DetailResult, error)

	// Select records a selection event and returns the resulting detail.
	Select(ctx context.Context, categoryLabel string) (*dto.DetailResult, error)

	// ClearSelection returns the view to the idle state.
	ClearSelection()

	// View renders the current interaction state: an idle prompt when nothing
	// is selected, otherwise the detail for the selected category.
	View(ctx context.Context) (*dto.ViewState, error)
}

package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hierroycarbono/aging-report-service/internal/aging"
	"github.com/hierroycarbono/aging-report-service/internal/aging/dto"
	"github.com/hierroycarbono/aging-report-service/internal/model"
	"github.com/hierroycarbono/aging-report-service/internal/record"
	"github.com/hierroycarbono/aging-report-service/pkg/cache"
	"github.com/hierroycarbono/aging-report-service/pkg/formatting"
	"github.com/hierroycarbono/aging-report-service/pkg/logger"
)

const (
	idlePrompt    = "Select a bar on the aging chart to break down SKUs, profit and stock."
	noDataMessage = "No data for this selection."

	criticalInsight = "Commercial action required: these SKUs show no rotation. Consider liquidation or return-to-vendor to free up cash flow."
	optimalInsight  = "Healthy rotation. Review that reorder points are up to date."
)

// Options are the report toggles resolved from config.
type Options struct {
	// IncludeZeroCounts emits empty buckets with count 0 instead of omitting them.
	IncludeZeroCounts bool
	// ClearSelectionOnReload drops the active drill-down when a new snapshot
	// replaces the one it was made against.
	ClearSelectionOnReload bool
	// CacheTTL bounds how long a cached distribution may outlive its snapshot.
	CacheTTL time.Duration
}

type agingUseCase struct {
	records record.UseCase
	cache   *cache.RedisClient // nil disables caching
	logger  logger.ZapLogger
	opts    Options

	mu                 sync.Mutex
	selectedLabel      string
	selectedSnapshotID string
}

func NewAgingUseCase(records record.UseCase, cache *cache.RedisClient, log logger.ZapLogger, opts Options) aging.UseCase {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	return &agingUseCase{
		records: records,
		cache:   cache,
		logger:  log,
		opts:    opts,
	}
}

func (uc *agingUseCase) Distribution(ctx context.Context) (*dto.Distribution, error) {
	snap, err := uc.records.Current()
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("aging:distribution:%s:zero=%t", snap.ID, uc.opts.IncludeZeroCounts)
	if uc.cache != nil {
		if val, err := uc.cache.Client.Get(ctx, cacheKey).Result(); err == nil {
			var dist dto.Distribution
			if err := json.Unmarshal([]byte(val), &dist); err == nil {
				return &dist, nil
			}
		}
	}

	counts := make(map[string]int, len(model.Categories()))
	for _, rec := range snap.Records {
		cat, err := model.ClassifyDays(rec.DaysSinceLastInvoice)
		if err != nil {
			// Ingestion guarantees non-negative days; log and skip if it ever leaks through.
			uc.logger.Warn("unclassifiable record in snapshot",
				zap.String("sku", rec.SKU),
				zap.Error(err),
			)
			continue
		}
		counts[cat.Label]++
	}

	rows := make([]dto.CategoryCount, 0, len(model.Categories()))
	for _, cat := range model.Categories() {
		n := counts[cat.Label]
		if n == 0 && !uc.opts.IncludeZeroCounts {
			continue
		}
		rows = append(rows, dto.CategoryCount{
			Category: cat.Label,
			Tier:     string(cat.Tier),
			Color:    cat.Color,
			Count:    n,
		})
	}

	dist := &dto.Distribution{
		SnapshotID: snap.ID,
		Rows:       rows,
		TotalSKUs:  len(snap.Records),
	}

	if uc.cache != nil {
		if data, err := json.Marshal(dist); err == nil {
			uc.cache.Client.Set(ctx, cacheKey, data, uc.opts.CacheTTL)
		}
	}
	return dist, nil
}

func (uc *agingUseCase) Detail(ctx context.Context, categoryLabel string) (*dto.DetailResult, error) {
	snap, err := uc.records.Current()
	if err != nil {
		return nil, err
	}
	return buildDetail(snap, categoryLabel), nil
}

func (uc *agingUseCase) Select(ctx context.Context, categoryLabel string) (*dto.DetailResult, error) {
	snap, err := uc.records.Current()
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	uc.selectedLabel = categoryLabel
	uc.selectedSnapshotID = snap.ID
	uc.mu.Unlock()

	return buildDetail(snap, categoryLabel), nil
}

func (uc *agingUseCase) ClearSelection() {
	uc.mu.Lock()
	uc.selectedLabel = ""
	uc.selectedSnapshotID = ""
	uc.mu.Unlock()
}

func (uc *agingUseCase) View(ctx context.Context) (*dto.ViewState, error) {
	snap, err := uc.records.Current()
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	if uc.selectedLabel != "" && uc.selectedSnapshotID != snap.ID {
		if uc.opts.ClearSelectionOnReload {
			uc.selectedLabel = ""
			uc.selectedSnapshotID = ""
		} else {
			// Carry the selection over to the new snapshot.
			uc.selectedSnapshotID = snap.ID
		}
	}
	label := uc.selectedLabel
	uc.mu.Unlock()

	if label == "" {
		return &dto.ViewState{State: "idle", Prompt: idlePrompt}, nil
	}
	return &dto.ViewState{State: "detail", Detail: buildDetail(snap, label)}, nil
}

// buildDetail computes the drill-down for one category against one snapshot.
// Pure function of its inputs; empty and unknown selections take the no-data
// path so metrics are never computed over an empty set.
func buildDetail(snap *model.Snapshot, categoryLabel string) *dto.DetailResult {
	cat, known := model.CategoryByLabel(categoryLabel)
	if !known {
		return noDataResult(categoryLabel, "")
	}

	var matching []model.InventoryRecord
	for _, rec := range snap.Records {
		if cat.Contains(rec.DaysSinceLastInvoice) {
			matching = append(matching, rec)
		}
	}
	if len(matching) == 0 {
		return noDataResult(cat.Label, string(cat.Tier))
	}

	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].DaysSinceLastInvoice > matching[j].DaysSinceLastInvoice
	})

	totalInvestment := decimal.Zero
	marginSum := decimal.Zero
	marginCount := 0
	rows := make([]dto.DetailRow, len(matching))
	for i, rec := range matching {
		rows[i] = dto.NewDetailRow(rec)
		totalInvestment = totalInvestment.Add(rec.StockInvestment())
		if margin, ok := rec.ProfitMarginPct(); ok {
			marginSum = marginSum.Add(margin)
			marginCount++
		}
	}

	result := &dto.DetailResult{
		Category:               cat.Label,
		Tier:                   string(cat.Tier),
		HasData:                true,
		SKUCount:               len(matching),
		TotalInvestment:        totalInvestment,
		TotalInvestmentDisplay: formatting.Currency(totalInvestment),
		Rows:                   rows,
		Insight:                insightForTier(cat.Tier),
	}

	if marginCount > 0 {
		avg := marginSum.Div(decimal.NewFromInt(int64(marginCount))).Round(2)
		result.AverageMarginPct = &avg
		result.AverageMarginDisplay = formatting.Percent(avg)
	}
	return result
}

func noDataResult(label, tier string) *dto.DetailResult {
	return &dto.DetailResult{
		Category: label,
		Tier:     tier,
		HasData:  false,
		Rows:     []dto.DetailRow{},
		Message:  noDataMessage,
	}
}

func insightForTier(tier model.Tier) *dto.Insight {
	switch tier {
	case model.TierCritical:
		return &dto.Insight{Level: "warning", Message: criticalInsight}
	case model.TierOptimal:
		return &dto.Insight{Level: "success", Message: optimalInsight}
	default:
		return nil
	}
}

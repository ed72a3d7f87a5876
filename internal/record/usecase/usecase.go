package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hierroycarbono/aging-report-service/internal/model"
	"github.com/hierroycarbono/aging-report-service/internal/record"
	"github.com/hierroycarbono/aging-report-service/pkg/logger"
)

const defaultPageSize = 50

type recordUseCase struct {
	repo   record.Repository
	logger logger.ZapLogger

	mu   sync.RWMutex
	snap *model.Snapshot
}

func NewRecordUseCase(repo record.Repository, log logger.ZapLogger) record.UseCase {
	return &recordUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *recordUseCase) Load(ctx context.Context) (*model.Snapshot, error) {
	records, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load inventory records: %w", err)
	}

	valid := make([]model.InventoryRecord, 0, len(records))
	rejected := 0
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			rejected++
			uc.logger.Warn("rejecting invalid inventory record",
				zap.String("sku", rec.SKU),
				zap.Error(err),
			)
			continue
		}
		valid = append(valid, rec)
	}

	snap := &model.Snapshot{
		ID:            uuid.New().String(),
		Source:        uc.repo.Kind(),
		LoadedAt:      time.Now(),
		Records:       valid,
		RejectedCount: rejected,
	}

	uc.mu.Lock()
	uc.snap = snap
	uc.mu.Unlock()

	uc.logger.Info("inventory snapshot loaded",
		zap.String("snapshot_id", snap.ID),
		zap.String("source", snap.Source),
		zap.Int("records", len(valid)),
		zap.Int("rejected", rejected),
	)
	return snap, nil
}

func (uc *recordUseCase) Current() (*model.Snapshot, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.snap == nil {
		return nil, record.ErrNoSnapshot
	}
	return uc.snap, nil
}

func (uc *recordUseCase) Records(ctx context.Context, page, pageSize int) ([]model.InventoryRecord, int, error) {
	snap, err := uc.Current()
	if err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	total := len(snap.Records)
	start := (page - 1) * pageSize
	if start >= total {
		return []model.InventoryRecord{}, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return snap.Records[start:end], total, nil
}

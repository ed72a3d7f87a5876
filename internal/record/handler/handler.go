package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hierroycarbono/aging-report-service/internal/record"
	"github.com/hierroycarbono/aging-report-service/internal/record/dto"
	"github.com/hierroycarbono/aging-report-service/pkg/logger"
)

type RecordHandler struct {
	uc     record.UseCase
	logger logger.ZapLogger
}

func NewRecordHandler(uc record.UseCase, log logger.ZapLogger) *RecordHandler {
	return &RecordHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *RecordHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/inventory/records", h.ListRecords)
	rg.GET("/inventory/snapshot", h.GetSnapshot)
	rg.POST("/inventory/reload", h.Reload)
}

// ListRecords returns one page of the session snapshot with derived columns.
// GET /v1/inventory/records?page=1&page_size=50
func (h *RecordHandler) ListRecords(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	records, total, err := h.uc.Records(c.Request.Context(), page, pageSize)
	if err != nil {
		h.respondError(c, err)
		return
	}

	rows := make([]dto.RecordRow, len(records))
	for i, rec := range records {
		rows[i] = dto.NewRecordRow(rec)
	}

	c.JSON(http.StatusOK, gin.H{
		"items": rows,
		"total": total,
		"page":  page,
	})
}

// GetSnapshot returns metadata about the current session snapshot.
// GET /v1/inventory/snapshot
func (h *RecordHandler) GetSnapshot(c *gin.Context) {
	snap, err := h.uc.Current()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSnapshotMeta(snap))
}

// Reload replaces the session snapshot with a fresh load from the store.
// POST /v1/inventory/reload
func (h *RecordHandler) Reload(c *gin.Context) {
	snap, err := h.uc.Load(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to reload inventory snapshot", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload inventory"})
		return
	}
	c.JSON(http.StatusOK, dto.NewSnapshotMeta(snap))
}

func (h *RecordHandler) respondError(c *gin.Context, err error) {
	if err == record.ErrNoSnapshot {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Inventory not loaded yet"})
		return
	}
	h.logger.Error("inventory request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
}

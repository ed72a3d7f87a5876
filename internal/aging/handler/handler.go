package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hierroycarbono/aging-report-service/internal/aging"
	"github.com/hierroycarbono/aging-report-service/internal/aging/dto"
	"github.com/hierroycarbono/aging-report-service/internal/record"
	"github.com/hierroycarbono/aging-report-service/pkg/logger"
)

type AgingHandler struct {
	uc     aging.UseCase
	logger logger.ZapLogger
}

func NewAgingHandler(uc aging.UseCase, log logger.ZapLogger) *AgingHandler {
	return &AgingHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *AgingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/aging/distribution", h.GetDistribution)
	rg.GET("/aging/detail", h.GetDetail)
	rg.GET("/aging/view", h.GetView)
	rg.POST("/aging/selection", h.Select)
	rg.DELETE("/aging/selection", h.ClearSelection)
}

// GetDistribution returns the ordered bucket counts for the chart.
// GET /v1/aging/distribution
func (h *AgingHandler) GetDistribution(c *gin.Context) {
	dist, err := h.uc.Distribution(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dist)
}

// GetDetail computes a drill-down without changing the selection state.
// GET /v1/aging/detail?category=...
func (h *AgingHandler) GetDetail(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'category' query parameter"})
		return
	}

	detail, err := h.uc.Detail(c.Request.Context(), category)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Select handles a chart selection event and returns the resulting detail.
// POST /v1/aging/selection
func (h *AgingHandler) Select(c *gin.Context) {
	var event dto.SelectionEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Selection event must carry a category"})
		return
	}

	detail, err := h.uc.Select(c.Request.Context(), event.Category)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ClearSelection returns the view to the idle state.
// DELETE /v1/aging/selection
func (h *AgingHandler) ClearSelection(c *gin.Context) {
	h.uc.ClearSelection()
	c.Status(http.StatusNoContent)
}

// GetView renders the current interaction state.
// GET /v1/aging/view
func (h *AgingHandler) GetView(c *gin.Context) {
	view, err := h.uc.View(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AgingHandler) respondError(c *gin.Context, err error) {
	if err == record.ErrNoSnapshot {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Inventory not loaded yet"})
		return
	}
	h.logger.Error("aging report request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
}

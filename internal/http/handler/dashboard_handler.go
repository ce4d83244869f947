package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/meubelwerk/offerte-api/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetMetrics godoc
// @Summary Get dashboard metrics
// @Description Get the overview tiles: quote value by status, margin health against the target, open order-list count
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} domain.DashboardMetricsDTO
// @Failure 500 {object} domain.APIError
// @Router /dashboard [get]
func (h *DashboardHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.dashboardService.GetMetrics(r.Context())
	if err != nil {
		h.logger.Error("failed to compute dashboard metrics", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to compute dashboard metrics")
		return
	}

	respondJSON(w, http.StatusOK, metrics)
}

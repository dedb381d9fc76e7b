package http

import (
	"log/slog"
	"net/http"

	"github.com/nology-tech/employee-creator-go/internal/domain/dashboard"
	"github.com/nology-tech/employee-creator-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetStats implements DashboardHandler.
func (h *DashboardHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetStats(r.Context())
	if err != nil {
		slog.Error("Failed to compute dashboard stats", "error", err)
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, stats)
}

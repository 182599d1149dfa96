package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/jamil/mission-control-api/internal/errors"
	"github.com/jamil/mission-control-api/internal/logger"
	"github.com/jamil/mission-control-api/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
	log              *logger.Logger
}

func NewDashboardHandler(dashboardService *services.DashboardService, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		log:              log,
	}
}

// GetData returns all five collections in one response. This doubles as the
// full data dump; there is nothing else to export.
func (h *DashboardHandler) GetData(c *gin.Context) {
	data, err := h.dashboardService.Snapshot()
	if err != nil {
		h.log.Errorw("failed to load dashboard data", "error", err)
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, data)
}

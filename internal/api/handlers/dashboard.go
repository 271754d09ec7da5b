package handlers

import (
	"net/http"

	"sales-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles HTTP requests for the dashboard aggregate
type DashboardHandler struct {
	dashboardService service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard handles GET /dashboard
// @Summary Get the dashboard aggregate
// @Description Get per-status counts, pipeline and won values, upcoming follow-ups and recent enquiries in one call
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} service.DashboardResponse "Successfully retrieved dashboard"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	resp, err := h.dashboardService.GetDashboard()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

package handler

import (
	"context"
	"net/http"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
	"github.com/gdugdh24/healthlog-backend/internal/usecase/dashboard"
	"github.com/gin-gonic/gin"
)

type DashboardService interface {
	GetDashboard(ctx context.Context, userID int) (*dashboard.DashboardResponse, error)
}

type DashboardHandler struct {
	dashboardService DashboardService
}

func NewDashboardHandler(dashboardService DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard handles GET /dashboard
// @Summary Dashboard summary
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dashboard.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := h.dashboardService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTips handles GET /tips
// @Summary Wellness tips
// @Tags tips
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.WellnessTip
// @Router /tips [get]
func (h *DashboardHandler) GetTips(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tips": domain.WellnessTips(),
	})
}

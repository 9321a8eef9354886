package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/lifefin_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
}

// RegisterDashboardRoutes registers the merchant home screen.
func RegisterDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc) {
	h := &dashboardHandler{dashboardService: dashboardService}
	rg.GET("/dashboard", h.getDashboard)
}

// RegisterAdminDashboardRoutes registers the admin home screen on an admin-only group.
func RegisterAdminDashboardRoutes(admin *gin.RouterGroup, dashboardService portssvc.DashboardSvc) {
	h := &dashboardHandler{dashboardService: dashboardService}
	admin.GET("/dashboard", h.getAdminDashboard)
}

// getDashboard godoc
// @Summary Merchant dashboard
// @Description Totals, savings, current score, loan ceiling and income of the last 7 booked dates
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DashboardSummary
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	summary, err := h.dashboardService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getAdminDashboard godoc
// @Summary Admin dashboard
// @Tags admin
// @Produce json
// @Success 200 {object} domain.AdminDashboard
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (h *dashboardHandler) getAdminDashboard(c *gin.Context) {
	summary, err := h.dashboardService.GetAdminDashboard(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to build admin dashboard")
		return
	}
	c.JSON(http.StatusOK, summary)
}

package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/workshop_manager_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_manager_app/internal/dto"
	"github.com/SscSPs/workshop_manager_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the dashboard and the service history.
type reportingHandler struct {
	dashboardService portssvc.DashboardSvc
	historyService   portssvc.HistorySvc
}

func registerReportingRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc, historyService portssvc.HistorySvc) {
	h := &reportingHandler{dashboardService: dashboardService, historyService: historyService}

	rg.GET("/dashboard", h.getDashboard)
	rg.GET("/service-history", h.getServiceHistory)
}

// getDashboard godoc
// @Summary Current period dashboard
// @Description Active services, revenue, expenses, profit, withdrawals per party, party names and today's appointments
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load dashboard"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	view, err := h.dashboardService.GetDashboard(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(*view))
}

// getServiceHistory godoc
// @Summary Lifetime service history
// @Description Totals over every service and expense regardless of status, with a per-status count
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.HistoryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load service history"
// @Security BearerAuth
// @Router /service-history [get]
func (h *reportingHandler) getServiceHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	view, err := h.historyService.GetHistory(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to load service history")
		return
	}
	c.JSON(http.StatusOK, dto.ToHistoryResponse(*view))
}

package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/workshop_manager_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_manager_app/internal/dto"
	"github.com/SscSPs/workshop_manager_app/internal/middleware"
	"github.com/SscSPs/workshop_manager_app/internal/utils/export"
	"github.com/gin-gonic/gin"
)

// closedPeriodsFilename is the download name of the export. Owner IDs stay out of response headers.
const closedPeriodsFilename = "closed-periods.xlsx"

type periodHandler struct {
	periodService portssvc.PeriodSvcFacade
}

func registerPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvcFacade) {
	h := &periodHandler{periodService: periodService}

	periods := rg.Group("/periods")
	{
		periods.POST("/close", h.closePeriod)
		periods.GET("", h.listClosedPeriods)
		periods.GET("/export", h.exportClosedPeriods)
		periods.GET("/:periodID", h.getClosedPeriod)
	}
}

// closePeriod godoc
// @Summary Close the current period
// @Description Snapshots active services and expenses, then marks them completed and closed. Either everything is applied or nothing is.
// @Tags periods
// @Produce json
// @Success 200 {object} dto.ClosedPeriodResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "A close is already in progress"
// @Failure 500 {object} map[string]string "Failed to close period"
// @Security BearerAuth
// @Router /periods/close [post]
func (h *periodHandler) closePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	period, err := h.periodService.ClosePeriod(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to close period")
		return
	}

	logger.Info("Period closed", slog.String("period_id", period.ID), slog.Int("total_services", period.TotalServices))
	c.JSON(http.StatusOK, dto.ToClosedPeriodResponse(*period))
}

// listClosedPeriods godoc
// @Summary List closed periods
// @Description Newest first, paginated with an opaque nextToken
// @Tags periods
// @Produce json
// @Param limit query int false "Page size (1-100, default 20)"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListClosedPeriodsResponse
// @Failure 400 {object} map[string]string "Invalid pagination parameters"
// @Failure 500 {object} map[string]string "Failed to list closed periods"
// @Security BearerAuth
// @Router /periods [get]
func (h *periodHandler) listClosedPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	var params dto.ListClosedPeriodsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.periodService.ListClosedPeriods(c.Request.Context(), ownerID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list closed periods")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getClosedPeriod godoc
// @Summary Get a closed period
// @Tags periods
// @Produce json
// @Param periodID path string true "Closed period ID"
// @Success 200 {object} dto.ClosedPeriodResponse
// @Failure 404 {object} map[string]string "Closed period not found"
// @Failure 500 {object} map[string]string "Failed to get closed period"
// @Security BearerAuth
// @Router /periods/{periodID} [get]
func (h *periodHandler) getClosedPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	period, err := h.periodService.GetClosedPeriod(c.Request.Context(), ownerID, c.Param("periodID"))
	if err != nil {
		respondError(c, logger, err, "Failed to get closed period")
		return
	}
	c.JSON(http.StatusOK, dto.ToClosedPeriodResponse(*period))
}

// exportClosedPeriods godoc
// @Summary Export closed periods
// @Description Every closed period of the owner as an XLSX workbook
// @Tags periods
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} map[string]string "Failed to export closed periods"
// @Security BearerAuth
// @Router /periods/export [get]
func (h *periodHandler) exportClosedPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	// Buffer the workbook so a failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := h.periodService.ExportClosedPeriods(c.Request.Context(), ownerID, &buf); err != nil {
		respondError(c, logger, err, "Failed to export closed periods")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, closedPeriodsFilename))
	c.Data(http.StatusOK, export.XLSXContentType, buf.Bytes())
}

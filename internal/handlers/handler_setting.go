package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/workshop_manager_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_manager_app/internal/dto"
	"github.com/SscSPs/workshop_manager_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type settingHandler struct {
	settingService portssvc.SettingSvcFacade
}

func registerSettingRoutes(rg *gin.RouterGroup, settingService portssvc.SettingSvcFacade) {
	h := &settingHandler{settingService: settingService}

	rg.GET("/party-names", h.getPartyNames)
	rg.PUT("/party-names", h.updatePartyNames)
}

// getPartyNames godoc
// @Summary Get party names
// @Tags settings
// @Produce json
// @Success 200 {object} dto.PartyNamesResponse
// @Failure 500 {object} map[string]string "Failed to load party names"
// @Security BearerAuth
// @Router /party-names [get]
func (h *settingHandler) getPartyNames(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	names, err := h.settingService.GetPartyNames(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to load party names")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyNamesResponse(names))
}

// updatePartyNames godoc
// @Summary Rename both parties
// @Tags settings
// @Accept json
// @Produce json
// @Param names body dto.UpdatePartyNamesRequest true "Party names"
// @Success 200 {object} dto.PartyNamesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to update party names"
// @Security BearerAuth
// @Router /party-names [put]
func (h *settingHandler) updatePartyNames(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePartyNamesRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	names, err := h.settingService.UpdatePartyNames(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update party names")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyNamesResponse(names))
}

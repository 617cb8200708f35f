package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/workshop_manager_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_manager_app/internal/dto"
	"github.com/SscSPs/workshop_manager_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type withdrawalHandler struct {
	withdrawalService portssvc.WithdrawalSvcFacade
}

func registerWithdrawalRoutes(rg *gin.RouterGroup, withdrawalService portssvc.WithdrawalSvcFacade) {
	h := &withdrawalHandler{withdrawalService: withdrawalService}

	withdrawals := rg.Group("/withdrawals")
	{
		withdrawals.GET("", h.listWithdrawals)
		withdrawals.POST("", h.createWithdrawal)
		withdrawals.DELETE("/:withdrawalID", h.deleteWithdrawal)
	}
}

// createWithdrawal godoc
// @Summary Record a withdrawal by one party
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param withdrawal body dto.CreateWithdrawalRequest true "Withdrawal details"
// @Success 201 {object} dto.WithdrawalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create withdrawal"
// @Security BearerAuth
// @Router /withdrawals [post]
func (h *withdrawalHandler) createWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	var req dto.CreateWithdrawalRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	withdrawal, err := h.withdrawalService.CreateWithdrawal(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create withdrawal")
		return
	}
	c.JSON(http.StatusCreated, dto.ToWithdrawalResponse(*withdrawal))
}

// listWithdrawals godoc
// @Summary List withdrawals
// @Tags withdrawals
// @Produce json
// @Success 200 {array} dto.WithdrawalResponse
// @Failure 500 {object} map[string]string "Failed to list withdrawals"
// @Security BearerAuth
// @Router /withdrawals [get]
func (h *withdrawalHandler) listWithdrawals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	withdrawals, err := h.withdrawalService.ListWithdrawals(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to list withdrawals")
		return
	}
	c.JSON(http.StatusOK, dto.ToListWithdrawalResponse(withdrawals))
}

// deleteWithdrawal godoc
// @Summary Delete a withdrawal
// @Tags withdrawals
// @Param withdrawalID path string true "Withdrawal ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Withdrawal not found"
// @Failure 500 {object} map[string]string "Failed to delete withdrawal"
// @Security BearerAuth
// @Router /withdrawals/{withdrawalID} [delete]
func (h *withdrawalHandler) deleteWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	if err := h.withdrawalService.DeleteWithdrawal(c.Request.Context(), ownerID, c.Param("withdrawalID")); err != nil {
		respondError(c, logger, err, "Failed to delete withdrawal")
		return
	}
	c.Status(http.StatusNoContent)
}

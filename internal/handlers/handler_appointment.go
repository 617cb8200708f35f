package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/workshop_manager_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_manager_app/internal/dto"
	"github.com/SscSPs/workshop_manager_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type appointmentHandler struct {
	appointmentService portssvc.AppointmentSvcFacade
}

func registerAppointmentRoutes(rg *gin.RouterGroup, appointmentService portssvc.AppointmentSvcFacade) {
	h := &appointmentHandler{appointmentService: appointmentService}

	appointments := rg.Group("/appointments")
	{
		appointments.GET("", h.listAppointments)
		appointments.POST("", h.createAppointment)
		appointments.DELETE("/:appointmentID", h.deleteAppointment)
	}
}

// createAppointment godoc
// @Summary Schedule an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body dto.CreateAppointmentRequest true "Appointment details"
// @Success 201 {object} dto.AppointmentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create appointment"
// @Security BearerAuth
// @Router /appointments [post]
func (h *appointmentHandler) createAppointment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	var req dto.CreateAppointmentRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	appointment, err := h.appointmentService.CreateAppointment(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create appointment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAppointmentResponse(*appointment))
}

// listAppointments godoc
// @Summary List appointments
// @Description Ordered by date then time
// @Tags appointments
// @Produce json
// @Success 200 {array} dto.AppointmentResponse
// @Failure 500 {object} map[string]string "Failed to list appointments"
// @Security BearerAuth
// @Router /appointments [get]
func (h *appointmentHandler) listAppointments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	appointments, err := h.appointmentService.ListAppointments(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to list appointments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAppointmentResponse(appointments))
}

// deleteAppointment godoc
// @Summary Delete an appointment
// @Tags appointments
// @Param appointmentID path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Appointment not found"
// @Failure 500 {object} map[string]string "Failed to delete appointment"
// @Security BearerAuth
// @Router /appointments/{appointmentID} [delete]
func (h *appointmentHandler) deleteAppointment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	if err := h.appointmentService.DeleteAppointment(c.Request.Context(), ownerID, c.Param("appointmentID")); err != nil {
		respondError(c, logger, err, "Failed to delete appointment")
		return
	}
	c.Status(http.StatusNoContent)
}

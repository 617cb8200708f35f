package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/workshop_manager_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_manager_app/internal/dto"
	"github.com/SscSPs/workshop_manager_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// serviceRecordHandler handles HTTP requests for workshop services.
type serviceRecordHandler struct {
	serviceRecordService portssvc.ServiceRecordSvcFacade
}

// registerServiceRoutes registers routes related to services
func registerServiceRoutes(rg *gin.RouterGroup, serviceRecordService portssvc.ServiceRecordSvcFacade) {
	h := &serviceRecordHandler{serviceRecordService: serviceRecordService}

	services := rg.Group("/services")
	{
		services.GET("", h.listServices)
		services.POST("", h.createService)
		services.GET("/:serviceID", h.getService)
		services.PATCH("/:serviceID", h.updateService)
		services.DELETE("/:serviceID", h.deleteService)
		services.POST("/:serviceID/cancel", h.cancelService)
	}
}

// createService godoc
// @Summary Register a service
// @Description Creates an active service in the current period
// @Tags services
// @Accept json
// @Produce json
// @Param service body dto.CreateServiceRequest true "Service details"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create service"
// @Security BearerAuth
// @Router /services [post]
func (h *serviceRecordHandler) createService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	var req dto.CreateServiceRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	service, err := h.serviceRecordService.CreateService(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create service")
		return
	}

	logger.Info("Service created", slog.String("service_id", service.ID))
	c.JSON(http.StatusCreated, dto.ToServiceResponse(*service))
}

// listServices godoc
// @Summary List services
// @Description Lists active services by default. Pass status=all for every service or a status name to filter.
// @Tags services
// @Produce json
// @Param status query string false "active (default), completed, cancelled or all"
// @Success 200 {array} dto.ServiceResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 500 {object} map[string]string "Failed to list services"
// @Security BearerAuth
// @Router /services [get]
func (h *serviceRecordHandler) listServices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	var params dto.ListServicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	services, err := h.serviceRecordService.ListServices(c.Request.Context(), ownerID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list services")
		return
	}
	c.JSON(http.StatusOK, dto.ToListServiceResponse(services))
}

// getService godoc
// @Summary Get a service
// @Tags services
// @Produce json
// @Param serviceID path string true "Service ID"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} map[string]string "Service not found"
// @Failure 500 {object} map[string]string "Failed to get service"
// @Security BearerAuth
// @Router /services/{serviceID} [get]
func (h *serviceRecordHandler) getService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	service, err := h.serviceRecordService.GetService(c.Request.Context(), ownerID, c.Param("serviceID"))
	if err != nil {
		respondError(c, logger, err, "Failed to get service")
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceResponse(*service))
}

// updateService godoc
// @Summary Edit an active service
// @Description Only active services can be edited. Omitted fields are left unchanged.
// @Tags services
// @Accept json
// @Produce json
// @Param serviceID path string true "Service ID"
// @Param service body dto.UpdateServiceRequest true "Fields to change"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Service not found"
// @Failure 409 {object} map[string]string "Service is not active"
// @Failure 500 {object} map[string]string "Failed to update service"
// @Security BearerAuth
// @Router /services/{serviceID} [patch]
func (h *serviceRecordHandler) updateService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	service, err := h.serviceRecordService.UpdateService(c.Request.Context(), ownerID, c.Param("serviceID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update service")
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceResponse(*service))
}

// cancelService godoc
// @Summary Cancel an active service
// @Tags services
// @Produce json
// @Param serviceID path string true "Service ID"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} map[string]string "Active service not found"
// @Failure 500 {object} map[string]string "Failed to cancel service"
// @Security BearerAuth
// @Router /services/{serviceID}/cancel [post]
func (h *serviceRecordHandler) cancelService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	service, err := h.serviceRecordService.CancelService(c.Request.Context(), ownerID, c.Param("serviceID"))
	if err != nil {
		respondError(c, logger, err, "Failed to cancel service")
		return
	}

	logger.Info("Service cancelled", slog.String("service_id", service.ID))
	c.JSON(http.StatusOK, dto.ToServiceResponse(*service))
}

// deleteService godoc
// @Summary Delete an active service
// @Tags services
// @Param serviceID path string true "Service ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Active service not found"
// @Failure 500 {object} map[string]string "Failed to delete service"
// @Security BearerAuth
// @Router /services/{serviceID} [delete]
func (h *serviceRecordHandler) deleteService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c, logger)
	if !ok {
		return
	}

	if err := h.serviceRecordService.DeleteService(c.Request.Context(), ownerID, c.Param("serviceID")); err != nil {
		respondError(c, logger, err, "Failed to delete service")
		return
	}
	c.Status(http.StatusNoContent)
}

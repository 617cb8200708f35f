package dto

import (
	"time"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateServiceRequest defines the data needed to register a new service.
type CreateServiceRequest struct {
	Description string          `json:"description" binding:"required" validate:"required,max=500"`
	Vehicle     string          `json:"vehicle" validate:"max=200"`
	Price       decimal.Decimal `json:"price" validate:"gt=0,money"`
}

// UpdateServiceRequest carries the editable fields of an active service. Nil fields are left untouched.
type UpdateServiceRequest struct {
	Description *string          `json:"description" validate:"omitempty,min=1,max=500"`
	Vehicle     *string          `json:"vehicle" validate:"omitempty,max=200"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,gt=0,money"`
}

// ListServicesParams filters the service list. An empty status lists active services; "all" lists every status.
type ListServicesParams struct {
	Status string `form:"status"`
}

// ServiceResponse defines the data returned for a service.
type ServiceResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Vehicle     string          `json:"vehicle"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToServiceResponse converts a domain.ServiceRecord to its DTO
func ToServiceResponse(s domain.ServiceRecord) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Description: s.Description,
		Vehicle:     s.Vehicle,
		Price:       s.Price,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt,
	}
}

// ToListServiceResponse converts a slice of services, never returning nil.
func ToListServiceResponse(services []domain.ServiceRecord) []ServiceResponse {
	res := make([]ServiceResponse, len(services))
	for i, s := range services {
		res[i] = ToServiceResponse(s)
	}
	return res
}

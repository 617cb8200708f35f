package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/workshop_manager_app/internal/apperrors"
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workshop_manager_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_manager_app/internal/dto"
	"github.com/SscSPs/workshop_manager_app/internal/utils/validation"
	"github.com/google/uuid"
)

// listAllStatuses is the ListServicesParams.Status value that disables the status filter.
const listAllStatuses = "all"

type serviceRecordService struct {
	BaseService
	serviceRepo portsrepo.ServiceRecordRepositoryFacade
}

func NewServiceRecordService(repo portsrepo.ServiceRecordRepositoryFacade) portssvc.ServiceRecordSvcFacade {
	return &serviceRecordService{serviceRepo: repo}
}

var _ portssvc.ServiceRecordSvcFacade = (*serviceRecordService)(nil)

func (s *serviceRecordService) GetService(ctx context.Context, ownerID, serviceID string) (*domain.ServiceRecord, error) {
	service, err := s.serviceRepo.FindServiceByID(ctx, ownerID, serviceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find service", slog.String("service_id", serviceID))
		return nil, err
	}
	return service, nil
}

func (s *serviceRecordService) ListServices(ctx context.Context, ownerID string, params dto.ListServicesParams) ([]domain.ServiceRecord, error) {
	var status *domain.ServiceStatus
	switch strings.ToLower(params.Status) {
	case "":
		active := domain.ServiceActive
		status = &active
	case listAllStatuses:
	default:
		requested := domain.ServiceStatus(strings.ToLower(params.Status))
		if !requested.IsValid() {
			return nil, apperrors.NewValidationError("status must be one of active, completed, cancelled, all")
		}
		status = &requested
	}

	services, err := s.serviceRepo.ListServices(ctx, ownerID, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list services", slog.String("owner_id", ownerID))
		return nil, err
	}
	return services, nil
}

func (s *serviceRecordService) CreateService(ctx context.Context, ownerID string, req dto.CreateServiceRequest) (*domain.ServiceRecord, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	service := domain.ServiceRecord{
		ID:          uuid.NewString(),
		Description: req.Description,
		Vehicle:     req.Vehicle,
		Price:       req.Price,
		Status:      domain.ServiceActive,
		Ownership:   domain.Ownership{OwnerID: ownerID, CreatedAt: s.Now()},
	}
	if err := s.serviceRepo.SaveService(ctx, service); err != nil {
		s.LogError(ctx, err, "Failed to save service", slog.String("owner_id", ownerID))
		return nil, err
	}

	s.LogInfo(ctx, "Service created", slog.String("service_id", service.ID))
	return &service, nil
}

// UpdateService edits an active service. Completed and cancelled services are frozen.
func (s *serviceRecordService) UpdateService(ctx context.Context, ownerID, serviceID string, req dto.UpdateServiceRequest) (*domain.ServiceRecord, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	service, err := s.serviceRepo.FindServiceByID(ctx, ownerID, serviceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find service for update", slog.String("service_id", serviceID))
		return nil, err
	}
	if !service.IsEditable() {
		return nil, apperrors.NewConflictError("only active services can be edited", nil)
	}

	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Vehicle != nil {
		service.Vehicle = *req.Vehicle
	}
	if req.Price != nil {
		service.Price = *req.Price
	}

	// The store re-checks the status so a close racing with this edit wins.
	if err := s.serviceRepo.UpdateActiveService(ctx, *service); err != nil {
		s.LogError(ctx, err, "Failed to update service", slog.String("service_id", serviceID))
		return nil, err
	}
	return service, nil
}

func (s *serviceRecordService) CancelService(ctx context.Context, ownerID, serviceID string) (*domain.ServiceRecord, error) {
	if err := s.serviceRepo.TransitionService(ctx, ownerID, serviceID, domain.ServiceActive, domain.ServiceCancelled); err != nil {
		s.LogError(ctx, err, "Failed to cancel service", slog.String("service_id", serviceID))
		return nil, err
	}
	s.LogInfo(ctx, "Service cancelled", slog.String("service_id", serviceID))
	return s.GetService(ctx, ownerID, serviceID)
}

func (s *serviceRecordService) DeleteService(ctx context.Context, ownerID, serviceID string) error {
	if err := s.serviceRepo.DeleteActiveService(ctx, ownerID, serviceID); err != nil {
		s.LogError(ctx, err, "Failed to delete service", slog.String("service_id", serviceID))
		return err
	}
	return nil
}

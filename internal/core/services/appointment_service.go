package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/workshop_manager_app/internal/apperrors"
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workshop_manager_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_manager_app/internal/dto"
	"github.com/SscSPs/workshop_manager_app/internal/utils/validation"
	"github.com/google/uuid"
)

type appointmentService struct {
	BaseService
	appointmentRepo portsrepo.AppointmentRepositoryFacade
}

func NewAppointmentService(repo portsrepo.AppointmentRepositoryFacade) portssvc.AppointmentSvcFacade {
	return &appointmentService{appointmentRepo: repo}
}

var _ portssvc.AppointmentSvcFacade = (*appointmentService)(nil)

func (s *appointmentService) CreateAppointment(ctx context.Context, ownerID string, req dto.CreateAppointmentRequest) (*domain.Appointment, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be YYYY-MM-DD")
	}

	appointment := domain.Appointment{
		ID:                 uuid.NewString(),
		Date:               date,
		Time:               req.Time,
		Client:             req.Client,
		ServiceDescription: req.ServiceDescription,
		Ownership:          domain.Ownership{OwnerID: ownerID, CreatedAt: s.Now()},
	}
	if err := s.appointmentRepo.SaveAppointment(ctx, appointment); err != nil {
		s.LogError(ctx, err, "Failed to save appointment", slog.String("owner_id", ownerID))
		return nil, err
	}
	return &appointment, nil
}

func (s *appointmentService) ListAppointments(ctx context.Context, ownerID string) ([]domain.Appointment, error) {
	appointments, err := s.appointmentRepo.ListAppointments(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list appointments", slog.String("owner_id", ownerID))
		return nil, err
	}
	return appointments, nil
}

func (s *appointmentService) DeleteAppointment(ctx context.Context, ownerID, appointmentID string) error {
	if err := s.appointmentRepo.DeleteAppointment(ctx, ownerID, appointmentID); err != nil {
		s.LogError(ctx, err, "Failed to delete appointment", slog.String("appointment_id", appointmentID))
		return err
	}
	return nil
}

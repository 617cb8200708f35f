package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
)

// AppointmentRepositoryFacade covers the create/list/delete lifecycle of appointments.
type AppointmentRepositoryFacade interface {
	SaveAppointment(ctx context.Context, appointment domain.Appointment) error

	// ListAppointments returns appointments by date then time, newest first.
	ListAppointments(ctx context.Context, ownerID string) ([]domain.Appointment, error)

	// ListAppointmentsByDate returns the appointments of one calendar day ordered by time ascending.
	ListAppointmentsByDate(ctx context.Context, ownerID string, date time.Time) ([]domain.Appointment, error)

	DeleteAppointment(ctx context.Context, ownerID, appointmentID string) error
}

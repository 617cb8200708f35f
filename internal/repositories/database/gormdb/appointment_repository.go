package gormdb

import (
	"context"
	"time"

	"github.com/SscSPs/workshop_manager_app/internal/apperrors"
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	"github.com/SscSPs/workshop_manager_app/internal/models"
	"github.com/SscSPs/workshop_manager_app/internal/utils/mapping"
	"gorm.io/gorm"
)

type GormAppointmentRepository struct {
	BaseRepository
}

func newGormAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.AppointmentRepositoryFacade = (*GormAppointmentRepository)(nil)

func (r *GormAppointmentRepository) SaveAppointment(ctx context.Context, appointment domain.Appointment) error {
	m := mapping.ToModelAppointment(appointment)
	if err := r.conn(ctx).Create(&m).Error; err != nil {
		return storageError("failed to insert appointment "+m.ID, err)
	}
	return nil
}

func (r *GormAppointmentRepository) ListAppointments(ctx context.Context, ownerID string) ([]domain.Appointment, error) {
	var rows []models.Appointment
	if err := r.conn(ctx).Scopes(ownedBy(ownerID)).Order("date DESC, time DESC").Find(&rows).Error; err != nil {
		return nil, storageError("failed to query appointments", err)
	}
	return mapping.ToDomainAppointmentSlice(rows), nil
}

func (r *GormAppointmentRepository) ListAppointmentsByDate(ctx context.Context, ownerID string, date time.Time) ([]domain.Appointment, error) {
	var rows []models.Appointment
	err := r.conn(ctx).Scopes(ownedBy(ownerID)).
		Where("date = ?", date.Format(domain.DateLayout)).
		Order("time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, storageError("failed to query appointments by date", err)
	}
	return mapping.ToDomainAppointmentSlice(rows), nil
}

func (r *GormAppointmentRepository) DeleteAppointment(ctx context.Context, ownerID, appointmentID string) error {
	res := r.conn(ctx).Scopes(ownedBy(ownerID)).Where("id = ?", appointmentID).Delete(&models.Appointment{})
	if res.Error != nil {
		return storageError("failed to delete appointment "+appointmentID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("appointment", appointmentID)
	}
	return nil
}

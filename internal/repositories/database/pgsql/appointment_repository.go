package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/workshop_manager_app/internal/apperrors"
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	"github.com/SscSPs/workshop_manager_app/internal/models"
	"github.com/SscSPs/workshop_manager_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const appointmentColumns = `id, owner_id, to_char(date, 'YYYY-MM-DD'), time, client, service_description, created_at`

type PgxAppointmentRepository struct {
	BaseRepository
}

func newPgxAppointmentRepository(pool *pgxpool.Pool) *PgxAppointmentRepository {
	return &PgxAppointmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AppointmentRepositoryFacade = (*PgxAppointmentRepository)(nil)

func (r *PgxAppointmentRepository) SaveAppointment(ctx context.Context, appointment domain.Appointment) error {
	m := mapping.ToModelAppointment(appointment)
	query := `
		INSERT INTO appointments (id, owner_id, date, time, client, service_description, created_at)
		VALUES ($1, $2, $3::date, $4, $5, $6, $7);
	`
	_, err := r.db().Exec(ctx, query, m.ID, m.OwnerID, m.Date, m.Time, m.Client, m.ServiceDescription, m.CreatedAt)
	if err != nil {
		return storageError("failed to insert appointment "+m.ID, err)
	}
	return nil
}

func (r *PgxAppointmentRepository) ListAppointments(ctx context.Context, ownerID string) ([]domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE owner_id = $1 ORDER BY date DESC, time DESC;`
	return r.queryAppointments(ctx, query, ownerID)
}

func (r *PgxAppointmentRepository) ListAppointmentsByDate(ctx context.Context, ownerID string, date time.Time) ([]domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE owner_id = $1 AND date = $2::date ORDER BY time ASC;`
	return r.queryAppointments(ctx, query, ownerID, date.Format(domain.DateLayout))
}

func (r *PgxAppointmentRepository) queryAppointments(ctx context.Context, query string, args ...any) ([]domain.Appointment, error) {
	rows, err := r.db().Query(ctx, query, args...)
	if err != nil {
		return nil, storageError("failed to query appointments", err)
	}
	defer rows.Close()

	modelAppointments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Appointment, error) {
		var m models.Appointment
		err := row.Scan(&m.ID, &m.OwnerID, &m.Date, &m.Time, &m.Client, &m.ServiceDescription, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, storageError("failed to scan appointments", err)
	}
	return mapping.ToDomainAppointmentSlice(modelAppointments), nil
}

func (r *PgxAppointmentRepository) DeleteAppointment(ctx context.Context, ownerID, appointmentID string) error {
	tag, err := r.db().Exec(ctx, `DELETE FROM appointments WHERE owner_id = $1 AND id = $2;`, ownerID, appointmentID)
	if err != nil {
		return storageError("failed to delete appointment "+appointmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("appointment", appointmentID)
	}
	return nil
}

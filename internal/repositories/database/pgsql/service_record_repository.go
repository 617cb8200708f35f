package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/workshop_manager_app/internal/apperrors"
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	"github.com/SscSPs/workshop_manager_app/internal/models"
	"github.com/SscSPs/workshop_manager_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const serviceColumns = `id, owner_id, description, vehicle, price, status, created_at`

type PgxServiceRecordRepository struct {
	BaseRepository
}

func newPgxServiceRecordRepository(pool *pgxpool.Pool) *PgxServiceRecordRepository {
	return &PgxServiceRecordRepository{BaseRepository: BaseRepository{Pool: pool}}
}

func (r *PgxServiceRecordRepository) withTx(tx pgx.Tx) *PgxServiceRecordRepository {
	return &PgxServiceRecordRepository{BaseRepository: BaseRepository{Pool: r.Pool, tx: tx}}
}

var _ portsrepo.ServiceRecordRepositoryFacade = (*PgxServiceRecordRepository)(nil)

func scanServiceRow(row pgx.CollectableRow) (models.ServiceRecord, error) {
	var m models.ServiceRecord
	err := row.Scan(&m.ID, &m.OwnerID, &m.Description, &m.Vehicle, &m.Price, &m.Status, &m.CreatedAt)
	return m, err
}

func (r *PgxServiceRecordRepository) FindServiceByID(ctx context.Context, ownerID, serviceID string) (*domain.ServiceRecord, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE owner_id = $1 AND id = $2;`

	var m models.ServiceRecord
	err := r.db().QueryRow(ctx, query, ownerID, serviceID).Scan(
		&m.ID, &m.OwnerID, &m.Description, &m.Vehicle, &m.Price, &m.Status, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("service", serviceID)
		}
		return nil, storageError("failed to find service "+serviceID, err)
	}

	service := mapping.ToDomainServiceRecord(m)
	return &service, nil
}

func (r *PgxServiceRecordRepository) ListServices(ctx context.Context, ownerID string, status *domain.ServiceStatus) ([]domain.ServiceRecord, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE owner_id = $1`
	args := []any{ownerID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, string(*status))
	}
	query += ` ORDER BY created_at DESC, id DESC;`

	rows, err := r.db().Query(ctx, query, args...)
	if err != nil {
		return nil, storageError("failed to query services", err)
	}
	defer rows.Close()

	modelServices, err := pgx.CollectRows(rows, scanServiceRow)
	if err != nil {
		return nil, storageError("failed to scan services", err)
	}
	return mapping.ToDomainServiceRecordSlice(modelServices), nil
}

func (r *PgxServiceRecordRepository) SumServices(ctx context.Context, ownerID string, status *domain.ServiceStatus) (domain.Totals, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(price), 0) FROM services WHERE owner_id = $1`
	args := []any{ownerID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, string(*status))
	}

	var totals domain.Totals
	if err := r.db().QueryRow(ctx, query, args...).Scan(&totals.Count, &totals.Sum); err != nil {
		return domain.Totals{}, storageError("failed to sum services", err)
	}
	return totals, nil
}

func (r *PgxServiceRecordRepository) SaveService(ctx context.Context, service domain.ServiceRecord) error {
	m := mapping.ToModelServiceRecord(service)
	query := `INSERT INTO services (` + serviceColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7);`

	_, err := r.db().Exec(ctx, query, m.ID, m.OwnerID, m.Description, m.Vehicle, m.Price, m.Status, m.CreatedAt)
	if err != nil {
		return storageError("failed to insert service "+m.ID, err)
	}
	return nil
}

func (r *PgxServiceRecordRepository) UpdateActiveService(ctx context.Context, service domain.ServiceRecord) error {
	query := `
		UPDATE services SET description = $3, vehicle = $4, price = $5
		WHERE owner_id = $1 AND id = $2 AND status = $6;
	`
	tag, err := r.db().Exec(ctx, query, service.OwnerID, service.ID, service.Description, service.Vehicle, service.Price, string(domain.ServiceActive))
	if err != nil {
		return storageError("failed to update service "+service.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("active service", service.ID)
	}
	return nil
}

func (r *PgxServiceRecordRepository) TransitionService(ctx context.Context, ownerID, serviceID string, from, to domain.ServiceStatus) error {
	query := `UPDATE services SET status = $4 WHERE owner_id = $1 AND id = $2 AND status = $3;`
	tag, err := r.db().Exec(ctx, query, ownerID, serviceID, string(from), string(to))
	if err != nil {
		return storageError("failed to update status of service "+serviceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(string(from)+" service", serviceID)
	}
	return nil
}

func (r *PgxServiceRecordRepository) DeleteActiveService(ctx context.Context, ownerID, serviceID string) error {
	query := `DELETE FROM services WHERE owner_id = $1 AND id = $2 AND status = $3;`
	tag, err := r.db().Exec(ctx, query, ownerID, serviceID, string(domain.ServiceActive))
	if err != nil {
		return storageError("failed to delete service "+serviceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("active service", serviceID)
	}
	return nil
}

func (r *PgxServiceRecordRepository) BulkUpdateServiceStatus(ctx context.Context, ownerID string, from, to domain.ServiceStatus) (int64, error) {
	query := `UPDATE services SET status = $3 WHERE owner_id = $1 AND status = $2;`
	tag, err := r.db().Exec(ctx, query, ownerID, string(from), string(to))
	if err != nil {
		return 0, storageError("failed to bulk update services", err)
	}
	return tag.RowsAffected(), nil
}

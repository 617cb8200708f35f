package gormdb

import (
	"context"

	"github.com/SscSPs/workshop_manager_app/internal/apperrors"
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	"github.com/SscSPs/workshop_manager_app/internal/models"
	"github.com/SscSPs/workshop_manager_app/internal/utils/accounting"
	"github.com/SscSPs/workshop_manager_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GormServiceRecordRepository struct {
	BaseRepository
}

func newGormServiceRecordRepository(db *gorm.DB) *GormServiceRecordRepository {
	return &GormServiceRecordRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.ServiceRecordRepositoryFacade = (*GormServiceRecordRepository)(nil)

func (r *GormServiceRecordRepository) filtered(ctx context.Context, ownerID string, status *domain.ServiceStatus) *gorm.DB {
	q := r.conn(ctx).Model(&models.ServiceRecord{}).Scopes(ownedBy(ownerID))
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}
	return q
}

func (r *GormServiceRecordRepository) FindServiceByID(ctx context.Context, ownerID, serviceID string) (*domain.ServiceRecord, error) {
	var m models.ServiceRecord
	err := r.conn(ctx).Scopes(ownedBy(ownerID)).Where("id = ?", serviceID).First(&m).Error
	if err != nil {
		return nil, notFoundOr(err, "service", serviceID, "failed to find service "+serviceID)
	}
	service := mapping.ToDomainServiceRecord(m)
	return &service, nil
}

func (r *GormServiceRecordRepository) ListServices(ctx context.Context, ownerID string, status *domain.ServiceStatus) ([]domain.ServiceRecord, error) {
	var rows []models.ServiceRecord
	if err := r.filtered(ctx, ownerID, status).Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, storageError("failed to query services", err)
	}
	return mapping.ToDomainServiceRecordSlice(rows), nil
}

// SumServices adds prices in Go so that SQLite's floating point storage never leaks into totals.
func (r *GormServiceRecordRepository) SumServices(ctx context.Context, ownerID string, status *domain.ServiceStatus) (domain.Totals, error) {
	var prices []decimal.Decimal
	if err := r.filtered(ctx, ownerID, status).Pluck("price", &prices).Error; err != nil {
		return domain.Totals{}, storageError("failed to sum services", err)
	}
	return domain.Totals{Count: len(prices), Sum: accounting.Sum(prices)}, nil
}

func (r *GormServiceRecordRepository) SaveService(ctx context.Context, service domain.ServiceRecord) error {
	m := mapping.ToModelServiceRecord(service)
	if err := r.conn(ctx).Create(&m).Error; err != nil {
		return storageError("failed to insert service "+m.ID, err)
	}
	return nil
}

func (r *GormServiceRecordRepository) UpdateActiveService(ctx context.Context, service domain.ServiceRecord) error {
	res := r.filtered(ctx, service.OwnerID, nil).
		Where("id = ? AND status = ?", service.ID, string(domain.ServiceActive)).
		Updates(map[string]any{
			"description": service.Description,
			"vehicle":     service.Vehicle,
			"price":       service.Price,
		})
	if res.Error != nil {
		return storageError("failed to update service "+service.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("active service", service.ID)
	}
	return nil
}

func (r *GormServiceRecordRepository) TransitionService(ctx context.Context, ownerID, serviceID string, from, to domain.ServiceStatus) error {
	res := r.filtered(ctx, ownerID, &from).Where("id = ?", serviceID).Update("status", string(to))
	if res.Error != nil {
		return storageError("failed to update status of service "+serviceID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError(string(from)+" service", serviceID)
	}
	return nil
}

func (r *GormServiceRecordRepository) DeleteActiveService(ctx context.Context, ownerID, serviceID string) error {
	res := r.conn(ctx).Scopes(ownedBy(ownerID)).
		Where("id = ? AND status = ?", serviceID, string(domain.ServiceActive)).
		Delete(&models.ServiceRecord{})
	if res.Error != nil {
		return storageError("failed to delete service "+serviceID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("active service", serviceID)
	}
	return nil
}

func (r *GormServiceRecordRepository) BulkUpdateServiceStatus(ctx context.Context, ownerID string, from, to domain.ServiceStatus) (int64, error) {
	res := r.filtered(ctx, ownerID, &from).Update("status", string(to))
	if res.Error != nil {
		return 0, storageError("failed to bulk update services", res.Error)
	}
	return res.RowsAffected, nil
}

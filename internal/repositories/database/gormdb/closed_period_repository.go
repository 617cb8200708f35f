package gormdb

import (
	"context"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	"github.com/SscSPs/workshop_manager_app/internal/models"
	"github.com/SscSPs/workshop_manager_app/internal/utils/mapping"
	"gorm.io/gorm"
)

type GormClosedPeriodRepository struct {
	BaseRepository
}

func newGormClosedPeriodRepository(db *gorm.DB) *GormClosedPeriodRepository {
	return &GormClosedPeriodRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.ClosedPeriodRepositoryFacade = (*GormClosedPeriodRepository)(nil)

func (r *GormClosedPeriodRepository) SaveClosedPeriod(ctx context.Context, period domain.ClosedPeriod) error {
	m := mapping.ToModelClosedPeriod(period)
	if err := r.conn(ctx).Create(&m).Error; err != nil {
		return storageError("failed to insert closed period "+m.ID, err)
	}
	return nil
}

func (r *GormClosedPeriodRepository) FindClosedPeriodByID(ctx context.Context, ownerID, periodID string) (*domain.ClosedPeriod, error) {
	var m models.ClosedPeriod
	if err := r.conn(ctx).Scopes(ownedBy(ownerID)).Where("id = ?", periodID).First(&m).Error; err != nil {
		return nil, notFoundOr(err, "closed period", periodID, "failed to find closed period "+periodID)
	}
	period := mapping.ToDomainClosedPeriod(m)
	return &period, nil
}

func (r *GormClosedPeriodRepository) ListClosedPeriods(ctx context.Context, ownerID string, limit int, cursor *domain.PageCursor) ([]domain.ClosedPeriod, error) {
	q := r.conn(ctx).Scopes(ownedBy(ownerID))
	if cursor != nil {
		q = q.Where("(created_at < ? OR (created_at = ? AND id < ?))", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}
	q = q.Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []models.ClosedPeriod
	if err := q.Find(&rows).Error; err != nil {
		return nil, storageError("failed to query closed periods", err)
	}
	return mapping.ToDomainClosedPeriodSlice(rows), nil
}

package gormdb

import (
	"context"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	"github.com/SscSPs/workshop_manager_app/internal/models"
	"github.com/SscSPs/workshop_manager_app/internal/utils/mapping"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormSettingRepository struct {
	BaseRepository
}

func newGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.SettingRepositoryFacade = (*GormSettingRepository)(nil)

func (r *GormSettingRepository) GetSetting(ctx context.Context, key string) (*domain.Setting, error) {
	var m models.Setting
	if err := r.conn(ctx).Where("setting_key = ?", key).First(&m).Error; err != nil {
		return nil, notFoundOr(err, "setting", key, "failed to read setting "+key)
	}
	setting := mapping.ToDomainSetting(m)
	return &setting, nil
}

func (r *GormSettingRepository) UpsertSetting(ctx context.Context, setting domain.Setting) error {
	m := mapping.ToModelSetting(setting)
	err := r.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
	}).Create(&m).Error
	if err != nil {
		return storageError("failed to upsert setting "+m.Key, err)
	}
	return nil
}

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

type PgxSettingRepository struct {
	BaseRepository
}

func newPgxSettingRepository(pool *pgxpool.Pool) *PgxSettingRepository {
	return &PgxSettingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingRepositoryFacade = (*PgxSettingRepository)(nil)

func (r *PgxSettingRepository) GetSetting(ctx context.Context, key string) (*domain.Setting, error) {
	query := `SELECT setting_key, setting_value, updated_at FROM system_settings WHERE setting_key = $1;`
	var m models.Setting
	if err := r.db().QueryRow(ctx, query, key).Scan(&m.Key, &m.Value, &m.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("setting", key)
		}
		return nil, storageError("failed to read setting "+key, err)
	}
	setting := mapping.ToDomainSetting(m)
	return &setting, nil
}

func (r *PgxSettingRepository) UpsertSetting(ctx context.Context, setting domain.Setting) error {
	m := mapping.ToModelSetting(setting)
	query := `
		INSERT INTO system_settings (setting_key, setting_value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (setting_key) DO UPDATE SET
			setting_value = EXCLUDED.setting_value,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.db().Exec(ctx, query, m.Key, m.Value, m.UpdatedAt); err != nil {
		return storageError("failed to upsert setting "+m.Key, err)
	}
	return nil
}

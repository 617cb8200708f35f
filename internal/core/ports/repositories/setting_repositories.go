package repositories

import (
	"context"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
)

// SettingRepositoryFacade stores global key/value settings.
type SettingRepositoryFacade interface {
	// GetSetting returns ErrNotFound when the key was never written.
	GetSetting(ctx context.Context, key string) (*domain.Setting, error)
	UpsertSetting(ctx context.Context, setting domain.Setting) error
}

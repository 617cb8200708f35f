package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const settingKeyPrefix = "settings:"

// SettingRepository is a read-through Redis cache in front of another SettingRepositoryFacade.
// Redis failures degrade to the wrapped repository.
type SettingRepository struct {
	next portsrepo.SettingRepositoryFacade
	rdb  redis.Cmdable
	ttl  time.Duration
}

func NewSettingRepository(next portsrepo.SettingRepositoryFacade, rdb redis.Cmdable, ttl time.Duration) *SettingRepository {
	return &SettingRepository{next: next, rdb: rdb, ttl: ttl}
}

var _ portsrepo.SettingRepositoryFacade = (*SettingRepository)(nil)

func (r *SettingRepository) GetSetting(ctx context.Context, key string) (*domain.Setting, error) {
	raw, err := r.rdb.Get(ctx, settingKeyPrefix+key).Bytes()
	switch {
	case err == nil:
		var cached domain.Setting
		if jerr := json.Unmarshal(raw, &cached); jerr == nil {
			return &cached, nil
		}
	case !errors.Is(err, redis.Nil):
		slog.WarnContext(ctx, "Settings cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	setting, err := r.next.GetSetting(ctx, key)
	if err != nil {
		return nil, err
	}

	if body, jerr := json.Marshal(setting); jerr == nil {
		if serr := r.rdb.Set(ctx, settingKeyPrefix+key, body, r.ttl).Err(); serr != nil {
			slog.WarnContext(ctx, "Settings cache write failed", slog.String("key", key), slog.String("error", serr.Error()))
		}
	}
	return setting, nil
}

func (r *SettingRepository) UpsertSetting(ctx context.Context, setting domain.Setting) error {
	if err := r.next.UpsertSetting(ctx, setting); err != nil {
		return err
	}
	if err := r.rdb.Del(ctx, settingKeyPrefix+setting.Key).Err(); err != nil {
		slog.WarnContext(ctx, "Settings cache invalidation failed", slog.String("key", setting.Key), slog.String("error", err.Error()))
	}
	return nil
}

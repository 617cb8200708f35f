package cache

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/workshop_manager_app/internal/apperrors"
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) GetSetting(ctx context.Context, key string) (*domain.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}

func (m *MockSettingRepository) UpsertSetting(ctx context.Context, setting domain.Setting) error {
	return m.Called(ctx, setting).Error(0)
}

// unreachableRedis fails every command quickly so the cache falls through.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 50 * time.Millisecond,
	})
}

func TestSettingRepository_FallsThroughWhenRedisDown(t *testing.T) {
	ctx := context.Background()
	next := new(MockSettingRepository)
	expected := &domain.Setting{Key: domain.SettingParty1Name, Value: "Ana"}
	next.On("GetSetting", ctx, domain.SettingParty1Name).Return(expected, nil).Once()

	repo := NewSettingRepository(next, unreachableRedis(), time.Minute)
	got, err := repo.GetSetting(ctx, domain.SettingParty1Name)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
	next.AssertExpectations(t)
}

func TestSettingRepository_PropagatesNotFound(t *testing.T) {
	ctx := context.Background()
	next := new(MockSettingRepository)
	next.On("GetSetting", ctx, "missing").Return(nil, apperrors.NewNotFoundError("setting", "missing")).Once()

	repo := NewSettingRepository(next, unreachableRedis(), time.Minute)
	_, err := repo.GetSetting(ctx, "missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSettingRepository_UpsertIgnoresInvalidationFailure(t *testing.T) {
	ctx := context.Background()
	next := new(MockSettingRepository)
	setting := domain.Setting{Key: domain.SettingParty2Name, Value: "Oficina"}
	next.On("UpsertSetting", ctx, setting).Return(nil).Once()

	repo := NewSettingRepository(next, unreachableRedis(), time.Minute)

	assert.NoError(t, repo.UpsertSetting(ctx, setting))
	next.AssertExpectations(t)
}

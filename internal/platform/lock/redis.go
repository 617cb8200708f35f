package lock

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/SscSPs/workshop_manager_app/internal/apperrors"
	portssvc "github.com/SscSPs/workshop_manager_app/internal/core/ports/services"
	"github.com/bsm/redislock"
)

const closeLockPrefix = "lock:close-period:"

// RedisOwnerLocker serialises owners across replicas with a redislock lease.
// The lease is refreshed every ttl/2 while held, so a long close keeps it.
type RedisOwnerLocker struct {
	client *redislock.Client
	ttl    time.Duration
	retry  redislock.RetryStrategy
}

// NewRedisOwnerLocker retries every 100ms until the lease is obtained, ttl expires or ctx ends.
func NewRedisOwnerLocker(rdb redislock.RedisClient, ttl time.Duration) *RedisOwnerLocker {
	backoff := 100 * time.Millisecond
	return &RedisOwnerLocker{
		client: redislock.New(rdb),
		ttl:    ttl,
		retry:  redislock.LimitRetry(redislock.LinearBackoff(backoff), int(ttl/backoff)),
	}
}

var _ portssvc.OwnerLocker = (*RedisOwnerLocker)(nil)

func (l *RedisOwnerLocker) Lock(ctx context.Context, ownerID string) (func(), error) {
	key := closeLockPrefix + ownerID
	lease, err := l.client.Obtain(ctx, key, l.ttl, &redislock.Options{RetryStrategy: l.retry})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, apperrors.NewConflictError("could not obtain lock for owner", err)
	} else if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error obtaining lock for owner", err)
	}

	// the request context may already be cancelled when we refresh or unlock
	bg := context.WithoutCancel(ctx)
	stop := keepAlive(bg, lease, key, l.ttl, l.ttl/2)

	var once sync.Once
	return func() {
		once.Do(func() {
			stop()
			if err := lease.Release(bg); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
				slog.Warn("Failed to release owner lock", slog.String("key", key), slog.String("error", err.Error()))
			}
		})
	}, nil
}

type refresher interface {
	Refresh(ctx context.Context, ttl time.Duration, opt *redislock.Options) error
}

// keepAlive extends the lease every interval until stop is called or a refresh fails.
// stop waits for the refresh loop to exit.
func keepAlive(ctx context.Context, lease refresher, key string, ttl, interval time.Duration) (stop func()) {
	if interval <= 0 {
		return func() {}
	}

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := lease.Refresh(ctx, ttl, nil); err != nil {
					slog.Warn("Failed to refresh owner lock, lease will expire", slog.String("key", key), slog.String("error", err.Error()))
					return
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			<-finished
		})
	}
}

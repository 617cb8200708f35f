package lock

import (
	"context"
	"sync"

	"github.com/SscSPs/workshop_manager_app/internal/apperrors"
	portssvc "github.com/SscSPs/workshop_manager_app/internal/core/ports/services"
)

// LocalOwnerLocker is an in-process keyed mutex. It only serialises callers within one replica.
type LocalOwnerLocker struct {
	mu    sync.Mutex
	locks map[string]*ownerLock
}

type ownerLock struct {
	slot chan struct{}
	refs int
}

func NewLocalOwnerLocker() *LocalOwnerLocker {
	return &LocalOwnerLocker{locks: make(map[string]*ownerLock)}
}

var _ portssvc.OwnerLocker = (*LocalOwnerLocker)(nil)

// Lock waits for the owner's slot until ctx is done.
func (l *LocalOwnerLocker) Lock(ctx context.Context, ownerID string) (func(), error) {
	l.mu.Lock()
	ol, ok := l.locks[ownerID]
	if !ok {
		ol = &ownerLock{slot: make(chan struct{}, 1)}
		l.locks[ownerID] = ol
	}
	ol.refs++
	l.mu.Unlock()

	select {
	case ol.slot <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-ol.slot
				l.release(ownerID, ol)
			})
		}, nil
	case <-ctx.Done():
		l.release(ownerID, ol)
		return nil, apperrors.NewConflictError("timed out waiting for owner lock", ctx.Err())
	}
}

func (l *LocalOwnerLocker) release(ownerID string, ol *ownerLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ol.refs--
	if ol.refs == 0 {
		delete(l.locks, ownerID)
	}
}

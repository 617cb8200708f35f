package repositories

import (
	"context"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
)

// ClosedPeriodRepositoryFacade is append-only: snapshots are never updated or deleted.
type ClosedPeriodRepositoryFacade interface {
	SaveClosedPeriod(ctx context.Context, period domain.ClosedPeriod) error
	FindClosedPeriodByID(ctx context.Context, ownerID, periodID string) (*domain.ClosedPeriod, error)

	// ListClosedPeriods returns snapshots newest first, starting after cursor when given.
	// A limit <= 0 returns every row.
	ListClosedPeriods(ctx context.Context, ownerID string, limit int, cursor *domain.PageCursor) ([]domain.ClosedPeriod, error)
}

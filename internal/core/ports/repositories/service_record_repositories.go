package repositories

import (
	"context"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
)

// ServiceRecordReader defines read operations for service records
type ServiceRecordReader interface {
	// FindServiceByID retrieves one service of the owner.
	FindServiceByID(ctx context.Context, ownerID, serviceID string) (*domain.ServiceRecord, error)

	// ListServices returns the owner's services newest first. A nil status returns all of them.
	ListServices(ctx context.Context, ownerID string, status *domain.ServiceStatus) ([]domain.ServiceRecord, error)

	// SumServices returns count and price sum. A nil status covers all of them.
	SumServices(ctx context.Context, ownerID string, status *domain.ServiceStatus) (domain.Totals, error)
}

// ServiceRecordWriter defines write operations for service records
type ServiceRecordWriter interface {
	SaveService(ctx context.Context, service domain.ServiceRecord) error

	// UpdateActiveService rewrites description, vehicle and price. Returns ErrNotFound unless the row is active.
	UpdateActiveService(ctx context.Context, service domain.ServiceRecord) error

	// TransitionService moves one row from -> to. Returns ErrNotFound when no row matched.
	TransitionService(ctx context.Context, ownerID, serviceID string, from, to domain.ServiceStatus) error

	// DeleteActiveService hard-deletes an active service. Returns ErrNotFound otherwise.
	DeleteActiveService(ctx context.Context, ownerID, serviceID string) error

	// BulkUpdateServiceStatus moves every matching row and returns how many changed.
	BulkUpdateServiceStatus(ctx context.Context, ownerID string, from, to domain.ServiceStatus) (int64, error)
}

// ServiceRecordRepositoryFacade combines all service-record repository interfaces
type ServiceRecordRepositoryFacade interface {
	ServiceRecordReader
	ServiceRecordWriter
}

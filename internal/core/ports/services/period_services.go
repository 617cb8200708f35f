package services

import (
	"context"
	"io"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	"github.com/SscSPs/workshop_manager_app/internal/dto"
)

// PeriodCloserSvc snapshots and closes the owner's current period.
type PeriodCloserSvc interface {
	// ClosePeriod persists a ClosedPeriod and moves active services and expenses to
	// their terminal status as one atomic unit.
	ClosePeriod(ctx context.Context, ownerID string) (*domain.ClosedPeriod, error)
}

// PeriodReaderSvc reads previously written snapshots.
type PeriodReaderSvc interface {
	GetClosedPeriod(ctx context.Context, ownerID, periodID string) (*domain.ClosedPeriod, error)
	ListClosedPeriods(ctx context.Context, ownerID string, params dto.ListClosedPeriodsParams) (*dto.ListClosedPeriodsResponse, error)

	// ExportClosedPeriods writes every snapshot of the owner as an XLSX workbook.
	ExportClosedPeriods(ctx context.Context, ownerID string, w io.Writer) error
}

// PeriodSvcFacade combines all closed-period service interfaces
type PeriodSvcFacade interface {
	PeriodCloserSvc
	PeriodReaderSvc
}

// OwnerLocker serialises critical sections per owner across requests.
type OwnerLocker interface {
	// Lock blocks until the owner's lock is held or ctx ends. Returns ErrConflict when it cannot be obtained.
	Lock(ctx context.Context, ownerID string) (unlock func(), err error)
}

// PeriodEventPublisher announces committed period closes.
type PeriodEventPublisher interface {
	PublishPeriodClosed(ctx context.Context, period domain.ClosedPeriod) error
}

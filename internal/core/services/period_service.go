package services

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/workshop_manager_app/internal/apperrors"
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workshop_manager_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_manager_app/internal/dto"
	"github.com/SscSPs/workshop_manager_app/internal/utils/accounting"
	"github.com/SscSPs/workshop_manager_app/internal/utils/export"
	"github.com/SscSPs/workshop_manager_app/internal/utils/pagination"
	"github.com/SscSPs/workshop_manager_app/internal/utils/validation"
	"github.com/google/uuid"
)

const (
	DefaultPeriodWindowDays     = 30
	defaultClosedPeriodPageSize = 20
)

type periodService struct {
	BaseService
	txManager  portsrepo.TransactionManager
	periodRepo portsrepo.ClosedPeriodRepositoryFacade
	locker     portssvc.OwnerLocker
	publisher  portssvc.PeriodEventPublisher
	windowDays int
}

// PeriodServiceOption configures the period service
type PeriodServiceOption func(*periodService)

func WithPeriodClock(clock Clock) PeriodServiceOption {
	return func(s *periodService) {
		s.clock = clock
	}
}

// WithOwnerLocker serialises closes of the same owner before the transaction starts.
func WithOwnerLocker(locker portssvc.OwnerLocker) PeriodServiceOption {
	return func(s *periodService) {
		s.locker = locker
	}
}

// WithPeriodEventPublisher announces committed closes.
func WithPeriodEventPublisher(publisher portssvc.PeriodEventPublisher) PeriodServiceOption {
	return func(s *periodService) {
		s.publisher = publisher
	}
}

// WithPeriodWindowDays sets how many days before the close date the recorded window starts.
func WithPeriodWindowDays(days int) PeriodServiceOption {
	return func(s *periodService) {
		if days > 0 {
			s.windowDays = days
		}
	}
}

func NewPeriodService(txManager portsrepo.TransactionManager, periodRepo portsrepo.ClosedPeriodRepositoryFacade, options ...PeriodServiceOption) portssvc.PeriodSvcFacade {
	svc := &periodService{
		txManager:  txManager,
		periodRepo: periodRepo,
		windowDays: DefaultPeriodWindowDays,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

// ClosePeriod snapshots the active totals, persists the snapshot and retires the active rows
// in one transaction. Nothing is written if any step fails.
func (s *periodService) ClosePeriod(ctx context.Context, ownerID string) (*domain.ClosedPeriod, error) {
	if ownerID == "" {
		return nil, apperrors.NewValidationError("owner is required")
	}

	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx, ownerID)
		if err != nil {
			s.LogError(ctx, err, "Failed to lock owner for period close", slog.String("owner_id", ownerID))
			return nil, err
		}
		defer unlock()
	}

	var period domain.ClosedPeriod
	err := s.txManager.WithinOwnerTx(ctx, ownerID, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		activeService := domain.ServiceActive
		activeExpense := domain.ExpenseActive

		services, err := repos.Services.SumServices(ctx, ownerID, &activeService)
		if err != nil {
			return err
		}
		expenses, err := repos.Expenses.SumExpenses(ctx, ownerID, &activeExpense)
		if err != nil {
			return err
		}

		now := s.Now()
		start, end := domain.PeriodWindow(now, s.windowDays)
		period = domain.ClosedPeriod{
			ID:            uuid.NewString(),
			TotalServices: services.Count,
			TotalValue:    services.Sum,
			TotalExpenses: expenses.Sum,
			NetTotal:      accounting.Net(services.Sum, expenses.Sum),
			PeriodStart:   start,
			PeriodEnd:     end,
			Ownership:     domain.Ownership{OwnerID: ownerID, CreatedAt: now},
		}
		if err := repos.ClosedPeriods.SaveClosedPeriod(ctx, period); err != nil {
			return err
		}

		// From here on the snapshot exists inside the transaction, so failures are consistency errors.
		completed, err := repos.Services.BulkUpdateServiceStatus(ctx, ownerID, domain.ServiceActive, domain.ServiceCompleted)
		if err != nil {
			return apperrors.NewConsistencyError("failed to complete active services", err)
		}
		if completed != int64(services.Count) {
			return apperrors.NewConsistencyError("completed services do not match snapshot", nil)
		}

		closed, err := repos.Expenses.BulkUpdateExpenseStatus(ctx, ownerID, domain.ExpenseActive, domain.ExpenseClosed)
		if err != nil {
			return apperrors.NewConsistencyError("failed to close active expenses", err)
		}
		if closed != int64(expenses.Count) {
			return apperrors.NewConsistencyError("closed expenses do not match snapshot", nil)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Period close rolled back", slog.String("owner_id", ownerID))
		return nil, err
	}

	s.LogInfo(ctx, "Period closed",
		slog.String("owner_id", ownerID),
		slog.String("period_id", period.ID),
		slog.Int("total_services", period.TotalServices),
		slog.String("net_total", period.NetTotal.String()))

	if s.publisher != nil {
		if err := s.publisher.PublishPeriodClosed(ctx, period); err != nil {
			s.LogError(ctx, err, "Failed to publish period closed event", slog.String("period_id", period.ID))
		}
	}

	return &period, nil
}

func (s *periodService) GetClosedPeriod(ctx context.Context, ownerID, periodID string) (*domain.ClosedPeriod, error) {
	period, err := s.periodRepo.FindClosedPeriodByID(ctx, ownerID, periodID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find closed period", slog.String("period_id", periodID))
		return nil, err
	}
	return period, nil
}

// ListClosedPeriods returns one page newest first. NextToken is set only when more rows exist.
func (s *periodService) ListClosedPeriods(ctx context.Context, ownerID string, params dto.ListClosedPeriodsParams) (*dto.ListClosedPeriodsResponse, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit == 0 {
		limit = defaultClosedPeriodPageSize
	}

	var cursor *domain.PageCursor
	if params.NextToken != nil && *params.NextToken != "" {
		decoded, err := pagination.DecodeCursor(*params.NextToken)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid nextToken")
		}
		cursor = decoded
	}

	periods, err := s.periodRepo.ListClosedPeriods(ctx, ownerID, limit+1, cursor)
	if err != nil {
		s.LogError(ctx, err, "Failed to list closed periods", slog.String("owner_id", ownerID))
		return nil, err
	}

	var nextToken *string
	if len(periods) > limit {
		periods = periods[:limit]
		last := periods[limit-1]
		token := pagination.EncodeCursor(domain.PageCursor{CreatedAt: last.CreatedAt, ID: last.ID})
		nextToken = &token
	}

	return &dto.ListClosedPeriodsResponse{
		Periods:   dto.ToListClosedPeriodResponse(periods),
		NextToken: nextToken,
	}, nil
}

func (s *periodService) ExportClosedPeriods(ctx context.Context, ownerID string, w io.Writer) error {
	periods, err := s.periodRepo.ListClosedPeriods(ctx, ownerID, 0, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load closed periods for export", slog.String("owner_id", ownerID))
		return err
	}
	if err := export.WriteClosedPeriods(w, periods); err != nil {
		s.LogError(ctx, err, "Failed to render closed periods workbook", slog.String("owner_id", ownerID))
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to export closed periods", err)
	}
	return nil
}

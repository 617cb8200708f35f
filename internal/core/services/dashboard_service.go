package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workshop_manager_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_manager_app/internal/utils/accounting"
	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	BaseService
	serviceRepo     portsrepo.ServiceRecordReader
	expenseRepo     portsrepo.ExpenseReader
	withdrawalRepo  portsrepo.WithdrawalReader
	appointmentRepo portsrepo.AppointmentRepositoryFacade
	partyNames      portssvc.PartyNamesReaderSvc
}

// DashboardServiceOption configures the dashboard service
type DashboardServiceOption func(*dashboardService)

// WithDashboardClock overrides the clock that decides which appointments are today's.
func WithDashboardClock(clock Clock) DashboardServiceOption {
	return func(s *dashboardService) {
		s.clock = clock
	}
}

func NewDashboardService(repos portsrepo.RepositoryProvider, partyNames portssvc.PartyNamesReaderSvc, options ...DashboardServiceOption) portssvc.DashboardSvc {
	svc := &dashboardService{
		serviceRepo:     repos.ServiceRepo,
		expenseRepo:     repos.ExpenseRepo,
		withdrawalRepo:  repos.WithdrawalRepo,
		appointmentRepo: repos.AppointmentRepo,
		partyNames:      partyNames,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

// GetDashboard reads the current period concurrently. The first failed read cancels the rest.
func (s *dashboardService) GetDashboard(ctx context.Context, ownerID string) (*domain.DashboardView, error) {
	var (
		services     []domain.ServiceRecord
		expenses     domain.Totals
		withdrawals  domain.PartyTotals
		names        domain.PartyNames
		appointments []domain.Appointment
	)
	activeService := domain.ServiceActive
	activeExpense := domain.ExpenseActive
	today := s.Today()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		services, err = s.serviceRepo.ListServices(gctx, ownerID, &activeService)
		return err
	})
	g.Go(func() (err error) {
		expenses, err = s.expenseRepo.SumExpenses(gctx, ownerID, &activeExpense)
		return err
	})
	g.Go(func() (err error) {
		withdrawals, err = s.withdrawalRepo.SumWithdrawalsByParty(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		names, err = s.partyNames.GetPartyNames(gctx)
		return err
	})
	g.Go(func() (err error) {
		appointments, err = s.appointmentRepo.ListAppointmentsByDate(gctx, ownerID, today)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build dashboard", slog.String("owner_id", ownerID))
		return nil, err
	}

	if services == nil {
		services = []domain.ServiceRecord{}
	}
	if appointments == nil {
		appointments = []domain.Appointment{}
	}

	revenue := accounting.ServiceTotals(services)
	return &domain.DashboardView{
		ActiveServicesCount: revenue.Count,
		TotalRevenue:        revenue.Sum,
		TotalExpenses:       expenses.Sum,
		TotalProfit:         accounting.Net(revenue.Sum, expenses.Sum),
		Withdrawals:         withdrawals,
		PartyNames:          names,
		Services:            services,
		TodaysAppointments:  appointments,
	}, nil
}

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

type historyService struct {
	BaseService
	serviceRepo portsrepo.ServiceRecordReader
	expenseRepo portsrepo.ExpenseReader
}

func NewHistoryService(serviceRepo portsrepo.ServiceRecordReader, expenseRepo portsrepo.ExpenseReader) portssvc.HistorySvc {
	return &historyService{serviceRepo: serviceRepo, expenseRepo: expenseRepo}
}

var _ portssvc.HistorySvc = (*historyService)(nil)

// GetHistory aggregates every service and expense of the owner regardless of status.
func (s *historyService) GetHistory(ctx context.Context, ownerID string) (*domain.HistoryView, error) {
	var (
		services []domain.ServiceRecord
		expenses domain.Totals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		services, err = s.serviceRepo.ListServices(gctx, ownerID, nil)
		return err
	})
	g.Go(func() (err error) {
		expenses, err = s.expenseRepo.SumExpenses(gctx, ownerID, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build service history", slog.String("owner_id", ownerID))
		return nil, err
	}

	if services == nil {
		services = []domain.ServiceRecord{}
	}

	revenue := accounting.ServiceTotals(services)
	return &domain.HistoryView{
		TotalServices:    revenue.Count,
		TotalRevenue:     revenue.Sum,
		TotalExpenses:    expenses.Sum,
		TotalBalance:     accounting.Net(revenue.Sum, expenses.Sum),
		ServicesByStatus: accounting.CountByStatusLabel(services),
		Services:         services,
	}, nil
}

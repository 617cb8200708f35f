package services

import (
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workshop_manager_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_manager_app/internal/platform/config"
)

// Collaborators are the optional infrastructure pieces the period closer uses.
type Collaborators struct {
	Locker    portssvc.OwnerLocker
	Publisher portssvc.PeriodEventPublisher
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, collab Collaborators) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Settings first, the dashboard reads party names through it
	container.Setting = NewSettingService(repos.SettingRepo, domain.PartyNames{
		Party1: cfg.Party1DefaultName,
		Party2: cfg.Party2DefaultName,
	})

	container.Dashboard = NewDashboardService(repos, container.Setting)
	container.History = NewHistoryService(repos.ServiceRepo, repos.ExpenseRepo)

	periodOpts := []PeriodServiceOption{WithPeriodWindowDays(cfg.PeriodWindowDays)}
	if collab.Locker != nil {
		periodOpts = append(periodOpts, WithOwnerLocker(collab.Locker))
	}
	if collab.Publisher != nil {
		periodOpts = append(periodOpts, WithPeriodEventPublisher(collab.Publisher))
	}
	container.Period = NewPeriodService(repos.TxManager, repos.ClosedPeriodRepo, periodOpts...)

	container.Service = NewServiceRecordService(repos.ServiceRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.Appointment = NewAppointmentService(repos.AppointmentRepo)
	container.Withdrawal = NewWithdrawalService(repos.WithdrawalRepo)

	return container
}

package pgsql

import (
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	serviceRepo := newPgxServiceRecordRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	periodRepo := newPgxClosedPeriodRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ServiceRepo:      serviceRepo,
		ExpenseRepo:      expenseRepo,
		AppointmentRepo:  newPgxAppointmentRepository(dbPool),
		WithdrawalRepo:   newPgxWithdrawalRepository(dbPool),
		ClosedPeriodRepo: periodRepo,
		SettingRepo:      newPgxSettingRepository(dbPool),
		TxManager:        newPgxTransactionManager(dbPool, serviceRepo, expenseRepo, periodRepo),
	}
}

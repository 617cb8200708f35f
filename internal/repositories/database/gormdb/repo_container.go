package gormdb

import (
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	"gorm.io/gorm"
)

// NewRepositoryProvider wires every repository onto one gorm handle (MySQL or SQLite).
func NewRepositoryProvider(db *gorm.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ServiceRepo:      newGormServiceRecordRepository(db),
		ExpenseRepo:      newGormExpenseRepository(db),
		AppointmentRepo:  newGormAppointmentRepository(db),
		WithdrawalRepo:   newGormWithdrawalRepository(db),
		ClosedPeriodRepo: newGormClosedPeriodRepository(db),
		SettingRepo:      newGormSettingRepository(db),
		TxManager:        newGormTransactionManager(db),
	}
}

package services

import (
	"context"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	"github.com/SscSPs/workshop_manager_app/internal/dto"
)

// ServiceRecordReaderSvc defines read operations for services
type ServiceRecordReaderSvc interface {
	GetService(ctx context.Context, ownerID, serviceID string) (*domain.ServiceRecord, error)
	ListServices(ctx context.Context, ownerID string, params dto.ListServicesParams) ([]domain.ServiceRecord, error)
}

// ServiceRecordWriterSvc defines write operations for services
type ServiceRecordWriterSvc interface {
	CreateService(ctx context.Context, ownerID string, req dto.CreateServiceRequest) (*domain.ServiceRecord, error)
	UpdateService(ctx context.Context, ownerID, serviceID string, req dto.UpdateServiceRequest) (*domain.ServiceRecord, error)
	CancelService(ctx context.Context, ownerID, serviceID string) (*domain.ServiceRecord, error)
	DeleteService(ctx context.Context, ownerID, serviceID string) error
}

// ServiceRecordSvcFacade combines all service-record service interfaces
type ServiceRecordSvcFacade interface {
	ServiceRecordReaderSvc
	ServiceRecordWriterSvc
}

// ExpenseSvcFacade manages the owner's active expenses.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, ownerID string, req dto.CreateExpenseRequest) (*domain.Expense, error)
	ListExpenses(ctx context.Context, ownerID string) ([]domain.Expense, error)
	DeleteExpense(ctx context.Context, ownerID, expenseID string) error
}

// AppointmentSvcFacade manages the owner's appointments.
type AppointmentSvcFacade interface {
	CreateAppointment(ctx context.Context, ownerID string, req dto.CreateAppointmentRequest) (*domain.Appointment, error)
	ListAppointments(ctx context.Context, ownerID string) ([]domain.Appointment, error)
	DeleteAppointment(ctx context.Context, ownerID, appointmentID string) error
}

// WithdrawalSvcFacade manages the owner's withdrawals.
type WithdrawalSvcFacade interface {
	CreateWithdrawal(ctx context.Context, ownerID string, req dto.CreateWithdrawalRequest) (*domain.Withdrawal, error)
	ListWithdrawals(ctx context.Context, ownerID string) ([]domain.Withdrawal, error)
	DeleteWithdrawal(ctx context.Context, ownerID, withdrawalID string) error
}

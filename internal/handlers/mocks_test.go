package handlers

import (
	"context"
	"io"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portssvc "github.com/SscSPs/workshop_manager_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_manager_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

type MockDashboardService struct{ mock.Mock }

func (m *MockDashboardService) GetDashboard(ctx context.Context, ownerID string) (*domain.DashboardView, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardView), args.Error(1)
}

type MockHistoryService struct{ mock.Mock }

func (m *MockHistoryService) GetHistory(ctx context.Context, ownerID string) (*domain.HistoryView, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoryView), args.Error(1)
}

type MockSettingService struct{ mock.Mock }

func (m *MockSettingService) GetPartyNames(ctx context.Context) (domain.PartyNames, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.PartyNames), args.Error(1)
}

func (m *MockSettingService) UpdatePartyNames(ctx context.Context, req dto.UpdatePartyNamesRequest) (domain.PartyNames, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.PartyNames), args.Error(1)
}

type MockServiceRecordService struct{ mock.Mock }

func (m *MockServiceRecordService) GetService(ctx context.Context, ownerID, serviceID string) (*domain.ServiceRecord, error) {
	args := m.Called(ctx, ownerID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceRecord), args.Error(1)
}

func (m *MockServiceRecordService) ListServices(ctx context.Context, ownerID string, params dto.ListServicesParams) ([]domain.ServiceRecord, error) {
	args := m.Called(ctx, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceRecord), args.Error(1)
}

func (m *MockServiceRecordService) CreateService(ctx context.Context, ownerID string, req dto.CreateServiceRequest) (*domain.ServiceRecord, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceRecord), args.Error(1)
}

func (m *MockServiceRecordService) UpdateService(ctx context.Context, ownerID, serviceID string, req dto.UpdateServiceRequest) (*domain.ServiceRecord, error) {
	args := m.Called(ctx, ownerID, serviceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceRecord), args.Error(1)
}

func (m *MockServiceRecordService) CancelService(ctx context.Context, ownerID, serviceID string) (*domain.ServiceRecord, error) {
	args := m.Called(ctx, ownerID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceRecord), args.Error(1)
}

func (m *MockServiceRecordService) DeleteService(ctx context.Context, ownerID, serviceID string) error {
	args := m.Called(ctx, ownerID, serviceID)
	return args.Error(0)
}

type MockExpenseService struct{ mock.Mock }

func (m *MockExpenseService) CreateExpense(ctx context.Context, ownerID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) ListExpenses(ctx context.Context, ownerID string) ([]domain.Expense, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseService) DeleteExpense(ctx context.Context, ownerID, expenseID string) error {
	return m.Called(ctx, ownerID, expenseID).Error(0)
}

type MockAppointmentService struct{ mock.Mock }

func (m *MockAppointmentService) CreateAppointment(ctx context.Context, ownerID string, req dto.CreateAppointmentRequest) (*domain.Appointment, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func (m *MockAppointmentService) ListAppointments(ctx context.Context, ownerID string) ([]domain.Appointment, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Appointment), args.Error(1)
}

func (m *MockAppointmentService) DeleteAppointment(ctx context.Context, ownerID, appointmentID string) error {
	return m.Called(ctx, ownerID, appointmentID).Error(0)
}

type MockWithdrawalService struct{ mock.Mock }

func (m *MockWithdrawalService) CreateWithdrawal(ctx context.Context, ownerID string, req dto.CreateWithdrawalRequest) (*domain.Withdrawal, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalService) ListWithdrawals(ctx context.Context, ownerID string) ([]domain.Withdrawal, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalService) DeleteWithdrawal(ctx context.Context, ownerID, withdrawalID string) error {
	return m.Called(ctx, ownerID, withdrawalID).Error(0)
}

type MockPeriodService struct{ mock.Mock }

func (m *MockPeriodService) ClosePeriod(ctx context.Context, ownerID string) (*domain.ClosedPeriod, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosedPeriod), args.Error(1)
}

func (m *MockPeriodService) GetClosedPeriod(ctx context.Context, ownerID, periodID string) (*domain.ClosedPeriod, error) {
	args := m.Called(ctx, ownerID, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosedPeriod), args.Error(1)
}

func (m *MockPeriodService) ListClosedPeriods(ctx context.Context, ownerID string, params dto.ListClosedPeriodsParams) (*dto.ListClosedPeriodsResponse, error) {
	args := m.Called(ctx, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListClosedPeriodsResponse), args.Error(1)
}

func (m *MockPeriodService) ExportClosedPeriods(ctx context.Context, ownerID string, w io.Writer) error {
	args := m.Called(ctx, ownerID, w)
	if payload, ok := args.Get(1).([]byte); ok {
		_, _ = w.Write(payload)
	}
	return args.Error(0)
}

var (
	_ portssvc.DashboardSvc           = (*MockDashboardService)(nil)
	_ portssvc.HistorySvc             = (*MockHistoryService)(nil)
	_ portssvc.SettingSvcFacade       = (*MockSettingService)(nil)
	_ portssvc.ServiceRecordSvcFacade = (*MockServiceRecordService)(nil)
	_ portssvc.ExpenseSvcFacade       = (*MockExpenseService)(nil)
	_ portssvc.AppointmentSvcFacade   = (*MockAppointmentService)(nil)
	_ portssvc.WithdrawalSvcFacade    = (*MockWithdrawalService)(nil)
	_ portssvc.PeriodSvcFacade        = (*MockPeriodService)(nil)
)

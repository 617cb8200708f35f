package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/workshop_manager_app/internal/apperrors"
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	"github.com/SscSPs/workshop_manager_app/internal/core/services"
	"github.com/SscSPs/workshop_manager_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestServiceRecordService_CreateService(t *testing.T) {
	ctx := context.Background()
	repo := new(MockServiceRecordRepository)
	svc := services.NewServiceRecordService(repo)

	repo.On("SaveService", ctx, mock.MatchedBy(func(s domain.ServiceRecord) bool {
		return s.OwnerID == "u1" && s.Status == domain.ServiceActive && s.Price.Equal(decimal.NewFromInt(100))
	})).Return(nil).Once()

	created, err := svc.CreateService(ctx, "u1", dto.CreateServiceRequest{Description: "Brake pads", Vehicle: "Fiat Uno", Price: decimal.NewFromInt(100)})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.WithinDuration(t, time.Now(), created.CreatedAt, time.Second)
	repo.AssertExpectations(t)
}

func TestServiceRecordService_CreateService_ValidationBeforeStore(t *testing.T) {
	repo := new(MockServiceRecordRepository)
	svc := services.NewServiceRecordService(repo)

	_, err := svc.CreateService(context.Background(), "u1", dto.CreateServiceRequest{Description: "Free", Price: decimal.Zero})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "SaveService", mock.Anything, mock.Anything)
}

func TestServiceRecordService_ListServices_StatusFilter(t *testing.T) {
	ctx := context.Background()
	repo := new(MockServiceRecordRepository)
	svc := services.NewServiceRecordService(repo)

	repo.On("ListServices", ctx, "u1", mock.MatchedBy(isActiveService)).Return([]domain.ServiceRecord{{ID: "a"}}, nil).Once()
	repo.On("ListServices", ctx, "u1", (*domain.ServiceStatus)(nil)).Return([]domain.ServiceRecord{{ID: "a"}, {ID: "b"}}, nil).Once()
	repo.On("ListServices", ctx, "u1", mock.MatchedBy(func(s *domain.ServiceStatus) bool {
		return s != nil && *s == domain.ServiceCancelled
	})).Return([]domain.ServiceRecord{}, nil).Once()

	active, err := svc.ListServices(ctx, "u1", dto.ListServicesParams{})
	require.NoError(t, err)
	assert.Len(t, active, 1)

	all, err := svc.ListServices(ctx, "u1", dto.ListServicesParams{Status: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.ListServices(ctx, "u1", dto.ListServicesParams{Status: "Cancelled"})
	require.NoError(t, err)

	_, err = svc.ListServices(ctx, "u1", dto.ListServicesParams{Status: "archived"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertExpectations(t)
}

func TestServiceRecordService_UpdateService(t *testing.T) {
	ctx := context.Background()
	repo := new(MockServiceRecordRepository)
	svc := services.NewServiceRecordService(repo)

	existing := &domain.ServiceRecord{ID: "s1", Description: "Old", Vehicle: "VW", Price: decimal.NewFromInt(80), Status: domain.ServiceActive}
	repo.On("FindServiceByID", ctx, "u1", "s1").Return(existing, nil).Once()
	repo.On("UpdateActiveService", ctx, mock.MatchedBy(func(s domain.ServiceRecord) bool {
		return s.Description == "Old" && s.Price.Equal(decimal.NewFromInt(95))
	})).Return(nil).Once()

	price := decimal.NewFromInt(95)
	updated, err := svc.UpdateService(ctx, "u1", "s1", dto.UpdateServiceRequest{Price: &price})

	require.NoError(t, err)
	assert.True(t, price.Equal(updated.Price))
	repo.AssertExpectations(t)
}

func TestServiceRecordService_UpdateService_FrozenAfterClose(t *testing.T) {
	ctx := context.Background()
	repo := new(MockServiceRecordRepository)
	svc := services.NewServiceRecordService(repo)

	repo.On("FindServiceByID", ctx, "u1", "s1").Return(&domain.ServiceRecord{ID: "s1", Status: domain.ServiceCompleted}, nil).Once()

	price := decimal.NewFromInt(95)
	_, err := svc.UpdateService(ctx, "u1", "s1", dto.UpdateServiceRequest{Price: &price})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	repo.AssertNotCalled(t, "UpdateActiveService", mock.Anything, mock.Anything)
}

func TestServiceRecordService_CancelAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockServiceRecordRepository)
	svc := services.NewServiceRecordService(repo)

	repo.On("TransitionService", ctx, "u1", "s1", domain.ServiceActive, domain.ServiceCancelled).Return(nil).Once()
	repo.On("FindServiceByID", ctx, "u1", "s1").Return(&domain.ServiceRecord{ID: "s1", Status: domain.ServiceCancelled}, nil).Once()
	repo.On("DeleteActiveService", ctx, "u1", "s2").Return(apperrors.NewNotFoundError("service", "s2")).Once()

	cancelled, err := svc.CancelService(ctx, "u1", "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.ServiceCancelled, cancelled.Status)

	err = svc.DeleteService(ctx, "u1", "s2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestExpenseService_CreateExpense_DefaultsDateToToday(t *testing.T) {
	ctx := context.Background()
	repo := new(MockExpenseRepository)
	svc := services.NewExpenseService(repo, services.WithExpenseClock(fixedClock))

	repo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Date.Format(domain.DateLayout) == "2024-03-15" && e.Status == domain.ExpenseActive
	})).Return(nil).Once()
	repo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Date.Format(domain.DateLayout) == "2024-03-01"
	})).Return(nil).Once()

	_, err := svc.CreateExpense(ctx, "u1", dto.CreateExpenseRequest{Description: "Parts", Amount: decimal.NewFromInt(30)})
	require.NoError(t, err)

	_, err = svc.CreateExpense(ctx, "u1", dto.CreateExpenseRequest{Description: "Rent", Amount: decimal.NewFromInt(300), Date: "2024-03-01"})
	require.NoError(t, err)

	_, err = svc.CreateExpense(ctx, "u1", dto.CreateExpenseRequest{Description: "Bad", Amount: decimal.NewFromInt(1), Date: "01/03/2024"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertExpectations(t)
}

func TestExpenseService_ListExpenses_ActiveOnly(t *testing.T) {
	ctx := context.Background()
	repo := new(MockExpenseRepository)
	svc := services.NewExpenseService(repo)

	repo.On("ListExpenses", ctx, "u1", mock.MatchedBy(isActiveExpense)).Return([]domain.Expense{{ID: "e1"}}, nil).Once()

	expenses, err := svc.ListExpenses(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, expenses, 1)
}

func TestAppointmentService_CreateAppointment(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAppointmentRepository)
	svc := services.NewAppointmentService(repo)

	repo.On("SaveAppointment", ctx, mock.MatchedBy(func(a domain.Appointment) bool {
		return a.Client == "Ana" && a.Time == "09:30" && a.Date.Format(domain.DateLayout) == "2024-03-15"
	})).Return(nil).Once()

	created, err := svc.CreateAppointment(ctx, "u1", dto.CreateAppointmentRequest{Date: "2024-03-15", Time: "09:30", Client: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "u1", created.OwnerID)

	_, err = svc.CreateAppointment(ctx, "u1", dto.CreateAppointmentRequest{Date: "2024-03-15", Time: "9.30", Client: "Ana"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertExpectations(t)
}

func TestWithdrawalService_CreateWithdrawal(t *testing.T) {
	ctx := context.Background()
	repo := new(MockWithdrawalRepository)
	svc := services.NewWithdrawalService(repo)

	repo.On("SaveWithdrawal", ctx, mock.MatchedBy(func(w domain.Withdrawal) bool {
		return w.Party == domain.Party2 && w.Amount.Equal(decimal.NewFromInt(10))
	})).Return(nil).Once()

	_, err := svc.CreateWithdrawal(ctx, "u1", dto.CreateWithdrawalRequest{Amount: decimal.NewFromInt(10), Party: "party2"})
	require.NoError(t, err)

	_, err = svc.CreateWithdrawal(ctx, "u1", dto.CreateWithdrawalRequest{Amount: decimal.Zero, Party: "party1"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.CreateWithdrawal(ctx, "u1", dto.CreateWithdrawalRequest{Amount: decimal.NewFromInt(1), Party: "party3"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertExpectations(t)
}

func TestMoneyBeyondStoredPrecisionIsRejectedBeforeStore(t *testing.T) {
	ctx := context.Background()
	withdrawals := new(MockWithdrawalRepository)
	expenses := new(MockExpenseRepository)
	serviceRecords := new(MockServiceRecordRepository)

	_, err := services.NewWithdrawalService(withdrawals).CreateWithdrawal(ctx, "u1", dto.CreateWithdrawalRequest{
		Amount: decimal.RequireFromString("0.001"), Party: "party1",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = services.NewExpenseService(expenses).CreateExpense(ctx, "u1", dto.CreateExpenseRequest{
		Description: "Parts", Amount: decimal.RequireFromString("12.345"),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = services.NewServiceRecordService(serviceRecords).CreateService(ctx, "u1", dto.CreateServiceRequest{
		Description: "Engine", Price: decimal.RequireFromString("1e15"),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	withdrawals.AssertNotCalled(t, "SaveWithdrawal", mock.Anything, mock.Anything)
	expenses.AssertNotCalled(t, "SaveExpense", mock.Anything, mock.Anything)
	serviceRecords.AssertNotCalled(t, "SaveService", mock.Anything, mock.Anything)
}

func TestSettingService_PartyNames(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingRepository)
	svc := services.NewSettingService(repo, domain.PartyNames{Party1: "Instalador", Party2: "Oficina"}, services.WithSettingClock(fixedClock))

	repo.On("GetSetting", ctx, domain.SettingParty1Name).Return(&domain.Setting{Key: domain.SettingParty1Name, Value: "Carlos"}, nil).Once()
	repo.On("GetSetting", ctx, domain.SettingParty2Name).Return(nil, apperrors.NewNotFoundError("setting", domain.SettingParty2Name)).Once()

	names, err := svc.GetPartyNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.PartyNames{Party1: "Carlos", Party2: "Oficina"}, names)

	repo.On("UpsertSetting", ctx, domain.Setting{Key: domain.SettingParty1Name, Value: "A", UpdatedAt: fixedNow}).Return(nil).Once()
	repo.On("UpsertSetting", ctx, domain.Setting{Key: domain.SettingParty2Name, Value: "B", UpdatedAt: fixedNow}).Return(nil).Once()

	names, err = svc.UpdatePartyNames(ctx, dto.UpdatePartyNamesRequest{Party1: "A", Party2: "B"})
	require.NoError(t, err)
	assert.Equal(t, domain.PartyNames{Party1: "A", Party2: "B"}, names)
	repo.AssertExpectations(t)
}

func TestSettingService_StorageErrorIsNotDefaulted(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingRepository)
	svc := services.NewSettingService(repo, domain.PartyNames{Party1: "Instalador", Party2: "Oficina"})

	repo.On("GetSetting", ctx, domain.SettingParty1Name).Return(nil, apperrors.NewAppError(500, "db down", nil)).Once()

	_, err := svc.GetPartyNames(ctx)
	assert.ErrorIs(t, err, apperrors.ErrInfrastructure)
}

func TestHistoryService_GetHistory(t *testing.T) {
	ctx := context.Background()
	serviceRepo := new(MockServiceRecordRepository)
	expenseRepo := new(MockExpenseRepository)
	svc := services.NewHistoryService(serviceRepo, expenseRepo)

	serviceRepo.On("ListServices", mock.Anything, "u1", (*domain.ServiceStatus)(nil)).Return([]domain.ServiceRecord{
		{ID: "s1", Price: decimal.NewFromInt(100), Status: domain.ServiceCompleted},
		{ID: "s2", Price: decimal.NewFromInt(50), Status: domain.ServiceActive},
		{ID: "s3", Price: decimal.NewFromInt(20), Status: domain.ServiceCancelled},
		{ID: "s4", Price: decimal.NewFromInt(5), Status: ""},
	}, nil).Once()
	expenseRepo.On("SumExpenses", mock.Anything, "u1", (*domain.ExpenseStatus)(nil)).
		Return(domain.Totals{Count: 2, Sum: decimal.NewFromInt(40)}, nil).Once()

	view, err := svc.GetHistory(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, 4, view.TotalServices)
	assert.True(t, decimal.NewFromInt(175).Equal(view.TotalRevenue))
	assert.True(t, decimal.NewFromInt(40).Equal(view.TotalExpenses))
	assert.True(t, decimal.NewFromInt(135).Equal(view.TotalBalance))
	assert.Equal(t, map[string]int{"completed": 1, "active": 1, "cancelled": 1, "other": 1}, view.ServicesByStatus)
}

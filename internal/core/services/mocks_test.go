package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Service records ---

type MockServiceRecordRepository struct {
	mock.Mock
}

func (m *MockServiceRecordRepository) FindServiceByID(ctx context.Context, ownerID, serviceID string) (*domain.ServiceRecord, error) {
	args := m.Called(ctx, ownerID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceRecord), args.Error(1)
}

func (m *MockServiceRecordRepository) ListServices(ctx context.Context, ownerID string, status *domain.ServiceStatus) ([]domain.ServiceRecord, error) {
	args := m.Called(ctx, ownerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceRecord), args.Error(1)
}

func (m *MockServiceRecordRepository) SumServices(ctx context.Context, ownerID string, status *domain.ServiceStatus) (domain.Totals, error) {
	args := m.Called(ctx, ownerID, status)
	return args.Get(0).(domain.Totals), args.Error(1)
}

func (m *MockServiceRecordRepository) SaveService(ctx context.Context, service domain.ServiceRecord) error {
	return m.Called(ctx, service).Error(0)
}

func (m *MockServiceRecordRepository) UpdateActiveService(ctx context.Context, service domain.ServiceRecord) error {
	return m.Called(ctx, service).Error(0)
}

func (m *MockServiceRecordRepository) TransitionService(ctx context.Context, ownerID, serviceID string, from, to domain.ServiceStatus) error {
	return m.Called(ctx, ownerID, serviceID, from, to).Error(0)
}

func (m *MockServiceRecordRepository) DeleteActiveService(ctx context.Context, ownerID, serviceID string) error {
	return m.Called(ctx, ownerID, serviceID).Error(0)
}

func (m *MockServiceRecordRepository) BulkUpdateServiceStatus(ctx context.Context, ownerID string, from, to domain.ServiceStatus) (int64, error) {
	args := m.Called(ctx, ownerID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

// --- Expenses ---

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, ownerID string, status *domain.ExpenseStatus) ([]domain.Expense, error) {
	args := m.Called(ctx, ownerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SumExpenses(ctx context.Context, ownerID string, status *domain.ExpenseStatus) (domain.Totals, error) {
	args := m.Called(ctx, ownerID, status)
	return args.Get(0).(domain.Totals), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepository) DeleteActiveExpense(ctx context.Context, ownerID, expenseID string) error {
	return m.Called(ctx, ownerID, expenseID).Error(0)
}

func (m *MockExpenseRepository) BulkUpdateExpenseStatus(ctx context.Context, ownerID string, from, to domain.ExpenseStatus) (int64, error) {
	args := m.Called(ctx, ownerID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

// --- Appointments ---

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) SaveAppointment(ctx context.Context, appointment domain.Appointment) error {
	return m.Called(ctx, appointment).Error(0)
}

func (m *MockAppointmentRepository) ListAppointments(ctx context.Context, ownerID string) ([]domain.Appointment, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ListAppointmentsByDate(ctx context.Context, ownerID string, date time.Time) ([]domain.Appointment, error) {
	args := m.Called(ctx, ownerID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) DeleteAppointment(ctx context.Context, ownerID, appointmentID string) error {
	return m.Called(ctx, ownerID, appointmentID).Error(0)
}

// --- Withdrawals ---

type MockWithdrawalRepository struct {
	mock.Mock
}

func (m *MockWithdrawalRepository) ListWithdrawals(ctx context.Context, ownerID string) ([]domain.Withdrawal, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalRepository) SumWithdrawalsByParty(ctx context.Context, ownerID string) (domain.PartyTotals, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(domain.PartyTotals), args.Error(1)
}

func (m *MockWithdrawalRepository) SaveWithdrawal(ctx context.Context, withdrawal domain.Withdrawal) error {
	return m.Called(ctx, withdrawal).Error(0)
}

func (m *MockWithdrawalRepository) DeleteWithdrawal(ctx context.Context, ownerID, withdrawalID string) error {
	return m.Called(ctx, ownerID, withdrawalID).Error(0)
}

// --- Closed periods ---

type MockClosedPeriodRepository struct {
	mock.Mock
}

func (m *MockClosedPeriodRepository) SaveClosedPeriod(ctx context.Context, period domain.ClosedPeriod) error {
	return m.Called(ctx, period).Error(0)
}

func (m *MockClosedPeriodRepository) FindClosedPeriodByID(ctx context.Context, ownerID, periodID string) (*domain.ClosedPeriod, error) {
	args := m.Called(ctx, ownerID, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClosedPeriod), args.Error(1)
}

func (m *MockClosedPeriodRepository) ListClosedPeriods(ctx context.Context, ownerID string, limit int, cursor *domain.PageCursor) ([]domain.ClosedPeriod, error) {
	args := m.Called(ctx, ownerID, limit, cursor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClosedPeriod), args.Error(1)
}

// --- Settings ---

type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) GetSetting(ctx context.Context, key string) (*domain.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}

func (m *MockSettingRepository) UpsertSetting(ctx context.Context, setting domain.Setting) error {
	return m.Called(ctx, setting).Error(0)
}

// --- Transactions and collaborators ---

// MockTxManager runs fn directly against the mocked repositories.
type MockTxManager struct {
	mock.Mock
	Repos portsrepo.TxRepositories
}

func (m *MockTxManager) WithinOwnerTx(ctx context.Context, ownerID string, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	if err := m.Called(ctx, ownerID).Error(0); err != nil {
		return err
	}
	return fn(ctx, m.Repos)
}

type MockOwnerLocker struct {
	mock.Mock
	Unlocked int
}

func (m *MockOwnerLocker) Lock(ctx context.Context, ownerID string) (func(), error) {
	if err := m.Called(ctx, ownerID).Error(0); err != nil {
		return nil, err
	}
	return func() { m.Unlocked++ }, nil
}

type MockPeriodEventPublisher struct {
	mock.Mock
}

func (m *MockPeriodEventPublisher) PublishPeriodClosed(ctx context.Context, period domain.ClosedPeriod) error {
	return m.Called(ctx, period).Error(0)
}

type MockPartyNamesReader struct {
	mock.Mock
}

func (m *MockPartyNamesReader) GetPartyNames(ctx context.Context) (domain.PartyNames, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.PartyNames), args.Error(1)
}

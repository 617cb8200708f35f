package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/workshop_manager_app/internal/apperrors"
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portssvc "github.com/SscSPs/workshop_manager_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_manager_app/internal/core/services"
	"github.com/SscSPs/workshop_manager_app/internal/dto"
	"github.com/SscSPs/workshop_manager_app/internal/models"
	"github.com/SscSPs/workshop_manager_app/internal/platform/config"
	"github.com/SscSPs/workshop_manager_app/internal/platform/lock"
	"github.com/SscSPs/workshop_manager_app/internal/repositories/database/gormdb"
	"github.com/SscSPs/workshop_manager_app/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PropertiesTestSuite exercises the services end to end against a fresh in-memory SQLite store per test.
type PropertiesTestSuite struct {
	suite.Suite
	db  *gorm.DB
	svc *portssvc.ServiceContainer
	ctx context.Context
}

func (suite *PropertiesTestSuite) SetupTest() {
	db, err := database.NewGormDB(database.DialectSQLite, "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	suite.Require().NoError(err)
	suite.Require().NoError(gormdb.AutoMigrate(db))
	suite.db = db

	cfg := &config.Config{PeriodWindowDays: 30, Party1DefaultName: "Instalador", Party2DefaultName: "Oficina"}
	suite.svc = services.NewServiceContainer(cfg, gormdb.NewRepositoryProvider(db), services.Collaborators{
		Locker: lock.NewLocalOwnerLocker(),
	})
	suite.ctx = context.Background()
}

func (suite *PropertiesTestSuite) TearDownTest() {
	database.CloseGormDB(suite.db)
}

func (suite *PropertiesTestSuite) addService(owner string, price int64) *domain.ServiceRecord {
	s, err := suite.svc.Service.CreateService(suite.ctx, owner, dto.CreateServiceRequest{
		Description: "Service", Vehicle: "Car", Price: decimal.NewFromInt(price),
	})
	suite.Require().NoError(err)
	return s
}

func (suite *PropertiesTestSuite) addExpense(owner string, amount int64) *domain.Expense {
	e, err := suite.svc.Expense.CreateExpense(suite.ctx, owner, dto.CreateExpenseRequest{
		Description: "Expense", Amount: decimal.NewFromInt(amount),
	})
	suite.Require().NoError(err)
	return e
}

func (suite *PropertiesTestSuite) dashboard(owner string) *domain.DashboardView {
	view, err := suite.svc.Dashboard.GetDashboard(suite.ctx, owner)
	suite.Require().NoError(err)
	return view
}

func (suite *PropertiesTestSuite) assertMoney(expected int64, actual decimal.Decimal) {
	suite.T().Helper()
	suite.Truef(decimal.NewFromInt(expected).Equal(actual), "expected %d, got %s", expected, actual)
}

func (suite *PropertiesTestSuite) TestEmptyOwner() {
	view := suite.dashboard("nobody")

	suite.Zero(view.ActiveServicesCount)
	suite.assertMoney(0, view.TotalRevenue)
	suite.assertMoney(0, view.TotalExpenses)
	suite.assertMoney(0, view.TotalProfit)
	suite.assertMoney(0, view.Withdrawals.Party1)
	suite.assertMoney(0, view.Withdrawals.Party2)
	suite.Empty(view.Services)
	suite.Empty(view.TodaysAppointments)
	suite.Equal(domain.PartyNames{Party1: "Instalador", Party2: "Oficina"}, view.PartyNames)

	history, err := suite.svc.History.GetHistory(suite.ctx, "nobody")
	suite.Require().NoError(err)
	suite.Zero(history.TotalServices)
	suite.Empty(history.ServicesByStatus)
}

func (suite *PropertiesTestSuite) TestCloseScenario() {
	s1 := suite.addService("u1", 100)
	s2 := suite.addService("u1", 50)
	e1 := suite.addExpense("u1", 30)

	before := suite.dashboard("u1")
	suite.Equal(2, before.ActiveServicesCount)
	suite.assertMoney(150, before.TotalRevenue)
	suite.assertMoney(30, before.TotalExpenses)
	suite.assertMoney(120, before.TotalProfit)
	suite.True(before.TotalProfit.Equal(before.TotalRevenue.Sub(before.TotalExpenses)))

	historyBefore, err := suite.svc.History.GetHistory(suite.ctx, "u1")
	suite.Require().NoError(err)

	period, err := suite.svc.Period.ClosePeriod(suite.ctx, "u1")
	suite.Require().NoError(err)
	suite.Equal(2, period.TotalServices)
	suite.assertMoney(150, period.TotalValue)
	suite.assertMoney(30, period.TotalExpenses)
	suite.assertMoney(120, period.NetTotal)
	suite.True(before.TotalProfit.Equal(period.NetTotal))
	suite.Equal(30, int(period.PeriodEnd.Sub(period.PeriodStart).Hours()/24))

	after := suite.dashboard("u1")
	suite.Zero(after.ActiveServicesCount)
	suite.assertMoney(0, after.TotalRevenue)
	suite.assertMoney(0, after.TotalExpenses)

	for _, id := range []string{s1.ID, s2.ID} {
		s, err := suite.svc.Service.GetService(suite.ctx, "u1", id)
		suite.Require().NoError(err)
		suite.Equal(domain.ServiceCompleted, s.Status)
	}
	var stored models.Expense
	suite.Require().NoError(suite.db.First(&stored, "id = ?", e1.ID).Error)
	suite.Require().NotNil(stored.Status)
	suite.Equal(string(domain.ExpenseClosed), *stored.Status)

	historyAfter, err := suite.svc.History.GetHistory(suite.ctx, "u1")
	suite.Require().NoError(err)
	suite.Equal(historyBefore.TotalServices, historyAfter.TotalServices)
	suite.True(historyBefore.TotalRevenue.Equal(historyAfter.TotalRevenue))
	suite.True(historyBefore.TotalExpenses.Equal(historyAfter.TotalExpenses))
	suite.Equal(map[string]int{"completed": 2}, historyAfter.ServicesByStatus)

	stored2, err := suite.svc.Period.GetClosedPeriod(suite.ctx, "u1", period.ID)
	suite.Require().NoError(err)
	suite.assertMoney(120, stored2.NetTotal)
	suite.Equal(period.PeriodStart.Format(domain.DateLayout), stored2.PeriodStart.Format(domain.DateLayout))
}

func (suite *PropertiesTestSuite) TestFractionalAmountsCloseWithoutDrift() {
	for _, price := range []string{"0.10", "0.20", "19.99", "1234.56"} {
		_, err := suite.svc.Service.CreateService(suite.ctx, "u1", dto.CreateServiceRequest{
			Description: "Service", Price: decimal.RequireFromString(price),
		})
		suite.Require().NoError(err)
	}
	_, err := suite.svc.Expense.CreateExpense(suite.ctx, "u1", dto.CreateExpenseRequest{
		Description: "Expense", Amount: decimal.RequireFromString("0.30"),
	})
	suite.Require().NoError(err)

	before := suite.dashboard("u1")
	suite.Truef(decimal.RequireFromString("1254.85").Equal(before.TotalRevenue), "revenue %s", before.TotalRevenue)
	suite.Truef(decimal.RequireFromString("0.30").Equal(before.TotalExpenses), "expenses %s", before.TotalExpenses)
	suite.True(before.TotalProfit.Equal(before.TotalRevenue.Sub(before.TotalExpenses)))
	suite.Truef(decimal.RequireFromString("1254.55").Equal(before.TotalProfit), "profit %s", before.TotalProfit)

	period, err := suite.svc.Period.ClosePeriod(suite.ctx, "u1")
	suite.Require().NoError(err)
	suite.True(before.TotalRevenue.Equal(period.TotalValue))
	suite.True(before.TotalExpenses.Equal(period.TotalExpenses))
	suite.True(before.TotalProfit.Equal(period.NetTotal))

	stored, err := suite.svc.Period.GetClosedPeriod(suite.ctx, "u1", period.ID)
	suite.Require().NoError(err)
	suite.Equal(4, stored.TotalServices)
	suite.Truef(before.TotalRevenue.Equal(stored.TotalValue), "stored value %s", stored.TotalValue)
	suite.Truef(before.TotalProfit.Equal(stored.NetTotal), "stored net %s", stored.NetTotal)
}

func (suite *PropertiesTestSuite) TestSubCentAmountsNeverReachTheStore() {
	_, err := suite.svc.Service.CreateService(suite.ctx, "u1", dto.CreateServiceRequest{
		Description: "Service", Price: decimal.RequireFromString("10.005"),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.svc.Withdrawal.CreateWithdrawal(suite.ctx, "u1", dto.CreateWithdrawalRequest{
		Amount: decimal.RequireFromString("0.001"), Party: "party1",
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	view := suite.dashboard("u1")
	suite.Zero(view.ActiveServicesCount)
	suite.assertMoney(0, view.Withdrawals.Party1)
}

func (suite *PropertiesTestSuite) TestHistoryIsMonotonic() {
	var last decimal.Decimal
	for i, price := range []int64{10, 20, 30} {
		suite.addService("u1", price)
		h, err := suite.svc.History.GetHistory(suite.ctx, "u1")
		suite.Require().NoError(err)
		suite.Equal(i+1, h.TotalServices)
		suite.True(h.TotalRevenue.GreaterThan(last))
		last = h.TotalRevenue
	}
}

func (suite *PropertiesTestSuite) TestWithdrawalsByParty() {
	for _, w := range []struct {
		amount int64
		party  string
	}{{40, "party1"}, {5, "party1"}, {10, "party2"}} {
		_, err := suite.svc.Withdrawal.CreateWithdrawal(suite.ctx, "u1", dto.CreateWithdrawalRequest{
			Amount: decimal.NewFromInt(w.amount), Party: w.party,
		})
		suite.Require().NoError(err)
	}

	view := suite.dashboard("u1")
	suite.assertMoney(45, view.Withdrawals.Party1)
	suite.assertMoney(10, view.Withdrawals.Party2)
}

func (suite *PropertiesTestSuite) TestConsecutiveEmptyCloses() {
	first, err := suite.svc.Period.ClosePeriod(suite.ctx, "u1")
	suite.Require().NoError(err)
	second, err := suite.svc.Period.ClosePeriod(suite.ctx, "u1")
	suite.Require().NoError(err)

	suite.NotEqual(first.ID, second.ID)
	for _, p := range []*domain.ClosedPeriod{first, second} {
		suite.Zero(p.TotalServices)
		suite.assertMoney(0, p.TotalValue)
		suite.assertMoney(0, p.NetTotal)
	}

	page, err := suite.svc.Period.ListClosedPeriods(suite.ctx, "u1", dto.ListClosedPeriodsParams{})
	suite.Require().NoError(err)
	suite.Len(page.Periods, 2)
}

func (suite *PropertiesTestSuite) TestLegacyNullExpenseStatusIsActive() {
	legacy := models.Expense{
		ID: uuid.NewString(), OwnerID: "u1", Description: "legacy", Amount: decimal.NewFromInt(12), Date: "2024-01-01",
	}
	suite.Require().NoError(suite.db.Create(&legacy).Error)

	suite.assertMoney(12, suite.dashboard("u1").TotalExpenses)
	expenses, err := suite.svc.Expense.ListExpenses(suite.ctx, "u1")
	suite.Require().NoError(err)
	suite.Require().Len(expenses, 1)
	suite.Equal(domain.ExpenseActive, expenses[0].Status)

	period, err := suite.svc.Period.ClosePeriod(suite.ctx, "u1")
	suite.Require().NoError(err)
	suite.assertMoney(12, period.TotalExpenses)
	suite.assertMoney(0, suite.dashboard("u1").TotalExpenses)
}

func (suite *PropertiesTestSuite) TestCloseIsOwnerScoped() {
	suite.addService("u1", 100)
	suite.addService("u2", 70)
	suite.addExpense("u2", 20)

	_, err := suite.svc.Period.ClosePeriod(suite.ctx, "u1")
	suite.Require().NoError(err)

	other := suite.dashboard("u2")
	suite.Equal(1, other.ActiveServicesCount)
	suite.assertMoney(50, other.TotalProfit)

	page, err := suite.svc.Period.ListClosedPeriods(suite.ctx, "u2", dto.ListClosedPeriodsParams{})
	suite.Require().NoError(err)
	suite.Empty(page.Periods)
}

func (suite *PropertiesTestSuite) TestCloseRollsBackOnTransitionFailure() {
	suite.addService("u1", 100)
	suite.addExpense("u1", 30)

	err := suite.db.Callback().Update().Before("gorm:update").Register("test:fail_expense_close", func(tx *gorm.DB) {
		if tx.Statement.Table == "expenses" {
			_ = tx.AddError(errors.New("disk full"))
		}
	})
	suite.Require().NoError(err)

	_, err = suite.svc.Period.ClosePeriod(suite.ctx, "u1")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConsistency)

	var snapshots int64
	suite.Require().NoError(suite.db.Model(&models.ClosedPeriod{}).Count(&snapshots).Error)
	suite.Zero(snapshots)

	view := suite.dashboard("u1")
	suite.Equal(1, view.ActiveServicesCount)
	suite.assertMoney(70, view.TotalProfit)
}

func (suite *PropertiesTestSuite) TestFrozenAfterClose() {
	s := suite.addService("u1", 100)
	e := suite.addExpense("u1", 10)
	_, err := suite.svc.Period.ClosePeriod(suite.ctx, "u1")
	suite.Require().NoError(err)

	price := decimal.NewFromInt(1)
	_, err = suite.svc.Service.UpdateService(suite.ctx, "u1", s.ID, dto.UpdateServiceRequest{Price: &price})
	suite.ErrorIs(err, apperrors.ErrConflict)

	suite.ErrorIs(suite.svc.Service.DeleteService(suite.ctx, "u1", s.ID), apperrors.ErrNotFound)
	suite.ErrorIs(suite.svc.Expense.DeleteExpense(suite.ctx, "u1", e.ID), apperrors.ErrNotFound)
	_, err = suite.svc.Service.CancelService(suite.ctx, "u1", s.ID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PropertiesTestSuite) TestTodaysAppointmentsOrderedByTime() {
	today := time.Now().UTC().Format(domain.DateLayout)
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format(domain.DateLayout)
	for _, a := range []dto.CreateAppointmentRequest{
		{Date: today, Time: "15:00", Client: "B"},
		{Date: today, Time: "08:30", Client: "A"},
		{Date: tomorrow, Time: "09:00", Client: "C"},
	} {
		_, err := suite.svc.Appointment.CreateAppointment(suite.ctx, "u1", a)
		suite.Require().NoError(err)
	}

	view := suite.dashboard("u1")
	suite.Require().Len(view.TodaysAppointments, 2)
	suite.Equal("A", view.TodaysAppointments[0].Client)
	suite.Equal("B", view.TodaysAppointments[1].Client)
}

func (suite *PropertiesTestSuite) TestPartyNamesRoundTrip() {
	_, err := suite.svc.Setting.UpdatePartyNames(suite.ctx, dto.UpdatePartyNamesRequest{Party1: "Ana", Party2: "Taller"})
	suite.Require().NoError(err)

	suite.Equal(domain.PartyNames{Party1: "Ana", Party2: "Taller"}, suite.dashboard("anyone").PartyNames)
}

func TestPropertiesTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping SQLite-backed tests in short mode")
	}
	suite.Run(t, new(PropertiesTestSuite))
}

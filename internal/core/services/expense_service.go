package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/workshop_manager_app/internal/apperrors"
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workshop_manager_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_manager_app/internal/dto"
	"github.com/SscSPs/workshop_manager_app/internal/utils/validation"
	"github.com/google/uuid"
)

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// ExpenseServiceOption configures the expense service
type ExpenseServiceOption func(*expenseService)

// WithExpenseClock overrides the clock used for the default expense date.
func WithExpenseClock(clock Clock) ExpenseServiceOption {
	return func(s *expenseService) {
		s.clock = clock
	}
}

func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade, options ...ExpenseServiceOption) portssvc.ExpenseSvcFacade {
	svc := &expenseService{expenseRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, ownerID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	date := s.Today()
	if req.Date != "" {
		parsed, err := time.Parse(domain.DateLayout, req.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("date must be YYYY-MM-DD")
		}
		date = parsed
	}

	expense := domain.Expense{
		ID:          uuid.NewString(),
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		Status:      domain.ExpenseActive,
		Ownership:   domain.Ownership{OwnerID: ownerID, CreatedAt: s.Now()},
	}
	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("owner_id", ownerID))
		return nil, err
	}
	return &expense, nil
}

// ListExpenses returns the owner's active expenses.
func (s *expenseService) ListExpenses(ctx context.Context, ownerID string) ([]domain.Expense, error) {
	active := domain.ExpenseActive
	expenses, err := s.expenseRepo.ListExpenses(ctx, ownerID, &active)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", slog.String("owner_id", ownerID))
		return nil, err
	}
	return expenses, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, ownerID, expenseID string) error {
	if err := s.expenseRepo.DeleteActiveExpense(ctx, ownerID, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return err
	}
	return nil
}

package repositories

import (
	"context"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
)

// ExpenseReader defines read operations for expenses.
// Rows stored without a status are treated as active by every implementation.
type ExpenseReader interface {
	ListExpenses(ctx context.Context, ownerID string, status *domain.ExpenseStatus) ([]domain.Expense, error)
	SumExpenses(ctx context.Context, ownerID string, status *domain.ExpenseStatus) (domain.Totals, error)
}

// ExpenseWriter defines write operations for expenses
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// DeleteActiveExpense returns ErrNotFound when the row is missing or closed.
	DeleteActiveExpense(ctx context.Context, ownerID, expenseID string) error

	BulkUpdateExpenseStatus(ctx context.Context, ownerID string, from, to domain.ExpenseStatus) (int64, error)
}

// ExpenseRepositoryFacade combines all expense repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}

package gormdb

import (
	"context"

	"github.com/SscSPs/workshop_manager_app/internal/apperrors"
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	"github.com/SscSPs/workshop_manager_app/internal/models"
	"github.com/SscSPs/workshop_manager_app/internal/utils/accounting"
	"github.com/SscSPs/workshop_manager_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GormExpenseRepository struct {
	BaseRepository
}

func newGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*GormExpenseRepository)(nil)

func (r *GormExpenseRepository) filtered(ctx context.Context, ownerID string, status *domain.ExpenseStatus) *gorm.DB {
	q := r.conn(ctx).Model(&models.Expense{}).Scopes(ownedBy(ownerID))
	if status != nil {
		q = q.Scopes(expenseStatusIs(*status))
	}
	return q
}

func (r *GormExpenseRepository) ListExpenses(ctx context.Context, ownerID string, status *domain.ExpenseStatus) ([]domain.Expense, error) {
	var rows []models.Expense
	if err := r.filtered(ctx, ownerID, status).Order("date DESC, created_at DESC").Find(&rows).Error; err != nil {
		return nil, storageError("failed to query expenses", err)
	}
	return mapping.ToDomainExpenseSlice(rows), nil
}

func (r *GormExpenseRepository) SumExpenses(ctx context.Context, ownerID string, status *domain.ExpenseStatus) (domain.Totals, error) {
	var amounts []decimal.Decimal
	if err := r.filtered(ctx, ownerID, status).Pluck("amount", &amounts).Error; err != nil {
		return domain.Totals{}, storageError("failed to sum expenses", err)
	}
	return domain.Totals{Count: len(amounts), Sum: accounting.Sum(amounts)}, nil
}

func (r *GormExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	if err := r.conn(ctx).Create(&m).Error; err != nil {
		return storageError("failed to insert expense "+m.ID, err)
	}
	return nil
}

func (r *GormExpenseRepository) DeleteActiveExpense(ctx context.Context, ownerID, expenseID string) error {
	res := r.conn(ctx).Scopes(ownedBy(ownerID), expenseStatusIs(domain.ExpenseActive)).
		Where("id = ?", expenseID).
		Delete(&models.Expense{})
	if res.Error != nil {
		return storageError("failed to delete expense "+expenseID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("active expense", expenseID)
	}
	return nil
}

func (r *GormExpenseRepository) BulkUpdateExpenseStatus(ctx context.Context, ownerID string, from, to domain.ExpenseStatus) (int64, error) {
	res := r.filtered(ctx, ownerID, &from).Update("status", string(to))
	if res.Error != nil {
		return 0, storageError("failed to bulk update expenses", res.Error)
	}
	return res.RowsAffected, nil
}

package dto

import (
	"time"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense. Date defaults to today.
type CreateExpenseRequest struct {
	Description string          `json:"description" binding:"required" validate:"required,max=500"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0,money"`
	Date        string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func ToExpenseResponse(e domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date.Format(domain.DateLayout),
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
	}
}

func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		res[i] = ToExpenseResponse(e)
	}
	return res
}

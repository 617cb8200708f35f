package dto

import (
	"time"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWithdrawalRequest defines the data needed to record a withdrawal by one party.
type CreateWithdrawalRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"gt=0,money"`
	Party       string          `json:"party" binding:"required" validate:"required,oneof=party1 party2"`
	Description string          `json:"description" validate:"max=500"`
}

type WithdrawalResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Party       string          `json:"party"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func ToWithdrawalResponse(w domain.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		ID:          w.ID,
		Amount:      w.Amount,
		Party:       string(w.Party),
		Description: w.Description,
		CreatedAt:   w.CreatedAt,
	}
}

func ToListWithdrawalResponse(withdrawals []domain.Withdrawal) []WithdrawalResponse {
	res := make([]WithdrawalResponse, len(withdrawals))
	for i, w := range withdrawals {
		res[i] = ToWithdrawalResponse(w)
	}
	return res
}

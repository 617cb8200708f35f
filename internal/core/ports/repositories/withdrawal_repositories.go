package repositories

import (
	"context"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
)

// WithdrawalReader defines read operations for withdrawals
type WithdrawalReader interface {
	ListWithdrawals(ctx context.Context, ownerID string) ([]domain.Withdrawal, error)

	// SumWithdrawalsByParty returns all-time totals. A party with no rows sums to zero.
	SumWithdrawalsByParty(ctx context.Context, ownerID string) (domain.PartyTotals, error)
}

// WithdrawalWriter defines write operations for withdrawals
type WithdrawalWriter interface {
	SaveWithdrawal(ctx context.Context, withdrawal domain.Withdrawal) error
	DeleteWithdrawal(ctx context.Context, ownerID, withdrawalID string) error
}

// WithdrawalRepositoryFacade combines all withdrawal repository interfaces
type WithdrawalRepositoryFacade interface {
	WithdrawalReader
	WithdrawalWriter
}

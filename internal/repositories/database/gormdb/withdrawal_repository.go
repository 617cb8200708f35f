package gormdb

import (
	"context"

	"github.com/SscSPs/workshop_manager_app/internal/apperrors"
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	"github.com/SscSPs/workshop_manager_app/internal/models"
	"github.com/SscSPs/workshop_manager_app/internal/utils/mapping"
	"gorm.io/gorm"
)

type GormWithdrawalRepository struct {
	BaseRepository
}

func newGormWithdrawalRepository(db *gorm.DB) *GormWithdrawalRepository {
	return &GormWithdrawalRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.WithdrawalRepositoryFacade = (*GormWithdrawalRepository)(nil)

func (r *GormWithdrawalRepository) SaveWithdrawal(ctx context.Context, withdrawal domain.Withdrawal) error {
	m := mapping.ToModelWithdrawal(withdrawal)
	if err := r.conn(ctx).Create(&m).Error; err != nil {
		return storageError("failed to insert withdrawal "+m.ID, err)
	}
	return nil
}

func (r *GormWithdrawalRepository) ListWithdrawals(ctx context.Context, ownerID string) ([]domain.Withdrawal, error) {
	var rows []models.Withdrawal
	if err := r.conn(ctx).Scopes(ownedBy(ownerID)).Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, storageError("failed to query withdrawals", err)
	}
	return mapping.ToDomainWithdrawalSlice(rows), nil
}

// SumWithdrawalsByParty groups in Go over (party, amount) pairs to keep decimal precision on SQLite.
func (r *GormWithdrawalRepository) SumWithdrawalsByParty(ctx context.Context, ownerID string) (domain.PartyTotals, error) {
	var rows []models.Withdrawal
	if err := r.conn(ctx).Scopes(ownedBy(ownerID)).Select("party", "amount").Find(&rows).Error; err != nil {
		return domain.PartyTotals{}, storageError("failed to sum withdrawals", err)
	}
	var totals domain.PartyTotals
	for _, row := range rows {
		totals.Add(domain.Party(row.Party), row.Amount)
	}
	return totals, nil
}

func (r *GormWithdrawalRepository) DeleteWithdrawal(ctx context.Context, ownerID, withdrawalID string) error {
	res := r.conn(ctx).Scopes(ownedBy(ownerID)).Where("id = ?", withdrawalID).Delete(&models.Withdrawal{})
	if res.Error != nil {
		return storageError("failed to delete withdrawal "+withdrawalID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("withdrawal", withdrawalID)
	}
	return nil
}

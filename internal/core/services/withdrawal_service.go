package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workshop_manager_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workshop_manager_app/internal/core/ports/services"
	"github.com/SscSPs/workshop_manager_app/internal/dto"
	"github.com/SscSPs/workshop_manager_app/internal/utils/validation"
	"github.com/google/uuid"
)

type withdrawalService struct {
	BaseService
	withdrawalRepo portsrepo.WithdrawalRepositoryFacade
}

func NewWithdrawalService(repo portsrepo.WithdrawalRepositoryFacade) portssvc.WithdrawalSvcFacade {
	return &withdrawalService{withdrawalRepo: repo}
}

var _ portssvc.WithdrawalSvcFacade = (*withdrawalService)(nil)

func (s *withdrawalService) CreateWithdrawal(ctx context.Context, ownerID string, req dto.CreateWithdrawalRequest) (*domain.Withdrawal, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	withdrawal := domain.Withdrawal{
		ID:          uuid.NewString(),
		Amount:      req.Amount,
		Party:       domain.Party(req.Party),
		Description: req.Description,
		Ownership:   domain.Ownership{OwnerID: ownerID, CreatedAt: s.Now()},
	}
	if err := s.withdrawalRepo.SaveWithdrawal(ctx, withdrawal); err != nil {
		s.LogError(ctx, err, "Failed to save withdrawal", slog.String("owner_id", ownerID))
		return nil, err
	}
	return &withdrawal, nil
}

func (s *withdrawalService) ListWithdrawals(ctx context.Context, ownerID string) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.ListWithdrawals(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list withdrawals", slog.String("owner_id", ownerID))
		return nil, err
	}
	return withdrawals, nil
}

func (s *withdrawalService) DeleteWithdrawal(ctx context.Context, ownerID, withdrawalID string) error {
	if err := s.withdrawalRepo.DeleteWithdrawal(ctx, ownerID, withdrawalID); err != nil {
		s.LogError(ctx, err, "Failed to delete withdrawal", slog.String("withdrawal_id", withdrawalID))
		return err
	}
	return nil
}

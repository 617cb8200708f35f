package mapping

import (
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	"github.com/SscSPs/workshop_manager_app/internal/models"
)

func ToModelWithdrawal(d domain.Withdrawal) models.Withdrawal {
	return models.Withdrawal{
		ID:          d.ID,
		OwnerID:     d.OwnerID,
		Amount:      d.Amount,
		Party:       string(d.Party),
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

func ToDomainWithdrawal(m models.Withdrawal) domain.Withdrawal {
	return domain.Withdrawal{
		ID:          m.ID,
		Amount:      m.Amount,
		Party:       domain.Party(m.Party),
		Description: m.Description,
		Ownership:   domain.Ownership{OwnerID: m.OwnerID, CreatedAt: m.CreatedAt},
	}
}

func ToDomainWithdrawalSlice(ms []models.Withdrawal) []domain.Withdrawal {
	res := make([]domain.Withdrawal, len(ms))
	for i, m := range ms {
		res[i] = ToDomainWithdrawal(m)
	}
	return res
}

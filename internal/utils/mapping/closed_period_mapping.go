package mapping

import (
	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	"github.com/SscSPs/workshop_manager_app/internal/models"
)

func ToModelClosedPeriod(d domain.ClosedPeriod) models.ClosedPeriod {
	return models.ClosedPeriod{
		ID:            d.ID,
		OwnerID:       d.OwnerID,
		TotalServices: d.TotalServices,
		TotalValue:    d.TotalValue,
		TotalExpenses: d.TotalExpenses,
		NetTotal:      d.NetTotal,
		PeriodStart:   d.PeriodStart.Format(domain.DateLayout),
		PeriodEnd:     d.PeriodEnd.Format(domain.DateLayout),
		CreatedAt:     d.CreatedAt,
	}
}

func ToDomainClosedPeriod(m models.ClosedPeriod) domain.ClosedPeriod {
	return domain.ClosedPeriod{
		ID:            m.ID,
		TotalServices: m.TotalServices,
		TotalValue:    m.TotalValue,
		TotalExpenses: m.TotalExpenses,
		NetTotal:      m.NetTotal,
		PeriodStart:   parseDate(m.PeriodStart),
		PeriodEnd:     parseDate(m.PeriodEnd),
		Ownership:     domain.Ownership{OwnerID: m.OwnerID, CreatedAt: m.CreatedAt},
	}
}

func ToDomainClosedPeriodSlice(ms []models.ClosedPeriod) []domain.ClosedPeriod {
	res := make([]domain.ClosedPeriod, len(ms))
	for i, m := range ms {
		res[i] = ToDomainClosedPeriod(m)
	}
	return res
}

func ToModelSetting(d domain.Setting) models.Setting {
	return models.Setting{Key: d.Key, Value: d.Value, UpdatedAt: d.UpdatedAt}
}

func ToDomainSetting(m models.Setting) domain.Setting {
	return domain.Setting{Key: m.Key, Value: m.Value, UpdatedAt: m.UpdatedAt}
}

package mapping

import (
	"time"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	"github.com/SscSPs/workshop_manager_app/internal/models"
)

func ToModelExpense(d domain.Expense) models.Expense {
	status := string(d.Status)
	return models.Expense{
		ID:          d.ID,
		OwnerID:     d.OwnerID,
		Description: d.Description,
		Amount:      d.Amount,
		Date:        d.Date.Format(domain.DateLayout),
		Status:      &status,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainExpense converts a storage row to a domain.Expense. A NULL status reads as active.
func ToDomainExpense(m models.Expense) domain.Expense {
	status := domain.ExpenseActive
	if m.Status != nil && *m.Status != "" {
		status = domain.ExpenseStatus(*m.Status)
	}
	return domain.Expense{
		ID:          m.ID,
		Description: m.Description,
		Amount:      m.Amount,
		Date:        parseDate(m.Date),
		Status:      status,
		Ownership:   domain.Ownership{OwnerID: m.OwnerID, CreatedAt: m.CreatedAt},
	}
}

func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	res := make([]domain.Expense, len(ms))
	for i, m := range ms {
		res[i] = ToDomainExpense(m)
	}
	return res
}

// parseDate reads a stored YYYY-MM-DD value. Anything longer (a full timestamp) is truncated first.
func parseDate(s string) time.Time {
	if len(s) > len(domain.DateLayout) {
		s = s[:len(domain.DateLayout)]
	}
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

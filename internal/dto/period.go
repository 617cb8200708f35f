package dto

import (
	"time"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClosedPeriodResponse is the snapshot written by a period close.
type ClosedPeriodResponse struct {
	ID            string          `json:"id"`
	TotalServices int             `json:"total_services"`
	TotalValue    decimal.Decimal `json:"total_value"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetTotal      decimal.Decimal `json:"net_total"`
	PeriodStart   string          `json:"period_start"`
	PeriodEnd     string          `json:"period_end"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ListClosedPeriodsParams holds keyset pagination input.
type ListClosedPeriodsParams struct {
	Limit     int     `form:"limit" validate:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListClosedPeriodsResponse is one page of snapshots. NextToken is nil on the last page.
type ListClosedPeriodsResponse struct {
	Periods   []ClosedPeriodResponse `json:"periods"`
	NextToken *string                `json:"nextToken,omitempty"`
}

func ToClosedPeriodResponse(p domain.ClosedPeriod) ClosedPeriodResponse {
	return ClosedPeriodResponse{
		ID:            p.ID,
		TotalServices: p.TotalServices,
		TotalValue:    p.TotalValue,
		TotalExpenses: p.TotalExpenses,
		NetTotal:      p.NetTotal,
		PeriodStart:   p.PeriodStart.Format(domain.DateLayout),
		PeriodEnd:     p.PeriodEnd.Format(domain.DateLayout),
		CreatedAt:     p.CreatedAt,
	}
}

func ToListClosedPeriodResponse(periods []domain.ClosedPeriod) []ClosedPeriodResponse {
	res := make([]ClosedPeriodResponse, len(periods))
	for i, p := range periods {
		res[i] = ToClosedPeriodResponse(p)
	}
	return res
}

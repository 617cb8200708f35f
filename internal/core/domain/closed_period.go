package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClosedPeriod is an immutable snapshot written by a period close.
type ClosedPeriod struct {
	ID            string          `json:"id"`
	TotalServices int             `json:"total_services"`
	TotalValue    decimal.Decimal `json:"total_value"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetTotal      decimal.Decimal `json:"net_total"`
	PeriodStart   time.Time       `json:"period_start"`
	PeriodEnd     time.Time       `json:"period_end"`
	Ownership
}

// PeriodWindow returns the [end-days, end] calendar window for a close happening on end.
func PeriodWindow(end time.Time, days int) (time.Time, time.Time) {
	y, m, d := end.Date()
	endDate := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return endDate.AddDate(0, 0, -days), endDate
}

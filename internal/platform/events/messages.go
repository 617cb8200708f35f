package events

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/workshop_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	EventPeriodClosed   = "period.closed"
	messageVersion      = 1
	contentTypeJSONBody = "application/json"
)

// PeriodClosedMessage is published once a period close has committed.
type PeriodClosedMessage struct {
	Event         string          `json:"event"`
	Version       int             `json:"version"`
	PeriodID      string          `json:"period_id"`
	OwnerID       string          `json:"owner_id"`
	TotalServices int             `json:"total_services"`
	TotalValue    decimal.Decimal `json:"total_value"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetTotal      decimal.Decimal `json:"net_total"`
	PeriodStart   string          `json:"period_start"`
	PeriodEnd     string          `json:"period_end"`
	ClosedAt      time.Time       `json:"closed_at"`
}

func NewPeriodClosedMessage(p domain.ClosedPeriod) PeriodClosedMessage {
	return PeriodClosedMessage{
		Event:         EventPeriodClosed,
		Version:       messageVersion,
		PeriodID:      p.ID,
		OwnerID:       p.OwnerID,
		TotalServices: p.TotalServices,
		TotalValue:    p.TotalValue,
		TotalExpenses: p.TotalExpenses,
		NetTotal:      p.NetTotal,
		PeriodStart:   p.PeriodStart.Format(domain.DateLayout),
		PeriodEnd:     p.PeriodEnd.Format(domain.DateLayout),
		ClosedAt:      p.CreatedAt,
	}
}

func (m PeriodClosedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

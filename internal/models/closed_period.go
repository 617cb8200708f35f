package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClosedPeriod is an append-only snapshot row.
type ClosedPeriod struct {
	ID            string          `gorm:"primaryKey;type:varchar(36)"`
	OwnerID       string          `gorm:"type:varchar(64);not null;index:idx_closed_periods_owner_created,priority:1"`
	TotalServices int             `gorm:"not null"`
	TotalValue    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	TotalExpenses decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	NetTotal      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	PeriodStart   string          `gorm:"type:varchar(10);not null"`
	PeriodEnd     string          `gorm:"type:varchar(10);not null"`
	CreatedAt     time.Time       `gorm:"not null;index:idx_closed_periods_owner_created,priority:2"`
}

func (ClosedPeriod) TableName() string { return "closed_periods" }

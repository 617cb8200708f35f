package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Withdrawal struct {
	ID          string          `gorm:"primaryKey;type:varchar(36)"`
	OwnerID     string          `gorm:"type:varchar(64);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Party       string          `gorm:"column:party;type:varchar(16);not null"`
	Description string          `gorm:"type:text;not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

func (Withdrawal) TableName() string { return "withdrawals" }

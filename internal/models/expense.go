package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the storage row of the expenses table. A NULL status predates status tracking.
type Expense struct {
	ID          string          `gorm:"primaryKey;type:varchar(36)"`
	OwnerID     string          `gorm:"type:varchar(64);not null;index:idx_expenses_owner_status,priority:1"`
	Description string          `gorm:"type:text;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Date        string          `gorm:"type:varchar(10);not null"`
	Status      *string         `gorm:"type:varchar(16);index:idx_expenses_owner_status,priority:2"`
	CreatedAt   time.Time       `gorm:"not null"`
}

func (Expense) TableName() string { return "expenses" }

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceRecord is the storage row of the services table.
// Status is nullable in storage; rows written by this service always set it.
type ServiceRecord struct {
	ID          string          `gorm:"primaryKey;type:varchar(36)"`
	OwnerID     string          `gorm:"type:varchar(64);not null;index:idx_services_owner_status,priority:1"`
	Description string          `gorm:"type:text;not null"`
	Vehicle     string          `gorm:"type:varchar(200);not null;default:''"`
	Price       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Status      *string         `gorm:"type:varchar(16);index:idx_services_owner_status,priority:2"`
	CreatedAt   time.Time       `gorm:"not null"`
}

func (ServiceRecord) TableName() string { return "services" }

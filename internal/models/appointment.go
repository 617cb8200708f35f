package models

import "time"

type Appointment struct {
	ID                 string    `gorm:"primaryKey;type:varchar(36)"`
	OwnerID            string    `gorm:"type:varchar(64);not null;index:idx_appointments_owner_date,priority:1"`
	Date               string    `gorm:"type:varchar(10);not null;index:idx_appointments_owner_date,priority:2"`
	Time               string    `gorm:"type:varchar(5);not null"`
	Client             string    `gorm:"type:varchar(200);not null"`
	ServiceDescription string    `gorm:"type:text;not null"`
	CreatedAt          time.Time `gorm:"not null"`
}

func (Appointment) TableName() string { return "appointments" }

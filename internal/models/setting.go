package models

import "time"

type Setting struct {
	Key       string    `gorm:"column:setting_key;primaryKey;type:varchar(64)"`
	Value     string    `gorm:"column:setting_value;type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Setting) TableName() string { return "system_settings" }

package repository

import (
	"time"

	"gorm.io/datatypes"
)

// Entry is one stored snapshot value.
type Entry struct {
	Key       string         `gorm:"column:entry_key;type:varchar(191);primaryKey"`
	Value     datatypes.JSON `gorm:"column:value;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null"`
}

func (Entry) TableName() string { return "kv_entries" }

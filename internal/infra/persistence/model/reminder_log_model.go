package model

import (
	"time"

	"github.com/google/uuid"
)

// ReminderLogModel mirrors the 'reminder_logs' table, one row per device push attempt.
type ReminderLogModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ItemID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null"`
	DeviceID     *uuid.UUID `gorm:"type:uuid"`
	Kind         string     `gorm:"type:varchar(20);not null"`
	Status       string     `gorm:"type:varchar(20);not null"`
	FCMMessageID string     `gorm:"type:varchar(255)"`
	ErrorMessage string     `gorm:"type:text"`
	SentAt       time.Time  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ReminderLogModel) TableName() string {
	return "reminder_logs"
}

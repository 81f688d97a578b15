package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceTokenModel is the GORM-specific struct for the 'device_tokens' table.
// (user_id, token) is unique; rows are deactivated, never deleted.
type DeviceTokenModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     string    `gorm:"type:text;not null;uniqueIndex:idx_device_tokens_user_token,priority:1"`
	Token      string    `gorm:"type:text;not null;uniqueIndex:idx_device_tokens_user_token,priority:2;index:idx_device_tokens_token"`
	Platform   string    `gorm:"type:varchar(16);not null"`
	IsActive   bool      `gorm:"not null;index"`
	DeviceName *string   `gorm:"type:text"`
	AppVersion *string   `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}

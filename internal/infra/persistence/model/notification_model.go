package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationRecordModel is the GORM-specific struct for the 'notification_records' table.
// It is append-only: one row per recipient user per dispatch.
type NotificationRecordModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID      string            `gorm:"type:text;not null;index:idx_notification_records_user_created,priority:1"`
	BookingID   *string           `gorm:"type:text"`
	Type        string            `gorm:"type:varchar(32);not null"`
	Title       string            `gorm:"type:text;not null"`
	Body        string            `gorm:"type:text;not null"`
	Payload     map[string]string `gorm:"type:jsonb;serializer:json"`
	DeliveredAt *time.Time
	CreatedAt   time.Time `gorm:"index:idx_notification_records_user_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationRecordModel) TableName() string {
	return "notification_records"
}

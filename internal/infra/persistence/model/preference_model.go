package model

import "time"

// NotificationPreferencesModel is the GORM-specific struct for the 'notification_preferences' table.
// Flags carry no column default so that false survives inserts.
type NotificationPreferencesModel struct {
	UserID                  string `gorm:"type:text;primaryKey"`
	PushEnabled             bool   `gorm:"not null"`
	BookingConfirmedEnabled bool   `gorm:"not null"`
	BookingRejectedEnabled  bool   `gorm:"not null"`
	NewBookingStaffEnabled  bool   `gorm:"not null"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationPreferencesModel) TableName() string {
	return "notification_preferences"
}

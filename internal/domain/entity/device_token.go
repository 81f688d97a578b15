// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform identifies the OS family a push token was issued for.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
)

// IsValid checks if the Platform is a known value.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
		return true
	default:
		return false
	}
}

// DeviceToken represents a push-capable token registered by a user.
// A user may hold many tokens; (UserID, Token) is unique.
type DeviceToken struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"user_id"`  // Identity-provider user id.
	Token      string    `json:"token"`    // FCM registration token or Expo push token.
	Platform   Platform  `json:"platform"` // ios, android or web.
	IsActive   bool      `json:"is_active"`
	DeviceName string    `json:"device_name,omitempty"`
	AppVersion string    `json:"app_version,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DeviceMetadata is the optional descriptive data sent alongside a token.
type DeviceMetadata struct {
	DeviceName string `json:"device_name,omitempty"`
	AppVersion string `json:"app_version,omitempty"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType tags an intent and selects its payload variant.
type NotificationType string

const (
	TypeBookingConfirmed NotificationType = "booking_confirmed"
	TypeBookingRejected  NotificationType = "booking_rejected"
	TypeBookingCancelled NotificationType = "booking_cancelled"
	TypeNewBooking       NotificationType = "new_booking"
)

// IsValid checks if the NotificationType is a known value.
func (t NotificationType) IsValid() bool {
	switch t {
	case TypeBookingConfirmed, TypeBookingRejected, TypeBookingCancelled, TypeNewBooking:
		return true
	default:
		return false
	}
}

// Category maps the type onto the preference toggle that gates it.
func (t NotificationType) Category() Category {
	switch t {
	case TypeBookingConfirmed:
		return CategoryBookingConfirmed
	case TypeBookingRejected, TypeBookingCancelled:
		return CategoryBookingRejected
	case TypeNewBooking:
		return CategoryNewBookingStaff
	default:
		return ""
	}
}

// NotificationRecord is an append-only delivery log entry, one per recipient user per dispatch.
type NotificationRecord struct {
	ID          uuid.UUID         `json:"id"`
	UserID      string            `json:"user_id"`
	BookingID   *string           `json:"booking_id,omitempty"`
	Type        NotificationType  `json:"type"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Payload     map[string]string `json:"payload,omitempty"`
	DeliveredAt *time.Time        `json:"delivered_at,omitempty"` // Nil when no token of the user was accepted.
	CreatedAt   time.Time         `json:"created_at"`
}

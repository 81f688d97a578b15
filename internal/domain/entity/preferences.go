package entity

import "time"

// Category groups notification types under one user-facing toggle.
type Category string

const (
	CategoryBookingConfirmed Category = "booking_confirmed"
	// CategoryBookingRejected also governs cancellations.
	CategoryBookingRejected Category = "booking_rejected"
	CategoryNewBookingStaff Category = "new_booking_staff"
)

// IsValid checks if the Category is a known value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryBookingConfirmed, CategoryBookingRejected, CategoryNewBookingStaff:
		return true
	default:
		return false
	}
}

// NotificationPreferences holds a user's push opt-ins. Exactly one record exists per user.
type NotificationPreferences struct {
	UserID                  string    `json:"user_id"`
	PushEnabled             bool      `json:"push_enabled"`
	BookingConfirmedEnabled bool      `json:"booking_confirmed_enabled"`
	BookingRejectedEnabled  bool      `json:"booking_rejected_enabled"`
	NewBookingStaffEnabled  bool      `json:"new_booking_staff_enabled"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// DefaultPreferences returns the all-enabled record materialised on first read.
func DefaultPreferences(userID string, now time.Time) *NotificationPreferences {
	return &NotificationPreferences{
		UserID:                  userID,
		PushEnabled:             true,
		BookingConfirmedEnabled: true,
		BookingRejectedEnabled:  true,
		NewBookingStaffEnabled:  true,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
}

// Allows reports whether a push in the given category may be sent.
// The global flag gates every category.
func (p *NotificationPreferences) Allows(category Category) bool {
	if p == nil || !p.PushEnabled {
		return false
	}

	switch category {
	case CategoryBookingConfirmed:
		return p.BookingConfirmedEnabled
	case CategoryBookingRejected:
		return p.BookingRejectedEnabled
	case CategoryNewBookingStaff:
		return p.NewBookingStaffEnabled
	default:
		return false
	}
}

// PreferencesPatch is a partial update; nil fields are left untouched.
type PreferencesPatch struct {
	PushEnabled             *bool `json:"push_enabled,omitempty"`
	BookingConfirmedEnabled *bool `json:"booking_confirmed_enabled,omitempty"`
	BookingRejectedEnabled  *bool `json:"booking_rejected_enabled,omitempty"`
	NewBookingStaffEnabled  *bool `json:"new_booking_staff_enabled,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p PreferencesPatch) IsEmpty() bool {
	return p.PushEnabled == nil &&
		p.BookingConfirmedEnabled == nil &&
		p.BookingRejectedEnabled == nil &&
		p.NewBookingStaffEnabled == nil
}

// Apply writes the non-nil patch fields onto the record.
func (p *NotificationPreferences) Apply(patch PreferencesPatch, now time.Time) {
	if patch.PushEnabled != nil {
		p.PushEnabled = *patch.PushEnabled
	}
	if patch.BookingConfirmedEnabled != nil {
		p.BookingConfirmedEnabled = *patch.BookingConfirmedEnabled
	}
	if patch.BookingRejectedEnabled != nil {
		p.BookingRejectedEnabled = *patch.BookingRejectedEnabled
	}
	if patch.NewBookingStaffEnabled != nil {
		p.NewBookingStaffEnabled = *patch.NewBookingStaffEnabled
	}
	p.UpdatedAt = now
}

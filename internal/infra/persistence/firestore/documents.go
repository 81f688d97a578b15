// Package firestore implements the persistence ports on Cloud Firestore.
package firestore

import (
	"time"

	"naguil/internal/domain/entity"

	"github.com/google/uuid"
)

// Collection names mirror the postgres tables.
const (
	collectionDeviceTokens = "device_tokens"
	collectionPreferences  = "notification_preferences"
	collectionRecords      = "notification_records"
	collectionAccounts     = "accounts"
	maxInQueryValues       = 30
	deviceTokenIDNamespace = "naguil/device_tokens"
)

// tokenNamespace scopes deterministic device token document ids.
var tokenNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte(deviceTokenIDNamespace))

// deviceTokenDocID derives a stable document id for a (user, token) pair so that
// re-registration overwrites the same document.
func deviceTokenDocID(userID, token string) uuid.UUID {
	return uuid.NewSHA1(tokenNamespace, []byte(userID+"\x00"+token))
}

type deviceTokenDoc struct {
	UserID     string    `firestore:"user_id"`
	Token      string    `firestore:"token"`
	Platform   string    `firestore:"platform"`
	IsActive   bool      `firestore:"is_active"`
	DeviceName string    `firestore:"device_name,omitempty"`
	AppVersion string    `firestore:"app_version,omitempty"`
	CreatedAt  time.Time `firestore:"created_at"`
	UpdatedAt  time.Time `firestore:"updated_at"`
}

type preferencesDoc struct {
	UserID                  string    `firestore:"user_id"`
	PushEnabled             bool      `firestore:"push_enabled"`
	BookingConfirmedEnabled bool      `firestore:"booking_confirmed_enabled"`
	BookingRejectedEnabled  bool      `firestore:"booking_rejected_enabled"`
	NewBookingStaffEnabled  bool      `firestore:"new_booking_staff_enabled"`
	CreatedAt               time.Time `firestore:"created_at"`
	UpdatedAt               time.Time `firestore:"updated_at"`
}

type recordDoc struct {
	UserID      string            `firestore:"user_id"`
	BookingID   *string           `firestore:"booking_id"`
	Type        string            `firestore:"type"`
	Title       string            `firestore:"title"`
	Body        string            `firestore:"body"`
	Payload     map[string]string `firestore:"payload,omitempty"`
	DeliveredAt *time.Time        `firestore:"delivered_at"`
	CreatedAt   time.Time         `firestore:"created_at"`
}

type accountDoc struct {
	UserID     string  `firestore:"user_id"`
	Role       string  `firestore:"role"`
	BranchID   *int64  `firestore:"branch_id"`
	BranchName *string `firestore:"branch_name"`
}

// --- Mapper Functions ---

func toDeviceTokenDomain(id string, doc *deviceTokenDoc) *entity.DeviceToken {
	parsed, _ := uuid.Parse(id)

	return &entity.DeviceToken{
		ID:         parsed,
		UserID:     doc.UserID,
		Token:      doc.Token,
		Platform:   entity.Platform(doc.Platform),
		IsActive:   doc.IsActive,
		DeviceName: doc.DeviceName,
		AppVersion: doc.AppVersion,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}

func fromDeviceTokenDomain(token *entity.DeviceToken) *deviceTokenDoc {
	return &deviceTokenDoc{
		UserID:     token.UserID,
		Token:      token.Token,
		Platform:   string(token.Platform),
		IsActive:   token.IsActive,
		DeviceName: token.DeviceName,
		AppVersion: token.AppVersion,
		CreatedAt:  token.CreatedAt,
		UpdatedAt:  token.UpdatedAt,
	}
}

func toPreferencesDomain(doc *preferencesDoc) *entity.NotificationPreferences {
	return &entity.NotificationPreferences{
		UserID:                  doc.UserID,
		PushEnabled:             doc.PushEnabled,
		BookingConfirmedEnabled: doc.BookingConfirmedEnabled,
		BookingRejectedEnabled:  doc.BookingRejectedEnabled,
		NewBookingStaffEnabled:  doc.NewBookingStaffEnabled,
		CreatedAt:               doc.CreatedAt,
		UpdatedAt:               doc.UpdatedAt,
	}
}

func fromPreferencesDomain(prefs *entity.NotificationPreferences) *preferencesDoc {
	return &preferencesDoc{
		UserID:                  prefs.UserID,
		PushEnabled:             prefs.PushEnabled,
		BookingConfirmedEnabled: prefs.BookingConfirmedEnabled,
		BookingRejectedEnabled:  prefs.BookingRejectedEnabled,
		NewBookingStaffEnabled:  prefs.NewBookingStaffEnabled,
		CreatedAt:               prefs.CreatedAt,
		UpdatedAt:               prefs.UpdatedAt,
	}
}

func toRecordDomain(id string, doc *recordDoc) *entity.NotificationRecord {
	parsed, _ := uuid.Parse(id)

	return &entity.NotificationRecord{
		ID:          parsed,
		UserID:      doc.UserID,
		BookingID:   doc.BookingID,
		Type:        entity.NotificationType(doc.Type),
		Title:       doc.Title,
		Body:        doc.Body,
		Payload:     doc.Payload,
		DeliveredAt: doc.DeliveredAt,
		CreatedAt:   doc.CreatedAt,
	}
}

func fromRecordDomain(record *entity.NotificationRecord) *recordDoc {
	return &recordDoc{
		UserID:      record.UserID,
		BookingID:   record.BookingID,
		Type:        string(record.Type),
		Title:       record.Title,
		Body:        record.Body,
		Payload:     record.Payload,
		DeliveredAt: record.DeliveredAt,
		CreatedAt:   record.CreatedAt,
	}
}

// chunk splits values into slices no longer than Firestore's "in" operand limit.
func chunk(values []string) [][]string {
	var chunks [][]string
	for i := 0; i < len(values); i += maxInQueryValues {
		end := min(i+maxInQueryValues, len(values))
		chunks = append(chunks, values[i:end])
	}

	return chunks
}

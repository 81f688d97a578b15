package repository

import (
	"context"

	"naguil/internal/domain/entity"
)

// NotificationRepository defines the delivery log port.
type NotificationRepository interface {
	// BatchCreateRecords appends records in one round trip where the store allows it.
	BatchCreateRecords(ctx context.Context, records []*entity.NotificationRecord) error

	// FindRecordsByUser lists a user's records, newest first.
	FindRecordsByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.NotificationRecord, error)
}

package firestore

import (
	"context"
	"testing"
	"time"

	"naguil/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_BatchCreateAndList(t *testing.T) {
	client := setupTestClient(t)
	repo := NewNotificationRepository(client)
	ctx := context.Background()
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	bookingID := "b-1"

	records := make([]*entity.NotificationRecord, 0, 4)
	for i := range 3 {
		created := t0.Add(time.Duration(i) * time.Minute)
		records = append(records, &entity.NotificationRecord{
			ID:          uuid.New(),
			UserID:      "user-1",
			BookingID:   &bookingID,
			Type:        entity.TypeBookingConfirmed,
			Title:       "Booking confirmed",
			Body:        "See you soon",
			Payload:     map[string]string{"bookingId": bookingID, "type": "booking_confirmed"},
			DeliveredAt: &created,
			CreatedAt:   created,
		})
	}
	records = append(records, &entity.NotificationRecord{
		ID:        uuid.New(),
		UserID:    "user-2",
		Type:      entity.TypeNewBooking,
		Title:     "New booking",
		Body:      "Table for 2",
		CreatedAt: t0,
	})

	require.NoError(t, repo.BatchCreateRecords(ctx, records))

	page, err := repo.FindRecordsByUser(ctx, "user-1", 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.True(t, page[0].CreatedAt.Equal(t0.Add(2*time.Minute)))
	assert.Equal(t, records[2].ID, page[0].ID)
	assert.Equal(t, "b-1", page[0].Payload["bookingId"])
	require.NotNil(t, page[0].BookingID)

	rest, err := repo.FindRecordsByUser(ctx, "user-1", 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.True(t, rest[0].CreatedAt.Equal(t0))

	other, err := repo.FindRecordsByUser(ctx, "user-2", 10, 0)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Nil(t, other[0].DeliveredAt)
	assert.Nil(t, other[0].BookingID)
}

func TestNotificationRepository_BatchCreateRecords_DuplicateIDFails(t *testing.T) {
	client := setupTestClient(t)
	repo := NewNotificationRepository(client)
	ctx := context.Background()

	record := &entity.NotificationRecord{
		ID:        uuid.New(),
		UserID:    "user-1",
		Type:      entity.TypeBookingRejected,
		Title:     "Booking rejected",
		Body:      "Sorry",
		CreatedAt: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, repo.BatchCreateRecords(ctx, []*entity.NotificationRecord{record}))
	require.Error(t, repo.BatchCreateRecords(ctx, []*entity.NotificationRecord{record}))
	assert.Equal(t, 1, countDocs(t, client, collectionRecords))

	require.NoError(t, repo.BatchCreateRecords(ctx, nil))
}

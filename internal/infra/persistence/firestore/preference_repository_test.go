package firestore

import (
	"context"
	"testing"
	"time"

	"naguil/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceRepository_FindOrCreate_CreatesOnce(t *testing.T) {
	client := setupTestClient(t)
	repo := NewPreferenceRepository(client)
	ctx := context.Background()
	t0 := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	first, err := repo.FindOrCreate(ctx, entity.DefaultPreferences("user-1", t0))
	require.NoError(t, err)
	assert.True(t, first.PushEnabled)
	assert.True(t, first.NewBookingStaffEnabled)

	second, err := repo.FindOrCreate(ctx, entity.DefaultPreferences("user-1", t0.Add(time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, "user-1", second.UserID)
	assert.True(t, second.CreatedAt.Equal(t0))

	assert.Equal(t, 1, countDocs(t, client, collectionPreferences))
}

func TestPreferenceRepository_Save_PersistsFalseFlags(t *testing.T) {
	client := setupTestClient(t)
	repo := NewPreferenceRepository(client)
	ctx := context.Background()
	now := time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC)

	prefs, err := repo.FindOrCreate(ctx, entity.DefaultPreferences("user-1", now))
	require.NoError(t, err)

	prefs.PushEnabled = false
	prefs.BookingRejectedEnabled = false
	require.NoError(t, repo.Save(ctx, prefs))

	reloaded, err := repo.FindOrCreate(ctx, entity.DefaultPreferences("user-1", now))
	require.NoError(t, err)
	assert.False(t, reloaded.PushEnabled)
	assert.False(t, reloaded.BookingRejectedEnabled)
	assert.True(t, reloaded.BookingConfirmedEnabled)
}

func TestPreferenceRepository_FindByUserIDs_SkipsMissing(t *testing.T) {
	client := setupTestClient(t)
	repo := NewPreferenceRepository(client)
	ctx := context.Background()

	_, err := repo.FindOrCreate(ctx, entity.DefaultPreferences("user-1", time.Date(2026, 2, 3, 8, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	found, err := repo.FindByUserIDs(ctx, []string{"user-1", "user-2"})
	require.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Contains(t, found, "user-1")

	assert.Equal(t, 1, countDocs(t, client, collectionPreferences))
}

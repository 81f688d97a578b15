package firestore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"naguil/internal/domain/entity"
	"naguil/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newToken(userID, token string, at time.Time) *entity.DeviceToken {
	return &entity.DeviceToken{
		UserID:     userID,
		Token:      token,
		Platform:   entity.PlatformAndroid,
		IsActive:   true,
		DeviceName: "Pixel 8",
		CreatedAt:  at,
		UpdatedAt:  at,
	}
}

func TestDeviceRepository_UpsertToken_IsIdempotent(t *testing.T) {
	client := setupTestClient(t)
	repo := NewDeviceRepository(client)
	ctx := context.Background()
	t0 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	first := newToken("user-1", "tok-1", t0)
	require.NoError(t, repo.UpsertToken(ctx, first))

	require.NoError(t, repo.DeactivateToken(ctx, "user-1", "tok-1", t0.Add(time.Minute)))

	again := newToken("user-1", "tok-1", t0.Add(time.Hour))
	again.Platform = entity.PlatformIOS
	again.AppVersion = "2.1.0"
	require.NoError(t, repo.UpsertToken(ctx, again))

	assert.Equal(t, first.ID, again.ID)
	assert.True(t, again.CreatedAt.Equal(t0))
	assert.Equal(t, 1, countDocs(t, client, collectionDeviceTokens))

	active, err := repo.FindActiveByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, entity.PlatformIOS, active[0].Platform)
	assert.Equal(t, "2.1.0", active[0].AppVersion)
	assert.True(t, active[0].CreatedAt.Equal(t0))
	assert.True(t, active[0].UpdatedAt.Equal(t0.Add(time.Hour)))
}

func TestDeviceRepository_DeactivateToken(t *testing.T) {
	client := setupTestClient(t)
	repo := NewDeviceRepository(client)
	ctx := context.Background()
	now := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.UpsertToken(ctx, newToken("user-1", "tok-1", now)))
	require.NoError(t, repo.UpsertToken(ctx, newToken("user-1", "tok-2", now)))

	require.NoError(t, repo.DeactivateToken(ctx, "user-1", "tok-1", now))

	err := repo.DeactivateToken(ctx, "user-2", "tok-2", now)
	assert.ErrorIs(t, err, repository.ErrDeviceTokenNotFound)

	active, err := repo.FindActiveByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "tok-2", active[0].Token)
}

func TestDeviceRepository_DeactivateAllByUser(t *testing.T) {
	client := setupTestClient(t)
	repo := NewDeviceRepository(client)
	ctx := context.Background()
	now := time.Date(2026, 1, 3, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.UpsertToken(ctx, newToken("user-1", "a", now)))
	require.NoError(t, repo.UpsertToken(ctx, newToken("user-1", "b", now)))
	require.NoError(t, repo.UpsertToken(ctx, newToken("user-2", "c", now)))

	affected, err := repo.DeactivateAllByUser(ctx, "user-1", now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	affected, err = repo.DeactivateAllByUser(ctx, "user-1", now)
	require.NoError(t, err)
	assert.Zero(t, affected)

	others, err := repo.FindActiveByUser(ctx, "user-2")
	require.NoError(t, err)
	assert.Len(t, others, 1)
}

func TestDeviceRepository_DeactivateTokens_AcrossOwners(t *testing.T) {
	client := setupTestClient(t)
	repo := NewDeviceRepository(client)
	ctx := context.Background()
	now := time.Date(2026, 1, 4, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.UpsertToken(ctx, newToken("user-1", "shared", now)))
	require.NoError(t, repo.UpsertToken(ctx, newToken("user-2", "shared", now)))
	require.NoError(t, repo.UpsertToken(ctx, newToken("user-2", "keep", now)))

	affected, err := repo.DeactivateTokens(ctx, []string{"shared", "unknown"}, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	affected, err = repo.DeactivateTokens(ctx, nil, now)
	require.NoError(t, err)
	assert.Zero(t, affected)

	byUser, err := repo.FindActiveByUsers(ctx, []string{"user-1", "user-2"})
	require.NoError(t, err)
	assert.Empty(t, byUser["user-1"])
	require.Len(t, byUser["user-2"], 1)
	assert.Equal(t, "keep", byUser["user-2"][0].Token)
}

func TestDeviceRepository_LookupsSpanInQueryChunks(t *testing.T) {
	client := setupTestClient(t)
	repo := NewDeviceRepository(client)
	ctx := context.Background()
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	const users = maxInQueryValues + 5
	userIDs := make([]string, 0, users)
	tokens := make([]string, 0, users)
	for i := range users {
		userID := fmt.Sprintf("user-%02d", i)
		token := fmt.Sprintf("tok-%02d", i)
		require.NoError(t, repo.UpsertToken(ctx, newToken(userID, token, now)))
		userIDs = append(userIDs, userID)
		tokens = append(tokens, token)
	}

	byUser, err := repo.FindActiveByUsers(ctx, userIDs)
	require.NoError(t, err)
	assert.Len(t, byUser, users)
	assert.Equal(t, "tok-34", byUser["user-34"][0].Token)

	affected, err := repo.DeactivateTokens(ctx, tokens, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(users), affected)

	byUser, err = repo.FindActiveByUsers(ctx, userIDs)
	require.NoError(t, err)
	assert.Empty(t, byUser)
}

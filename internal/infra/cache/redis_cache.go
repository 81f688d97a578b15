// Package cache provides the preference read-through cache.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"naguil/internal/domain/entity"
	"naguil/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const preferenceKeyPrefix = "naguil:prefs:"

type redisPreferenceCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisPreferenceCache stores preference records as JSON with a fixed TTL
func NewRedisPreferenceCache(client redis.UniversalClient, ttl time.Duration) service.PreferenceCache {
	return &redisPreferenceCache{
		client: client,
		ttl:    ttl,
	}
}

func preferenceKey(userID string) string {
	return preferenceKeyPrefix + userID
}

func (c *redisPreferenceCache) Get(ctx context.Context, userID string) (*entity.NotificationPreferences, bool, error) {
	raw, err := c.client.Get(ctx, preferenceKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to read cached preferences")
	}

	var prefs entity.NotificationPreferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		// A corrupt entry is treated as a miss until it expires or is overwritten by Set
		return nil, false, nil
	}

	return &prefs, true, nil
}

// Fill never replaces an entry, so a read that raced an update cannot restore old flags.
func (c *redisPreferenceCache) Fill(ctx context.Context, prefs *entity.NotificationPreferences) error {
	if prefs == nil {
		return nil
	}

	raw, err := json.Marshal(prefs)
	if err != nil {
		return errors.Wrap(err, "failed to marshal preferences")
	}

	if err := c.client.SetNX(ctx, preferenceKey(prefs.UserID), raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to cache preferences")
	}

	return nil
}

func (c *redisPreferenceCache) Set(ctx context.Context, prefs *entity.NotificationPreferences) error {
	if prefs == nil {
		return nil
	}

	raw, err := json.Marshal(prefs)
	if err != nil {
		return errors.Wrap(err, "failed to marshal preferences")
	}

	if err := c.client.Set(ctx, preferenceKey(prefs.UserID), raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to cache preferences")
	}

	return nil
}

func (c *redisPreferenceCache) Delete(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, preferenceKey(userID)).Err(); err != nil {
		return errors.Wrap(err, "failed to evict cached preferences")
	}

	return nil
}

package cache

import (
	"context"

	"naguil/internal/domain/entity"
	"naguil/internal/domain/service"
)

// noopPreferenceCache always misses
type noopPreferenceCache struct{}

// NewNoopPreferenceCache is used when Redis is disabled
func NewNoopPreferenceCache() service.PreferenceCache {
	return noopPreferenceCache{}
}

func (noopPreferenceCache) Get(context.Context, string) (*entity.NotificationPreferences, bool, error) {
	return nil, false, nil
}

func (noopPreferenceCache) Fill(context.Context, *entity.NotificationPreferences) error {
	return nil
}

func (noopPreferenceCache) Set(context.Context, *entity.NotificationPreferences) error {
	return nil
}

func (noopPreferenceCache) Delete(context.Context, string) error {
	return nil
}

package service

import (
	"context"

	"naguil/internal/domain/entity"
)

// PreferenceCache is a read-through cache in front of the preference store.
type PreferenceCache interface {
	// Get returns the cached record and whether it was present.
	Get(ctx context.Context, userID string) (*entity.NotificationPreferences, bool, error)
	// Fill caches a record read from the store, unless an entry is already present.
	Fill(ctx context.Context, prefs *entity.NotificationPreferences) error
	// Set overwrites the entry with a record just written to the store.
	Set(ctx context.Context, prefs *entity.NotificationPreferences) error
	Delete(ctx context.Context, userID string) error
}

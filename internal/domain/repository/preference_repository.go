package repository

import (
	"context"

	"naguil/internal/domain/entity"
)

// PreferenceRepository defines the preference store port.
type PreferenceRepository interface {
	// FindOrCreate returns the user's record, atomically inserting defaults when absent.
	FindOrCreate(ctx context.Context, defaults *entity.NotificationPreferences) (*entity.NotificationPreferences, error)

	// FindByUserIDs returns the existing records for the given users. Users without a record are absent from the map.
	FindByUserIDs(ctx context.Context, userIDs []string) (map[string]*entity.NotificationPreferences, error)

	// Save writes the full record.
	Save(ctx context.Context, prefs *entity.NotificationPreferences) error
}

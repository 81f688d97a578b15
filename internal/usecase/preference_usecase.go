package usecase

import (
	"context"

	"naguil/internal/domain/entity"
)

// PreferenceUsecase defines the preference store use cases.
type PreferenceUsecase interface {
	// GetPreferences returns the user's record, creating the default one on first access.
	GetPreferences(ctx context.Context, userID string) (*entity.NotificationPreferences, error)

	// IsCategoryEnabled reports whether pushes of the category may reach the user.
	IsCategoryEnabled(ctx context.Context, userID string, category entity.Category) (bool, error)

	// UpdatePreferences applies a partial update.
	UpdatePreferences(ctx context.Context, userID string, patch entity.PreferencesPatch) (*entity.NotificationPreferences, error)

	// GetPreferencesForUsers bulk-reads records; users without one get defaults, nothing is written.
	GetPreferencesForUsers(ctx context.Context, userIDs []string) (map[string]*entity.NotificationPreferences, error)
}

package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "naguil/internal/delivery/context"
	"naguil/internal/domain/entity"
	domainerrors "naguil/internal/domain/errors"
	"naguil/internal/domain/repository"
	"naguil/internal/domain/service"
	"naguil/internal/errors"
	"naguil/internal/usecase"
)

type preferenceService struct {
	prefRepo repository.PreferenceRepository
	cache    service.PreferenceCache
	logger   *slog.Logger
	now      func() time.Time
}

// NewPreferenceService creates a new preference service instance
func NewPreferenceService(
	prefRepo repository.PreferenceRepository,
	cache service.PreferenceCache,
	logger *slog.Logger,
) usecase.PreferenceUsecase {
	return &preferenceService{
		prefRepo: prefRepo,
		cache:    cache,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *preferenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetPreferences returns the user's record, creating the default one on first access
func (s *preferenceService) GetPreferences(ctx context.Context, userID string) (*entity.NotificationPreferences, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("userId is required")
	}

	cached, ok, err := s.cache.Get(ctx, userID)
	if err != nil {
		s.log(ctx).Warn("[Preference] Cache read failed", slog.String("userID", userID), slog.Any("error", err))
	} else if ok {
		return cached, nil
	}

	prefs, err := s.prefRepo.FindOrCreate(ctx, entity.DefaultPreferences(userID, s.now()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load notification preferences")
	}

	if err := s.cache.Fill(ctx, prefs); err != nil {
		s.log(ctx).Warn("[Preference] Cache write failed", slog.String("userID", userID), slog.Any("error", err))
	}

	return prefs, nil
}

// IsCategoryEnabled reports whether pushes of the category may reach the user
func (s *preferenceService) IsCategoryEnabled(ctx context.Context, userID string, category entity.Category) (bool, error) {
	if !category.IsValid() {
		return false, domainerrors.ErrInvalidArgument.WithDetails("unknown category " + string(category))
	}

	prefs, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return false, err
	}

	return prefs.Allows(category), nil
}

// UpdatePreferences applies a partial update
func (s *preferenceService) UpdatePreferences(
	ctx context.Context,
	userID string,
	patch entity.PreferencesPatch,
) (*entity.NotificationPreferences, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("userId is required")
	}

	now := s.now()
	prefs, err := s.prefRepo.FindOrCreate(ctx, entity.DefaultPreferences(userID, now))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load notification preferences")
	}

	if patch.IsEmpty() {
		return prefs, nil
	}

	prefs.Apply(patch, now)
	if err := s.prefRepo.Save(ctx, prefs); err != nil {
		return nil, errors.Wrap(err, "failed to save notification preferences")
	}

	// Overwrite rather than evict so a concurrent read-through cannot refill the old flags
	if err := s.cache.Set(ctx, prefs); err != nil {
		s.log(ctx).Warn("[Preference] Cache refresh failed, evicting", slog.String("userID", userID), slog.Any("error", err))
		if err := s.cache.Delete(ctx, userID); err != nil {
			s.log(ctx).Warn("[Preference] Cache invalidation failed", slog.String("userID", userID), slog.Any("error", err))
		}
	}

	return prefs, nil
}

// GetPreferencesForUsers bulk-reads records; users without one get defaults and nothing is written
func (s *preferenceService) GetPreferencesForUsers(
	ctx context.Context,
	userIDs []string,
) (map[string]*entity.NotificationPreferences, error) {
	result := make(map[string]*entity.NotificationPreferences, len(userIDs))
	now := s.now()

	for _, chunk := range chunkStrings(userIDs, lookupChunkSize) {
		found, err := s.prefRepo.FindByUserIDs(ctx, chunk)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load notification preferences for users")
		}

		for _, userID := range chunk {
			if prefs, ok := found[userID]; ok {
				result[userID] = prefs
			} else {
				result[userID] = entity.DefaultPreferences(userID, now)
			}
		}
	}

	return result, nil
}

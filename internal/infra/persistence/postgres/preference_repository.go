package postgres

import (
	"context"

	"naguil/internal/domain/entity"
	domainerrors "naguil/internal/domain/errors"
	"naguil/internal/domain/repository"
	"naguil/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// preferenceRepository implements the repository.PreferenceRepository interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// FindOrCreate inserts the defaults when no row exists and returns the stored row.
// Concurrent first reads converge on a single row through ON CONFLICT DO NOTHING.
func (repo *preferenceRepository) FindOrCreate(
	ctx context.Context,
	defaults *entity.NotificationPreferences,
) (*entity.NotificationPreferences, error) {
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(fromPreferencesDomain(defaults)).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create default notification preferences")
	}

	var prefsM model.NotificationPreferencesModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", defaults.UserID).
		First(&prefsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification preferences")
	}

	return toPreferencesDomain(&prefsM), nil
}

// FindByUserIDs returns existing rows keyed by user id.
func (repo *preferenceRepository) FindByUserIDs(ctx context.Context, userIDs []string) (map[string]*entity.NotificationPreferences, error) {
	result := make(map[string]*entity.NotificationPreferences, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	var prefsModels []*model.NotificationPreferencesModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&prefsModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification preferences by users")
	}

	for _, prefsM := range prefsModels {
		result[prefsM.UserID] = toPreferencesDomain(prefsM)
	}

	return result, nil
}

// Save writes every flag of the record.
func (repo *preferenceRepository) Save(ctx context.Context, prefs *entity.NotificationPreferences) error {
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"push_enabled",
				"booking_confirmed_enabled",
				"booking_rejected_enabled",
				"new_booking_staff_enabled",
				"updated_at",
			}),
		}).
		Create(fromPreferencesDomain(prefs)).Error
	if err != nil {
		return domainerrors.ErrPreferencesUpdateFailed.WrapMessage(err.Error())
	}

	return nil
}

// --- Mapper Functions ---

func toPreferencesDomain(data *model.NotificationPreferencesModel) *entity.NotificationPreferences {
	if data == nil {
		return nil
	}

	return &entity.NotificationPreferences{
		UserID:                  data.UserID,
		PushEnabled:             data.PushEnabled,
		BookingConfirmedEnabled: data.BookingConfirmedEnabled,
		BookingRejectedEnabled:  data.BookingRejectedEnabled,
		NewBookingStaffEnabled:  data.NewBookingStaffEnabled,
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}
}

func fromPreferencesDomain(data *entity.NotificationPreferences) *model.NotificationPreferencesModel {
	if data == nil {
		return nil
	}

	return &model.NotificationPreferencesModel{
		UserID:                  data.UserID,
		PushEnabled:             data.PushEnabled,
		BookingConfirmedEnabled: data.BookingConfirmedEnabled,
		BookingRejectedEnabled:  data.BookingRejectedEnabled,
		NewBookingStaffEnabled:  data.NewBookingStaffEnabled,
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}
}

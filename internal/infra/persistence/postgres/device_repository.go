// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"naguil/internal/domain/entity"
	domainerrors "naguil/internal/domain/errors"
	"naguil/internal/domain/repository"
	"naguil/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// UpsertToken inserts the token or reactivates the existing (user_id, token) row.
func (repo *deviceRepository) UpsertToken(ctx context.Context, token *entity.DeviceToken) error {
	tokenM := fromDeviceTokenDomain(token)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"platform", "is_active", "device_name", "app_version", "updated_at",
			}),
		}).
		Create(tokenM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrDeviceTokenRegistrationFailed.WrapMessage("invalid device token data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device token")
	}

	// On conflict the stored row keeps its original id and created_at.
	var stored model.DeviceTokenModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND token = ?", token.UserID, token.Token).
		First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload device token")
	}

	token.ID = stored.ID
	token.CreatedAt = stored.CreatedAt
	token.UpdatedAt = stored.UpdatedAt

	return nil
}

// DeactivateToken marks a single (user, token) row inactive.
func (repo *deviceRepository) DeactivateToken(ctx context.Context, userID, token string, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceTokenModel{}).
		Where("user_id = ? AND token = ?", userID, token).
		Updates(map[string]any{"is_active": false, "updated_at": at})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate device token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceTokenNotFound
	}

	return nil
}

// DeactivateAllByUser marks every active token of the user inactive.
func (repo *deviceRepository) DeactivateAllByUser(ctx context.Context, userID string, at time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceTokenModel{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Updates(map[string]any{"is_active": false, "updated_at": at})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate user device tokens")
	}

	return result.RowsAffected, nil
}

// DeactivateTokens marks rows inactive by token value, whoever owns them.
func (repo *deviceRepository) DeactivateTokens(ctx context.Context, tokens []string, at time.Time) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DeviceTokenModel{}).
		Where("token IN ? AND is_active = ?", tokens, true).
		Updates(map[string]any{"is_active": false, "updated_at": at})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate device tokens")
	}

	return result.RowsAffected, nil
}

// FindActiveByUser retrieves the active tokens of a user, newest first.
func (repo *deviceRepository) FindActiveByUser(ctx context.Context, userID string) ([]*entity.DeviceToken, error) {
	var tokenModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active device tokens by user")
	}

	tokens := make([]*entity.DeviceToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toDeviceTokenDomain(tokenM))
	}

	return tokens, nil
}

// FindActiveByUsers retrieves active tokens for the given users, grouped by user id.
func (repo *deviceRepository) FindActiveByUsers(ctx context.Context, userIDs []string) (map[string][]*entity.DeviceToken, error) {
	result := make(map[string][]*entity.DeviceToken, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	var tokenModels []*model.DeviceTokenModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ? AND is_active = ?", userIDs, true).
		Order("user_id, created_at DESC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active device tokens by users")
	}

	for _, tokenM := range tokenModels {
		result[tokenM.UserID] = append(result[tokenM.UserID], toDeviceTokenDomain(tokenM))
	}

	return result, nil
}

// --- Mapper Functions ---

// toDeviceTokenDomain converts a GORM DeviceTokenModel to a domain DeviceToken entity.
func toDeviceTokenDomain(data *model.DeviceTokenModel) *entity.DeviceToken {
	if data == nil {
		return nil
	}

	return &entity.DeviceToken{
		ID:         data.ID,
		UserID:     data.UserID,
		Token:      data.Token,
		Platform:   entity.Platform(data.Platform),
		IsActive:   data.IsActive,
		DeviceName: derefString(data.DeviceName),
		AppVersion: derefString(data.AppVersion),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromDeviceTokenDomain converts a domain DeviceToken entity to a GORM DeviceTokenModel.
func fromDeviceTokenDomain(data *entity.DeviceToken) *model.DeviceTokenModel {
	if data == nil {
		return nil
	}

	return &model.DeviceTokenModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Token:      data.Token,
		Platform:   string(data.Platform),
		IsActive:   data.IsActive,
		DeviceName: optionalString(data.DeviceName),
		AppVersion: optionalString(data.AppVersion),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

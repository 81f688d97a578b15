package postgres

import (
	"context"

	"naguil/internal/domain/entity"
	domainerrors "naguil/internal/domain/errors"
	"naguil/internal/domain/repository"
	"naguil/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const recordInsertBatchSize = 100

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// BatchCreateRecords appends delivery records in batches.
func (repo *notificationRepository) BatchCreateRecords(ctx context.Context, records []*entity.NotificationRecord) error {
	if len(records) == 0 {
		return nil
	}

	recordModels := make([]*model.NotificationRecordModel, 0, len(records))
	for _, record := range records {
		recordModels = append(recordModels, fromRecordDomain(record))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(recordModels, recordInsertBatchSize).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(err, "duplicate notification record id")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification records")
	}

	return nil
}

// FindRecordsByUser lists a user's records, newest first.
func (repo *notificationRepository) FindRecordsByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.NotificationRecord, error) {
	var recordModels []*model.NotificationRecordModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification records by user")
	}

	records := make([]*entity.NotificationRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toRecordDomain(recordM))
	}

	return records, nil
}

// --- Mapper Functions ---

func toRecordDomain(data *model.NotificationRecordModel) *entity.NotificationRecord {
	if data == nil {
		return nil
	}

	return &entity.NotificationRecord{
		ID:          data.ID,
		UserID:      data.UserID,
		BookingID:   data.BookingID,
		Type:        entity.NotificationType(data.Type),
		Title:       data.Title,
		Body:        data.Body,
		Payload:     data.Payload,
		DeliveredAt: data.DeliveredAt,
		CreatedAt:   data.CreatedAt,
	}
}

func fromRecordDomain(data *entity.NotificationRecord) *model.NotificationRecordModel {
	if data == nil {
		return nil
	}

	return &model.NotificationRecordModel{
		ID:          data.ID,
		UserID:      data.UserID,
		BookingID:   data.BookingID,
		Type:        string(data.Type),
		Title:       data.Title,
		Body:        data.Body,
		Payload:     data.Payload,
		DeliveredAt: data.DeliveredAt,
		CreatedAt:   data.CreatedAt,
	}
}

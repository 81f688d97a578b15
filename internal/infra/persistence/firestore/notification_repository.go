package firestore

import (
	"context"
	"fmt"

	"naguil/internal/domain/entity"
	domainerrors "naguil/internal/domain/errors"
	"naguil/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// notificationRepository appends delivery records to Firestore.
type notificationRepository struct {
	client *fs.Client
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(client *fs.Client) repository.NotificationRepository {
	return &notificationRepository{
		client: client,
	}
}

// BatchCreateRecords creates one document per record through a BulkWriter.
func (repo *notificationRepository) BatchCreateRecords(ctx context.Context, records []*entity.NotificationRecord) error {
	if len(records) == 0 {
		return nil
	}

	collection := repo.client.Collection(collectionRecords)
	writer := repo.client.BulkWriter(ctx)
	jobs := make([]*fs.BulkWriterJob, 0, len(records))
	for _, record := range records {
		job, err := writer.Create(collection.Doc(record.ID.String()), fromRecordDomain(record))
		if err != nil {
			writer.End()

			return errors.Wrap(err, "failed to queue notification record")
		}
		jobs = append(jobs, job)
	}
	writer.End()

	failed := 0
	var lastErr error
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			failed++
			lastErr = err
		}
	}
	if lastErr != nil {
		return domainerrors.NewDatabaseExecuteError(lastErr,
			fmt.Sprintf("failed to create %d of %d notification records", failed, len(records)))
	}

	return nil
}

// FindRecordsByUser lists a user's records, newest first. Requires a (user_id, created_at desc) index.
func (repo *notificationRepository) FindRecordsByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.NotificationRecord, error) {
	query := repo.client.Collection(collectionRecords).
		Where("user_id", "==", userID).
		OrderBy("created_at", fs.Desc)

	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notification records by user")
	}

	records := make([]*entity.NotificationRecord, 0, len(snaps))
	for _, snap := range snaps {
		var doc recordDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode notification record")
		}
		records = append(records, toRecordDomain(snap.Ref.ID, &doc))
	}

	return records, nil
}

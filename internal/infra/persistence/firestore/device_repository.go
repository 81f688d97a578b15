package firestore

import (
	"context"
	"time"

	"naguil/internal/domain/entity"
	domainerrors "naguil/internal/domain/errors"
	"naguil/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// deviceRepository implements the repository.DeviceRepository interface on Firestore.
type deviceRepository struct {
	client *fs.Client
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(client *fs.Client) repository.DeviceRepository {
	return &deviceRepository{
		client: client,
	}
}

func (repo *deviceRepository) collection() *fs.CollectionRef {
	return repo.client.Collection(collectionDeviceTokens)
}

// UpsertToken writes the (user, token) document, keeping created_at of an existing one.
func (repo *deviceRepository) UpsertToken(ctx context.Context, token *entity.DeviceToken) error {
	id := deviceTokenDocID(token.UserID, token.Token)
	ref := repo.collection().Doc(id.String())

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *fs.Transaction) error {
		doc := fromDeviceTokenDomain(token)

		snap, err := tx.Get(ref)
		switch {
		case status.Code(err) == codes.NotFound:
		case err != nil:
			return err
		default:
			var existing deviceTokenDoc
			if err := snap.DataTo(&existing); err != nil {
				return err
			}
			doc.CreatedAt = existing.CreatedAt
		}

		token.CreatedAt = doc.CreatedAt

		return tx.Set(ref, doc)
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device token")
	}

	token.ID = id

	return nil
}

// DeactivateToken marks a single (user, token) document inactive.
func (repo *deviceRepository) DeactivateToken(ctx context.Context, userID, token string, at time.Time) error {
	ref := repo.collection().Doc(deviceTokenDocID(userID, token).String())

	_, err := ref.Update(ctx, deactivation(at))
	if status.Code(err) == codes.NotFound {
		return repository.ErrDeviceTokenNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to deactivate device token")
	}

	return nil
}

// DeactivateAllByUser marks every active token of the user inactive.
func (repo *deviceRepository) DeactivateAllByUser(ctx context.Context, userID string, at time.Time) (int64, error) {
	snaps, err := repo.collection().
		Where("user_id", "==", userID).
		Where("is_active", "==", true).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Wrap(err, "failed to find user device tokens")
	}

	return repo.deactivateSnapshots(ctx, snaps, at)
}

// DeactivateTokens marks documents inactive by token value, whoever owns them.
func (repo *deviceRepository) DeactivateTokens(ctx context.Context, tokens []string, at time.Time) (int64, error) {
	var snaps []*fs.DocumentSnapshot
	for _, part := range chunk(tokens) {
		found, err := repo.collection().
			Where("token", "in", part).
			Where("is_active", "==", true).
			Documents(ctx).GetAll()
		if err != nil {
			return 0, errors.Wrap(err, "failed to find device tokens")
		}
		snaps = append(snaps, found...)
	}

	return repo.deactivateSnapshots(ctx, snaps, at)
}

func (repo *deviceRepository) deactivateSnapshots(ctx context.Context, snaps []*fs.DocumentSnapshot, at time.Time) (int64, error) {
	if len(snaps) == 0 {
		return 0, nil
	}

	writer := repo.client.BulkWriter(ctx)
	jobs := make([]*fs.BulkWriterJob, 0, len(snaps))
	for _, snap := range snaps {
		job, err := writer.Update(snap.Ref, deactivation(at))
		if err != nil {
			writer.End()

			return 0, errors.Wrap(err, "failed to queue device token update")
		}
		jobs = append(jobs, job)
	}
	writer.End()

	var affected int64
	var firstErr error
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			if firstErr == nil {
				firstErr = err
			}

			continue
		}
		affected++
	}
	if firstErr != nil {
		return affected, errors.Wrap(firstErr, "failed to deactivate device tokens")
	}

	return affected, nil
}

// FindActiveByUser retrieves the active tokens of a user.
func (repo *deviceRepository) FindActiveByUser(ctx context.Context, userID string) ([]*entity.DeviceToken, error) {
	snaps, err := repo.collection().
		Where("user_id", "==", userID).
		Where("is_active", "==", true).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active device tokens by user")
	}

	tokens := make([]*entity.DeviceToken, 0, len(snaps))
	for _, snap := range snaps {
		var doc deviceTokenDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode device token")
		}
		tokens = append(tokens, toDeviceTokenDomain(snap.Ref.ID, &doc))
	}

	return tokens, nil
}

// FindActiveByUsers retrieves active tokens grouped by user id, querying in sub-chunks of 30.
func (repo *deviceRepository) FindActiveByUsers(ctx context.Context, userIDs []string) (map[string][]*entity.DeviceToken, error) {
	result := make(map[string][]*entity.DeviceToken, len(userIDs))

	for _, part := range chunk(userIDs) {
		snaps, err := repo.collection().
			Where("user_id", "in", part).
			Where("is_active", "==", true).
			Documents(ctx).GetAll()
		if err != nil {
			return nil, errors.Wrap(err, "failed to find active device tokens by users")
		}

		for _, snap := range snaps {
			var doc deviceTokenDoc
			if err := snap.DataTo(&doc); err != nil {
				return nil, errors.Wrap(err, "failed to decode device token")
			}
			result[doc.UserID] = append(result[doc.UserID], toDeviceTokenDomain(snap.Ref.ID, &doc))
		}
	}

	return result, nil
}

func deactivation(at time.Time) []fs.Update {
	return []fs.Update{
		{Path: "is_active", Value: false},
		{Path: "updated_at", Value: at},
	}
}

package firestore

import (
	"context"

	"naguil/internal/domain/entity"
	domainerrors "naguil/internal/domain/errors"
	"naguil/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// preferenceRepository stores one document per user, keyed by user id.
type preferenceRepository struct {
	client *fs.Client
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(client *fs.Client) repository.PreferenceRepository {
	return &preferenceRepository{
		client: client,
	}
}

func (repo *preferenceRepository) doc(userID string) *fs.DocumentRef {
	return repo.client.Collection(collectionPreferences).Doc(userID)
}

// FindOrCreate reads the document inside a transaction and creates it from defaults when missing.
func (repo *preferenceRepository) FindOrCreate(
	ctx context.Context,
	defaults *entity.NotificationPreferences,
) (*entity.NotificationPreferences, error) {
	ref := repo.doc(defaults.UserID)

	var result *entity.NotificationPreferences
	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *fs.Transaction) error {
		snap, err := tx.Get(ref)
		if status.Code(err) == codes.NotFound {
			result = defaults

			return tx.Create(ref, fromPreferencesDomain(defaults))
		}
		if err != nil {
			return err
		}

		var doc preferencesDoc
		if err := snap.DataTo(&doc); err != nil {
			return err
		}
		if doc.UserID == "" {
			doc.UserID = defaults.UserID
		}
		result = toPreferencesDomain(&doc)

		return nil
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find or create notification preferences")
	}

	return result, nil
}

// FindByUserIDs batch-reads documents; missing ones are left out of the map.
func (repo *preferenceRepository) FindByUserIDs(ctx context.Context, userIDs []string) (map[string]*entity.NotificationPreferences, error) {
	result := make(map[string]*entity.NotificationPreferences, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	refs := make([]*fs.DocumentRef, 0, len(userIDs))
	for _, userID := range userIDs {
		refs = append(refs, repo.doc(userID))
	}

	snaps, err := repo.client.GetAll(ctx, refs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read notification preferences")
	}

	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}

		var doc preferencesDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode notification preferences")
		}
		if doc.UserID == "" {
			doc.UserID = snap.Ref.ID
		}
		result[doc.UserID] = toPreferencesDomain(&doc)
	}

	return result, nil
}

// Save overwrites the user's document.
func (repo *preferenceRepository) Save(ctx context.Context, prefs *entity.NotificationPreferences) error {
	if _, err := repo.doc(prefs.UserID).Set(ctx, fromPreferencesDomain(prefs)); err != nil {
		return domainerrors.ErrPreferencesUpdateFailed.WrapMessage(err.Error())
	}

	return nil
}

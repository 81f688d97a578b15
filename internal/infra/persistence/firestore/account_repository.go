package firestore

import (
	"context"

	"naguil/internal/domain/entity"
	"naguil/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// accountRepository reads the externally owned accounts collection.
type accountRepository struct {
	client *fs.Client
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(client *fs.Client) repository.AccountRepository {
	return &accountRepository{
		client: client,
	}
}

// FindByRolesAndBranch filters by branch id when given, otherwise by branch name.
func (repo *accountRepository) FindByRolesAndBranch(
	ctx context.Context,
	roles entity.Roles,
	branch entity.BranchSelector,
) ([]*entity.Account, error) {
	if len(roles) == 0 || branch.IsZero() {
		return nil, nil
	}

	query := repo.client.Collection(collectionAccounts).Where("role", "in", roles.ToStrings())
	if branch.ID != nil {
		query = query.Where("branch_id", "==", *branch.ID)
	} else {
		query = query.Where("branch_name", "==", branch.Name)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find accounts by roles and branch")
	}

	accounts := make([]*entity.Account, 0, len(snaps))
	for _, snap := range snaps {
		var doc accountDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode account")
		}
		if doc.UserID == "" {
			doc.UserID = snap.Ref.ID
		}
		accounts = append(accounts, &entity.Account{
			UserID:     doc.UserID,
			Role:       entity.Role(doc.Role),
			BranchID:   doc.BranchID,
			BranchName: doc.BranchName,
		})
	}

	return accounts, nil
}

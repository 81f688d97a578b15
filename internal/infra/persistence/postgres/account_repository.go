package postgres

import (
	"context"

	"naguil/internal/domain/entity"
	"naguil/internal/domain/repository"
	"naguil/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
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

	query := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("role IN ?", roles.ToStrings())

	if branch.ID != nil {
		query = query.Where("branch_id = ?", *branch.ID)
	} else {
		query = query.Where("branch_name = ?", branch.Name)
	}

	var accountModels []*model.AccountModel
	if err := query.Order("user_id").Find(&accountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find accounts by roles and branch")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, &entity.Account{
			UserID:     accountM.UserID,
			Role:       entity.Role(accountM.Role),
			BranchID:   accountM.BranchID,
			BranchName: accountM.BranchName,
		})
	}

	return accounts, nil
}

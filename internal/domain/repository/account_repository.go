package repository

import (
	"context"

	"naguil/internal/domain/entity"
)

// AccountRepository reads the externally owned accounts collection.
type AccountRepository interface {
	// FindByRolesAndBranch lists accounts with one of the roles in the selected branch.
	// The branch id is used when set; otherwise the branch name.
	FindByRolesAndBranch(ctx context.Context, roles entity.Roles, branch entity.BranchSelector) ([]*entity.Account, error)
}

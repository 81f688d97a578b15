// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"naguil/internal/domain/entity"
	"naguil/internal/errors"
)

// Domain-specific errors for device token persistence.
var (
	// ErrDeviceTokenNotFound is returned when no row matches a (user, token) pair.
	ErrDeviceTokenNotFound = errors.New("device token not found")
)

// DeviceRepository defines the device registry storage port.
type DeviceRepository interface {
	// UpsertToken inserts the token, or reactivates it and refreshes metadata if (UserID, Token) already exists.
	UpsertToken(ctx context.Context, token *entity.DeviceToken) error

	// DeactivateToken marks a single (user, token) row inactive.
	DeactivateToken(ctx context.Context, userID, token string, at time.Time) error

	// DeactivateAllByUser marks every active row of the user inactive and returns how many changed.
	DeactivateAllByUser(ctx context.Context, userID string, at time.Time) (int64, error)

	// DeactivateTokens marks rows inactive by token value, regardless of owner.
	DeactivateTokens(ctx context.Context, tokens []string, at time.Time) (int64, error)

	// FindActiveByUser retrieves the active tokens of one user.
	FindActiveByUser(ctx context.Context, userID string) ([]*entity.DeviceToken, error)

	// FindActiveByUsers retrieves active tokens for a bounded set of users, grouped by user id.
	FindActiveByUsers(ctx context.Context, userIDs []string) (map[string][]*entity.DeviceToken, error)
}

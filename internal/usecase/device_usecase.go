package usecase

import (
	"context"

	"naguil/internal/domain/entity"
)

// TokenRegistration is the client-supplied data for registering a push token.
type TokenRegistration struct {
	Token    string
	Platform entity.Platform
	Metadata entity.DeviceMetadata
}

// DeviceUsecase defines the device registry use cases.
type DeviceUsecase interface {
	// RegisterToken upserts the token for the user and marks it active.
	RegisterToken(ctx context.Context, userID string, reg *TokenRegistration) (*entity.DeviceToken, error)

	// RefreshToken retires a rotated token and registers its replacement.
	RefreshToken(ctx context.Context, userID, oldToken string, reg *TokenRegistration) (*entity.DeviceToken, error)

	// UnregisterToken deactivates a single token of the user.
	UnregisterToken(ctx context.Context, userID, token string) error

	// DeactivateAll deactivates every token of the user (logout).
	DeactivateAll(ctx context.Context, userID string) error

	// ListActiveTokens returns the active tokens of a user.
	ListActiveTokens(ctx context.Context, userID string) ([]*entity.DeviceToken, error)

	// ListActiveTokensForUsers returns active tokens grouped by user id.
	ListActiveTokensForUsers(ctx context.Context, userIDs []string) (map[string][]*entity.DeviceToken, error)

	// DeactivateTokens retires tokens reported invalid by a push gateway.
	DeactivateTokens(ctx context.Context, tokens []string) error
}

package service

import (
	"context"

	"naguil/internal/domain/entity"
)

// IdentityVerifier resolves a bearer token issued by the identity provider to a caller.
type IdentityVerifier interface {
	Verify(ctx context.Context, rawToken string) (*entity.Caller, error)
}

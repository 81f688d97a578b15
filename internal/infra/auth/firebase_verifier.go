package auth

import (
	"context"

	"naguil/internal/domain/entity"
	domainerrors "naguil/internal/domain/errors"
	"naguil/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

const roleClaim = "role"

// idTokenVerifier is the subset of *firebaseauth.Client used here
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

type firebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier validates Firebase Auth ID tokens; the role comes from a custom claim
func NewFirebaseVerifier(ctx context.Context, app *firebase.App) (service.IdentityVerifier, error) {
	if app == nil {
		return nil, errors.New("firebase app is required for firebase auth provider")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get firebase auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) Verify(ctx context.Context, rawToken string) (*entity.Caller, error) {
	token, err := v.client.VerifyIDToken(ctx, rawToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WithDetails(err.Error())
	}

	if token.UID == "" {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("token has no uid")
	}

	role, _ := token.Claims[roleClaim].(string)

	return &entity.Caller{
		UserID: token.UID,
		Role:   resolveRole(role),
	}, nil
}

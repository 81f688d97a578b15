package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"naguil/config"
	"naguil/internal/domain/entity"
	domainerrors "naguil/internal/domain/errors"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIDTokenVerifier struct {
	token *firebaseauth.Token
	err   error
}

func (f *fakeIDTokenVerifier) VerifyIDToken(context.Context, string) (*firebaseauth.Token, error) {
	return f.token, f.err
}

func TestFirebaseVerifier_Verify(t *testing.T) {
	verifier := &firebaseVerifier{client: &fakeIDTokenVerifier{
		token: &firebaseauth.Token{UID: "uid-1", Claims: map[string]any{"role": "super_admin"}},
	}}

	caller, err := verifier.Verify(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, &entity.Caller{UserID: "uid-1", Role: entity.RoleSuperAdmin}, caller)
}

func TestFirebaseVerifier_NoRoleClaim(t *testing.T) {
	verifier := &firebaseVerifier{client: &fakeIDTokenVerifier{
		token: &firebaseauth.Token{UID: "uid-1", Claims: map[string]any{"role": 3}},
	}}

	caller, err := verifier.Verify(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, caller.Role)
}

func TestFirebaseVerifier_Rejects(t *testing.T) {
	verifier := &firebaseVerifier{client: &fakeIDTokenVerifier{err: errors.New("ID token has expired")}}

	_, err := verifier.Verify(context.Background(), "id-token")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	verifier = &firebaseVerifier{client: &fakeIDTokenVerifier{token: &firebaseauth.Token{}}}
	_, err = verifier.Verify(context.Background(), "id-token")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestNewIdentityVerifier(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		auth    *config.AuthConfig
		wantErr string
	}{
		{name: "jwt", auth: &config.AuthConfig{Provider: "jwt", JWTSecret: testSecret}},
		{name: "jwt without secret", auth: &config.AuthConfig{Provider: "jwt"}, wantErr: "jwt secret must be provided"},
		{name: "firebase without app", auth: &config.AuthConfig{Provider: "firebase"}, wantErr: "firebase app is required"},
		{name: "not configured", auth: nil, wantErr: "not configured"},
		{name: "unknown", auth: &config.AuthConfig{Provider: "ldap"}, wantErr: "unknown auth provider: ldap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier, err := NewIdentityVerifier(VerifierParams{
				Ctx:    context.Background(),
				Config: &config.Config{Auth: tt.auth},
				Logger: logger,
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, verifier)
		})
	}
}

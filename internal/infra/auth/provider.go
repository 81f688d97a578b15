package auth

import (
	"context"
	"log/slog"

	"naguil/config"
	"naguil/internal/domain/constants"
	"naguil/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VerifierParams holds dependencies for the identity verifier, injected by Fx
type VerifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

// NewIdentityVerifier creates the verifier selected by auth.provider
func NewIdentityVerifier(params VerifierParams) (service.IdentityVerifier, error) {
	cfg := params.Config.Auth
	if cfg == nil || cfg.Provider == "" {
		return nil, errors.New("auth provider is not configured")
	}

	switch cfg.Provider {
	case constants.AuthProviderJWT:
		params.Logger.Info("Using JWT identity verifier",
			slog.Bool("issuer_check", cfg.JWTIssuer != ""),
		)

		return NewJWTVerifier(cfg.JWTSecret, cfg.JWTIssuer)

	case constants.AuthProviderFirebase:
		params.Logger.Info("Using Firebase identity verifier")

		return NewFirebaseVerifier(params.Ctx, params.App)

	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Provider)
	}
}

// Module provides the identity verifier FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewIdentityVerifier),
)

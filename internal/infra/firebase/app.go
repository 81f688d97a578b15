// Package firebase builds the Firebase Admin app shared by FCM, Firebase Auth and Firestore.
package firebase

import (
	"context"
	"log/slog"

	"naguil/config"
	"naguil/internal/domain/constants"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// AppParams holds dependencies for the Firebase app
type AppParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewApp initializes the Firebase app when any configured component needs it.
// It returns a nil app otherwise.
func NewApp(params AppParams) (*firebase.App, error) {
	if !Required(params.Config) {
		return nil, nil
	}

	cfg := params.Config.Firebase

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(params.Ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized",
		slog.String("project_id", cfg.ProjectID),
		slog.Bool("explicit_credentials", cfg.CredentialsPath != ""),
	)

	return app, nil
}

// Required reports whether the push gateway, identity provider or store backend is Firebase-backed.
func Required(cfg *config.Config) bool {
	if cfg == nil {
		return false
	}

	return (cfg.Push != nil && cfg.Push.Provider == constants.PushProviderFCM) ||
		(cfg.Auth != nil && cfg.Auth.Provider == constants.AuthProviderFirebase) ||
		(cfg.Store != nil && cfg.Store.Backend == constants.StoreBackendFirestore)
}

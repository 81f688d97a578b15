// Package persistence selects the store backend and provides its repositories.
package persistence

import (
	"context"
	"log/slog"

	"naguil/config"
	"naguil/internal/domain/constants"
	"naguil/internal/domain/repository"
	"naguil/internal/infra/metrics"
	"naguil/internal/infra/persistence/firestore"
	"naguil/internal/infra/persistence/postgres"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx
type Params struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	App     *firebase.App     `optional:"true"`
	Metrics *metrics.Recorder `optional:"true"`
}

// Repositories are the store ports shared by both binaries
type Repositories struct {
	fx.Out

	Devices       repository.DeviceRepository
	Preferences   repository.PreferenceRepository
	Notifications repository.NotificationRepository
	Accounts      repository.AccountRepository
}

// NewRepositories builds the repositories for the configured backend
func NewRepositories(params Params) (Repositories, error) {
	backend := constants.StoreBackendPostgres
	if params.Config.Store != nil && params.Config.Store.Backend != "" {
		backend = params.Config.Store.Backend
	}

	switch backend {
	case constants.StoreBackendPostgres:
		if params.Config.Postgres == nil {
			return Repositories{}, errors.New("postgres configuration is required for postgres backend")
		}

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
			Metrics:   params.Metrics,
		})
		if err != nil {
			return Repositories{}, err
		}

		params.Logger.Info("Using postgres store")

		return Repositories{
			Devices:       postgres.NewDeviceRepository(db),
			Preferences:   postgres.NewPreferenceRepository(db),
			Notifications: postgres.NewNotificationRepository(db),
			Accounts:      postgres.NewAccountRepository(db),
		}, nil

	case constants.StoreBackendFirestore:
		if params.App == nil {
			return Repositories{}, errors.New("firebase app is required for firestore backend")
		}

		client, err := params.App.Firestore(params.Ctx)
		if err != nil {
			return Repositories{}, errors.Wrap(err, "failed to create Firestore client")
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		params.Logger.Info("Using firestore store")

		return Repositories{
			Devices:       firestore.NewDeviceRepository(client),
			Preferences:   firestore.NewPreferenceRepository(client),
			Notifications: firestore.NewNotificationRepository(client),
			Accounts:      firestore.NewAccountRepository(client),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown store backend: %s", backend)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
)

package main

import (
	"context"
	"log/slog"
	"os"

	"naguil/config"
	"naguil/internal/delivery"
	"naguil/internal/delivery/api"
	"naguil/internal/delivery/api/middleware"
	"naguil/internal/delivery/api/router/handler"
	"naguil/internal/infra/auth"
	"naguil/internal/infra/cache"
	"naguil/internal/infra/firebase"
	logs "naguil/internal/infra/log"
	"naguil/internal/infra/metrics"
	"naguil/internal/infra/notification"
	"naguil/internal/infra/persistence"
	"naguil/internal/infra/pubsub"
	"naguil/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			// Expose the dispatcher tuning for the dispatch service
			func(cfg *config.Config) *config.DispatchConfig {
				return cfg.Dispatch
			},
			logs.New,
			context.Background,
			firebase.NewApp,
		),
		persistence.Module,
		cache.Module,
		metrics.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		notification.Module,
		pubsub.Module,
		auth.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDeviceService,
			impl.NewPreferenceService,
			impl.NewDispatchService,
			impl.NewHistoryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDeviceHandler,
			handler.NewPreferenceHandler,
			handler.NewDispatchHandler,
			handler.NewHistoryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

package main

import (
	"context"
	"log/slog"
	"os"

	"naguil/config"
	"naguil/internal/delivery"
	"naguil/internal/delivery/worker"
	"naguil/internal/delivery/worker/handler"
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
		// The dispatch service also enqueues, so the worker carries a publisher too
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDeviceService,
			impl.NewPreferenceService,
			impl.NewDispatchService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewEventProcessor,
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewConsumers,
				fx.ResultTags(`group:"deliveries,flatten"`),
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

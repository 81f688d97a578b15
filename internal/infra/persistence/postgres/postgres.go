package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"naguil/config"
	"naguil/internal/domain/lifecycle"
	"naguil/internal/errors"
	"naguil/internal/infra/metrics"
	"naguil/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval = 10 * time.Second
	poolSlowWait      = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Recorder `optional:"true"`
}

// New opens the notification store and ties its pool to the app lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Every write is a single upsert or update statement.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Metrics != nil {
		if err := params.Metrics.RegisterDBStats(sqlDB, params.Config.Env.ServiceName); err != nil {
			return nil, errors.Wrap(err, "failed to register PostgreSQL pool metrics")
		}
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Store != nil && params.Config.Store.AutoMigrate {
				if err := Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
				params.Logger.Info("[Postgres] notification tables migrated")
			}

			go watchPoolWaits(watchCtx, params.Logger, sqlDB.Stats, poolCheckInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate creates or updates the tables owned by this service.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.Migratable()...); err != nil {
		return errors.Wrap(err, "failed to migrate notification tables")
	}

	return nil
}

// watchPoolWaits warns when dispatch lookups queue for a connection.
// Steady-state numbers are exported through the metrics registry.
func watchPoolWaits(ctx context.Context, logger *slog.Logger, stats func() sql.DBStats, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := stats()
			if msg, attrs, ok := poolWaitReport(last, now); ok {
				logger.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
			}
			last = now
		}
	}
}

func poolWaitReport(last, now sql.DBStats) (string, []slog.Attr, bool) {
	waits := now.WaitCount - last.WaitCount
	waited := now.WaitDuration - last.WaitDuration
	if waits <= 0 || waited < poolSlowWait {
		return "", nil, false
	}

	return "[Postgres] connection pool saturated", []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("in_use", now.InUse),
		slog.Int("max_open", now.MaxOpenConnections),
	}, true
}

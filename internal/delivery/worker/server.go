package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"naguil/config"
	"naguil/internal/delivery"
	apimiddleware "naguil/internal/delivery/api/middleware"
	"naguil/internal/delivery/api/router/handler"
	"naguil/internal/delivery/middleware"
	workerhandler "naguil/internal/delivery/worker/handler"
	"naguil/internal/domain/lifecycle"
	"naguil/internal/errors"
	"naguil/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// pushServer receives dispatch events delivered over HTTP push.
type pushServer struct {
	addr   string
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	PushHandler *workerhandler.PushHandler
}

// NewServer creates the push endpoint of the dispatch worker.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newPushEcho(params.Cfg, params.Logger, params.Metrics)
	registerPushRoutes(e, params.PushHandler, params.Metrics)

	srv := &pushServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		logger: params.Logger.With(slog.String("component", "push_server")),
		echo:   e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newPushEcho(cfg *config.Config, logger *slog.Logger, recorder *metrics.Recorder) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		apimiddleware.NewMetricsMiddleware(recorder),
	)
	if cfg.HTTP.MaxRequestBodySize != "" {
		e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))
	}

	return e
}

func registerPushRoutes(e *echo.Echo, push *workerhandler.PushHandler, recorder *metrics.Recorder) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(recorder.Handler()))
	e.POST("/push", push.HandlePush)
}

// Serve blocks until the server is shut down.
func (s *pushServer) Serve(_ context.Context) error {
	s.logger.Info("[Worker] push endpoint listening", slog.String("addr", s.addr))
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *pushServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("[Worker] push endpoint shutting down")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}

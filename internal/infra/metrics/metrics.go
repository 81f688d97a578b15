// Package metrics exposes dispatch and HTTP telemetry to Prometheus.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"naguil/config"
	"naguil/internal/domain/entity"
	"naguil/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "naguil"

// Recorder owns the collectors and the registry they are exposed through.
type Recorder struct {
	registry *prometheus.Registry

	dispatchesTotal         *prometheus.CounterVec
	pushTokensTotal         *prometheus.CounterVec
	gatewayBatchErrorsTotal prometheus.Counter
	gatewayBatchErrorTokens prometheus.Counter
	dispatchDuration        *prometheus.HistogramVec

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewRecorder registers every collector on a fresh registry, labelled with the service name.
func NewRecorder(cfg *config.Config) *Recorder {
	serviceName := namespace
	if cfg != nil && cfg.Env.ServiceName != "" {
		serviceName = cfg.Env.ServiceName
	}
	constLabels := prometheus.Labels{"service": serviceName}

	r := &Recorder{
		registry: prometheus.NewRegistry(),
		dispatchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Name:        "dispatches_total",
				Help:        "Total number of finished dispatches by target and status.",
				ConstLabels: constLabels,
			},
			[]string{"target", "status"},
		),
		pushTokensTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Name:        "push_tokens_total",
				Help:        "Total number of device tokens attempted by outcome.",
				ConstLabels: constLabels,
			},
			[]string{"target", "outcome"},
		),
		gatewayBatchErrorsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Name:        "gateway_batch_errors_total",
				Help:        "Total number of gateway batches that failed in transport.",
				ConstLabels: constLabels,
			},
		),
		gatewayBatchErrorTokens: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Name:        "gateway_batch_error_tokens_total",
				Help:        "Total number of tokens in gateway batches that failed in transport.",
				ConstLabels: constLabels,
			},
		),
		dispatchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   namespace,
				Name:        "dispatch_duration_seconds",
				Help:        "Duration of dispatches from validation to logging.",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
			[]string{"target"},
		),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests.",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "Duration of HTTP requests.",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
			[]string{"method", "path"},
		),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.dispatchesTotal,
		r.pushTokensTotal,
		r.gatewayBatchErrorsTotal,
		r.gatewayBatchErrorTokens,
		r.dispatchDuration,
		r.httpRequestsTotal,
		r.httpRequestDuration,
	)

	return r
}

// ObserveDispatch implements service.DispatchObserver.
func (r *Recorder) ObserveDispatch(target entity.TargetKind, result *entity.DispatchResult, elapsed time.Duration) {
	if result == nil {
		return
	}

	targetLabel := string(target)
	r.dispatchesTotal.WithLabelValues(targetLabel, string(result.Status)).Inc()
	r.dispatchDuration.WithLabelValues(targetLabel).Observe(elapsed.Seconds())

	if result.Sent > 0 {
		r.pushTokensTotal.WithLabelValues(targetLabel, "sent").Add(float64(result.Sent))
	}
	if result.Failed > 0 {
		r.pushTokensTotal.WithLabelValues(targetLabel, "failed").Add(float64(result.Failed))
	}
}

// ObserveBatchError implements service.DispatchObserver.
func (r *Recorder) ObserveBatchError(batchSize int) {
	r.gatewayBatchErrorsTotal.Inc()
	r.gatewayBatchErrorTokens.Add(float64(batchSize))
}

// ObserveHTTP records one served request. path is the route template, not the raw URL.
func (r *Recorder) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	r.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	r.httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// RegisterDBStats exposes the connection pool statistics of db under dbName.
func (r *Recorder) RegisterDBStats(db *sql.DB, dbName string) error {
	return r.registry.Register(collectors.NewDBStatsCollector(db, dbName))
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Module provides the recorder both as itself and as the dispatch observer
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRecorder,
		func(r *Recorder) service.DispatchObserver { return r },
	),
)

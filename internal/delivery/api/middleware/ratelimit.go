package middleware

import (
	"encoding/json"
	"net/http"

	"naguil/config"
	"naguil/internal/delivery/api/response"
	deliverycontext "naguil/internal/delivery/context"

	"github.com/go-chi/httprate"
	"github.com/labstack/echo/v4"
)

// NewRateLimiter limits requests per client IP; it is a pass-through when disabled.
func NewRateLimiter(cfg *config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg == nil || !cfg.Enabled || cfg.Requests <= 0 || cfg.Window <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	limiter := httprate.Limit(
		cfg.Requests,
		cfg.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(writeRateLimited),
	)

	return echo.WrapMiddleware(limiter)
}

func writeRateLimited(w http.ResponseWriter, r *http.Request) {
	body, _ := json.Marshal(response.NewErrorResponse(
		deliverycontext.GetRequestIDFromContext(r.Context()),
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests, please retry later",
		nil,
	))

	w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w.WriteHeader(http.StatusTooManyRequests)
	_, _ = w.Write(body)
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"naguil/config"
	"naguil/internal/delivery/api/middleware"
	"naguil/internal/delivery/api/router/handler"
	"naguil/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler     *handler.DeviceHandler
	PreferenceHandler *handler.PreferenceHandler
	DispatchHandler   *handler.DispatchHandler
	HistoryHandler    *handler.HistoryHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Metrics           *metrics.Recorder
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler     *handler.DeviceHandler
	preferenceHandler *handler.PreferenceHandler
	dispatchHandler   *handler.DispatchHandler
	historyHandler    *handler.HistoryHandler
	authMiddleware    *middleware.AuthMiddleware
	metrics           *metrics.Recorder
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:     params.DeviceHandler,
		preferenceHandler: params.PreferenceHandler,
		dispatchHandler:   params.DispatchHandler,
		historyHandler:    params.HistoryHandler,
		authMiddleware:    params.AuthMiddleware,
		metrics:           params.Metrics,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Device registry routes
	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterToken)
		devicesGroup.GET("", r.deviceHandler.ListActiveTokens)
		devicesGroup.PUT("/token", r.deviceHandler.RefreshToken)
		devicesGroup.DELETE("", r.deviceHandler.DeactivateAll)
		devicesGroup.DELETE("/:token", r.deviceHandler.UnregisterToken)
	}

	// Preference routes
	preferencesGroup := apiV1.Group("/preferences")
	{
		preferencesGroup.GET("", r.preferenceHandler.GetPreferences)
		preferencesGroup.PATCH("", r.preferenceHandler.UpdatePreferences)
	}

	// Dispatch routes, rate limited per client IP
	rateLimiter := middleware.NewRateLimiter(r.config.RateLimit)

	dispatchGroup := apiV1.Group("/dispatch")
	dispatchGroup.Use(rateLimiter)
	{
		dispatchGroup.POST("", r.dispatchHandler.Dispatch)
		dispatchGroup.POST("/user", r.dispatchHandler.SendUserNotification, r.authMiddleware.RequireStaff)
		dispatchGroup.POST("/staff", r.dispatchHandler.SendStaffNotification)
	}

	// Delivery history and asynchronous dispatch
	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.historyHandler.ListRecords)
		notificationsGroup.POST("/events", r.dispatchHandler.Enqueue, rateLimiter)
	}
}

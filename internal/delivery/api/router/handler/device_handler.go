package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"naguil/internal/delivery/api/middleware"
	"naguil/internal/delivery/api/response"
	"naguil/internal/domain/entity"
	domainerrors "naguil/internal/domain/errors"
	"naguil/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterTokenRequest represents the request body for registering a push token
type RegisterTokenRequest struct {
	Token      string `json:"token" validate:"required"`
	Platform   string `json:"platform" validate:"required,oneof=ios android web"`
	DeviceName string `json:"device_name" validate:"max=255"`
	AppVersion string `json:"app_version" validate:"max=64"`
}

// RefreshTokenRequest represents the request body for a provider token rotation
type RefreshTokenRequest struct {
	OldToken   string `json:"old_token" validate:"required"`
	Token      string `json:"token" validate:"required"`
	Platform   string `json:"platform" validate:"required,oneof=ios android web"`
	DeviceName string `json:"device_name" validate:"max=255"`
	AppVersion string `json:"app_version" validate:"max=64"`
}

func toRegistration(token, platform, deviceName, appVersion string) *usecase.TokenRegistration {
	return &usecase.TokenRegistration{
		Token:    token,
		Platform: entity.Platform(platform),
		Metadata: entity.DeviceMetadata{
			DeviceName: deviceName,
			AppVersion: appVersion,
		},
	}
}

// RegisterToken handles push token registration
func (h *DeviceHandler) RegisterToken(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req RegisterTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_ARGUMENT", "Invalid device token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	token, err := h.deviceUC.RegisterToken(
		c.Request().Context(),
		caller.UserID,
		toRegistration(req.Token, req.Platform, req.DeviceName, req.AppVersion),
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, token)
}

// RefreshToken handles replacing a rotated push token
func (h *DeviceHandler) RefreshToken(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_ARGUMENT", "Invalid device token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	token, err := h.deviceUC.RefreshToken(
		c.Request().Context(),
		caller.UserID,
		req.OldToken,
		toRegistration(req.Token, req.Platform, req.DeviceName, req.AppVersion),
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, token)
}

// UnregisterToken handles deactivating one push token of the caller
func (h *DeviceHandler) UnregisterToken(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	// Expo tokens carry brackets, so the path segment arrives escaped
	token, err := url.PathUnescape(c.Param("token"))
	if err != nil || token == "" {
		return response.BadRequest(c, "INVALID_ARGUMENT", "Invalid device token")
	}

	if err := h.deviceUC.UnregisterToken(c.Request().Context(), caller.UserID, token); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeactivateAll handles logout by deactivating every token of the caller
func (h *DeviceHandler) DeactivateAll(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	if err := h.deviceUC.DeactivateAll(c.Request().Context(), caller.UserID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListActiveTokens handles retrieving the caller's active tokens
func (h *DeviceHandler) ListActiveTokens(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	tokens, err := h.deviceUC.ListActiveTokens(c.Request().Context(), caller.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tokens)
}

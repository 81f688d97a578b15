package handler

import (
	"net/http"

	"naguil/internal/delivery/api/middleware"
	"naguil/internal/delivery/api/response"
	"naguil/internal/domain/entity"
	domainerrors "naguil/internal/domain/errors"
	"naguil/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PreferenceHandler serves the caller's notification settings
type PreferenceHandler struct {
	prefUC usecase.PreferenceUsecase
}

// NewPreferenceHandler is the constructor for PreferenceHandler
func NewPreferenceHandler(prefUC usecase.PreferenceUsecase) *PreferenceHandler {
	return &PreferenceHandler{prefUC: prefUC}
}

// GetPreferences returns the caller's record, creating the default on first read
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	prefs, err := h.prefUC.GetPreferences(c.Request().Context(), caller.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs)
}

// UpdatePreferences applies a partial update; omitted flags keep their value
func (h *PreferenceHandler) UpdatePreferences(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var patch entity.PreferencesPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_ARGUMENT", "Invalid preferences input")
	}

	if patch.IsEmpty() {
		return response.BadRequest(c, "INVALID_ARGUMENT", "At least one preference flag is required")
	}

	prefs, err := h.prefUC.UpdatePreferences(c.Request().Context(), caller.UserID, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs)
}

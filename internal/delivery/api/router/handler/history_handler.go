package handler

import (
	"net/http"
	"strconv"

	"naguil/internal/delivery/api/middleware"
	"naguil/internal/delivery/api/response"
	domainerrors "naguil/internal/domain/errors"
	"naguil/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HistoryHandler serves the caller's delivery records
type HistoryHandler struct {
	historyUC usecase.HistoryUsecase
}

// NewHistoryHandler is the constructor for HistoryHandler
func NewHistoryHandler(historyUC usecase.HistoryUsecase) *HistoryHandler {
	return &HistoryHandler{historyUC: historyUC}
}

// ListRecords handles GET /notifications?limit&offset
func (h *HistoryHandler) ListRecords(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	limit, err := intQueryParam(c, "limit")
	if err != nil {
		return response.BadRequest(c, "INVALID_ARGUMENT", "limit must be an integer")
	}

	offset, err := intQueryParam(c, "offset")
	if err != nil {
		return response.BadRequest(c, "INVALID_ARGUMENT", "offset must be an integer")
	}

	records, err := h.historyUC.ListRecords(c.Request().Context(), caller.UserID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}

// intQueryParam parses an optional integer query parameter; absent means zero.
func intQueryParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	return strconv.Atoi(raw)
}

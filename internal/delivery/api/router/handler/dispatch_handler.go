package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"naguil/internal/delivery/api/middleware"
	"naguil/internal/delivery/api/response"
	"naguil/internal/domain/entity"
	domainerrors "naguil/internal/domain/errors"
	"naguil/internal/errors"
	"naguil/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DispatchRequest is the intent body shared by every dispatch endpoint
type DispatchRequest struct {
	Target           string         `json:"target,omitempty"`
	UserID           string         `json:"userId,omitempty"`
	BranchID         *int64         `json:"branchId,omitempty"`
	BranchName       string         `json:"branchName,omitempty"`
	NotificationType string         `json:"notificationType"`
	Title            string         `json:"title"`
	Body             string         `json:"body"`
	Data             map[string]any `json:"data,omitempty"`
}

func (r *DispatchRequest) intent() *entity.DispatchIntent {
	return &entity.DispatchIntent{
		Type:   entity.NotificationType(strings.TrimSpace(r.NotificationType)),
		Title:  r.Title,
		Body:   r.Body,
		Data:   r.Data,
		UserID: r.UserID,
		Branch: entity.BranchSelector{ID: r.BranchID, Name: r.BranchName},
		Target: entity.TargetKind(strings.TrimSpace(r.Target)),
	}
}

// EnqueueResponse acknowledges an accepted asynchronous dispatch
type EnqueueResponse struct {
	EventID string `json:"event_id"`
}

// DispatchHandler exposes the dispatcher
type DispatchHandler struct {
	dispatchUC usecase.DispatchUsecase
}

// NewDispatchHandler is the constructor for DispatchHandler
func NewDispatchHandler(dispatchUC usecase.DispatchUsecase) *DispatchHandler {
	return &DispatchHandler{dispatchUC: dispatchUC}
}

// SendUserNotification dispatches to a single user
func (h *DispatchHandler) SendUserNotification(c echo.Context) error {
	return h.dispatch(c, entity.TargetUser)
}

// SendStaffNotification broadcasts to the staff of a branch
func (h *DispatchHandler) SendStaffNotification(c echo.Context) error {
	return h.dispatch(c, entity.TargetStaff)
}

// Dispatch takes the target from the body, or infers it from the populated fields
func (h *DispatchHandler) Dispatch(c echo.Context) error {
	return h.dispatch(c, "")
}

// Enqueue validates the intent and hands it to the dispatch worker
func (h *DispatchHandler) Enqueue(c echo.Context) error {
	intent, err := h.bindIntent(c, "")
	if err != nil {
		return err
	}
	if intent == nil {
		return nil
	}

	eventID, err := h.dispatchUC.Enqueue(c.Request().Context(), intent)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, EnqueueResponse{EventID: eventID})
}

func (h *DispatchHandler) dispatch(c echo.Context, target entity.TargetKind) error {
	intent, err := h.bindIntent(c, target)
	if err != nil {
		return err
	}
	if intent == nil {
		return nil
	}

	result, err := h.dispatchUC.Dispatch(c.Request().Context(), intent)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// bindIntent decodes and authorizes the intent. A nil intent with a nil error
// means the response has already been written.
func (h *DispatchHandler) bindIntent(c echo.Context, target entity.TargetKind) (*entity.DispatchIntent, error) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return nil, response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	req, err := decodeDispatchRequest(c.Request().Body)
	if err != nil {
		return nil, response.BindingError(c, "INVALID_ARGUMENT", "Invalid dispatch intent")
	}

	intent := req.intent()
	if target != "" {
		intent.Target = target
	}

	// Booking ownership is not tracked here, so only staff may notify a specific user
	if targetsUser(intent) && !caller.Role.IsStaffTier() {
		return nil, response.HandleAppError(c, domainerrors.ErrForbidden.WithDetails("staff role required to notify a user"))
	}

	return intent, nil
}

// decodeDispatchRequest keeps numbers in data as json.Number so large booking ids survive.
func decodeDispatchRequest(body io.Reader) (*DispatchRequest, error) {
	var req DispatchRequest
	if body == nil {
		return &req, nil
	}

	decoder := json.NewDecoder(body)
	decoder.UseNumber()
	if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to decode dispatch intent")
	}

	return &req, nil
}

func targetsUser(intent *entity.DispatchIntent) bool {
	return intent.Target == entity.TargetUser || strings.TrimSpace(intent.UserID) != ""
}

package middleware

import (
	"strings"

	"naguil/internal/delivery/api/response"
	deliverycontext "naguil/internal/delivery/context"
	"naguil/internal/domain/entity"
	domainerrors "naguil/internal/domain/errors"
	"naguil/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	callerKey    = "caller"
	bearerPrefix = "Bearer "
)

// AuthMiddleware resolves the bearer token to a caller and enforces role tiers.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate rejects requests without a valid identity-provider token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated.WithDetails("authorization header is missing"))
		}

		rawToken := strings.TrimPrefix(authHeader, bearerPrefix)
		if rawToken == authHeader || strings.TrimSpace(rawToken) == "" {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated.WithDetails("authorization must be a bearer token"))
		}

		caller, err := m.verifier.Verify(c.Request().Context(), rawToken)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(callerKey, caller)

		// Tag the request-scoped logger with the caller
		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With("user_id", caller.UserID))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// RequireStaff allows only staff-tier callers. It must run after Authenticate.
func (m *AuthMiddleware) RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, ok := GetCaller(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
		}

		if !caller.Role.IsStaffTier() {
			return response.HandleAppError(c, domainerrors.ErrForbidden.WithDetails("staff role required"))
		}

		return next(c)
	}
}

// GetCaller returns the caller set by Authenticate.
func GetCaller(c echo.Context) (*entity.Caller, bool) {
	caller, ok := c.Get(callerKey).(*entity.Caller)

	return caller, ok && caller != nil
}

// SetCaller stores the caller on the echo context.
func SetCaller(c echo.Context, caller *entity.Caller) {
	c.Set(callerKey, caller)
}

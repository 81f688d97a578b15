package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"naguil/internal/delivery/api/response"
	"naguil/internal/domain/entity"
	domainerrors "naguil/internal/domain/errors"
	mockSvc "naguil/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthEcho(t *testing.T) (*echo.Echo, *mockSvc.MockIdentityVerifier) {
	verifier := mockSvc.NewMockIdentityVerifier(t)
	auth := NewAuthMiddleware(verifier)

	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		caller, ok := GetCaller(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}

		return c.JSON(http.StatusOK, map[string]string{"user_id": caller.UserID, "role": string(caller.Role)})
	}, auth.Authenticate)
	e.GET("/staff-only", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, auth.Authenticate, auth.RequireStaff)

	return e, verifier
}

func doRequest(e *echo.Echo, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func TestAuthenticate_SetsCaller(t *testing.T) {
	e, verifier := newAuthEcho(t)

	verifier.EXPECT().Verify(mock.Anything, "good-token").
		Return(&entity.Caller{UserID: "user-1", Role: entity.RoleCustomer}, nil).Once()

	rec := doRequest(e, "/me", "Bearer good-token")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":"user-1","role":"customer"}`, rec.Body.String())
}

func TestAuthenticate_RejectsBadHeaders(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
	}{
		{name: "missing header", authorization: ""},
		{name: "not a bearer token", authorization: "Basic dXNlcjpwYXNz"},
		{name: "empty bearer token", authorization: "Bearer  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newAuthEcho(t)

			rec := doRequest(e, "/me", tt.authorization)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "UNAUTHENTICATED", errorCode(t, rec))
		})
	}
}

func TestAuthenticate_VerifierRejection(t *testing.T) {
	e, verifier := newAuthEcho(t)

	verifier.EXPECT().Verify(mock.Anything, "expired").
		Return(nil, domainerrors.ErrUnauthenticated.WithDetails("token is expired")).Once()

	rec := doRequest(e, "/me", "Bearer expired")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body.Error.Details)
}

func TestRequireStaff(t *testing.T) {
	t.Run("customer is forbidden", func(t *testing.T) {
		e, verifier := newAuthEcho(t)
		verifier.EXPECT().Verify(mock.Anything, "tok").
			Return(&entity.Caller{UserID: "user-1", Role: entity.RoleCustomer}, nil).Once()

		rec := doRequest(e, "/staff-only", "Bearer tok")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", errorCode(t, rec))
	})

	t.Run("branch admin is allowed", func(t *testing.T) {
		e, verifier := newAuthEcho(t)
		verifier.EXPECT().Verify(mock.Anything, "tok").
			Return(&entity.Caller{UserID: "admin-1", Role: entity.RoleBranchAdmin}, nil).Once()

		rec := doRequest(e, "/staff-only", "Bearer tok")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"naguil/internal/domain/entity"
	domainerrors "naguil/internal/domain/errors"
	mockUsecase "naguil/internal/mocks/usecase"
	"naguil/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDeviceHandler(t *testing.T) (*DeviceHandler, *mockUsecase.MockDeviceUsecase) {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)

	return NewDeviceHandler(DeviceHandlerParams{
		DeviceUC: deviceUC,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), deviceUC
}

func TestDeviceHandler_RegisterToken(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)

	stored := &entity.DeviceToken{
		ID:       uuid.New(),
		UserID:   "user-1",
		Token:    "ExponentPushToken[abc]",
		Platform: entity.PlatformIOS,
		IsActive: true,
	}
	deviceUC.EXPECT().
		RegisterToken(mock.Anything, "user-1", &usecase.TokenRegistration{
			Token:    "ExponentPushToken[abc]",
			Platform: entity.PlatformIOS,
			Metadata: entity.DeviceMetadata{DeviceName: "iPhone", AppVersion: "1.2.0"},
		}).
		Return(stored, nil).
		Once()

	c, rec := newTestContext(http.MethodPost, "/api/v1/devices",
		`{"token":"ExponentPushToken[abc]","platform":"ios","device_name":"iPhone","app_version":"1.2.0"}`, customerCaller)

	require.NoError(t, h.RegisterToken(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var token entity.DeviceToken
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &token))
	assert.Equal(t, stored.ID, token.ID)
	assert.True(t, token.IsActive)
}

func TestDeviceHandler_RegisterToken_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{name: "missing token", body: `{"platform":"ios"}`, code: "VALIDATION_FAILED"},
		{name: "unknown platform", body: `{"token":"t","platform":"symbian"}`, code: "VALIDATION_FAILED"},
		{name: "malformed body", body: `{"token":`, code: "INVALID_ARGUMENT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestDeviceHandler(t)

			c, rec := newTestContext(http.MethodPost, "/api/v1/devices", tt.body, customerCaller)

			require.NoError(t, h.RegisterToken(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.code, decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestDeviceHandler_RequiresCaller(t *testing.T) {
	h, _ := newTestDeviceHandler(t)

	c, rec := newTestContext(http.MethodGet, "/api/v1/devices", "", nil)

	require.NoError(t, h.ListActiveTokens(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", decodeEnvelope(t, rec).Error.Code)
}

func TestDeviceHandler_RefreshToken(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)

	deviceUC.EXPECT().
		RefreshToken(mock.Anything, "user-1", "old", mock.MatchedBy(func(reg *usecase.TokenRegistration) bool {
			return reg.Token == "new" && reg.Platform == entity.PlatformAndroid
		})).
		Return(&entity.DeviceToken{UserID: "user-1", Token: "new", Platform: entity.PlatformAndroid, IsActive: true}, nil).
		Once()

	c, rec := newTestContext(http.MethodPut, "/api/v1/devices/token",
		`{"old_token":"old","token":"new","platform":"android"}`, customerCaller)

	require.NoError(t, h.RefreshToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeviceHandler_UnregisterToken(t *testing.T) {
	t.Run("unescapes the path token", func(t *testing.T) {
		h, deviceUC := newTestDeviceHandler(t)

		deviceUC.EXPECT().UnregisterToken(mock.Anything, "user-1", "ExponentPushToken[abc]").Return(nil).Once()

		c, rec := newTestContext(http.MethodDelete, "/api/v1/devices/x", "", customerCaller)
		c.SetParamNames("token")
		c.SetParamValues("ExponentPushToken%5Babc%5D")

		require.NoError(t, h.UnregisterToken(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("unknown token", func(t *testing.T) {
		h, deviceUC := newTestDeviceHandler(t)

		deviceUC.EXPECT().UnregisterToken(mock.Anything, "user-1", "gone").Return(domainerrors.ErrDeviceTokenNotFound).Once()

		c, rec := newTestContext(http.MethodDelete, "/api/v1/devices/gone", "", customerCaller)
		c.SetParamNames("token")
		c.SetParamValues("gone")

		require.NoError(t, h.UnregisterToken(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "DEVICE_TOKEN_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestDeviceHandler_DeactivateAll(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)

	deviceUC.EXPECT().DeactivateAll(mock.Anything, "user-1").Return(nil).Once()

	c, rec := newTestContext(http.MethodDelete, "/api/v1/devices", "", customerCaller)

	require.NoError(t, h.DeactivateAll(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeviceHandler_ListActiveTokens(t *testing.T) {
	h, deviceUC := newTestDeviceHandler(t)

	deviceUC.EXPECT().ListActiveTokens(mock.Anything, "user-1").Return([]*entity.DeviceToken{
		{UserID: "user-1", Token: "a", Platform: entity.PlatformWeb, IsActive: true},
	}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/devices", "", customerCaller)

	require.NoError(t, h.ListActiveTokens(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var tokens []entity.DeviceToken
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &tokens))
	require.Len(t, tokens, 1)
	assert.Equal(t, "a", tokens[0].Token)
}

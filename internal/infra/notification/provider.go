package notification

import (
	"context"
	"log/slog"

	"naguil/config"
	"naguil/internal/domain/constants"
	"naguil/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GatewayParams holds dependencies for the push gateway, injected by Fx
type GatewayParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

// NewPushGateway creates the push gateway selected by push.provider
func NewPushGateway(params GatewayParams) (service.PushGateway, error) {
	cfg := params.Config.Push
	if cfg == nil || cfg.Provider == "" {
		return nil, errors.New("push provider is not configured")
	}

	switch cfg.Provider {
	case constants.PushProviderFCM:
		params.Logger.Info("Using FCM push gateway")

		return NewFCMGateway(params.Ctx, params.App)

	case constants.PushProviderExpo:
		if cfg.Expo == nil || cfg.Expo.Host == "" {
			return nil, errors.New("expo host is required for expo push provider")
		}
		params.Logger.Info("Using Expo push gateway",
			slog.String("host", cfg.Expo.Host),
		)

		return NewExpoGateway(cfg.Expo), nil

	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Provider)
	}
}

// Module provides the push gateway FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushGateway),
)

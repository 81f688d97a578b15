package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"naguil/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestParams(t *testing.T, cfg *config.Config) Params {
	t.Helper()

	return Params{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewRepositories_ConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr string
	}{
		{
			name:    "postgres without connection settings",
			cfg:     &config.Config{Store: &config.StoreConfig{Backend: "postgres"}},
			wantErr: "postgres configuration is required",
		},
		{
			name:    "default backend is postgres",
			cfg:     &config.Config{},
			wantErr: "postgres configuration is required",
		},
		{
			name:    "firestore without firebase app",
			cfg:     &config.Config{Store: &config.StoreConfig{Backend: "firestore"}},
			wantErr: "firebase app is required",
		},
		{
			name:    "unknown backend",
			cfg:     &config.Config{Store: &config.StoreConfig{Backend: "mongo"}},
			wantErr: "unknown store backend: mongo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRepositories(newTestParams(t, tt.cfg))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

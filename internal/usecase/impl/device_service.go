package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "naguil/internal/delivery/context"
	"naguil/internal/domain/entity"
	domainerrors "naguil/internal/domain/errors"
	"naguil/internal/domain/repository"
	"naguil/internal/errors"
	"naguil/internal/usecase"

	"github.com/google/uuid"
)

// lookupChunkSize bounds bulk membership lookups against the stores.
const lookupChunkSize = 100

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
	now        func() time.Time
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RegisterToken upserts the token for the user and marks it active
func (s *deviceService) RegisterToken(ctx context.Context, userID string, reg *usecase.TokenRegistration) (*entity.DeviceToken, error) {
	if err := validateRegistration(userID, reg); err != nil {
		return nil, err
	}

	now := s.now()
	token := &entity.DeviceToken{
		ID:         uuid.New(),
		UserID:     userID,
		Token:      strings.TrimSpace(reg.Token),
		Platform:   reg.Platform,
		IsActive:   true,
		DeviceName: reg.Metadata.DeviceName,
		AppVersion: reg.Metadata.AppVersion,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.deviceRepo.UpsertToken(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to upsert device token")
	}

	s.log(ctx).Debug("[Device] Token registered",
		slog.String("userID", userID),
		slog.String("platform", string(token.Platform)),
	)

	return token, nil
}

// RefreshToken retires a rotated token and registers its replacement
func (s *deviceService) RefreshToken(ctx context.Context, userID, oldToken string, reg *usecase.TokenRegistration) (*entity.DeviceToken, error) {
	if err := validateRegistration(userID, reg); err != nil {
		return nil, err
	}

	oldToken = strings.TrimSpace(oldToken)
	if oldToken != "" && oldToken != strings.TrimSpace(reg.Token) {
		err := s.deviceRepo.DeactivateToken(ctx, userID, oldToken, s.now())
		if err != nil && !errors.Is(err, repository.ErrDeviceTokenNotFound) {
			return nil, errors.Wrap(err, "failed to deactivate rotated token")
		}
	}

	return s.RegisterToken(ctx, userID, reg)
}

// UnregisterToken deactivates a single token of the user
func (s *deviceService) UnregisterToken(ctx context.Context, userID, token string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(token) == "" {
		return domainerrors.ErrInvalidArgument.WithDetails("userId and token are required")
	}

	err := s.deviceRepo.DeactivateToken(ctx, userID, strings.TrimSpace(token), s.now())
	if err != nil && !errors.Is(err, repository.ErrDeviceTokenNotFound) {
		return errors.Wrap(err, "failed to deactivate device token")
	}

	return nil
}

// DeactivateAll deactivates every token of the user
func (s *deviceService) DeactivateAll(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return domainerrors.ErrInvalidArgument.WithDetails("userId is required")
	}

	affected, err := s.deviceRepo.DeactivateAllByUser(ctx, userID, s.now())
	if err != nil {
		return errors.Wrap(err, "failed to deactivate device tokens")
	}

	s.log(ctx).Debug("[Device] Tokens deactivated",
		slog.String("userID", userID),
		slog.Int64("count", affected),
	)

	return nil
}

// ListActiveTokens returns the active tokens of a user
func (s *deviceService) ListActiveTokens(ctx context.Context, userID string) ([]*entity.DeviceToken, error) {
	tokens, err := s.deviceRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active device tokens")
	}

	return tokens, nil
}

// ListActiveTokensForUsers returns active tokens grouped by user id
func (s *deviceService) ListActiveTokensForUsers(ctx context.Context, userIDs []string) (map[string][]*entity.DeviceToken, error) {
	result := make(map[string][]*entity.DeviceToken, len(userIDs))

	for _, chunk := range chunkStrings(userIDs, lookupChunkSize) {
		byUser, err := s.deviceRepo.FindActiveByUsers(ctx, chunk)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find active device tokens for users")
		}
		for userID, tokens := range byUser {
			result[userID] = append(result[userID], tokens...)
		}
	}

	return result, nil
}

// DeactivateTokens retires tokens reported invalid by a push gateway
func (s *deviceService) DeactivateTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	affected, err := s.deviceRepo.DeactivateTokens(ctx, tokens, s.now())
	if err != nil {
		return errors.Wrap(err, "failed to deactivate invalid tokens")
	}

	s.log(ctx).Info("[Device] Invalid tokens retired",
		slog.Int("reported", len(tokens)),
		slog.Int64("deactivated", affected),
	)

	return nil
}

func validateRegistration(userID string, reg *usecase.TokenRegistration) error {
	if strings.TrimSpace(userID) == "" {
		return domainerrors.ErrInvalidArgument.WithDetails("userId is required")
	}
	if reg == nil || strings.TrimSpace(reg.Token) == "" {
		return domainerrors.ErrInvalidArgument.WithDetails("token is required")
	}
	if !reg.Platform.IsValid() {
		return domainerrors.ErrInvalidArgument.WithDetails("platform must be one of ios, android, web")
	}

	return nil
}

// chunkStrings splits ids into consecutive slices of at most size elements.
func chunkStrings(ids []string, size int) [][]string {
	if len(ids) == 0 {
		return nil
	}
	if size <= 0 {
		size = len(ids)
	}

	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for i := 0; i < len(ids); i += size {
		end := min(i+size, len(ids))
		chunks = append(chunks, ids[i:end])
	}

	return chunks
}

package impl

import (
	"context"
	"strings"

	"naguil/internal/domain/entity"
	domainerrors "naguil/internal/domain/errors"
	"naguil/internal/domain/repository"
	"naguil/internal/errors"
	"naguil/internal/usecase"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type historyService struct {
	notificationRepo repository.NotificationRepository
}

// NewHistoryService creates a new history service instance
func NewHistoryService(notificationRepo repository.NotificationRepository) usecase.HistoryUsecase {
	return &historyService{
		notificationRepo: notificationRepo,
	}
}

// ListRecords returns the user's records, newest first
func (s *historyService) ListRecords(ctx context.Context, userID string, limit, offset int) ([]*entity.NotificationRecord, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("userId is required")
	}
	if offset < 0 {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("offset must not be negative")
	}

	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	records, err := s.notificationRepo.FindRecordsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notification records")
	}

	return records, nil
}

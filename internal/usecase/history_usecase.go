package usecase

import (
	"context"

	"naguil/internal/domain/entity"
)

// HistoryUsecase exposes a user's delivery records.
type HistoryUsecase interface {
	// ListRecords returns the user's records, newest first.
	ListRecords(ctx context.Context, userID string, limit, offset int) ([]*entity.NotificationRecord, error)
}

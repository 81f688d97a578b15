package usecase

import (
	"context"

	"naguil/internal/domain/entity"
)

// DispatchUsecase defines the notification dispatch use cases.
type DispatchUsecase interface {
	// Validate checks the intent shape and decodes its payload. It performs no I/O.
	Validate(intent *entity.DispatchIntent) error

	// Dispatch runs validate, resolve, send and log for one intent.
	// Gateway failures are folded into the result; only invalid intents and
	// store failures during resolution are returned as errors.
	Dispatch(ctx context.Context, intent *entity.DispatchIntent) (*entity.DispatchResult, error)

	// Enqueue validates the intent and publishes it for asynchronous dispatch, returning the event id.
	Enqueue(ctx context.Context, intent *entity.DispatchIntent) (string, error)
}

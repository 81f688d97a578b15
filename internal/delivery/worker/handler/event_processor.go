package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	deliverycontext "naguil/internal/delivery/context"
	domainerrors "naguil/internal/domain/errors"
	"naguil/internal/domain/service"
	"naguil/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrMalformedEvent marks a message whose payload is not a dispatch event.
var ErrMalformedEvent = errors.New("malformed dispatch event")

const attrRequestID = "request_id"

// retryableError wraps an error to indicate the message should be redelivered
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError checks if an error is retryable
func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// EventProcessor turns a queued dispatch event into a dispatch run.
// It is shared by the Pub/Sub push endpoint and the Kafka consumer.
type EventProcessor struct {
	logger     *slog.Logger
	dispatchUC usecase.DispatchUsecase
}

type EventProcessorParams struct {
	fx.In

	Logger     *slog.Logger
	DispatchUC usecase.DispatchUsecase
}

func NewEventProcessor(params EventProcessorParams) *EventProcessor {
	return &EventProcessor{
		logger:     params.Logger,
		dispatchUC: params.DispatchUC,
	}
}

// Process decodes one event and dispatches it.
// Intents rejected by validation are acknowledged; store failures are retryable.
func (p *EventProcessor) Process(ctx context.Context, data []byte, attributes map[string]string) error {
	var event service.DispatchEvent
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&event); err != nil {
		return errors.Wrap(ErrMalformedEvent, err.Error())
	}

	requestID := p.extractRequestID(ctx, attributes, &event)
	reqLogger := p.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_id", event.EventID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing dispatch event",
		slog.String("notification_type", event.NotificationType),
		slog.String("target", event.Target),
	)

	result, err := p.dispatchUC.Dispatch(ctx, event.Intent())
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidArgument) {
			reqLogger.Warn("[Worker] Dropping invalid dispatch event", slog.Any("error", err))

			return nil
		}

		return newRetryableError(err)
	}

	reqLogger.Info("[Worker] Dispatch event processed",
		slog.String("status", string(result.Status)),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return nil
}

// extractRequestID prefers message attributes, then the event body, then the context.
func (p *EventProcessor) extractRequestID(ctx context.Context, attributes map[string]string, event *service.DispatchEvent) string {
	if requestID := attributes[attrRequestID]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"naguil/config"
	"naguil/internal/delivery/worker/handler"
	"naguil/internal/domain/entity"
	domainerrors "naguil/internal/domain/errors"
	"naguil/internal/domain/service"
	mockUsecase "naguil/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// fakeReader serves queued messages, then blocks until ctx ends.
type fakeReader struct {
	mu        sync.Mutex
	messages  []kafka.Message
	committed []kafka.Message
	closed    bool
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.messages) > 0 {
		msg := r.messages[0]
		r.messages = r.messages[1:]
		r.mu.Unlock()

		return msg, nil
	}
	r.mu.Unlock()

	<-ctx.Done()

	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)

	return nil
}

func (r *fakeReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true

	return nil
}

func (r *fakeReader) committedOffsets() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	offsets := make([]int64, 0, len(r.committed))
	for _, msg := range r.committed {
		offsets = append(offsets, msg.Offset)
	}

	return offsets
}

func eventMessage(t *testing.T, offset int64, userID string) kafka.Message {
	data, err := json.Marshal(service.DispatchEvent{
		EventID:          "evt",
		NotificationType: string(entity.TypeBookingRejected),
		Title:            "Booking rejected",
		Body:             "Sorry",
		Target:           "user",
		UserID:           userID,
	})
	require.NoError(t, err)

	return kafka.Message{
		Offset:  offset,
		Value:   data,
		Headers: []kafka.Header{{Key: "request_id", Value: []byte("req-kafka")}},
	}
}

func newTestConsumer(t *testing.T, reader *fakeReader) (*kafkaConsumer, *mockUsecase.MockDispatchUsecase) {
	dispatchUC := mockUsecase.NewMockDispatchUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	processor := handler.NewEventProcessor(handler.EventProcessorParams{Logger: logger, DispatchUC: dispatchUC})

	consumer := newKafkaConsumer(reader, processor, logger)
	consumer.backoff = time.Millisecond

	return consumer, dispatchUC
}

func runUntilCommitted(t *testing.T, consumer *kafkaConsumer, reader *fakeReader, want int) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- consumer.Serve(ctx) }()

	assert.Eventually(t, func() bool { return len(reader.committedOffsets()) == want }, 2*time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestKafkaConsumer_DispatchesAndCommits(t *testing.T) {
	reader := &fakeReader{messages: []kafka.Message{
		eventMessage(t, 1, "user-1"),
		eventMessage(t, 2, "user-2"),
	}}
	consumer, dispatchUC := newTestConsumer(t, reader)

	dispatchUC.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(intent *entity.DispatchIntent) bool { return intent.UserID == "user-1" })).
		Return(entity.NewSentResult(1, 0), nil).Once()
	dispatchUC.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(intent *entity.DispatchIntent) bool { return intent.UserID == "user-2" })).
		Return(nil, domainerrors.ErrInvalidArgument.WithDetails("bad")).Once()

	runUntilCommitted(t, consumer, reader, 2)

	assert.Equal(t, []int64{1, 2}, reader.committedOffsets())
}

func TestKafkaConsumer_RetriesRetryableFailures(t *testing.T) {
	reader := &fakeReader{messages: []kafka.Message{eventMessage(t, 7, "user-1")}}
	consumer, dispatchUC := newTestConsumer(t, reader)

	dispatchUC.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Twice()
	dispatchUC.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(entity.NewSentResult(1, 0), nil).Once()

	runUntilCommitted(t, consumer, reader, 1)
}

func TestKafkaConsumer_GivesUpAfterMaxAttempts(t *testing.T) {
	reader := &fakeReader{messages: []kafka.Message{eventMessage(t, 3, "user-1")}}
	consumer, dispatchUC := newTestConsumer(t, reader)

	dispatchUC.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Times(kafkaMaxAttempts)

	runUntilCommitted(t, consumer, reader, 1)
}

func TestKafkaConsumer_MalformedMessageIsCommitted(t *testing.T) {
	reader := &fakeReader{messages: []kafka.Message{{Offset: 9, Value: []byte("garbage")}}}
	consumer, _ := newTestConsumer(t, reader)

	runUntilCommitted(t, consumer, reader, 1)
}

func TestKafkaConsumer_StopClosesReader(t *testing.T) {
	reader := &fakeReader{}
	consumer, _ := newTestConsumer(t, reader)

	done := make(chan error, 1)
	go func() { done <- consumer.Serve(context.Background()) }()

	require.NoError(t, consumer.stop(context.Background()))
	require.NoError(t, <-done)
	assert.True(t, reader.closed)
}

func TestNewConsumers_OnlyForKafkaProvider(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: "local"},
		Kafka:  &config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "naguil-dispatch", GroupID: "naguil"},
	}

	consumers, err := NewConsumers(ConsumerParams{Lc: fxtest.NewLifecycle(t), Cfg: cfg, Logger: logger})
	require.NoError(t, err)
	assert.Empty(t, consumers)

	cfg.PubSub.Provider = "kafka"
	cfg.Kafka.GroupID = ""
	_, err = NewConsumers(ConsumerParams{Lc: fxtest.NewLifecycle(t), Cfg: cfg, Logger: logger})
	require.Error(t, err)
}

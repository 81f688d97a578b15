package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"naguil/config"
	"naguil/internal/domain/entity"
	"naguil/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.DispatchEvent {
	branchID := int64(7)

	return service.NewDispatchEvent("evt-1", "req-1", &entity.DispatchIntent{
		Type:   entity.TypeNewBooking,
		Title:  "New booking",
		Body:   "Table for 4 at 19:00",
		Data:   map[string]any{"bookingId": "b-200"},
		Target: entity.TargetStaff,
		Branch: entity.BranchSelector{ID: &branchID},
	}, time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC))
}

func TestLocalHTTPPublisher_PublishDispatchEvent(t *testing.T) {
	var pushMsg PubSubPushMessage
	var requestIDHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&pushMsg))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishDispatchEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestIDHeader)
	assert.Equal(t, "evt-1", pushMsg.Message.MessageID)
	assert.Equal(t, "2026-03-01T18:30:00Z", pushMsg.Message.PublishTime)
	assert.Equal(t, "new_booking", pushMsg.Message.Attributes[AttrNotificationType])
	assert.Equal(t, "staff", pushMsg.Message.Attributes[AttrTarget])
	assert.Equal(t, "req-1", pushMsg.Message.Attributes[AttrRequestID])

	raw, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	require.NoError(t, err)

	var event service.DispatchEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	intent := event.Intent()
	assert.Equal(t, entity.TypeNewBooking, intent.Type)
	require.NotNil(t, intent.Branch.ID)
	assert.Equal(t, int64(7), *intent.Branch.ID)
	assert.Equal(t, "b-200", intent.Data["bookingId"])
}

func TestLocalHTTPPublisher_WorkerRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishDispatchEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)

	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true

	return nil
}

func TestKafkaPublisher_PublishDispatchEvent(t *testing.T) {
	writer := &fakeWriter{}
	publisher := newKafkaPublisher(writer, discardLogger())

	require.NoError(t, publisher.PublishDispatchEvent(context.Background(), testEvent()))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, "branch:7", string(msg.Key))

	headers := make(map[string]string, len(msg.Headers))
	for _, header := range msg.Headers {
		headers[header.Key] = string(header.Value)
	}
	assert.Equal(t, "evt-1", headers[AttrEventID])
	assert.Equal(t, "req-1", headers[AttrRequestID])

	var event service.DispatchEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, "New booking", event.Title)

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("leader not available")}
	publisher := newKafkaPublisher(writer, discardLogger())

	err := publisher.PublishDispatchEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leader not available")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr string
	}{
		{name: "not configured", cfg: &config.Config{}},
		{name: "noop", cfg: &config.Config{PubSub: &config.PubSubConfig{Provider: "noop"}}},
		{name: "local", cfg: &config.Config{PubSub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}}},
		{name: "local without endpoint", cfg: &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}}, wantErr: "pubsub.localEndpoint is required"},
		{name: "google without project", cfg: &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}, wantErr: "pubsub.projectId and pubsub.topicId are required"},
		{name: "google without topic", cfg: &config.Config{PubSub: &config.PubSubConfig{Provider: "google", ProjectID: "p"}}, wantErr: "pubsub.projectId and pubsub.topicId are required"},
		{
			name: "kafka",
			cfg: &config.Config{
				PubSub: &config.PubSubConfig{Provider: "kafka"},
				Kafka:  &config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "naguil-dispatch"},
			},
		},
		{name: "kafka without brokers", cfg: &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}}, wantErr: "kafka.brokers and kafka.topic are required"},
		{
			name: "kafka without topic",
			cfg: &config.Config{
				PubSub: &config.PubSubConfig{Provider: "kafka"},
				Kafka:  &config.KafkaConfig{Brokers: []string{"localhost:9092"}},
			},
			wantErr: "kafka.brokers and kafka.topic are required",
		},
		{name: "unknown", cfg: &config.Config{PubSub: &config.PubSubConfig{Provider: "sqs"}}, wantErr: "unknown pubsub provider: sqs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: tt.cfg,
				Logger: discardLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}

func TestRecipientKey(t *testing.T) {
	branchID := int64(12)

	tests := []struct {
		name  string
		event *service.DispatchEvent
		want  string
	}{
		{name: "user", event: &service.DispatchEvent{EventID: "e", UserID: "u-1"}, want: "user:u-1"},
		{name: "branch id", event: &service.DispatchEvent{EventID: "e", BranchID: &branchID, BranchName: "Downtown"}, want: "branch:12"},
		{name: "branch name", event: &service.DispatchEvent{EventID: "e", BranchName: "Downtown"}, want: "branch-name:Downtown"},
		{name: "no recipient", event: &service.DispatchEvent{EventID: "e"}, want: "e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recipientKey(tt.event))
		})
	}
}

package worker

import (
	"context"
	"log/slog"
	"time"

	"naguil/config"
	"naguil/internal/delivery"
	workerhandler "naguil/internal/delivery/worker/handler"
	"naguil/internal/domain/constants"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

const (
	kafkaMaxAttempts    = 5
	kafkaInitialBackoff = 500 * time.Millisecond
)

// messageReader is the part of kafka.Reader the consumer uses.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaConsumer struct {
	reader     messageReader
	processor  *workerhandler.EventProcessor
	logger     *slog.Logger
	backoff    time.Duration
	stopped    context.Context
	cancelLoop context.CancelFunc
}

// ConsumerParams holds dependencies for the Kafka consumer
type ConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor *workerhandler.EventProcessor
}

// NewConsumers returns the queue consumers for the configured event provider.
// Only kafka needs one; Pub/Sub pushes to the worker HTTP server.
func NewConsumers(params ConsumerParams) ([]delivery.Delivery, error) {
	if params.Cfg.PubSub == nil || params.Cfg.PubSub.Provider != constants.PubSubProviderKafka {
		return nil, nil
	}

	consumer, err := NewKafkaConsumer(params)
	if err != nil {
		return nil, err
	}

	return []delivery.Delivery{consumer}, nil
}

// NewKafkaConsumer builds a consumer-group reader on the dispatch topic.
func NewKafkaConsumer(params ConsumerParams) (delivery.Delivery, error) {
	kafkaCfg := params.Cfg.Kafka
	if kafkaCfg == nil || len(kafkaCfg.Brokers) == 0 || kafkaCfg.Topic == "" || kafkaCfg.GroupID == "" {
		return nil, errors.New("kafka brokers, topic and groupId are required for the kafka consumer")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  kafkaCfg.Brokers,
		Topic:    kafkaCfg.Topic,
		GroupID:  kafkaCfg.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})

	consumer := newKafkaConsumer(reader, params.Processor, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: consumer.stop,
	})

	return consumer, nil
}

func newKafkaConsumer(reader messageReader, processor *workerhandler.EventProcessor, logger *slog.Logger) *kafkaConsumer {
	stopped, cancel := context.WithCancel(context.Background())

	return &kafkaConsumer{
		reader:     reader,
		processor:  processor,
		logger:     logger,
		backoff:    kafkaInitialBackoff,
		stopped:    stopped,
		cancelLoop: cancel,
	}
}

// Serve fetches messages until the reader is closed or ctx ends.
// A message is committed once it is processed or dropped.
func (k *kafkaConsumer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stopAfter := context.AfterFunc(k.stopped, cancel)
	defer stopAfter()

	k.logger.Info("Starting Kafka consumer")

	for {
		msg, err := k.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "failed to fetch kafka message")
		}

		k.handle(ctx, msg)

		if err := k.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "failed to commit kafka message")
		}
	}
}

func (k *kafkaConsumer) handle(ctx context.Context, msg kafka.Message) {
	attributes := make(map[string]string, len(msg.Headers))
	for _, header := range msg.Headers {
		attributes[header.Key] = string(header.Value)
	}

	backoff := k.backoff
	for attempt := 1; ; attempt++ {
		err := k.processor.Process(ctx, msg.Value, attributes)
		if err == nil {
			return
		}

		if !workerhandler.IsRetryableError(err) || attempt >= kafkaMaxAttempts {
			k.logger.Error("[Kafka] Dropping dispatch event",
				slog.Int64("offset", msg.Offset),
				slog.Int("partition", msg.Partition),
				slog.Int("attempts", attempt),
				slog.Any("error", err),
			)

			return
		}

		k.logger.Warn("[Kafka] Retrying dispatch event",
			slog.Int64("offset", msg.Offset),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}

func (k *kafkaConsumer) stop(_ context.Context) error {
	k.logger.Info("Shutting down Kafka consumer")

	k.cancelLoop()

	return errors.WithStack(k.reader.Close())
}

package pubsub

import (
	"context"
	"log/slog"

	"naguil/config"
	"naguil/internal/domain/constants"
	"naguil/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the dispatch queue from pubsub.provider.
// An empty provider selects the no-op publisher.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	provider := constants.PubSubProviderNoop
	if params.Config.PubSub != nil && params.Config.PubSub.Provider != "" {
		provider = params.Config.PubSub.Provider
	}

	logger := params.Logger.With(slog.String("pubsub_provider", provider))

	publisher, err := buildPublisher(params.Ctx, provider, params.Config, logger)
	if err != nil {
		return nil, err
	}

	if provider != constants.PubSubProviderNoop {
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				logger.Info("[PubSub] closing publisher")

				return publisher.Close()
			},
		})
	}

	return publisher, nil
}

func buildPublisher(ctx context.Context, provider string, cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	switch provider {
	case constants.PubSubProviderNoop:
		logger.Info("[PubSub] no queue configured, dispatch events are dropped")

		return NewNoopPublisher(logger), nil

	case constants.PubSubProviderLocal:
		endpoint := cfg.PubSub.LocalEndpoint
		if endpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("[PubSub] posting events to local worker", slog.String("endpoint", endpoint))

		return NewLocalHTTPPublisher(endpoint, logger), nil

	case constants.PubSubProviderGoogle:
		projectID, topicID := cfg.PubSub.ProjectID, cfg.PubSub.TopicID
		if projectID == "" || topicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("[PubSub] publishing to Google Pub/Sub",
			slog.String("project_id", projectID),
			slog.String("topic_id", topicID),
		)

		return NewGooglePubSubPublisher(ctx, projectID, topicID, logger)

	case constants.PubSubProviderKafka:
		kafkaCfg := cfg.Kafka
		if kafkaCfg == nil || len(kafkaCfg.Brokers) == 0 || kafkaCfg.Topic == "" {
			return nil, errors.New("kafka.brokers and kafka.topic are required for the kafka provider")
		}
		logger.Info("[PubSub] publishing to Kafka",
			slog.Any("brokers", kafkaCfg.Brokers),
			slog.String("topic", kafkaCfg.Topic),
		)

		return NewKafkaPublisher(kafkaCfg.Brokers, kafkaCfg.Topic, logger), nil

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", provider)
	}
}

// Module provides the dispatch queue publisher
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)

package notification

import (
	"context"
	"net/http"
	"time"

	"naguil/config"
	"naguil/internal/domain/service"

	"github.com/9ssi7/exponent"
	"github.com/pkg/errors"
)

const (
	expoMaxBatchSize        = 100
	expoDefaultTimeout      = 10 * time.Second
	expoDeviceNotRegistered = "DeviceNotRegistered"
	expoDefaultSound        = "default"
)

// expoPublisher is the part of the Expo SDK client the gateway uses.
type expoPublisher interface {
	Publish(ctx context.Context, messages []*exponent.Message) ([]*exponent.MessageResponse, error)
}

type expoGateway struct {
	client expoPublisher
}

// NewExpoGateway creates a push gateway backed by the Expo push service
func NewExpoGateway(cfg *config.ExpoConfig) service.PushGateway {
	timeout := expoDefaultTimeout
	opts := make([]exponent.Option, 0, 3)

	if cfg != nil {
		if cfg.Host != "" {
			opts = append(opts, exponent.WithHost(cfg.Host))
		}
		if cfg.AccessToken != "" {
			opts = append(opts, exponent.WithAccessToken(cfg.AccessToken))
		}
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}
	opts = append(opts, exponent.WithHttpClient(&http.Client{Timeout: timeout}))

	return &expoGateway{client: exponent.NewClient(opts...)}
}

func (g *expoGateway) MaxBatchSize() int {
	return expoMaxBatchSize
}

// SendBatchNotification publishes one message per token in a single request (max 100 tokens)
func (g *expoGateway) SendBatchNotification(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.BatchResult, error) {
	if len(tokens) == 0 {
		return &service.BatchResult{}, nil
	}

	if len(tokens) > expoMaxBatchSize {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), expoMaxBatchSize)
	}

	messages := make([]*exponent.Message, 0, len(tokens))
	for _, t := range tokens {
		token := exponent.Token(t)
		messages = append(messages, &exponent.Message{
			To:    []*exponent.Token{&token},
			Title: msg.Title,
			Body:  msg.Body,
			Data:  msg.Data,
			Sound: expoDefaultSound,
		})
	}

	tickets, err := g.client.Publish(ctx, messages)
	if err != nil {
		return nil, errors.Wrap(err, "failed to publish expo push messages")
	}

	return expoBatchResult(tokens, tickets), nil
}

// expoBatchResult pairs each token with its push ticket; tickets are in request order.
func expoBatchResult(tokens []string, tickets []*exponent.MessageResponse) *service.BatchResult {
	result := &service.BatchResult{
		Results: make([]service.TokenResult, 0, len(tokens)),
	}

	for idx, token := range tokens {
		tokenResult := service.TokenResult{Token: token}

		if idx >= len(tickets) {
			tokenResult.Error = "missing push ticket"
			result.Results = append(result.Results, tokenResult)

			continue
		}

		ticket := tickets[idx]
		if ticket.IsOk() {
			tokenResult.Accepted = true
		} else {
			tokenResult.Error = ticket.Message
			tokenResult.Invalid = ticket.Details["error"] == expoDeviceNotRegistered
		}

		result.Results = append(result.Results, tokenResult)
	}

	return result
}

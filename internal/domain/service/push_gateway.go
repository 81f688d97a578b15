package service

import (
	"context"
)

// PushMessage is the provider-neutral content of one push notification.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// TokenResult is the gateway's acknowledgement for a single token.
type TokenResult struct {
	Token    string
	Accepted bool
	// Invalid marks tokens the provider reports as unregistered or malformed.
	Invalid bool
	Error   string
}

// BatchResult holds per-token acknowledgements in request order.
type BatchResult struct {
	Results []TokenResult
}

// SuccessCount returns the number of accepted tokens.
func (r *BatchResult) SuccessCount() int {
	count := 0
	for _, res := range r.Results {
		if res.Accepted {
			count++
		}
	}

	return count
}

// FailureCount returns the number of rejected tokens.
func (r *BatchResult) FailureCount() int {
	return len(r.Results) - r.SuccessCount()
}

// InvalidTokens returns tokens that should be retired from the registry.
func (r *BatchResult) InvalidTokens() []string {
	var tokens []string
	for _, res := range r.Results {
		if res.Invalid {
			tokens = append(tokens, res.Token)
		}
	}

	return tokens
}

// PushGateway defines the interface for push notification providers.
type PushGateway interface {
	// SendBatchNotification sends one message to every token in a single provider call.
	// A returned error means the whole batch failed in transport.
	SendBatchNotification(ctx context.Context, tokens []string, msg *PushMessage) (*BatchResult, error)

	// MaxBatchSize is the largest token slice the provider accepts per call.
	MaxBatchSize() int
}

// Package notification contains the push gateway implementations.
package notification

import (
	"context"
	"fmt"

	"naguil/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
)

// fcmMaxBatchSize is the FCM multicast limit.
const fcmMaxBatchSize = 500

type fcmGateway struct {
	client *messaging.Client
}

// NewFCMGateway creates a push gateway backed by Firebase Cloud Messaging
func NewFCMGateway(ctx context.Context, app *firebase.App) (service.PushGateway, error) {
	if app == nil {
		return nil, errors.New("firebase app is required for fcm push provider")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmGateway{
		client: client,
	}, nil
}

func (g *fcmGateway) MaxBatchSize() int {
	return fcmMaxBatchSize
}

// SendBatchNotification sends one multicast message (max 500 tokens)
func (g *fcmGateway) SendBatchNotification(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.BatchResult, error) {
	if len(tokens) == 0 {
		return &service.BatchResult{}, nil
	}

	if len(tokens) > fcmMaxBatchSize {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), fcmMaxBatchSize)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	}

	response, err := g.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	return fcmBatchResult(tokens, response.Responses), nil
}

// fcmBatchResult pairs each token with its send response; responses are in token order.
func fcmBatchResult(tokens []string, responses []*messaging.SendResponse) *service.BatchResult {
	result := &service.BatchResult{
		Results: make([]service.TokenResult, 0, len(tokens)),
	}

	for idx, token := range tokens {
		tokenResult := service.TokenResult{Token: token}

		switch {
		case idx >= len(responses) || responses[idx] == nil:
			tokenResult.Error = "missing send response"
		case responses[idx].Success:
			tokenResult.Accepted = true
		default:
			sendErr := responses[idx].Error
			if sendErr != nil {
				tokenResult.Error = sendErr.Error()
				// Unregistered or malformed tokens are retired by the dispatcher
				tokenResult.Invalid = messaging.IsUnregistered(sendErr) || messaging.IsInvalidArgument(sendErr)
			} else {
				tokenResult.Error = fmt.Sprintf("send failed for token %d", idx)
			}
		}

		result.Results = append(result.Results, tokenResult)
	}

	return result
}

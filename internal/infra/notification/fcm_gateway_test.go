package notification

import (
	"context"
	"testing"

	"naguil/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFCMGateway_RequiresApp(t *testing.T) {
	gateway, err := NewFCMGateway(context.Background(), nil)
	require.Error(t, err)
	assert.Nil(t, gateway)
}

func TestFCMBatchResult(t *testing.T) {
	tokens := []string{"tok-a", "tok-b", "tok-c"}
	responses := []*messaging.SendResponse{
		{Success: true, MessageID: "m-1"},
		{Success: false, Error: errors.New("quota exceeded")},
	}

	result := fcmBatchResult(tokens, responses)

	require.Len(t, result.Results, 3)
	assert.Equal(t, service.TokenResult{Token: "tok-a", Accepted: true}, result.Results[0])
	assert.Equal(t, "tok-b", result.Results[1].Token)
	assert.False(t, result.Results[1].Accepted)
	assert.False(t, result.Results[1].Invalid)
	assert.Equal(t, "quota exceeded", result.Results[1].Error)
	assert.Equal(t, "missing send response", result.Results[2].Error)
	assert.Equal(t, 1, result.SuccessCount())
	assert.Equal(t, 2, result.FailureCount())
	assert.Empty(t, result.InvalidTokens())
}

func TestFCMGateway_MaxBatchSize(t *testing.T) {
	assert.Equal(t, 500, (&fcmGateway{}).MaxBatchSize())
}

func TestFCMGateway_EmptyAndOversizedBatch(t *testing.T) {
	gateway := &fcmGateway{}
	msg := &service.PushMessage{Title: "t", Body: "b"}

	result, err := gateway.SendBatchNotification(context.Background(), nil, msg)
	require.NoError(t, err)
	assert.Empty(t, result.Results)

	tokens := make([]string, 501)
	_, err = gateway.SendBatchNotification(context.Background(), tokens, msg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds limit")
}

package webhooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwoodhouse93/strava-client/strava"
)

func TestSubscriptionIDFromBasicResult(t *testing.T) {
	id, err := subscriptionID(map[string]any{"id": float64(12)})
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
}

func TestSubscriptionIDFromEnvelope(t *testing.T) {
	env := &strava.Envelope{
		StatusCode: 201,
		Success:    true,
		Body:       map[string]any{"id": float64(34)},
	}
	id, err := subscriptionID(env)
	require.NoError(t, err)
	assert.Equal(t, int64(34), id)
}

func TestSubscriptionIDMissing(t *testing.T) {
	_, err := subscriptionID(map[string]any{"status": "ok"})
	assert.Error(t, err)

	_, err = subscriptionID(nil)
	assert.Error(t, err)
}

func TestSubscriptionIDs(t *testing.T) {
	res := []any{
		map[string]any{"id": float64(1)},
		map[string]any{"id": float64(2)},
		"garbage",
	}
	assert.Equal(t, []int64{1, 2}, subscriptionIDs(res))

	env := &strava.Envelope{Body: res}
	assert.Equal(t, []int64{1, 2}, subscriptionIDs(env))

	assert.Nil(t, subscriptionIDs(map[string]any{}))
}

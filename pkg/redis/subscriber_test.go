package redis

import (
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubscriber(t *testing.T) {
	client, err := NewClient(NewRedisConfig())
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	noop := HandlerFunc(func(*redis.Message) error { return nil })

	t.Run("defaults", func(t *testing.T) {
		subscriber, err := NewSubscriber(client, "weather-view", "selection", noop, nil)
		require.NoError(t, err)
		assert.Equal(t, "weather-view::selection", subscriber.Channel())
		assert.Equal(t, 1, subscriber.poolSize)
	})

	t.Run("invalid pool size", func(t *testing.T) {
		_, err := NewSubscriber(client, "", "selection", noop, &SubscriberConfig{PoolSize: -1})
		assert.ErrorContains(t, err, "poolSize")
	})

	t.Run("missing handler", func(t *testing.T) {
		_, err := NewSubscriber(client, "", "selection", nil, nil)
		assert.ErrorContains(t, err, "handler")
	})
}

func TestSubscriber_HandleMessageSwallowsErrors(t *testing.T) {
	client, err := NewClient(NewRedisConfig())
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	var received []string
	handler := HandlerFunc(func(msg *redis.Message) error {
		received = append(received, msg.Payload)
		return errors.New("bad payload")
	})
	subscriber, err := NewSubscriber(client, "", "selection", handler, nil)
	require.NoError(t, err)

	subscriber.handleMessage(nil)
	subscriber.handleMessage(&redis.Message{Channel: "selection", Payload: "x"})

	assert.Equal(t, []string{"x"}, received)
}

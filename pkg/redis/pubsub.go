package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Publisher handles Redis publishing operations
type Publisher struct {
	client    *redis.Client
	namespace string
}

// NewPublisher creates a publisher whose channels are prefixed with namespace
func NewPublisher(client *Client, namespace string) *Publisher {
	return &Publisher{
		client:    client.GetClient(),
		namespace: namespace,
	}
}

// ChannelName constructs the full channel name using namespace::channel format
func (p *Publisher) ChannelName(channel string) string {
	if p.namespace != "" {
		return p.namespace + "::" + channel
	}
	return channel
}

// Publish publishes a message to a channel
func (p *Publisher) Publish(ctx context.Context, channel string, message any) error {
	return p.client.Publish(ctx, p.ChannelName(channel), message).Err()
}

// PublishJSON publishes a JSON message to a channel
func (p *Publisher) PublishJSON(ctx context.Context, channel string, message any) error {
	jsonData, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message to JSON: %w", err)
	}
	return p.Publish(ctx, channel, jsonData)
}

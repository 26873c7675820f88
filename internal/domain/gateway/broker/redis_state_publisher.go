package broker

import (
	"context"
	"time"

	"weather-view/internal/domain/model"
	"weather-view/pkg/redis"
)

type redisStatePublisher struct {
	client    *redis.Client
	publisher *redis.Publisher
}

// NewRedisStatePublisher publishes view changes as JSON on namespaced Redis channels
func NewRedisStatePublisher(client *redis.Client, namespace string) StatePublisher {
	return &redisStatePublisher{
		client:    client,
		publisher: redis.NewPublisher(client, namespace),
	}
}

func (p *redisStatePublisher) PublishState(ctx context.Context, state model.ViewState) error {
	return p.publisher.PublishJSON(ctx, StateChannel, state)
}

func (p *redisStatePublisher) PublishAlert(ctx context.Context, message string) error {
	return p.publisher.PublishJSON(ctx, AlertChannel, AlertMessage{Message: message})
}

func (p *redisStatePublisher) Health() model.ComponentHealthStatus {
	check := p.client.HealthCheck(context.Background(), 2*time.Second)
	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(check.Status),
		Details: check.Details,
	}
}

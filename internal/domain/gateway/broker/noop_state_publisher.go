package broker

import (
	"context"

	"weather-view/internal/domain/model"
)

type noopStatePublisher struct{}

// NewNoopStatePublisher is used when no broker is configured
func NewNoopStatePublisher() StatePublisher {
	return noopStatePublisher{}
}

func (noopStatePublisher) PublishState(context.Context, model.ViewState) error { return nil }

func (noopStatePublisher) PublishAlert(context.Context, string) error { return nil }

func (noopStatePublisher) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusUnknown,
		Details: map[string]string{"enabled": "false"},
	}
}

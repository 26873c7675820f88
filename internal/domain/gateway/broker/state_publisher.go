package broker

import (
	"context"

	"weather-view/internal/domain/model"
)

const (
	StateChannel = "weather-view-state"
	AlertChannel = "weather-view-alert"
	// SelectionChannel carries selections sent by remote bindings
	SelectionChannel = "weather-view-selection"
)

// StatePublisher fans view changes out to remote bindings
type StatePublisher interface {
	PublishState(ctx context.Context, state model.ViewState) error
	PublishAlert(ctx context.Context, message string) error
	Health() model.ComponentHealthStatus
}

// AlertMessage is the body published on the alert channel
type AlertMessage struct {
	Message string `json:"message"`
}

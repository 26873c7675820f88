package geo

import (
	"context"
	"errors"
	"time"

	"weather-view/internal/domain/model"
)

var (
	// ErrPositionUnavailable is returned when the provider cannot tell where the client is
	ErrPositionUnavailable = errors.New("position unavailable")
	// ErrTimeout is returned when no position was acquired within PositionOptions.Timeout
	ErrTimeout = errors.New("position acquisition timed out")
)

// PositionOptions controls a single position request
type PositionOptions struct {
	// Timeout bounds the acquisition, zero means no limit beyond ctx
	Timeout time.Duration
}

// Locator resolves the current geographic position
type Locator interface {
	CurrentPosition(ctx context.Context, opts PositionOptions) (model.Coordinates, error)
}

package api

import (
	"context"

	"weather-view/internal/domain/model"
	"weather-view/internal/domain/model/external"
)

// WeatherGateway defines the interface for the weather backend
type WeatherGateway interface {
	// GetWeather fetches forecasts for the given name and/or coordinates.
	// A decoded response is returned even when its success flag is false.
	GetWeather(ctx context.Context, query model.WeatherQuery) (*external.WeatherResponse, error)
}

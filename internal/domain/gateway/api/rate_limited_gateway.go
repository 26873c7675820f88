package api

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"weather-view/internal/domain/model"
	"weather-view/internal/domain/model/external"
)

// rateLimitedWeatherGateway throttles calls to the wrapped gateway
type rateLimitedWeatherGateway struct {
	gateway WeatherGateway
	limiter *rate.Limiter
}

// NewRateLimitedWeatherGateway wraps gateway with a token bucket of rps requests per second.
// A non-positive rps returns the gateway unchanged.
func NewRateLimitedWeatherGateway(gateway WeatherGateway, rps float64, burst int) WeatherGateway {
	if rps <= 0 {
		return gateway
	}
	if burst < 1 {
		burst = 1
	}
	return &rateLimitedWeatherGateway{
		gateway: gateway,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// GetWeather waits for a token, then forwards to the wrapped gateway
func (r *rateLimitedWeatherGateway) GetWeather(ctx context.Context, query model.WeatherQuery) (*external.WeatherResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.gateway.GetWeather(ctx, query)
}

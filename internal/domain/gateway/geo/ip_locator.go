package geo

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"

	"weather-view/internal/domain/model"
)

const ipLookupFields = "status,message,lat,lon"

// ipLookupResponse is the body of the IP geolocation endpoint
type ipLookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// ipLocator resolves the position of the host from its public IP address
type ipLocator struct {
	client *resty.Client
}

// NewIPLocator creates a Locator backed by an ip-api compatible endpoint at baseURL
func NewIPLocator(baseURL string) Locator {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	return &ipLocator{client: client}
}

// CurrentPosition looks up the coordinates of the caller's public address
func (l *ipLocator) CurrentPosition(ctx context.Context, opts PositionOptions) (model.Coordinates, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	resp, err := l.client.R().
		SetContext(ctx).
		SetQueryParam("fields", ipLookupFields).
		SetResult(&ipLookupResponse{}).
		Get("/json/")
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return model.Coordinates{}, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return model.Coordinates{}, fmt.Errorf("%w: %v", ErrPositionUnavailable, err)
	}

	if resp.IsError() {
		return model.Coordinates{}, fmt.Errorf("%w: lookup returned status %d", ErrPositionUnavailable, resp.StatusCode())
	}

	result := resp.Result().(*ipLookupResponse)
	if result.Status != "success" {
		return model.Coordinates{}, fmt.Errorf("%w: %s", ErrPositionUnavailable, result.Message)
	}

	return model.Coordinates{Latitude: result.Lat, Longitude: result.Lon}, nil
}

package api

import (
	"context"
	"fmt"

	"weather-view/internal/domain/model"
	"weather-view/internal/domain/model/external"
	"weather-view/pkg/http"
)

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
	path       string
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseUrl string, path string, clientOptions http.ClientOptions) WeatherGateway {
	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		path:       path,
	}
}

// GetWeather fetches forecasts from the weather endpoint
func (w *weatherGatewayImpl) GetWeather(ctx context.Context, query model.WeatherQuery) (*external.WeatherResponse, error) {
	successResp, errResp, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(w.path).
		WithQueryParams(query.QueryParams()).
		WithSuccessResp(&external.WeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.WeatherResponse), nil
	}

	if errResp != nil {
		errorResponse := errResp.(*external.APIErrorResponse)
		if errorResponse.Message != "" {
			return nil, fmt.Errorf("%s: %w", errorResponse.Message, err)
		}
	}

	return nil, err
}

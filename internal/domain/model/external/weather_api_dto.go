package external

import (
	"weather-view/internal/domain/entity"
	"weather-view/internal/domain/model"
)

// WeatherResponse represents the envelope returned by the weather backend.
// Data is nil when the backend sent no payload.
type WeatherResponse struct {
	Success bool            `json:"success"`
	Data    *WeatherPayload `json:"data"`
	Message string         `json:"message,omitempty"`
}

// WeatherPayload carries either top-level forecasts or a list of locations,
// depending on how the backend was addressed
type WeatherPayload struct {
	City      string            `json:"city"`
	County    string            `json:"county"`
	Forecasts []entity.Forecast `json:"forecasts"`
	Locations []LocationDTO     `json:"locations"`
}

// LocationDTO represents one township entry of the locations layout
type LocationDTO struct {
	Township  string            `json:"township"`
	County    string            `json:"county"`
	City      string            `json:"city"`
	Forecasts []entity.Forecast `json:"forecasts"`
}

// APIErrorResponse represents error bodies of the weather backend
type APIErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Resolve reduces the payload to its canonical form. The locations layout is used only
// when no top-level forecasts were sent and the locations key is present.
func (p WeatherPayload) Resolve() model.ResolvedWeather {
	if len(p.Forecasts) == 0 && p.Locations != nil {
		if len(p.Locations) == 0 {
			return model.ResolvedWeather{Shape: model.ShapeNestedEmpty}
		}

		first := p.Locations[0]
		return model.ResolvedWeather{
			Shape:     model.ShapeNested,
			Forecasts: nonNil(first.Forecasts),
			Label:     firstNonEmpty(first.Township, first.County, first.City, p.County, p.City),
		}
	}

	return model.ResolvedWeather{
		Shape:     model.ShapeFlat,
		Forecasts: nonNil(p.Forecasts),
		Label:     firstNonEmpty(p.City, p.County),
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

func nonNil(forecasts []entity.Forecast) []entity.Forecast {
	if forecasts == nil {
		return []entity.Forecast{}
	}
	return forecasts
}

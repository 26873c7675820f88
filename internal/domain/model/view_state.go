package model

import "weather-view/internal/domain/entity"

// ViewState is the snapshot of everything a UI binds to.
// SelectedCity follows the user's choice, City is the label of the last successful response.
type ViewState struct {
	Forecasts    []entity.Forecast `json:"forecasts"`
	IsLoading    bool              `json:"isLoading"`
	UpdateDate   string            `json:"updateDate"`
	City         string            `json:"city"`
	SelectedCity string            `json:"selectedCity"`
}

// Clone returns a copy that does not share the forecast slice
func (s ViewState) Clone() ViewState {
	clone := s
	clone.Forecasts = make([]entity.Forecast, len(s.Forecasts))
	copy(clone.Forecasts, s.Forecasts)
	return clone
}

// Advice is the umbrella and clothing hint shown next to a forecast.
type Advice struct {
	RainIcon  string `json:"rainIcon"`
	RainText  string `json:"rainText"`
	ClothIcon string `json:"clothIcon"`
	ClothText string `json:"clothText"`
}

// ForecastView is a forecast with its display artifacts already derived.
type ForecastView struct {
	entity.Forecast
	Icon   string `json:"icon"`
	Period string `json:"period"`
	Advice Advice `json:"advice"`
}

// ViewResponse is the payload served to UI clients.
type ViewResponse struct {
	ViewState
	Views []ForecastView `json:"views"`
}

package weather

import (
	"context"
	"errors"

	"weather-view/internal/domain/entity"
	"weather-view/internal/domain/model"
)

// CurrentPosition is the selection that asks for the weather where the client is
const CurrentPosition = "目前位置"

// ErrAPIFailure is returned when the backend answered with success=false
var ErrAPIFailure = errors.New("API Error")

type UseCase interface {
	// FetchWeather loads forecasts for a name and/or coordinates and updates the view state.
	// Failures are alerted once and leave the forecasts and label untouched.
	FetchWeather(ctx context.Context, params FetchParams) error

	// InitWeather records the selection and fetches the weather for it. An empty cityName
	// or CurrentPosition resolves the position through the geolocation provider.
	InitWeather(ctx context.Context, cityName string, countyName string) error

	// State returns a snapshot of the view state
	State() model.ViewState

	// Subscribe registers an observer notified after every state change and returns a
	// function that removes it
	Subscribe(observer Observer) (unsubscribe func())

	// Regions returns the region list used to tell regions from townships
	Regions() entity.Regions
}

// FetchParams addresses a weather fetch. Every field is optional.
type FetchParams struct {
	CityName   string
	CountyName string
	Lat        *float64
	Lon        *float64
}

// Query maps the parameters to a backend query. The CurrentPosition sentinel is never sent as a city,
// and coordinates are only sent when both are present.
func (p FetchParams) Query() model.WeatherQuery {
	query := model.WeatherQuery{County: p.CountyName}
	if p.CityName != CurrentPosition {
		query.City = p.CityName
	}
	if p.Lat != nil && p.Lon != nil {
		query.Coordinates = &model.Coordinates{Latitude: *p.Lat, Longitude: *p.Lon}
	}
	return query
}

// Observer receives view state snapshots
type Observer interface {
	OnStateChange(state model.ViewState)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(state model.ViewState)

var _ Observer = ObserverFunc(nil)

func (f ObserverFunc) OnStateChange(state model.ViewState) {
	f(state)
}

// Alerter shows a message to the user
type Alerter interface {
	Alert(message string)
}

// AlerterFunc adapts a function to Alerter
type AlerterFunc func(message string)

var _ Alerter = AlerterFunc(nil)

func (f AlerterFunc) Alert(message string) {
	f(message)
}

// Alerters sends every alert to each of the given alerters
func Alerters(alerters ...Alerter) Alerter {
	return AlerterFunc(func(message string) {
		for _, alerter := range alerters {
			alerter.Alert(message)
		}
	})
}

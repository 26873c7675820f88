package model

import "weather-view/internal/domain/entity"

// PayloadShape tells which response layout a successful payload used.
type PayloadShape string

const (
	// ShapeFlat carries forecasts at the top level of the payload
	ShapeFlat PayloadShape = "flat"
	// ShapeNested carries forecasts inside the first entry of a locations list
	ShapeNested PayloadShape = "nested"
	// ShapeNestedEmpty has a locations list with no entries, nothing to apply
	ShapeNestedEmpty PayloadShape = "nested-empty"
)

// ResolvedWeather is the canonical form of a successful payload.
type ResolvedWeather struct {
	Shape     PayloadShape
	Forecasts []entity.Forecast
	Label     string
}

// HasData reports whether the forecasts and label should replace the current view
func (r ResolvedWeather) HasData() bool {
	return r.Shape != ShapeNestedEmpty
}

package model

import (
	"fmt"
	"strconv"
)

// Coordinates is a geographic position in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%s,%s", formatCoordinate(c.Latitude), formatCoordinate(c.Longitude))
}

// WeatherQuery addresses the weather backend by name, by coordinates, or both.
// Empty fields are left out of the request.
type WeatherQuery struct {
	City        string
	County      string
	Coordinates *Coordinates
}

// QueryParams returns the backend query parameters
func (q WeatherQuery) QueryParams() map[string]string {
	params := make(map[string]string)
	if q.City != "" {
		params["city"] = q.City
	}
	if q.County != "" {
		params["county"] = q.County
	}
	if q.Coordinates != nil {
		params["lat"] = formatCoordinate(q.Coordinates.Latitude)
		params["lng"] = formatCoordinate(q.Coordinates.Longitude)
	}
	return params
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

package entity

// Forecast is a single time-bucketed reading as sent by the weather backend.
// Temperatures and probabilities stay as the backend formats them.
type Forecast struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Weather         string `json:"weather"`
	MaxTemp         string `json:"maxTemp"`
	MinTemp         string `json:"minTemp"`
	Rain            string `json:"rain"`
	Humidity        string `json:"humidity,omitempty"`
	MaxApparentTemp string `json:"maxApparentTemp,omitempty"`
	MinApparentTemp string `json:"minApparentTemp,omitempty"`
	WindSpeed       string `json:"windSpeed,omitempty"`
}

package weather

import (
	"strings"
	"time"

	"weather-view/internal/domain/entity"
	"weather-view/internal/domain/model"
	"weather-view/pkg/util/numberutils"
)

const defaultWeatherIcon = "🌤️"

// checked in order, the first keyword contained in the description wins
var weatherIcons = []struct {
	keyword string
	icon    string
}{
	{"晴", "☀️"},
	{"多雲", "⛅"},
	{"陰", "☁️"},
	{"雨", "🌧️"},
	{"雷", "⛈️"},
}

// zoned layouts are converted to local time, zoneless ones are read as local wall clock
var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05Z0700",
		"2006-01-02 15:04:05Z07:00",
		"2006-01-02T15:04Z07:00",
	}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006/01/02 15:04:05",
		"2006/01/02 15:04",
	}
	dateOnlyLayout = time.DateOnly
)

// GetWeatherIcon maps a weather description to an emoji
func GetWeatherIcon(weather string) string {
	if weather == "" {
		return defaultWeatherIcon
	}
	for _, candidate := range weatherIcons {
		if strings.Contains(weather, candidate.keyword) {
			return candidate.icon
		}
	}
	return defaultWeatherIcon
}

// GetAdvice builds the umbrella and clothing hint. Values that do not start with a number
// fail every threshold.
func GetAdvice(rain string, maxTemp string) model.Advice {
	advice := model.Advice{
		RainIcon:  "🌂",
		RainText:  "不用帶傘",
		ClothIcon: "👕",
		ClothText: "舒適穿搭",
	}

	if value, ok := numberutils.ParseIntPrefix(rain); ok && value > 30 {
		advice.RainIcon = "☂️"
		advice.RainText = "記得帶傘！"
	}

	if value, ok := numberutils.ParseIntPrefix(maxTemp); ok {
		switch {
		case value >= 28:
			advice.ClothIcon = "🎽"
			advice.ClothText = "短袖出發"
		case value <= 20:
			advice.ClothIcon = "🧥"
			advice.ClothText = "加件外套"
		}
	}

	return advice
}

// GetTimePeriod names the part of the day a timestamp falls in, using the local zone
func GetTimePeriod(timeString string) string {
	return TimePeriodIn(timeString, time.Local)
}

// TimePeriodIn names the part of the day a timestamp falls in, as seen from loc.
// Unparseable input is 深夜.
func TimePeriodIn(timeString string, loc *time.Location) string {
	t, ok := parseTimestamp(strings.TrimSpace(timeString), loc)
	if !ok {
		return "深夜"
	}

	hour := t.Hour()
	switch {
	case hour >= 5 && hour < 11:
		return "早晨"
	case hour >= 11 && hour < 14:
		return "中午"
	case hour >= 14 && hour < 18:
		return "下午"
	case hour >= 18 && hour < 23:
		return "晚上"
	default:
		return "深夜"
	}
}

func parseTimestamp(value string, loc *time.Location) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.In(loc), true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	// a bare date means midnight UTC
	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		return t.In(loc), true
	}
	return time.Time{}, false
}

// BuildForecastViews derives the display artifacts of every forecast, seen from loc
func BuildForecastViews(forecasts []entity.Forecast, loc *time.Location) []model.ForecastView {
	views := make([]model.ForecastView, 0, len(forecasts))
	for _, forecast := range forecasts {
		views = append(views, model.ForecastView{
			Forecast: forecast,
			Icon:     GetWeatherIcon(forecast.Weather),
			Period:   TimePeriodIn(forecast.StartTime, loc),
			Advice:   GetAdvice(forecast.Rain, forecast.MaxTemp),
		})
	}
	return views
}

// BuildViewResponse pairs a state snapshot with its derived forecast views
func BuildViewResponse(state model.ViewState, loc *time.Location) model.ViewResponse {
	return model.ViewResponse{
		ViewState: state,
		Views:     BuildForecastViews(state.Forecasts, loc),
	}
}

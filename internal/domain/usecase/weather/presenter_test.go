package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-view/internal/domain/entity"
	"weather-view/internal/domain/model"
)

func TestGetWeatherIcon(t *testing.T) {
	tests := []struct {
		weather string
		want    string
	}{
		{"晴", "☀️"},
		{"晴時多雲", "☀️"},
		{"多雲", "⛅"},
		{"多雲時陰", "⛅"},
		{"陰", "☁️"},
		{"陰短暫雨", "☁️"},
		{"短暫雨", "🌧️"},
		{"午後短暫雷陣雨", "🌧️"},
		{"雷", "⛈️"},
		{"", "🌤️"},
		{"起霧", "🌤️"},
	}

	for _, tt := range tests {
		t.Run(tt.weather, func(t *testing.T) {
			assert.Equal(t, tt.want, GetWeatherIcon(tt.weather))
		})
	}
}

func TestGetAdvice(t *testing.T) {
	tests := []struct {
		name      string
		rain      string
		maxTemp   string
		wantRain  string
		wantCloth string
	}{
		{"rain above threshold", "31", "25", "記得帶傘！", "舒適穿搭"},
		{"rain at threshold", "30", "25", "不用帶傘", "舒適穿搭"},
		{"rain with unit", "80%", "25", "記得帶傘！", "舒適穿搭"},
		{"hot", "0", "28", "不用帶傘", "短袖出發"},
		{"cold", "0", "20", "不用帶傘", "加件外套"},
		{"mild", "0", "21", "不用帶傘", "舒適穿搭"},
		{"negative temperature", "0", "-3", "不用帶傘", "加件外套"},
		{"not numbers", "abc", "n/a", "不用帶傘", "舒適穿搭"},
		{"empty", "", "", "不用帶傘", "舒適穿搭"},
		{"decimal truncates", "30.9", "27.9", "不用帶傘", "舒適穿搭"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := GetAdvice(tt.rain, tt.maxTemp)
			assert.Equal(t, tt.wantRain, advice.RainText)
			assert.Equal(t, tt.wantCloth, advice.ClothText)
		})
	}
}

func TestGetAdvice_Icons(t *testing.T) {
	assert.Equal(t, model.Advice{RainIcon: "☂️", RainText: "記得帶傘！", ClothIcon: "🎽", ClothText: "短袖出發"}, GetAdvice("60", "33"))
	assert.Equal(t, model.Advice{RainIcon: "🌂", RainText: "不用帶傘", ClothIcon: "🧥", ClothText: "加件外套"}, GetAdvice("10", "15"))
	assert.Equal(t, model.Advice{RainIcon: "🌂", RainText: "不用帶傘", ClothIcon: "👕", ClothText: "舒適穿搭"}, GetAdvice("10", "24"))
}

func TestTimePeriodIn(t *testing.T) {
	taipei := time.FixedZone("Asia/Taipei", 8*60*60)

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"early morning boundary", "2025-01-01 05:00:00", "早晨"},
		{"late morning", "2025-01-01 10:59:00", "早晨"},
		{"noon", "2025-01-01 11:00:00", "中午"},
		{"afternoon", "2025-01-01T14:00:00", "下午"},
		{"evening", "2025-01-01 18:00", "晚上"},
		{"late evening", "2025-01-01 22:59:59", "晚上"},
		{"night", "2025-01-01 23:00:00", "深夜"},
		{"small hours", "2025-01-01 04:59:59", "深夜"},
		{"zoned is converted", "2025-01-01T00:00:00Z", "早晨"},
		{"offset is converted", "2025-01-01T12:00:00+08:00", "中午"},
		{"date only is midnight utc", "2025-01-01", "早晨"},
		{"garbage", "not a time", "深夜"},
		{"empty", "", "深夜"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimePeriodIn(tt.value, taipei))
		})
	}
}

func TestBuildViewResponse(t *testing.T) {
	state := model.ViewState{
		Forecasts: []entity.Forecast{
			{StartTime: "2025-01-01 06:00:00", Weather: "多雲", MaxTemp: "29", Rain: "40"},
			{StartTime: "2025-01-01 18:00:00", Weather: "", MaxTemp: "18", Rain: "0"},
		},
		City:         "臺中市",
		SelectedCity: "臺中市",
		UpdateDate:   "1月1日 週三",
	}

	response := BuildViewResponse(state, time.UTC)

	assert.Equal(t, state, response.ViewState)
	require.Len(t, response.Views, 2)

	assert.Equal(t, "⛅", response.Views[0].Icon)
	assert.Equal(t, "早晨", response.Views[0].Period)
	assert.Equal(t, "記得帶傘！", response.Views[0].Advice.RainText)
	assert.Equal(t, "短袖出發", response.Views[0].Advice.ClothText)
	assert.Equal(t, state.Forecasts[0], response.Views[0].Forecast)

	assert.Equal(t, "🌤️", response.Views[1].Icon)
	assert.Equal(t, "晚上", response.Views[1].Period)
	assert.Equal(t, "加件外套", response.Views[1].Advice.ClothText)
}

func TestBuildForecastViews_Empty(t *testing.T) {
	views := BuildForecastViews(nil, time.UTC)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

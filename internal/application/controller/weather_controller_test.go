package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-view/internal/application/stream"
	"weather-view/internal/domain/entity"
	"weather-view/internal/domain/model"
	"weather-view/internal/domain/usecase/weather"
)

type selection struct {
	cityName   string
	countyName string
}

type fakeWeatherUseCase struct {
	weather.UseCase
	state      model.ViewState
	regions    entity.Regions
	selections chan selection
}

func (f *fakeWeatherUseCase) State() model.ViewState { return f.state }

func (f *fakeWeatherUseCase) Regions() entity.Regions { return f.regions }

func (f *fakeWeatherUseCase) InitWeather(_ context.Context, cityName string, countyName string) error {
	f.selections <- selection{cityName: cityName, countyName: countyName}
	return nil
}

func newTestController(useCase weather.UseCase, hub *stream.Hub) (*echo.Echo, *WeatherController) {
	e := echo.New()
	controller := NewWeatherController(e.Group("/weather-view"), useCase, hub, time.UTC, time.Second)
	controller.InitWeatherRoutes()
	return e, controller
}

func TestWeatherController_GetWeather(t *testing.T) {
	useCase := &fakeWeatherUseCase{state: model.ViewState{
		Forecasts:    []entity.Forecast{{StartTime: "2025-01-01 15:00:00", Weather: "陰", Rain: "10", MaxTemp: "19"}},
		City:         "臺中市",
		SelectedCity: "臺中市",
		UpdateDate:   "1月1日 週三",
	}}
	e, _ := newTestController(useCase, stream.NewHub(0, time.UTC))

	req := httptest.NewRequest(http.MethodGet, "/weather-view/weather", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body model.ViewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "臺中市", body.City)
	assert.Equal(t, "1月1日 週三", body.UpdateDate)
	require.Len(t, body.Views, 1)
	assert.Equal(t, "☁️", body.Views[0].Icon)
	assert.Equal(t, "下午", body.Views[0].Period)
	assert.Equal(t, "加件外套", body.Views[0].Advice.ClothText)
}

func TestWeatherController_SelectCity(t *testing.T) {
	useCase := &fakeWeatherUseCase{selections: make(chan selection, 1)}
	e, _ := newTestController(useCase, stream.NewHub(0, time.UTC))

	t.Run("accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/weather-view/weather/selection",
			strings.NewReader(`{"cityName":"花壇鄉","countyName":"彰化縣"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		select {
		case got := <-useCase.selections:
			assert.Equal(t, selection{cityName: "花壇鄉", countyName: "彰化縣"}, got)
		case <-time.After(time.Second):
			t.Fatal("selection was not applied")
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/weather-view/weather/selection", strings.NewReader(`{"cityName":`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWeatherController_GetRegions(t *testing.T) {
	useCase := &fakeWeatherUseCase{regions: entity.Regions{{Name: "彰化縣", Townships: []string{"花壇鄉"}}}}
	e, _ := newTestController(useCase, stream.NewHub(0, time.UTC))

	req := httptest.NewRequest(http.MethodGet, "/weather-view/weather/regions", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"name":"彰化縣","townships":["花壇鄉"]}]`, rec.Body.String())
}

// streamRecorder is a ResponseWriter whose body can be read while the handler is still writing
type streamRecorder struct {
	mu     sync.Mutex
	header http.Header
	body   bytes.Buffer
	status int
}

func (r *streamRecorder) Header() http.Header { return r.header }

func (r *streamRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.body.Write(p)
}

func (r *streamRecorder) WriteHeader(status int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = status
}

func (r *streamRecorder) Flush() {}

func (r *streamRecorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.body.String()
}

func TestWeatherController_StreamWeather(t *testing.T) {
	hub := stream.NewHub(0, time.UTC)
	useCase := &fakeWeatherUseCase{state: model.ViewState{City: "臺中市", SelectedCity: "臺中市"}}
	e, _ := newTestController(useCase, hub)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/weather-view/weather/stream", nil).WithContext(ctx)
	rec := &streamRecorder{header: http.Header{}}

	done := make(chan struct{})
	go func() {
		defer close(done)
		e.ServeHTTP(rec, req)
	}()

	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, time.Millisecond)
	require.Eventually(t, func() bool { return strings.Contains(rec.String(), "event: state\n") }, time.Second, time.Millisecond)

	hub.Alert("天氣資料讀取失敗")
	require.Eventually(t, func() bool {
		return strings.Contains(rec.String(), "event: alert\ndata: {\"message\":\"天氣資料讀取失敗\"}\n\n")
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stream did not end after the client left")
	}

	assert.Equal(t, 0, hub.Clients())
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.String(), `"city":"臺中市"`)
}

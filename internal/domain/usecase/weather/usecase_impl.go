package weather

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"weather-view/internal/domain/entity"
	"weather-view/internal/domain/gateway/api"
	"weather-view/internal/domain/gateway/geo"
	"weather-view/internal/domain/model"
	"weather-view/internal/domain/model/external"
	"weather-view/pkg/log"
	"weather-view/pkg/msg"
)

const (
	DefaultMinLoading   = 1500 * time.Millisecond
	DefaultFallbackCity = "臺中市"
	DefaultGeoTimeout   = 10 * time.Second

	// NoMinLoading turns the minimum loading time off
	NoMinLoading time.Duration = -1
)

var weekdayNames = [...]string{"週日", "週一", "週二", "週三", "週四", "週五", "週六"}

// Config holds the tunables of the weather view
type Config struct {
	// MinLoading is the shortest time the loading flag stays up on a fetch.
	// Zero means DefaultMinLoading, a negative value turns the floor off.
	MinLoading time.Duration
	// FallbackCity is fetched when the current position cannot be resolved
	FallbackCity string
	// GeoTimeout is handed to the geolocation provider
	GeoTimeout time.Duration
	// Clock drives the loading delay and the update date, defaults to the real clock
	Clock clockwork.Clock
	// Location is the zone of the update date, defaults to time.Local
	Location *time.Location
}

type subscription struct {
	id       uint64
	observer Observer
}

type weatherUseCase struct {
	gateway api.WeatherGateway
	locator geo.Locator
	regions entity.Regions
	alerter Alerter
	config  Config

	mu    sync.RWMutex
	state model.ViewState

	// notifyMu keeps observers from seeing snapshots out of order
	notifyMu    sync.Mutex
	observersMu sync.Mutex
	observers   []subscription
	nextID      uint64
}

// NewWeatherUseCase creates the weather view. A nil locator means geolocation is not available.
func NewWeatherUseCase(gateway api.WeatherGateway, locator geo.Locator, regions entity.Regions, alerter Alerter, config Config) UseCase {
	if config.MinLoading == 0 {
		config.MinLoading = DefaultMinLoading
	}
	if config.FallbackCity == "" {
		config.FallbackCity = DefaultFallbackCity
	}
	if config.GeoTimeout <= 0 {
		config.GeoTimeout = DefaultGeoTimeout
	}
	if config.Clock == nil {
		config.Clock = clockwork.NewRealClock()
	}
	if config.Location == nil {
		config.Location = time.Local
	}
	if alerter == nil {
		alerter = AlerterFunc(func(message string) {
			log.Warn("Alert without UI", zap.String("alert", message))
		})
	}

	return &weatherUseCase{
		gateway: gateway,
		locator: locator,
		regions: regions,
		alerter: alerter,
		config:  config,
		state: model.ViewState{
			Forecasts:    []entity.Forecast{},
			IsLoading:    true,
			SelectedCity: CurrentPosition,
		},
	}
}

// FetchWeather loads forecasts and applies them to the view state
func (uc *weatherUseCase) FetchWeather(ctx context.Context, params FetchParams) error {
	requestID := uuid.NewString()
	query := params.Query()

	coordinates := ""
	if query.Coordinates != nil {
		coordinates = query.Coordinates.String()
	}
	log.Info(msg.GetMessage("weather.fetch.start", query.City, query.County, coordinates),
		zap.String("request_id", requestID))

	uc.setLoading(true)
	defer uc.setLoading(false)

	response, err := uc.fetchWithMinimumLoading(ctx, query)
	if err == nil {
		err = checkResponse(response)
	}

	if err != nil {
		log.Error(msg.GetMessage("weather.fetch.failed"), zap.String("request_id", requestID), zap.Error(err))
		uc.alerter.Alert(msg.GetMessage("weather.alert.fetch-failed"))
		return fmt.Errorf("failed to fetch weather: %w", err)
	}

	resolved := response.Data.Resolve()
	if !resolved.HasData() {
		log.Warn(msg.GetMessage("weather.fetch.empty-locations"), zap.String("request_id", requestID))
	}
	uc.applyWeather(resolved)

	log.Info(msg.GetMessage("weather.fetch.done", resolved.Label, len(resolved.Forecasts)),
		zap.String("request_id", requestID),
		zap.String("shape", string(resolved.Shape)))
	return nil
}

// checkResponse rejects logical failures and successful envelopes without a payload
func checkResponse(response *external.WeatherResponse) error {
	switch {
	case !response.Success && response.Message != "":
		return fmt.Errorf("%w: %s", ErrAPIFailure, response.Message)
	case !response.Success:
		return ErrAPIFailure
	case response.Data == nil:
		return fmt.Errorf("%w: response has no data", ErrAPIFailure)
	}
	return nil
}

// fetchWithMinimumLoading runs the request and the minimum loading delay side by side and
// returns once both are done. A failed request ends the wait early.
func (uc *weatherUseCase) fetchWithMinimumLoading(ctx context.Context, query model.WeatherQuery) (*external.WeatherResponse, error) {
	group, groupCtx := errgroup.WithContext(ctx)

	if uc.config.MinLoading > 0 {
		group.Go(func() error {
			select {
			case <-uc.config.Clock.After(uc.config.MinLoading):
				return nil
			case <-groupCtx.Done():
				return groupCtx.Err()
			}
		})
	}

	var response *external.WeatherResponse
	group.Go(func() error {
		resp, err := uc.gateway.GetWeather(groupCtx, query)
		if err != nil {
			return err
		}
		if resp == nil {
			return errors.New("empty weather response")
		}
		response = resp
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return response, nil
}

// InitWeather records the selection and routes it to the matching fetch
func (uc *weatherUseCase) InitWeather(ctx context.Context, cityName string, countyName string) error {
	if cityName == "" {
		cityName = CurrentPosition
	}
	uc.setSelectedCity(cityName)

	if cityName == CurrentPosition {
		return uc.fetchCurrentPosition(ctx)
	}

	if uc.regions.IsRegion(cityName) {
		return uc.FetchWeather(ctx, FetchParams{CountyName: cityName})
	}

	return uc.FetchWeather(ctx, FetchParams{CityName: cityName, CountyName: countyName})
}

// fetchCurrentPosition fetches by coordinates, or the fallback city when no position is available
func (uc *weatherUseCase) fetchCurrentPosition(ctx context.Context) error {
	if uc.locator == nil {
		log.Warn(msg.GetMessage("weather.geo.unavailable", uc.config.FallbackCity))
		return uc.FetchWeather(ctx, FetchParams{CityName: uc.config.FallbackCity})
	}

	position, err := uc.locator.CurrentPosition(ctx, geo.PositionOptions{Timeout: uc.config.GeoTimeout})
	if err != nil {
		log.Warn(msg.GetMessage("weather.geo.failed", uc.config.FallbackCity), zap.Error(err))
		return uc.FetchWeather(ctx, FetchParams{CityName: uc.config.FallbackCity})
	}

	return uc.FetchWeather(ctx, FetchParams{
		CityName: CurrentPosition,
		Lat:      &position.Latitude,
		Lon:      &position.Longitude,
	})
}

// State returns a copy of the current view state
func (uc *weatherUseCase) State() model.ViewState {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.state.Clone()
}

// Subscribe registers an observer and returns its removal function
func (uc *weatherUseCase) Subscribe(observer Observer) func() {
	uc.observersMu.Lock()
	defer uc.observersMu.Unlock()

	uc.nextID++
	id := uc.nextID
	uc.observers = append(uc.observers, subscription{id: id, observer: observer})

	var once sync.Once
	return func() {
		once.Do(func() {
			uc.observersMu.Lock()
			defer uc.observersMu.Unlock()
			for i, sub := range uc.observers {
				if sub.id == id {
					uc.observers = append(uc.observers[:i:i], uc.observers[i+1:]...)
					return
				}
			}
		})
	}
}

func (uc *weatherUseCase) Regions() entity.Regions {
	return uc.regions
}

func (uc *weatherUseCase) setLoading(loading bool) {
	uc.mu.Lock()
	uc.state.IsLoading = loading
	uc.mu.Unlock()
	uc.notify()
}

func (uc *weatherUseCase) setSelectedCity(cityName string) {
	uc.mu.Lock()
	uc.state.SelectedCity = cityName
	uc.mu.Unlock()
	uc.notify()
}

// applyWeather replaces forecasts and label together and stamps the update date
func (uc *weatherUseCase) applyWeather(resolved model.ResolvedWeather) {
	uc.mu.Lock()
	if resolved.HasData() {
		uc.state.Forecasts = resolved.Forecasts
		uc.state.City = resolved.Label
	}
	uc.state.UpdateDate = FormatUpdateDate(uc.config.Clock.Now().In(uc.config.Location))
	uc.mu.Unlock()
	uc.notify()
}

func (uc *weatherUseCase) notify() {
	uc.notifyMu.Lock()
	defer uc.notifyMu.Unlock()

	uc.observersMu.Lock()
	observers := make([]subscription, len(uc.observers))
	copy(observers, uc.observers)
	uc.observersMu.Unlock()

	if len(observers) == 0 {
		return
	}

	snapshot := uc.State()
	for _, sub := range observers {
		sub.observer.OnStateChange(snapshot)
	}
}

// FormatUpdateDate renders the "last updated" label, e.g. 3月5日 週三
func FormatUpdateDate(now time.Time) string {
	return fmt.Sprintf("%d月%d日 %s", int(now.Month()), now.Day(), weekdayNames[now.Weekday()])
}

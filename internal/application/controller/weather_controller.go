package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"weather-view/internal/application/stream"
	"weather-view/internal/domain/entity"
	"weather-view/internal/domain/model"
	"weather-view/internal/domain/usecase/weather"
	"weather-view/pkg/log"
)

type WeatherController struct {
	api              *echo.Group
	useCase          weather.UseCase
	hub              *stream.Hub
	location         *time.Location
	selectionTimeout time.Duration
}

// NewWeatherController creates the UI binding of the weather view. Selections run in the
// background for at most selectionTimeout, zero means no limit.
func NewWeatherController(api *echo.Group, useCase weather.UseCase, hub *stream.Hub, location *time.Location, selectionTimeout time.Duration) *WeatherController {
	if location == nil {
		location = time.Local
	}
	return &WeatherController{
		api:              api,
		useCase:          useCase,
		hub:              hub,
		location:         location,
		selectionTimeout: selectionTimeout,
	}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.GetWeather)
	controller.api.POST("/weather/selection", controller.SelectCity)
	controller.api.GET("/weather/regions", controller.GetRegions)
	controller.api.GET("/weather/stream", controller.StreamWeather)
}

// GetWeather godoc
// @Summary Get the weather view
// @Description Current view state with the icon, advice and time period of every forecast
// @Tags weather
// @Produce json
// @Success 200 {object} model.ViewResponse "Current weather view"
// @Router /weather [get]
func (controller *WeatherController) GetWeather(c echo.Context) error {
	return c.JSON(http.StatusOK, weather.BuildViewResponse(controller.useCase.State(), controller.location))
}

// SelectCity godoc
// @Summary Select a location
// @Description Record the selection and load its weather in the background. An empty or 目前位置 cityName uses the current position.
// @Tags weather
// @Accept json
// @Produce json
// @Param selection body model.SelectionDTO true "Selected location"
// @Success 202 {object} map[string]string "Selection accepted"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /weather/selection [post]
func (controller *WeatherController) SelectCity(c echo.Context) error {
	var dto model.SelectionDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	// Execute in a separate goroutine to avoid blocking the request
	ctx := context.WithoutCancel(c.Request().Context())
	go func() {
		if controller.selectionTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, controller.selectionTimeout)
			defer cancel()
		}
		if err := controller.useCase.InitWeather(ctx, dto.CityName, dto.CountyName); err != nil {
			log.Debug("Selection finished with error", zap.String("city", dto.CityName), zap.Error(err))
		}
	}()

	return c.JSON(http.StatusAccepted, map[string]string{"message": "Selection accepted"})
}

// GetRegions godoc
// @Summary List regions
// @Description Configured top-level regions with their townships
// @Tags weather
// @Produce json
// @Success 200 {array} entity.Region "Region list"
// @Router /weather/regions [get]
func (controller *WeatherController) GetRegions(c echo.Context) error {
	regions := controller.useCase.Regions()
	if regions == nil {
		regions = []entity.Region{}
	}
	return c.JSON(http.StatusOK, regions)
}

// StreamWeather godoc
// @Summary Stream the weather view
// @Description Server-Sent Events: a state event on connect and on every change, an alert event on fetch failures
// @Tags weather
// @Produce text/event-stream
// @Success 200 {string} string "Event stream"
// @Router /weather/stream [get]
func (controller *WeatherController) StreamWeather(c echo.Context) error {
	clientID, events, unregister := controller.hub.Register()
	defer unregister()

	response := c.Response()
	response.Header().Set(echo.HeaderContentType, "text/event-stream")
	response.Header().Set("Cache-Control", "no-cache")
	response.Header().Set("Connection", "keep-alive")
	response.WriteHeader(http.StatusOK)

	if err := writeEvent(response, controller.hub.StateEvent(controller.useCase.State())); err != nil {
		return nil
	}
	response.Flush()

	log.Debug("Stream client connected", zap.String("client_id", clientID))
	defer log.Debug("Stream client disconnected", zap.String("client_id", clientID))

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if err := writeEvent(response, event); err != nil {
				return nil
			}
			response.Flush()
		}
	}
}

func writeEvent(w io.Writer, event stream.Event) error {
	data, err := json.Marshal(event.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event.Name, err)
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, data)
	return err
}

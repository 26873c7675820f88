package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"weather-view/configs"
	"weather-view/docs"
	"weather-view/internal/application/controller"
	"weather-view/internal/application/middleware"
	"weather-view/internal/application/notifier"
	"weather-view/internal/application/processor"
	"weather-view/internal/application/schedule"
	"weather-view/internal/application/stream"
	"weather-view/internal/domain/entity"
	"weather-view/internal/domain/gateway/api"
	"weather-view/internal/domain/gateway/broker"
	"weather-view/internal/domain/gateway/geo"
	"weather-view/internal/domain/model"
	"weather-view/internal/domain/usecase/health"
	"weather-view/internal/domain/usecase/weather"
	pkghttp "weather-view/pkg/http"
	"weather-view/pkg/log"
	"weather-view/pkg/msg"
	"weather-view/pkg/redis"
	"weather-view/pkg/resource"
)

// @title Weather View API
// @version 1.0
// @description Weather view-model: forecasts for a selected Taiwan location with display hints.
// @BasePath /weather-view
func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)

	contextPath := resource.GetString("app.server.context-path")
	docs.SwaggerInfo.BasePath = contextPath
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	routes := e.Group(contextPath)

	location := loadLocation()
	regions := loadRegions()

	// Init Gateways
	weatherGateway := api.NewRateLimitedWeatherGateway(
		api.NewWeatherGateway(
			resource.GetString("app.weather.api.base-url"),
			resource.GetString("app.weather.api.path"),
			pkghttp.ClientOptions{
				ConnectionTimeout: resource.GetDuration("app.weather.api.connection-timeout"),
				ReadTimeout:       resource.GetDuration("app.weather.api.read-timeout"),
				Logger:            pkghttp.ZapLogger{Name: "weather-api"},
			},
		),
		resource.GetFloat64("app.weather.api.rate-limit"),
		resource.GetInt("app.weather.api.burst"),
	)
	locator := newLocator()

	redisClient := newRedisClient()
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}
	statePublisher := broker.NewNoopStatePublisher()
	if redisClient != nil {
		statePublisher = broker.NewRedisStatePublisher(redisClient, resource.GetString("app.redis.namespace"))
	}

	// Init UseCase
	hub := stream.NewHub(resource.GetInt("app.stream.buffer-size"), location)
	brokerNotifier := notifier.NewBrokerNotifier(
		statePublisher,
		resource.GetDuration("app.redis.publish-timeout"),
		resource.GetInt("app.redis.publish-buffer"),
	)
	go brokerNotifier.Start(ctx)

	weatherUseCase := weather.NewWeatherUseCase(
		weatherGateway,
		locator,
		regions,
		weather.Alerters(hub, brokerNotifier),
		weather.Config{
			MinLoading:   resource.GetDuration("app.weather.min-loading"),
			FallbackCity: resource.GetString("app.weather.fallback-city"),
			GeoTimeout:   resource.GetDuration("app.geo.timeout"),
			Location:     location,
		},
	)
	weatherUseCase.Subscribe(hub)
	if redisClient != nil {
		weatherUseCase.Subscribe(brokerNotifier)
	}
	healthUseCase := health.NewHealthUseCase(weatherUseCase, statePublisher)

	// Init Controller
	selectionTimeout := resource.GetDuration("app.weather.selection-timeout")
	weatherController := controller.NewWeatherController(routes, weatherUseCase, hub, location, selectionTimeout)
	healthController := controller.NewHealthController(routes, healthUseCase)

	// Init Routes
	weatherController.InitWeatherRoutes()
	healthController.InitHealthRoutes()

	// Init Schedule
	if resource.GetBool("app.weather.refresh.enabled") {
		refreshScheduler := schedule.NewWeatherRefreshScheduler(weatherUseCase, resource.GetString("app.weather.refresh.cron"), selectionTimeout)
		if err := refreshScheduler.InitWeatherScheduleTasks(ctx); err != nil {
			log.Fatal("Failed to start weather refresh scheduler", zap.Error(err))
		}
	}

	// Init Subscriber
	if redisClient != nil && resource.GetBool("app.redis.subscriber.enabled") {
		startSelectionSubscriber(ctx, redisClient, weatherUseCase, selectionTimeout)
	}

	// First load, resolving the current position
	go func() {
		_ = weatherUseCase.InitWeather(ctx, weather.CurrentPosition, "")
	}()

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down server", zap.Error(err))
	}
}

func loadLocation() *time.Location {
	name := resource.GetString("app.weather.timezone")
	if name == "" {
		return time.Local
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Fatal("Invalid timezone", zap.String("timezone", name), zap.Error(err))
	}
	return location
}

func loadRegions() entity.Regions {
	path := resource.GetString("app.weather.regions-file")

	var regions entity.Regions
	var err error
	if path != "" {
		regions, err = entity.LoadRegionsFile(path)
	} else {
		regions, err = entity.LoadRegions(bytes.NewReader(configs.RegionsYAML))
	}
	if err != nil {
		log.Fatal("Failed to load regions", zap.Error(err))
	}
	return regions
}

func newLocator() geo.Locator {
	switch provider := resource.GetString("app.geo.provider"); provider {
	case "ip":
		return geo.NewIPLocator(resource.GetString("app.geo.base-url"))
	case "static":
		return geo.NewStaticLocator(model.Coordinates{
			Latitude:  resource.GetFloat64("app.geo.static.latitude"),
			Longitude: resource.GetFloat64("app.geo.static.longitude"),
		})
	case "", "none":
		return nil
	default:
		log.Warnf("Unknown geolocation provider %s, geolocation disabled", provider)
		return nil
	}
}

func newRedisClient() *redis.Client {
	if !resource.GetBool("app.redis.enabled") {
		return nil
	}

	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database"))

	client, err := redis.NewClient(config)
	if err != nil {
		log.Fatal("Failed to create Redis client", zap.Error(err))
	}
	return client
}

func startSelectionSubscriber(ctx context.Context, client *redis.Client, useCase weather.UseCase, timeout time.Duration) {
	subscriber, err := redis.NewSubscriber(
		client,
		resource.GetString("app.redis.namespace"),
		broker.SelectionChannel,
		processor.NewSelectionProcessor(useCase, timeout),
		&redis.SubscriberConfig{PoolSize: resource.GetInt("app.redis.subscriber.pool-size")},
	)
	if err != nil {
		log.Fatal("Failed to create selection subscriber", zap.Error(err))
	}

	go func() {
		if err := subscriber.Start(ctx); err != nil {
			log.Error("Selection subscriber stopped", zap.String("channel", subscriber.Channel()), zap.Error(err))
		}
	}()
}

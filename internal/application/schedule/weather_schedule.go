package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-view/internal/domain/usecase/weather"
	"weather-view/pkg/log"
	"weather-view/pkg/msg"
)

// WeatherRefreshScheduler re-applies the current selection on a cron schedule
type WeatherRefreshScheduler struct {
	cron           *cron.Cron
	useCase        weather.UseCase
	cronExpression string
	timeout        time.Duration
}

// NewWeatherRefreshScheduler creates a scheduler; each refresh gets at most timeout, zero means no limit
func NewWeatherRefreshScheduler(useCase weather.UseCase, cronExpression string, timeout time.Duration) *WeatherRefreshScheduler {
	return &WeatherRefreshScheduler{
		cron:           cron.New(),
		useCase:        useCase,
		cronExpression: cronExpression,
		timeout:        timeout,
	}
}

// InitWeatherScheduleTasks registers the refresh task and starts the cron.
// The cron is stopped when ctx is canceled.
func (s *WeatherRefreshScheduler) InitWeatherScheduleTasks(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.cronExpression, s.ExecuteScheduledTask); err != nil {
		return fmt.Errorf("invalid refresh cron expression %q: %w", s.cronExpression, err)
	}

	s.cron.Start()
	log.Infof("Weather refresh scheduler started with cron expression: %s", s.cronExpression)

	go func() {
		<-ctx.Done()
		s.Stop()
		log.Info("Weather refresh scheduler stopped")
	}()
	return nil
}

// ExecuteScheduledTask refreshes the weather of the current selection, using its owning
// region as county when the selection is a township
func (s *WeatherRefreshScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()
	log.Info(msg.GetMessage("weather.refresh.start"), zap.String("request_id", requestID))

	selected := s.useCase.State().SelectedCity
	county, _ := s.useCase.Regions().RegionOf(selected)

	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.useCase.InitWeather(ctx, selected, county); err != nil {
		log.Error(msg.GetMessage("weather.refresh.failed"), zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("weather.refresh.end"), zap.String("request_id", requestID))
}

// Stop gracefully stops the scheduler
func (s *WeatherRefreshScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

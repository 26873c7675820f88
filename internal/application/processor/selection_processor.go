package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"weather-view/internal/domain/model"
	"weather-view/internal/domain/usecase/weather"
	"weather-view/pkg/log"
)

type SelectionProcessor struct {
	weatherUseCase weather.UseCase
	timeout        time.Duration
}

// NewSelectionProcessor creates a processor that applies selections received from remote bindings.
// Each selection gets at most timeout to complete, zero means no limit.
func NewSelectionProcessor(weatherUseCase weather.UseCase, timeout time.Duration) *SelectionProcessor {
	return &SelectionProcessor{
		weatherUseCase: weatherUseCase,
		timeout:        timeout,
	}
}

// HandleMessage implements the redis.Handler interface
func (p *SelectionProcessor) HandleMessage(msg *redis.Message) error {
	if msg == nil || msg.Payload == "" {
		return fmt.Errorf("received nil message or empty payload")
	}

	var selection model.SelectionDTO
	if err := json.Unmarshal([]byte(msg.Payload), &selection); err != nil {
		return fmt.Errorf("failed to unmarshal selection: %w", err)
	}

	log.Infof("Processing remote selection: %s", selection.CityName)

	ctx := context.Background()
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := p.weatherUseCase.InitWeather(ctx, selection.CityName, selection.CountyName); err != nil {
		return fmt.Errorf("failed to apply selection %s: %w", selection.CityName, err)
	}
	return nil
}

package health

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"weather-view/internal/domain/entity"
	"weather-view/internal/domain/gateway/broker"
	"weather-view/internal/domain/model"
	"weather-view/internal/domain/usecase/weather"
)

type stubWeatherUseCase struct {
	weather.UseCase
	state model.ViewState
}

func (s stubWeatherUseCase) State() model.ViewState { return s.state }

type stubPublisher struct {
	status model.HealthStatus
}

func (s stubPublisher) PublishState(context.Context, model.ViewState) error { return nil }

func (s stubPublisher) PublishAlert(context.Context, string) error { return nil }

func (s stubPublisher) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: s.status}
}

func TestCheckHealth(t *testing.T) {
	updated := model.ViewState{
		Forecasts:    []entity.Forecast{{Weather: "晴"}},
		UpdateDate:   "3月5日 週三",
		City:         "臺中市",
		SelectedCity: "臺中市",
	}

	tests := []struct {
		name       string
		state      model.ViewState
		publisher  broker.StatePublisher
		wantStatus model.HealthStatus
		wantView   model.HealthStatus
	}{
		{"updated without broker", updated, broker.NewNoopStatePublisher(), model.StatusUp, model.StatusUp},
		{"not yet updated", model.ViewState{IsLoading: true}, broker.NewNoopStatePublisher(), model.StatusUp, model.StatusUnknown},
		{"broker up", updated, stubPublisher{status: model.StatusUp}, model.StatusUp, model.StatusUp},
		{"broker down", updated, stubPublisher{status: model.StatusDown}, model.StatusDown, model.StatusUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewHealthUseCase(stubWeatherUseCase{state: tt.state}, tt.publisher)

			response := useCase.CheckHealth()

			assert.Equal(t, tt.wantStatus, response.Status)
			assert.Equal(t, tt.wantView, response.View.Status)
			assert.Equal(t, tt.state.SelectedCity, response.View.Details["selectedCity"])
		})
	}
}

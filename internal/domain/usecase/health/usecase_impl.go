package health

import (
	"strconv"

	"weather-view/internal/domain/gateway/broker"
	"weather-view/internal/domain/model"
	"weather-view/internal/domain/usecase/weather"
)

type healthUseCase struct {
	weatherUseCase weather.UseCase
	publisher      broker.StatePublisher
}

func NewHealthUseCase(weatherUseCase weather.UseCase, publisher broker.StatePublisher) UseCase {
	return &healthUseCase{
		weatherUseCase: weatherUseCase,
		publisher:      publisher,
	}
}

// CheckHealth reports the view as UP once it has been updated at least once.
// A disabled broker does not bring the overall status down.
func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	viewHealth := useCase.viewHealth()
	brokerHealth := useCase.publisher.Health()

	overallStatus := model.StatusUp
	if viewHealth.Status == model.StatusDown || brokerHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status: overallStatus,
		View:   viewHealth,
		Broker: brokerHealth,
	}
}

func (useCase *healthUseCase) viewHealth() model.ComponentHealthStatus {
	state := useCase.weatherUseCase.State()

	status := model.StatusUp
	if state.UpdateDate == "" {
		status = model.StatusUnknown
	}

	return model.ComponentHealthStatus{
		Status: status,
		Details: map[string]string{
			"selectedCity": state.SelectedCity,
			"city":         state.City,
			"updateDate":   state.UpdateDate,
			"isLoading":    strconv.FormatBool(state.IsLoading),
			"forecasts":    strconv.Itoa(len(state.Forecasts)),
		},
	}
}

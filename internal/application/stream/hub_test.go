package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-view/internal/domain/entity"
	"weather-view/internal/domain/gateway/broker"
	"weather-view/internal/domain/model"
)

func TestHub_BroadcastsStateAndAlerts(t *testing.T) {
	hub := NewHub(4, time.UTC)
	_, first, unregisterFirst := hub.Register()
	defer unregisterFirst()
	_, second, unregisterSecond := hub.Register()
	defer unregisterSecond()

	hub.OnStateChange(model.ViewState{
		City:      "臺中市",
		Forecasts: []entity.Forecast{{StartTime: "2025-01-01 12:00:00", Weather: "晴", Rain: "50", MaxTemp: "30"}},
	})
	hub.Alert("oops")

	for _, events := range []<-chan Event{first, second} {
		state := <-events
		assert.Equal(t, StateEvent, state.Name)
		response, ok := state.Data.(model.ViewResponse)
		require.True(t, ok)
		assert.Equal(t, "臺中市", response.City)
		require.Len(t, response.Views, 1)
		assert.Equal(t, "☀️", response.Views[0].Icon)
		assert.Equal(t, "中午", response.Views[0].Period)

		alert := <-events
		assert.Equal(t, AlertEvent, alert.Name)
		assert.Equal(t, broker.AlertMessage{Message: "oops"}, alert.Data)
	}
}

func TestHub_DropsEventsForSlowClients(t *testing.T) {
	hub := NewHub(1, time.UTC)
	_, events, unregister := hub.Register()
	defer unregister()

	hub.Alert("first")
	hub.Alert("second")

	event := <-events
	assert.Equal(t, broker.AlertMessage{Message: "first"}, event.Data)
	select {
	case extra := <-events:
		t.Fatalf("unexpected event %v", extra)
	default:
	}
}

func TestHub_Unregister(t *testing.T) {
	hub := NewHub(0, nil)
	id, events, unregister := hub.Register()
	assert.NotEmpty(t, id)
	assert.Equal(t, 1, hub.Clients())

	unregister()
	unregister()

	assert.Equal(t, 0, hub.Clients())
	_, open := <-events
	assert.False(t, open)

	hub.Alert("nobody listens")
}

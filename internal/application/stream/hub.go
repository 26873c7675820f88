package stream

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weather-view/internal/domain/gateway/broker"
	"weather-view/internal/domain/model"
	"weather-view/internal/domain/usecase/weather"
	"weather-view/pkg/log"
)

const (
	StateEvent = "state"
	AlertEvent = "alert"

	defaultBufferSize = 16
)

// Event is a single message pushed to stream clients
type Event struct {
	Name string
	Data any
}

// Hub fans view changes and alerts out to connected stream clients.
// Clients that fall behind lose events rather than blocking the view.
type Hub struct {
	mu         sync.RWMutex
	clients    map[string]chan Event
	bufferSize int
	location   *time.Location
}

var (
	_ weather.Observer = (*Hub)(nil)
	_ weather.Alerter  = (*Hub)(nil)
)

func NewHub(bufferSize int, location *time.Location) *Hub {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	if location == nil {
		location = time.Local
	}
	return &Hub{
		clients:    make(map[string]chan Event),
		bufferSize: bufferSize,
		location:   location,
	}
}

// Register adds a client and returns its id, its event channel and the function that removes it
func (h *Hub) Register() (string, <-chan Event, func()) {
	id := uuid.NewString()
	events := make(chan Event, h.bufferSize)

	h.mu.Lock()
	h.clients[id] = events
	h.mu.Unlock()

	var once sync.Once
	return id, events, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.clients, id)
			h.mu.Unlock()
			close(events)
		})
	}
}

// Clients returns the number of connected clients
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// StateEvent builds the event describing the given state
func (h *Hub) StateEvent(state model.ViewState) Event {
	return Event{Name: StateEvent, Data: weather.BuildViewResponse(state, h.location)}
}

func (h *Hub) OnStateChange(state model.ViewState) {
	h.broadcast(h.StateEvent(state))
}

func (h *Hub) Alert(message string) {
	h.broadcast(Event{Name: AlertEvent, Data: broker.AlertMessage{Message: message}})
}

func (h *Hub) broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, events := range h.clients {
		select {
		case events <- event:
		default:
			log.Warn("Stream client is not keeping up, dropping event",
				zap.String("client_id", id),
				zap.String("event", event.Name))
		}
	}
}

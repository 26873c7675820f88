package notifier

import (
	"context"
	"time"

	"go.uber.org/zap"

	"weather-view/internal/domain/gateway/broker"
	"weather-view/internal/domain/model"
	"weather-view/internal/domain/usecase/weather"
	"weather-view/pkg/log"
	"weather-view/pkg/msg"
)

const (
	defaultPublishTimeout = 2 * time.Second
	defaultBufferSize     = 64
)

type event struct {
	state   *model.ViewState
	message string
}

func (e event) channel() string {
	if e.state != nil {
		return broker.StateChannel
	}
	return broker.AlertChannel
}

// BrokerNotifier forwards view changes and alerts to a StatePublisher.
// Events are queued and published in order by Start; a full queue drops
// the event so a slow broker never holds up the view.
type BrokerNotifier struct {
	publisher broker.StatePublisher
	timeout   time.Duration
	events    chan event
}

var (
	_ weather.Observer = (*BrokerNotifier)(nil)
	_ weather.Alerter  = (*BrokerNotifier)(nil)
)

func NewBrokerNotifier(publisher broker.StatePublisher, timeout time.Duration, bufferSize int) *BrokerNotifier {
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &BrokerNotifier{
		publisher: publisher,
		timeout:   timeout,
		events:    make(chan event, bufferSize),
	}
}

// Start publishes queued events until ctx is done
func (n *BrokerNotifier) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-n.events:
			n.publish(ctx, e)
		}
	}
}

func (n *BrokerNotifier) OnStateChange(state model.ViewState) {
	n.enqueue(event{state: &state})
}

func (n *BrokerNotifier) Alert(message string) {
	n.enqueue(event{message: message})
}

func (n *BrokerNotifier) enqueue(e event) {
	select {
	case n.events <- e:
	default:
		log.Warn(msg.GetMessage("weather.publish.dropped", e.channel()))
	}
}

func (n *BrokerNotifier) publish(ctx context.Context, e event) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	var err error
	if e.state != nil {
		err = n.publisher.PublishState(ctx, *e.state)
	} else {
		err = n.publisher.PublishAlert(ctx, e.message)
	}
	if err != nil {
		log.Error(msg.GetMessage("weather.publish.failed", e.channel()), zap.Error(err))
	}
}

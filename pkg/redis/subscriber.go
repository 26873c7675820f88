package redis

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"weather-view/pkg/log"
)

// HandlerFunc defines a function that handles a pub/sub message
type HandlerFunc func(msg *redis.Message) error

// HandleMessage implements the Handler interface for HandlerFunc
func (f HandlerFunc) HandleMessage(msg *redis.Message) error {
	return f(msg)
}

// Handler defines an interface that processes a pub/sub message
type Handler interface {
	HandleMessage(msg *redis.Message) error
}

// SubscriberConfig defines the configuration options for a Subscriber
type SubscriberConfig struct {
	PoolSize int
}

// Subscriber receives messages from a namespaced channel and hands them to a pool of handlers
type Subscriber struct {
	client   *redis.Client
	channel  string
	poolSize int
	handler  Handler
}

// NewSubscriber creates a subscriber on the namespaced channel.
//
// If the provided SubscriberConfig is nil or PoolSize is zero, a single handler goroutine is used.
func NewSubscriber(client *Client, namespace string, channel string, handler Handler, config *SubscriberConfig) (*Subscriber, error) {
	poolSize := 1
	if config != nil && config.PoolSize != 0 {
		poolSize = config.PoolSize
	}
	if poolSize < 1 {
		return nil, errors.New("poolSize must be greater than 0")
	}
	if handler == nil {
		return nil, errors.New("handler is required")
	}

	return &Subscriber{
		client:   client.GetClient(),
		channel:  (&Publisher{namespace: namespace}).ChannelName(channel),
		poolSize: poolSize,
		handler:  handler,
	}, nil
}

// Channel returns the full channel name the subscriber listens on
func (s *Subscriber) Channel() string {
	return s.channel
}

// Start subscribes and processes messages until ctx is canceled
func (s *Subscriber) Start(ctx context.Context) error {
	pubsub := s.client.Subscribe(ctx, s.channel)
	defer func() { _ = pubsub.Close() }()

	if _, err := pubsub.Receive(ctx); err != nil {
		return err
	}
	log.Info("Subscribed to channel", zap.String("channel", s.channel))

	messages := pubsub.Channel()
	var wg sync.WaitGroup

	for i := 0; i < s.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.consume(ctx, messages)
		}()
	}

	wg.Wait()
	return nil
}

func (s *Subscriber) consume(ctx context.Context, messages <-chan *redis.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			s.handleMessage(msg)
		}
	}
}

func (s *Subscriber) handleMessage(msg *redis.Message) {
	if msg == nil {
		return
	}

	if err := s.handler.HandleMessage(msg); err != nil {
		log.Error("Error processing message", zap.String("channel", msg.Channel), zap.Error(err))
	}
}

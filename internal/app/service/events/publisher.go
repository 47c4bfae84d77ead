package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/sony/gobreaker"
	"ledger/internal/app/logger"
	"time"
)

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// RedisPublisher appends events to a Redis stream
type RedisPublisher struct {
	client *redis.Client
	stream string
}

func NewRedisPublisher(client *redis.Client, stream string) *RedisPublisher {
	return &RedisPublisher{
		client: client,
		stream: stream,
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, ev Event) error {
	raw, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("json encode: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: []interface{}{"type", ev.Type, "event", string(raw)},
	}

	if err := p.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("xadd: %w", err)
	}

	return nil
}

// BreakerPublisher stops calling a failing publisher for a while instead of queueing retries against it
type BreakerPublisher struct {
	next Publisher
	cb   *gobreaker.CircuitBreaker
}

func (p *BreakerPublisher) LoggerComponent() string {
	return "Events.BreakerPublisher"
}

func NewBreakerPublisher(next Publisher, failures uint32, openTimeout time.Duration) *BreakerPublisher {
	p := &BreakerPublisher{next: next}
	l := logger.Global().Component(p)

	p.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "events",
		Timeout: openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			l.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("Circuit breaker state changed")
		},
	})

	return p
}

// ErrUnavailable is returned while the breaker is open
var ErrUnavailable = errors.New("event publisher unavailable")

func (p *BreakerPublisher) Publish(ctx context.Context, ev Event) error {
	_, err := p.cb.Execute(func() (interface{}, error) {
		return nil, p.next.Publish(ctx, ev)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrUnavailable
	}
	return err
}

// Nop discards events, used when no broker is configured
type Nop struct{}

func (Nop) Publish(context.Context, Event) error {
	return nil
}

package events

import (
	"context"
	"ledger/internal/app/logger"
	"sync"
	"time"
)

type job struct {
	event   Event
	attempt int
}

// Dispatcher publishes events on a pool of workers, so a slow or broken broker
// never holds a ledger operation. Failed jobs are retried after a delay.
type Dispatcher struct {
	logger    logger.Logger
	publisher Publisher

	jobs   chan job
	stopCh chan struct{}
	wg     sync.WaitGroup
	once   sync.Once

	retryDelay     time.Duration
	maxRetries     int
	publishTimeout time.Duration
}

func (d *Dispatcher) LoggerComponent() string {
	return "Events.Dispatcher"
}

type DispatcherOption func(*Dispatcher)

func WithRetry(delay time.Duration, maxRetries int) DispatcherOption {
	return func(d *Dispatcher) {
		d.retryDelay = delay
		d.maxRetries = maxRetries
	}
}

func WithQueueSize(size int) DispatcherOption {
	return func(d *Dispatcher) {
		d.jobs = make(chan job, size)
	}
}

func NewDispatcher(p Publisher, numWorkers int, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		publisher:      p,
		jobs:           make(chan job, 1024),
		stopCh:         make(chan struct{}),
		retryDelay:     time.Second,
		maxRetries:     5,
		publishTimeout: 5 * time.Second,
	}

	for _, opt := range opts {
		opt(d)
	}
	d.logger = logger.Global().Component(d)

	d.start(numWorkers)

	return d
}

func (d *Dispatcher) start(numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		d.wg.Add(1)
		go func(workerID int) {
			defer d.wg.Done()
			for {
				select {
				case <-d.stopCh:
					return
				case j := <-d.jobs:
					d.run(workerID, j)
				}
			}
		}(i)
	}
}

func (d *Dispatcher) run(workerID int, j job) {
	l := d.logger.With().
		Int("worker_id", workerID).
		Str("event_id", j.event.ID).
		Str("event_type", j.event.Type).
		Int("attempt", j.attempt).
		Logger()

	ctx, cancel := context.WithTimeout(context.Background(), d.publishTimeout)
	defer cancel()

	if err := d.publisher.Publish(l.WithContext(ctx), j.event); err != nil {
		if j.attempt >= d.maxRetries {
			l.Error().Err(err).Msg("Event dropped")
			return
		}
		l.Warn().Err(err).Msg("Publish failed")
		j.attempt++
		go func() {
			t := time.NewTimer(d.retryDelay)
			defer t.Stop()
			select {
			case <-d.stopCh:
			case <-t.C:
				d.enqueue(j)
			}
		}()
		return
	}

	l.Debug().Msg("Event published")
}

// Notify queues the event without blocking
func (d *Dispatcher) Notify(ev Event) {
	d.enqueue(job{event: ev})
}

func (d *Dispatcher) enqueue(j job) {
	select {
	case <-d.stopCh:
		return
	default:
	}

	select {
	case d.jobs <- j:
	default:
		d.logger.Error().Str("event_id", j.event.ID).Str("event_type", j.event.Type).Msg("Event queue full, event dropped")
	}
}

// Stop workers, queued events are dropped
func (d *Dispatcher) Stop() {
	d.once.Do(func() {
		d.logger.Debug().Msg("Dispatcher shutdown")
		close(d.stopCh)
	})
	d.wg.Wait()
}

package events

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"sync"
	"testing"
	"time"
)

type flakyPublisher struct {
	mu        sync.Mutex
	failures  int
	attempts  int
	published chan Event
}

func (p *flakyPublisher) Publish(_ context.Context, ev Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.attempts++
	if p.attempts <= p.failures {
		return errors.New("temporary failure")
	}
	p.published <- ev
	return nil
}

func TestDispatcher_RetriesFailedPublish(t *testing.T) {
	p := &flakyPublisher{failures: 2, published: make(chan Event, 1)}
	d := NewDispatcher(p, 1, WithRetry(10*time.Millisecond, 5))
	defer d.Stop()

	ev := New(TypeTransactionAccepted, nil)
	d.Notify(ev)

	select {
	case got := <-p.published:
		assert.Equal(t, ev.ID, got.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not published")
	}
}

func TestDispatcher_DropsAfterMaxRetries(t *testing.T) {
	p := &flakyPublisher{failures: 100, published: make(chan Event, 1)}
	d := NewDispatcher(p, 2, WithRetry(time.Millisecond, 2))

	d.Notify(New(TypeBalanceChanged, nil))

	assert.Eventually(t, func() bool {
		p.mu.Lock()
		defer p.mu.Unlock()
		return p.attempts == 3
	}, time.Second, 5*time.Millisecond)

	d.Stop()
	assert.Len(t, p.published, 0)
}

func TestDispatcher_NotifyAfterStop(t *testing.T) {
	p := &flakyPublisher{published: make(chan Event, 1)}
	d := NewDispatcher(p, 1)
	d.Stop()
	d.Stop()

	d.Notify(New(TypeBalanceChanged, nil))
	assert.Len(t, p.published, 0)
}

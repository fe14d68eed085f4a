package live

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/amahdy/quizdrill/internal/store"
)

func TestHubFanOut(t *testing.T) {
	hub := NewHub()

	var mu sync.Mutex
	var got []int64
	cancel := hub.Subscribe(func(ev Event) {
		mu.Lock()
		got = append(got, ev.Sequence)
		mu.Unlock()
	})

	hub.Publish(Event{Sequence: 1})
	hub.Publish(Event{Sequence: 2})
	cancel()
	hub.Publish(Event{Sequence: 3})

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("delivered = %v, want [1 2]", got)
	}
}

func TestHubCancelTwice(t *testing.T) {
	hub := NewHub()
	cancel := hub.Subscribe(func(Event) {})
	cancel()
	cancel() // must not panic
}

// scriptedConnector fails a fixed number of times, then serves events.
type scriptedConnector struct {
	mu       sync.Mutex
	failures int
	attempts int
	events   []Event
}

func (c *scriptedConnector) Connect(ctx context.Context) (<-chan Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.attempts++
	if c.attempts <= c.failures {
		return nil, errors.New("connect refused")
	}

	ch := make(chan Event, len(c.events))
	for _, ev := range c.events {
		ch <- ev
	}
	close(ch)
	return ch, nil
}

func (c *scriptedConnector) attemptCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attempts
}

func collect(t *testing.T, src Source, want int, timeout time.Duration) []Event {
	t.Helper()

	var mu sync.Mutex
	var got []Event
	done := make(chan struct{})
	cancel := src.Subscribe(func(ev Event) {
		mu.Lock()
		got = append(got, ev)
		if len(got) == want {
			close(done)
		}
		mu.Unlock()
	})
	defer cancel()

	select {
	case <-done:
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for %d events", want)
	}

	mu.Lock()
	defer mu.Unlock()
	return got
}

func TestReconnectingSourceRecovers(t *testing.T) {
	conn := &scriptedConnector{
		failures: 2,
		events:   []Event{{Sequence: 5}, {Sequence: 6}},
	}
	src := NewReconnectingSource(conn, RetryPolicy{MaxAttempts: 3, BackoffStep: time.Millisecond}, nil)

	got := collect(t, src, 2, time.Second)
	if got[0].Sequence != 5 || got[1].Sequence != 6 {
		t.Errorf("events = %v, want sequences 5 and 6", got)
	}
	if got[0].FromSnapshot {
		t.Error("live event marked as snapshot fallback")
	}
}

func TestReconnectingSourceFallsBackToSnapshot(t *testing.T) {
	conn := &scriptedConnector{failures: 100}
	snapshot := func() (Event, bool) {
		return Event{
			Sequence:     9,
			FromSnapshot: true,
			Data:         store.SnapshotData{TotalXP: 300},
		}, true
	}
	src := NewReconnectingSource(conn, RetryPolicy{MaxAttempts: 3, BackoffStep: time.Millisecond}, snapshot)

	got := collect(t, src, 1, time.Second)
	if !got[0].FromSnapshot || got[0].Data.TotalXP != 300 {
		t.Errorf("fallback event = %+v, want snapshot with xp 300", got[0])
	}

	// Bounded retry: exactly MaxAttempts connects, then give up.
	if conn.attemptCount() != 3 {
		t.Errorf("connect attempts = %d, want 3", conn.attemptCount())
	}
}

func TestReconnectingSourceCancel(t *testing.T) {
	block := make(chan Event)
	conn := connectorFunc(func(ctx context.Context) (<-chan Event, error) {
		return block, nil
	})
	src := NewReconnectingSource(conn, RetryPolicy{MaxAttempts: 1, BackoffStep: time.Millisecond}, nil)

	delivered := make(chan Event, 1)
	cancel := src.Subscribe(func(ev Event) { delivered <- ev })
	cancel()

	// Events after teardown must not reach the handler.
	select {
	case block <- Event{Sequence: 1}:
	case <-time.After(50 * time.Millisecond):
	}
	select {
	case ev := <-delivered:
		t.Errorf("event %+v delivered after cancel", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

type connectorFunc func(ctx context.Context) (<-chan Event, error)

func (f connectorFunc) Connect(ctx context.Context) (<-chan Event, error) {
	return f(ctx)
}

package live

import (
	"context"
	"time"
)

// Connector establishes a live event feed. Implementations own the
// transport; the returned channel closes when the feed drops.
type Connector interface {
	Connect(ctx context.Context) (<-chan Event, error)
}

// SnapshotFunc returns the last known snapshot event, if any. Used as
// the silent fallback once reconnection gives up.
type SnapshotFunc func() (Event, bool)

// RetryPolicy bounds reconnection: MaxAttempts connect attempts with
// linear backoff (attempt n waits n times BackoffStep before retrying).
type RetryPolicy struct {
	MaxAttempts int
	BackoffStep time.Duration
}

// DefaultRetryPolicy returns the stock bounded policy.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BackoffStep: 2 * time.Second}
}

// ReconnectingSource is a Source over a Connector. Each subscriber gets
// its own feed: connect attempts follow the retry policy, and when they
// are exhausted the subscriber silently receives the last known
// snapshot instead of an error. Unsubscribing cancels the feed.
type ReconnectingSource struct {
	connector Connector
	policy    RetryPolicy
	snapshot  SnapshotFunc
}

// NewReconnectingSource wraps connector with the given policy and
// snapshot fallback. snapshot may be nil when no fallback exists.
func NewReconnectingSource(connector Connector, policy RetryPolicy, snapshot SnapshotFunc) *ReconnectingSource {
	return &ReconnectingSource{connector: connector, policy: policy, snapshot: snapshot}
}

// Subscribe starts a feed delivering to handler and returns its cancel
// function.
func (s *ReconnectingSource) Subscribe(handler Handler) func() {
	ctx, cancel := context.WithCancel(context.Background())
	go s.run(ctx, handler)
	return cancel
}

func (s *ReconnectingSource) run(ctx context.Context, handler Handler) {
	for attempt := 1; attempt <= s.policy.MaxAttempts; attempt++ {
		ch, err := s.connector.Connect(ctx)
		if err == nil {
			s.forward(ctx, ch, handler)
			if ctx.Err() != nil {
				return
			}
			// The feed dropped; the remaining attempts cover
			// reconnection too.
			continue
		}

		if attempt == s.policy.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(attempt) * s.policy.BackoffStep):
		}
	}

	// Out of attempts. Fall back to the last known snapshot, silently.
	if s.snapshot == nil {
		return
	}
	if ev, ok := s.snapshot(); ok {
		select {
		case <-ctx.Done():
		default:
			handler(ev)
		}
	}
}

// forward delivers feed events to handler until the feed closes or the
// subscription is cancelled.
func (s *ReconnectingSource) forward(ctx context.Context, ch <-chan Event, handler Handler) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			if ctx.Err() != nil {
				return
			}
			handler(ev)
		}
	}
}

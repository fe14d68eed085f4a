// Package live is the push channel for progress updates. The core
// contract is transport free: a Source fans events out to subscribed
// handlers, and unsubscribing tears the consumer down. Concrete
// transports plug in behind the Connector interface.
package live

import (
	"sync"

	"github.com/amahdy/quizdrill/internal/store"
)

// Event is one progress update pushed to subscribers.
type Event struct {
	// Sequence is the event-log sequence the update corresponds to.
	Sequence int64

	// FromSnapshot marks an event replayed from the last known
	// snapshot after the live feed could not be reached.
	FromSnapshot bool

	// Data is the learner state carried by the update.
	Data store.SnapshotData
}

// Handler consumes one event. Each event reaches a subscribed handler
// at most once.
type Handler func(Event)

// Source is an abstract push-based event source.
type Source interface {
	// Subscribe registers handler and returns a cancel function that
	// stops delivery. Cancelling twice is harmless.
	Subscribe(handler Handler) (cancel func())
}

// Hub is the in-process Source: Publish fans an event out to every
// current subscriber. It is the feed used inside the app itself; the
// commit path publishes and open screens listen.
type Hub struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]Handler
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{handlers: make(map[int]Handler)}
}

// Subscribe registers handler for future events.
func (h *Hub) Subscribe(handler Handler) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.handlers[id] = handler
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.handlers, id)
		h.mu.Unlock()
	}
}

// Publish delivers ev to every handler subscribed at call time.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	handlers := make([]Handler, 0, len(h.handlers))
	for _, handler := range h.handlers {
		handlers = append(handlers, handler)
	}
	h.mu.Unlock()

	for _, handler := range handlers {
		handler(ev)
	}
}

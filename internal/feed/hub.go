package feed

import (
	"log/slog"
	"sync"
)

// Hub fans change signals out to scoped subscribers.
//
// Delivery is at-least-once per burst, not per change: when a
// subscriber's buffer is full the signal is dropped, which is safe
// because a signal is already pending and the subscriber refetches
// full state rather than applying deltas.
type Hub struct {
	logger *slog.Logger

	mu     sync.RWMutex
	subs   map[uint64]*subscription
	nextID uint64
	closed bool
}

type subscription struct {
	scope Scope
	ch    chan Change
}

// NewHub creates an empty Hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger.With("component", "feed.hub"),
		subs:   make(map[uint64]*subscription),
	}
}

// Subscribe registers a subscriber for changes matching scope.
// The returned cancel function is idempotent; after cancellation the
// channel is closed.
func (h *Hub) Subscribe(scope Scope, buffer int) (<-chan Change, func()) {
	if buffer < 1 {
		buffer = 1
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	sub := &subscription{scope: scope, ch: make(chan Change, buffer)}
	if h.closed {
		close(sub.ch)
		return sub.ch, func() {}
	}
	h.subs[id] = sub

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if _, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(sub.ch)
			}
		})
	}
	return sub.ch, cancel
}

// Dispatch delivers a change to every subscriber whose scope matches.
// It never blocks.
func (h *Hub) Dispatch(c Change) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}
	for _, sub := range h.subs {
		if !sub.scope.Matches(c) {
			continue
		}
		select {
		case sub.ch <- c:
		default:
			// Buffer full: a signal is already queued, coalesce.
		}
	}
}

// Close shuts the hub down and closes all subscriber channels.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, sub := range h.subs {
		delete(h.subs, id)
		close(sub.ch)
	}
}

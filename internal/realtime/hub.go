// Package realtime fans out "data changed" notifications to connected
// dashboard clients. It replaces an external pub/sub broker with an
// in-process hub; with one process and no persistence there is nothing to
// coordinate across.
package realtime

import "sync"

// Hub broadcasts change notifications to subscribers. Notifications are
// coalescing: a slow subscriber sees at least one signal after the last
// mutation, not one per mutation.
type Hub struct {
	mu          sync.Mutex
	subscribers map[chan struct{}]struct{}
	closed      bool
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{subscribers: make(map[chan struct{}]struct{})}
}

// Subscribe registers a new subscriber. The returned cancel function must
// be called when the subscriber disconnects.
func (h *Hub) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subscribers[ch]; ok {
			delete(h.subscribers, ch)
			close(ch)
		}
	}
	return ch, cancel
}

// Notify signals every subscriber that the underlying data changed.
// Never blocks: a subscriber with a pending signal is skipped.
func (h *Hub) Notify() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Close disconnects all subscribers. Used during shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for ch := range h.subscribers {
		delete(h.subscribers, ch)
		close(ch)
	}
}

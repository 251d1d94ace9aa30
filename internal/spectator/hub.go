// Package spectator streams session snapshots to read-only websocket viewers.
package spectator

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"go-invaders/internal/app"
)

const DefaultBuffer = 8

type client struct {
	id      uuid.UUID
	queue   chan app.Snapshot
	dropped uint64
}

// Hub fans snapshots out to connected viewers. Every viewer has its own bounded queue;
// when a queue is full the oldest pending snapshot is discarded.
type Hub struct {
	mu      sync.Mutex
	clients map[uuid.UUID]*client
	buffer  int
	last    *app.Snapshot
	logger  *slog.Logger

	done      chan struct{}
	closeOnce sync.Once
}

type Option func(*Hub)

func WithLogger(logger *slog.Logger) Option {
	return func(h *Hub) {
		h.logger = logger
	}
}

// WithBuffer sets the per-viewer queue length. Values below 1 are ignored.
func WithBuffer(n int) Option {
	return func(h *Hub) {
		if n > 0 {
			h.buffer = n
		}
	}
}

func NewHub(opts ...Option) *Hub {
	h := &Hub{
		clients: make(map[uuid.UUID]*client),
		buffer:  DefaultBuffer,
		logger:  slog.Default(),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Publish queues snap for every viewer. It never blocks.
func (h *Hub) Publish(snap app.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = &snap
	for _, c := range h.clients {
		h.enqueue(c, snap)
	}
}

// enqueue is called with h.mu held; Publish is the only sender, so after one
// receive there is room.
func (h *Hub) enqueue(c *client, snap app.Snapshot) {
	select {
	case c.queue <- snap:
		return
	default:
	}
	select {
	case <-c.queue:
		c.dropped++
		if c.dropped == 1 || c.dropped%100 == 0 {
			h.logger.Debug("spectator lagging", "client", c.id, "dropped", c.dropped)
		}
	default:
	}
	select {
	case c.queue <- snap:
	default:
	}
}

// Close disconnects every viewer. Publish keeps working but nobody is listening.
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// Clients returns the number of connected viewers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// subscribe registers a viewer. The latest snapshot, if any, is queued at once.
func (h *Hub) subscribe() *client {
	c := &client{
		id:    uuid.New(),
		queue: make(chan app.Snapshot, h.buffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.id] = c
	if h.last != nil {
		c.queue <- *h.last
	}
	return c
}

func (h *Hub) unsubscribe(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c.id)
}

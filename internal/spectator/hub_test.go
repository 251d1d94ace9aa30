package spectator

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-invaders/internal/app"
)

func quietHub(opts ...Option) *Hub {
	return NewHub(append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)...)
}

func drain(c *client) []uint64 {
	var ticks []uint64
	for {
		select {
		case snap := <-c.queue:
			ticks = append(ticks, snap.Tick)
		default:
			return ticks
		}
	}
}

func TestHubDropsOldestWhenFull(t *testing.T) {
	h := quietHub(WithBuffer(3))
	c := h.subscribe()

	for tick := uint64(1); tick <= 5; tick++ {
		h.Publish(app.Snapshot{Tick: tick})
	}

	assert.Equal(t, []uint64{3, 4, 5}, drain(c))
	assert.Equal(t, uint64(2), c.dropped)
}

func TestHubQueuesLatestForNewViewer(t *testing.T) {
	h := quietHub()
	h.Publish(app.Snapshot{Tick: 1})
	h.Publish(app.Snapshot{Tick: 2})

	c := h.subscribe()
	assert.Equal(t, []uint64{2}, drain(c))
}

func TestHubUnsubscribe(t *testing.T) {
	h := quietHub()
	a := h.subscribe()
	b := h.subscribe()
	require.Equal(t, 2, h.Clients())

	h.unsubscribe(a)
	h.Publish(app.Snapshot{Tick: 7})

	assert.Equal(t, 1, h.Clients())
	assert.Empty(t, drain(a))
	assert.Equal(t, []uint64{7}, drain(b))
}

func TestHubIgnoresBadBuffer(t *testing.T) {
	h := quietHub(WithBuffer(0))
	assert.Equal(t, DefaultBuffer, h.buffer)
}

func TestHubCloseIsIdempotent(t *testing.T) {
	h := quietHub()
	h.Close()
	h.Close()

	select {
	case <-h.done:
	default:
		t.Fatal("hub not closed")
	}
}

package spectator_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-invaders/internal/app"
	"go-invaders/internal/component"
	"go-invaders/internal/defs"
	"go-invaders/internal/spectator"
)

func newServer(t *testing.T) (*spectator.Hub, *httptest.Server) {
	t.Helper()
	h := spectator.NewHub(spectator.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	srv := httptest.NewServer(spectator.Route(h))
	t.Cleanup(func() {
		h.Close()
		srv.Close()
	})
	return h, srv
}

func dial(t *testing.T, ctx context.Context, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.CloseNow() })
	return conn
}

func TestViewerReceivesSnapshots(t *testing.T) {
	h, srv := newServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dial(t, ctx, srv)
	require.Eventually(t, func() bool { return h.Clients() == 1 }, time.Second, 5*time.Millisecond)

	g := app.NewGame(defs.Default(), app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	g.Start()
	h.Publish(g.Tick())

	var got app.Snapshot
	require.NoError(t, wsjson.Read(ctx, conn, &got))
	assert.Equal(t, component.PlayingState, got.State)
	assert.Equal(t, uint64(1), got.Tick)
	assert.Len(t, got.Invaders, 40)
	assert.Equal(t, 3, got.Lives)
	assert.NotEmpty(t, got.SessionID)
}

func TestViewerMessagesIgnored(t *testing.T) {
	h, srv := newServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dial(t, ctx, srv)
	require.Eventually(t, func() bool { return h.Clients() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(`{"cmd":"start"}`)))
	h.Publish(app.Snapshot{Tick: 42})

	var got app.Snapshot
	require.NoError(t, wsjson.Read(ctx, conn, &got))
	assert.Equal(t, uint64(42), got.Tick)
}

func TestViewerDisconnectUnsubscribes(t *testing.T) {
	h, srv := newServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dial(t, ctx, srv)
	require.Eventually(t, func() bool { return h.Clients() == 1 }, time.Second, 5*time.Millisecond)

	conn.Close(websocket.StatusNormalClosure, "bye")
	assert.Eventually(t, func() bool { return h.Clients() == 0 }, time.Second, 5*time.Millisecond)
}

func TestHealthz(t *testing.T) {
	_, srv := newServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestServeStopsOnCancel(t *testing.T) {
	h := spectator.NewHub(spectator.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- spectator.Serve(ctx, "127.0.0.1:0", h) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return")
	}
}

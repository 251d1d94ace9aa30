package spectator

import (
	"context"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const writeTimeout = 5 * time.Second

// Route mounts the viewer endpoints.
func Route(h *Hub) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/ws", &acceptHandler{hub: h})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

type acceptHandler struct {
	hub *Hub
}

func (a *acceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := a.hub.logger
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // viewers may be served from any origin
	})
	if err != nil {
		logger.Warn("failed to accept spectator", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.CloseNow()

	// viewers are read-only; CloseRead discards whatever they send
	ctx := conn.CloseRead(r.Context())

	c := a.hub.subscribe()
	defer a.hub.unsubscribe(c)
	logger.Info("spectator connected", "client", c.id, "remote", r.RemoteAddr)

	for {
		select {
		case <-ctx.Done():
			logger.Info("spectator disconnected", "client", c.id)
			return
		case <-a.hub.done:
			conn.Close(websocket.StatusGoingAway, "shutting down")
			return
		case snap := <-c.queue:
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(wctx, conn, snap)
			cancel()
			if err != nil {
				logger.Debug("spectator write failed", "client", c.id, "err", err)
				return
			}
		}
	}
}

package state

import (
	"go-invaders/internal/app"
	"go-invaders/internal/clock"
	"go-invaders/internal/input"
	"go-invaders/pkg/render"
)

// Context is shared by all screens of one window.
type Context struct {
	Game     *app.Game
	Renderer *render.BoxRenderer
	Pointer  *input.Pointer
	Controls Controls
	// Sinks receive every snapshot the window produces, e.g. the spectator hub.
	Sinks []clock.Sink
}

func (c *Context) publish(snap app.Snapshot) {
	for _, sink := range c.Sinks {
		sink.Publish(snap)
	}
}

// Package input turns frontend pointer and key events into session commands.
package input

import (
	"go-invaders/internal/app"
	"go-invaders/internal/defs"
)

// Adapter receives pointer events in screen coordinates.
type Adapter interface {
	OnPointerMove(x float64)
	OnClick()
}

// Controller is the part of the session that pointer input drives.
type Controller interface {
	SetPlayerX(x float64) app.Snapshot
	SpawnBullet() app.Snapshot
}

// Commands are the state machine inputs a frontend can issue.
type Commands interface {
	Start() app.Snapshot
	Restart() app.Snapshot
}

// Pointer maps a screen-space pointer onto the play field. The pointer marks the
// player's center; clamping happens in the session.
type Pointer struct {
	ctrl      Controller
	originX   float64 // screen x of the field's left edge
	scale     float64 // field units per screen unit
	halfWidth float64
}

var _ Adapter = (*Pointer)(nil)

// NewPointer builds a Pointer for a field drawn screenWidth units wide starting at originX.
func NewPointer(ctrl Controller, rules defs.Rules, originX, screenWidth float64) *Pointer {
	scale := 1.0
	if screenWidth > 0 {
		scale = rules.Field.Width / screenWidth
	}
	return &Pointer{
		ctrl:      ctrl,
		originX:   originX,
		scale:     scale,
		halfWidth: rules.Player.Size.Width / 2,
	}
}

// FieldX converts a screen x into the player x the pointer asks for.
func (p *Pointer) FieldX(screenX float64) float64 {
	return (screenX-p.originX)*p.scale - p.halfWidth
}

func (p *Pointer) OnPointerMove(x float64) {
	p.ctrl.SetPlayerX(p.FieldX(x))
}

func (p *Pointer) OnClick() {
	p.ctrl.SpawnBullet()
}

// Confirm is the single "go" key: it starts from the start screen and restarts
// after a finished round. Each command is a no-op in the wrong state.
func Confirm(c Commands) app.Snapshot {
	c.Start()
	return c.Restart()
}

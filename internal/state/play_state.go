package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-invaders/internal/app"
)

var _ State = (*PlayState)(nil)

// PlayState feeds input into the session and advances it once per update.
type PlayState struct {
	sm   *StateMachine
	ctx  *Context
	last app.Snapshot
}

func NewPlayState(sm *StateMachine, ctx *Context) *PlayState {
	return &PlayState{sm: sm, ctx: ctx}
}

func (p *PlayState) Enter() {
	p.last = p.ctx.Game.Snapshot()
}

// Update ignores deltaTime: the window runs at the tick rate, one update per tick.
func (p *PlayState) Update(deltaTime float64) {
	p.ctx.Pointer.OnPointerMove(p.ctx.Controls.CursorX())
	if p.ctx.Controls.Clicked() {
		p.ctx.Pointer.OnClick()
	}

	p.last = p.ctx.Game.Tick()
	p.ctx.publish(p.last)

	if p.last.State.Terminal() {
		p.sm.SetState(NewResultState(p.sm, p.ctx, p.last))
	}
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	p.ctx.Renderer.Draw(screen, p.last)
}

func (p *PlayState) Exit() {}

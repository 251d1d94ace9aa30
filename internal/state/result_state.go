package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-invaders/internal/app"
	"go-invaders/internal/component"
)

var _ State = (*ResultState)(nil)

// ResultState shows the frozen final field until the player restarts.
type ResultState struct {
	sm    *StateMachine
	ctx   *Context
	final app.Snapshot
}

func NewResultState(sm *StateMachine, ctx *Context, final app.Snapshot) *ResultState {
	return &ResultState{sm: sm, ctx: ctx, final: final}
}

func (r *ResultState) Enter() {}

func (r *ResultState) Update(deltaTime float64) {
	if !r.ctx.Controls.Clicked() && !r.ctx.Controls.Confirmed() {
		return
	}
	if snap := r.ctx.Game.Restart(); snap.State == component.PlayingState {
		r.ctx.publish(snap)
		r.sm.SetState(NewPlayState(r.sm, r.ctx))
	}
}

func (r *ResultState) Draw(screen *ebiten.Image) {
	r.ctx.Renderer.Draw(screen, r.final)
	r.ctx.Renderer.DrawBanner(screen, r.final.State)
}

func (r *ResultState) Exit() {}

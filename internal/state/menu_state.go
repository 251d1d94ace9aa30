// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-invaders/internal/component"
)

var _ State = (*MenuState)(nil)

// MenuState shows the idle field until the player starts a round.
type MenuState struct {
	sm  *StateMachine
	ctx *Context
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	return &MenuState{sm: sm, ctx: ctx}
}

func (m *MenuState) Enter() {
	m.ctx.publish(m.ctx.Game.Snapshot())
}

func (m *MenuState) Update(deltaTime float64) {
	if !m.ctx.Controls.Clicked() && !m.ctx.Controls.Confirmed() {
		return
	}
	if snap := m.ctx.Game.Start(); snap.State == component.PlayingState {
		m.ctx.publish(snap)
		m.sm.SetState(NewPlayState(m.sm, m.ctx))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	snap := m.ctx.Game.Snapshot()
	m.ctx.Renderer.Draw(screen, snap)
	m.ctx.Renderer.DrawBanner(screen, snap.State)
}

func (m *MenuState) Exit() {}

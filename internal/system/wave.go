package system

import (
	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/defs"
	"go-invaders/internal/entity"
	"go-invaders/internal/event"
	"go-invaders/pkg/utils"
)

// Formation returns the invader boxes of a full wave in row-major order.
// Row i, column j sits at x = j*(w+spacing)+offsetX, y = i*(h+spacing)+offsetY.
func Formation(rules defs.Rules) []utils.Rect {
	w, h := rules.Invader.Size.Width, rules.Invader.Size.Height
	wave := rules.Wave

	rects := make([]utils.Rect, 0, wave.Size())
	for i := 0; i < wave.Rows; i++ {
		for j := 0; j < wave.Cols; j++ {
			x := float64(j)*(w+wave.Spacing) + wave.OffsetX
			y := float64(i)*(h+wave.Spacing) + wave.OffsetY
			rects = append(rects, utils.NewRect(x, y, w, h))
		}
	}
	return rects
}

type WaveSystem struct {
	ecs             *entity.ECS
	rules           defs.Rules
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, rules defs.Rules, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		rules:           rules,
		eventDispatcher: eventDispatcher,
	}
}

// Spawn replaces whatever is left of the formation with a full new wave.
// Entities are created in row-major order, so a lower ID means an earlier slot.
func (s *WaveSystem) Spawn() {
	s.ecs.ClearInvaders()

	cols := s.rules.Wave.Cols
	for slot, rect := range Formation(s.rules) {
		id := s.ecs.NewEntity()
		s.ecs.Positions[id] = &component.Position{X: rect.X, Y: rect.Y}
		s.ecs.Sizes[id] = &component.Size{W: rect.W, H: rect.H}
		s.ecs.Velocities[id] = &component.Velocity{DY: s.rules.Invader.Speed}
		s.ecs.Renderables[id] = &component.Renderable{Color: config.InvaderColor}
		s.ecs.Invaders[id] = &component.Invader{Row: slot / cols, Col: slot % cols}
	}

	s.ecs.Wave++
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveSpawned, Data: s.ecs.Wave})
}

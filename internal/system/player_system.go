// internal/system/player_system.go
package system

import (
	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/defs"
	"go-invaders/internal/entity"
	"go-invaders/internal/event"
	"go-invaders/internal/types"
	"go-invaders/pkg/utils"
)

// PlayerSystem owns the defender: its position, its bullets and the round counters.
type PlayerSystem struct {
	ecs             *entity.ECS
	rules           defs.Rules
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(ecs *entity.ECS, rules defs.Rules, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, rules: rules, eventDispatcher: eventDispatcher}
}

// Reset puts the player center-bottom and restores score and lives.
func (s *PlayerSystem) Reset() {
	if s.ecs.PlayerID == 0 {
		id := s.ecs.NewEntity()
		s.ecs.PlayerID = id
		s.ecs.Sizes[id] = &component.Size{W: s.rules.Player.Size.Width, H: s.rules.Player.Size.Height}
		s.ecs.Renderables[id] = &component.Renderable{Color: config.PlayerColor}
	}
	s.ecs.Positions[s.ecs.PlayerID] = &component.Position{
		X: utils.Center(s.rules.Field.Width, s.rules.Player.Size.Width),
		Y: s.rules.PlayerY(),
	}
	s.ecs.PlayerState.Score = 0
	s.ecs.PlayerState.Lives = s.rules.StartLives
}

// MoveTo sets the player's x, clamped to the field.
func (s *PlayerSystem) MoveTo(x float64) {
	pos := s.ecs.Positions[s.ecs.PlayerID]
	if pos == nil {
		return
	}
	pos.X = utils.Clamp(x, 0, s.rules.MaxPlayerX())
}

// Fire spawns a bullet at the player's top-center.
func (s *PlayerSystem) Fire() types.EntityID {
	player := s.ecs.Box(s.ecs.PlayerID)
	w, h := s.rules.Bullet.Size.Width, s.rules.Bullet.Size.Height

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: player.X + player.W/2 - w/2, Y: player.Y - h}
	s.ecs.Sizes[id] = &component.Size{W: w, H: h}
	s.ecs.Velocities[id] = &component.Velocity{DY: -s.rules.Bullet.Speed}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.BulletColor}
	s.ecs.Projectiles[id] = &component.Projectile{FiredAt: s.ecs.Tick}

	s.eventDispatcher.Dispatch(event.Event{Type: event.BulletSpawned, Data: id})
	return id
}

// LoseLife takes one life and returns how many are left, never below zero.
func (s *PlayerSystem) LoseLife() int {
	state := s.ecs.PlayerState
	state.Lives--
	if state.Lives < 0 {
		state.Lives = 0
	}
	return state.Lives
}

// OnEvent credits the kill reward for every destroyed invader.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.InvaderDestroyed {
		return
	}
	s.ecs.PlayerState.Score += s.rules.KillReward
}

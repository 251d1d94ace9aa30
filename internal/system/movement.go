package system

import (
	"go-invaders/internal/entity"
	"go-invaders/internal/types"
)

// MovementSystem advances invaders and bullets along their velocities.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

// AdvanceInvaders moves every invader down by its speed.
func (s *MovementSystem) AdvanceInvaders() {
	for id := range s.ecs.Invaders {
		s.step(id)
	}
}

// AdvanceBullets moves every bullet up by its speed and drops the ones that left the field.
// A bullet whose top edge is at or above y = 0 after the move is gone.
func (s *MovementSystem) AdvanceBullets(fieldHeight float64) int {
	removed := 0
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		s.step(id)
		pos := s.ecs.Positions[id]
		if pos == nil || pos.Y <= 0 || pos.Y >= fieldHeight {
			s.ecs.RemoveEntity(id)
			removed++
		}
	}
	return removed
}

func (s *MovementSystem) step(id types.EntityID) {
	pos, hasPos := s.ecs.Positions[id]
	vel, hasVel := s.ecs.Velocities[id]
	if !hasPos || !hasVel {
		return
	}
	pos.Y += vel.DY
}

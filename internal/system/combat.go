package system

import (
	"go-invaders/internal/entity"
	"go-invaders/internal/event"
	"go-invaders/internal/types"
	"go-invaders/pkg/utils"
)

// Hit pairs a bullet with the invader it claimed.
type Hit struct {
	Bullet  types.EntityID
	Invader types.EntityID
}

// CombatSystem resolves bullet/invader collisions.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// Collide computes the hit set from current positions without touching the world.
//
// Bullets are visited in ascending ID order. Each claims the lowest-ID invader it overlaps
// that no earlier bullet claimed. The second result lists every bullet that overlapped at
// least one invader, whether or not it claimed one.
func (s *CombatSystem) Collide() ([]Hit, []types.EntityID) {
	invaders := entity.SortedIDs(s.ecs.Invaders)
	boxes := make([]utils.Rect, len(invaders))
	for i, id := range invaders {
		boxes[i] = s.ecs.Box(id)
	}

	claimed := make(map[types.EntityID]bool)
	var hits []Hit
	var spent []types.EntityID

	for _, bulletID := range entity.SortedIDs(s.ecs.Projectiles) {
		bullet := s.ecs.Box(bulletID)
		touched := false
		for i, invaderID := range invaders {
			if !utils.Overlaps(bullet, boxes[i]) {
				continue
			}
			touched = true
			if !claimed[invaderID] {
				claimed[invaderID] = true
				hits = append(hits, Hit{Bullet: bulletID, Invader: invaderID})
				break
			}
		}
		if touched {
			spent = append(spent, bulletID)
		}
	}
	return hits, spent
}

// Resolve applies the hit set: removes claimed invaders and spent bullets and dispatches
// one InvaderDestroyed per claim. It returns the number of invaders destroyed.
func (s *CombatSystem) Resolve() int {
	hits, spent := s.Collide()

	for _, id := range spent {
		s.ecs.RemoveEntity(id)
	}
	for _, hit := range hits {
		s.ecs.RemoveEntity(hit.Invader)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.InvaderDestroyed,
			Data: event.InvaderDestroyedData{Invader: hit.Invader, Bullet: hit.Bullet},
		})
	}
	return len(hits)
}

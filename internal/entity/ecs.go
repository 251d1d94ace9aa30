package entity

import (
	"cmp"
	"slices"

	"go-invaders/internal/component"
	"go-invaders/internal/types"
	"go-invaders/pkg/utils"
)

// ECS is the world of one game session: the entity stores plus the round counters.
type ECS struct {
	NextID      types.EntityID
	Tick        uint64
	Wave        int
	Positions   map[types.EntityID]*component.Position
	Sizes       map[types.EntityID]*component.Size
	Velocities  map[types.EntityID]*component.Velocity
	Renderables map[types.EntityID]*component.Renderable
	Invaders    map[types.EntityID]*component.Invader
	Projectiles map[types.EntityID]*component.Projectile
	PlayerID    types.EntityID
	PlayerState *component.PlayerStateComponent
	GameState   component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Sizes:       make(map[types.EntityID]*component.Size),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Invaders:    make(map[types.EntityID]*component.Invader),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		PlayerState: &component.PlayerStateComponent{},
		GameState:   component.StartState,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity drops every component of id.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Sizes, id)
	delete(ecs.Velocities, id)
	delete(ecs.Renderables, id)
	delete(ecs.Invaders, id)
	delete(ecs.Projectiles, id)
}

// ClearInvaders removes the whole formation.
func (ecs *ECS) ClearInvaders() {
	for id := range ecs.Invaders {
		ecs.RemoveEntity(id)
	}
}

// ClearProjectiles removes every bullet in flight.
func (ecs *ECS) ClearProjectiles() {
	for id := range ecs.Projectiles {
		ecs.RemoveEntity(id)
	}
}

// Box returns the bounding box of id. Entities without position or size yield a zero Rect.
func (ecs *ECS) Box(id types.EntityID) utils.Rect {
	pos, size := ecs.Positions[id], ecs.Sizes[id]
	if pos == nil || size == nil {
		return utils.Rect{}
	}
	return utils.NewRect(pos.X, pos.Y, size.W, size.H)
}

// SortedIDs returns the keys of a component store in ascending order.
// Every system that walks a store uses it so that tie-breaks do not depend on map order.
func SortedIDs[T any](store map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(store))
	for id := range store {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, cmp.Compare[types.EntityID])
	return ids
}

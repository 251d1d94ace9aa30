package event

import (
	"go-invaders/internal/component"
	"go-invaders/internal/types"
)

const (
	InvaderDestroyed EventType = "InvaderDestroyed" // Data: InvaderDestroyedData
	BulletSpawned    EventType = "BulletSpawned"    // Data: types.EntityID
	Breach           EventType = "Breach"           // Data: BreachData
	WaveSpawned      EventType = "WaveSpawned"      // Data: int, the wave number
	StateChanged     EventType = "StateChanged"     // Data: StateChangedData
)

// InvaderDestroyedData names the invader and the bullet that claimed it.
type InvaderDestroyedData struct {
	Invader types.EntityID
	Bullet  types.EntityID
}

// BreachData reports the lives left after an invader reached the player's row.
type BreachData struct {
	LivesLeft int
}

type StateChangedData struct {
	From, To component.GameState
}

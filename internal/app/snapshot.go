package app

import (
	"go-invaders/internal/component"
	"go-invaders/internal/entity"
	"go-invaders/pkg/utils"
)

// Snapshot is the fully resolved state handed to presentation. It shares no memory
// with the session, so holders may keep it across ticks.
type Snapshot struct {
	SessionID string              `json:"sessionId,omitempty"`
	Tick      uint64              `json:"tick"`
	Wave      int                 `json:"wave"`
	State     component.GameState `json:"state"`
	Player    utils.Rect          `json:"player"`
	Invaders  []utils.Rect        `json:"invaders"`
	Bullets   []utils.Rect        `json:"bullets"`
	Score     int                 `json:"score"`
	Best      int                 `json:"best"`
	Lives     int                 `json:"lives"`
}

// snapshot copies the world out. Callers hold g.mu.
func (g *Game) snapshot() Snapshot {
	ecs := g.ECS

	invaders := make([]utils.Rect, 0, len(ecs.Invaders))
	for _, id := range entity.SortedIDs(ecs.Invaders) {
		invaders = append(invaders, ecs.Box(id))
	}
	bullets := make([]utils.Rect, 0, len(ecs.Projectiles))
	for _, id := range entity.SortedIDs(ecs.Projectiles) {
		bullets = append(bullets, ecs.Box(id))
	}

	return Snapshot{
		SessionID: g.sessionID,
		Tick:      ecs.Tick,
		Wave:      ecs.Wave,
		State:     ecs.GameState,
		Player:    ecs.Box(ecs.PlayerID),
		Invaders:  invaders,
		Bullets:   bullets,
		Score:     ecs.PlayerState.Score,
		Best:      g.best,
		Lives:     ecs.PlayerState.Lives,
	}
}

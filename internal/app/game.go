// internal/app/game.go
package app

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"go-invaders/internal/component"
	"go-invaders/internal/defs"
	"go-invaders/internal/entity"
	"go-invaders/internal/event"
	"go-invaders/internal/system"
)

// Game is one game session: the ECS world, the systems that advance it and the
// lock that makes every command and tick atomic with respect to each other.
//
// Event listeners run inside that lock and must not call back into Game.
type Game struct {
	mu sync.Mutex

	Rules           defs.Rules
	ECS             *entity.ECS
	MovementSystem  *system.MovementSystem
	CombatSystem    *system.CombatSystem
	WaveSystem      *system.WaveSystem
	PlayerSystem    *system.PlayerSystem
	StateSystem     *system.StateSystem
	EventDispatcher *event.Dispatcher

	logger    *slog.Logger
	sessionID string
	best      int
}

// Option configures a Game at construction.
type Option func(*Game)

// WithLogger sets the logger used for round events. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// NewGame builds a session in the start state. rules must be valid.
func NewGame(rules defs.Rules, opts ...Option) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Rules:           rules,
		ECS:             ecs,
		MovementSystem:  system.NewMovementSystem(ecs),
		CombatSystem:    system.NewCombatSystem(ecs, eventDispatcher),
		WaveSystem:      system.NewWaveSystem(ecs, rules, eventDispatcher),
		PlayerSystem:    system.NewPlayerSystem(ecs, rules, eventDispatcher),
		EventDispatcher: eventDispatcher,
		logger:          slog.Default(),
	}
	g.StateSystem = system.NewStateSystem(ecs, g.WaveSystem, g.PlayerSystem, eventDispatcher)
	for _, opt := range opts {
		opt(g)
	}

	eventDispatcher.Subscribe(event.InvaderDestroyed, g.PlayerSystem)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.StateChanged, listener)
	eventDispatcher.Subscribe(event.Breach, listener)
	eventDispatcher.Subscribe(event.WaveSpawned, listener)

	g.PlayerSystem.Reset()
	return g
}

// Start begins the first round. No-op unless the session is in the start state.
func (g *Game) Start() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.beginRound(g.StateSystem.Start)
	return g.snapshot()
}

// Restart begins a new round after game over or win. No-op otherwise.
func (g *Game) Restart() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.beginRound(g.StateSystem.Restart)
	return g.snapshot()
}

func (g *Game) beginRound(transition func() bool) {
	prev := g.sessionID
	g.sessionID = uuid.NewString()
	if !transition() {
		g.sessionID = prev
	}
}

// SetPlayerX moves the player, clamped to the field. Ignored outside playing.
func (g *Game) SetPlayerX(x float64) Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ECS.GameState == component.PlayingState {
		g.PlayerSystem.MoveTo(x)
	}
	return g.snapshot()
}

// SpawnBullet fires from the player's top-center. Ignored outside playing.
func (g *Game) SpawnBullet() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ECS.GameState == component.PlayingState {
		g.PlayerSystem.Fire()
	}
	return g.snapshot()
}

// Tick advances the simulation by one fixed step. Outside playing it returns the
// current snapshot unchanged.
func (g *Game) Tick() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ECS.GameState != component.PlayingState {
		return g.snapshot()
	}

	g.ECS.Tick++
	g.MovementSystem.AdvanceInvaders()
	g.MovementSystem.AdvanceBullets(g.Rules.Field.Height)
	g.CombatSystem.Resolve()
	if !g.StateSystem.CheckBreach() {
		g.StateSystem.CheckWin()
	}

	if score := g.ECS.PlayerState.Score; score > g.best {
		g.best = score
	}
	return g.snapshot()
}

// Snapshot returns the current state without advancing it.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snapshot()
}

// State returns the active game state.
func (g *Game) State() component.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.ECS.GameState
}

// GameEventListener logs round events.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.StateChanged:
		data := e.Data.(event.StateChangedData)
		g.logger.Info("state changed",
			"session", g.sessionID,
			"from", data.From,
			"to", data.To,
			"score", g.ECS.PlayerState.Score,
			"tick", g.ECS.Tick,
		)
	case event.Breach:
		data := e.Data.(event.BreachData)
		g.logger.Info("invaders breached", "session", g.sessionID, "lives", data.LivesLeft, "tick", g.ECS.Tick)
	case event.WaveSpawned:
		g.logger.Debug("wave spawned", "session", g.sessionID, "wave", e.Data)
	}
}

package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-invaders/internal/component"
	"go-invaders/internal/defs"
	"go-invaders/internal/entity"
	"go-invaders/internal/event"
	"go-invaders/internal/types"
	"go-invaders/pkg/utils"
)

type world struct {
	ecs      *entity.ECS
	events   *event.Dispatcher
	movement *MovementSystem
	combat   *CombatSystem
	waves    *WaveSystem
	players  *PlayerSystem
	states   *StateSystem
	log      []event.Event
}

func newWorld(t *testing.T) *world {
	t.Helper()
	rules := defs.Default()
	w := &world{ecs: entity.NewECS(), events: event.NewDispatcher()}
	w.movement = NewMovementSystem(w.ecs)
	w.combat = NewCombatSystem(w.ecs, w.events)
	w.waves = NewWaveSystem(w.ecs, rules, w.events)
	w.players = NewPlayerSystem(w.ecs, rules, w.events)
	w.states = NewStateSystem(w.ecs, w.waves, w.players, w.events)
	w.events.Subscribe(event.InvaderDestroyed, w.players)
	rec := event.ListenerFunc(func(e event.Event) { w.log = append(w.log, e) })
	for _, et := range []event.EventType{event.InvaderDestroyed, event.Breach, event.WaveSpawned, event.StateChanged} {
		w.events.Subscribe(et, rec)
	}
	w.players.Reset()
	return w
}

func (w *world) addInvader(x, y float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Sizes[id] = &component.Size{W: 40, H: 30}
	w.ecs.Velocities[id] = &component.Velocity{DY: 1}
	w.ecs.Invaders[id] = &component.Invader{}
	return id
}

func (w *world) addBullet(x, y float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Sizes[id] = &component.Size{W: 5, H: 15}
	w.ecs.Velocities[id] = &component.Velocity{DY: -5}
	w.ecs.Projectiles[id] = &component.Projectile{}
	return id
}

func (w *world) eventsOf(et event.EventType) []event.Event {
	var out []event.Event
	for _, e := range w.log {
		if e.Type == et {
			out = append(out, e)
		}
	}
	return out
}

func TestFormation(t *testing.T) {
	rects := Formation(defs.Default())
	require.Len(t, rects, 40)

	assert.Equal(t, utils.NewRect(50, 50, 40, 30), rects[0])
	assert.Equal(t, utils.NewRect(110, 50, 40, 30), rects[1])
	assert.Equal(t, utils.NewRect(50, 100, 40, 30), rects[8])
	assert.Equal(t, utils.NewRect(470, 250, 40, 30), rects[39])

	assert.Equal(t, rects, Formation(defs.Default()), "formation must be deterministic")
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			assert.False(t, utils.Overlaps(rects[i], rects[j]), "slots %d and %d overlap", i, j)
		}
	}
}

func TestWaveSpawnReplacesFormation(t *testing.T) {
	w := newWorld(t)
	w.addInvader(300, 300)

	w.waves.Spawn()

	require.Len(t, w.ecs.Invaders, 40)
	ids := entity.SortedIDs(w.ecs.Invaders)
	for slot, id := range ids {
		inv := w.ecs.Invaders[id]
		assert.Equal(t, slot/8, inv.Row)
		assert.Equal(t, slot%8, inv.Col)
		assert.Equal(t, 1.0, w.ecs.Velocities[id].DY)
	}
	assert.Equal(t, utils.NewRect(50, 50, 40, 30), w.ecs.Box(ids[0]))
	assert.Equal(t, 1, w.ecs.Wave)
	require.Len(t, w.eventsOf(event.WaveSpawned), 1)
	assert.Equal(t, 1, w.eventsOf(event.WaveSpawned)[0].Data)
}

func TestAdvance(t *testing.T) {
	w := newWorld(t)
	inv := w.addInvader(50, 50)
	keep := w.addBullet(100, 6)
	edge := w.addBullet(200, 5)

	w.movement.AdvanceInvaders()
	removed := w.movement.AdvanceBullets(600)

	assert.Equal(t, 51.0, w.ecs.Positions[inv].Y)
	assert.Equal(t, 1.0, w.ecs.Positions[keep].Y)
	assert.Equal(t, 1, removed)
	assert.NotContains(t, w.ecs.Projectiles, edge)
	assert.NotContains(t, w.ecs.Positions, edge)
}

func TestResolveSingleHit(t *testing.T) {
	w := newWorld(t)
	inv := w.addInvader(50, 50)
	other := w.addInvader(300, 50)
	bullet := w.addBullet(50, 55)

	killed := w.combat.Resolve()

	assert.Equal(t, 1, killed)
	assert.NotContains(t, w.ecs.Invaders, inv)
	assert.Contains(t, w.ecs.Invaders, other)
	assert.Empty(t, w.ecs.Projectiles)
	assert.Equal(t, 10, w.ecs.PlayerState.Score)

	hits := w.eventsOf(event.InvaderDestroyed)
	require.Len(t, hits, 1)
	assert.Equal(t, event.InvaderDestroyedData{Invader: inv, Bullet: bullet}, hits[0].Data)
}

func TestResolveBulletOverlappingTwoInvadersScoresOnce(t *testing.T) {
	w := newWorld(t)
	left := w.addInvader(50, 50)
	right := w.addInvader(88, 50) // overlaps left by 2 units
	w.addBullet(87, 60)           // straddles both

	killed := w.combat.Resolve()

	assert.Equal(t, 1, killed)
	assert.NotContains(t, w.ecs.Invaders, left, "lowest id is claimed")
	assert.Contains(t, w.ecs.Invaders, right)
	assert.Empty(t, w.ecs.Projectiles)
	assert.Equal(t, 10, w.ecs.PlayerState.Score)
}

func TestResolveTwoBulletsOneInvader(t *testing.T) {
	w := newWorld(t)
	inv := w.addInvader(50, 50)
	w.addBullet(55, 60)
	w.addBullet(70, 60)

	hits, spent := w.combat.Collide()
	require.Len(t, hits, 1)
	assert.Len(t, spent, 2)

	w.combat.Resolve()
	assert.NotContains(t, w.ecs.Invaders, inv)
	assert.Empty(t, w.ecs.Projectiles, "both bullets touched the invader")
	assert.Equal(t, 10, w.ecs.PlayerState.Score)
}

func TestResolveSecondBulletTakesNextInvader(t *testing.T) {
	w := newWorld(t)
	w.addInvader(50, 50)
	w.addInvader(88, 50)
	w.addBullet(87, 60)
	w.addBullet(87, 62)

	assert.Equal(t, 2, w.combat.Resolve())
	assert.Empty(t, w.ecs.Invaders)
	assert.Equal(t, 20, w.ecs.PlayerState.Score)
}

func TestPlayerMoveAndFire(t *testing.T) {
	w := newWorld(t)
	player := w.ecs.Box(w.ecs.PlayerID)
	assert.Equal(t, utils.NewRect(375, 570, 50, 20), player)

	w.players.MoveTo(-40)
	assert.Equal(t, 0.0, w.ecs.Positions[w.ecs.PlayerID].X)
	w.players.MoveTo(10000)
	assert.Equal(t, 750.0, w.ecs.Positions[w.ecs.PlayerID].X)
	w.players.MoveTo(100)

	id := w.players.Fire()
	assert.Equal(t, utils.NewRect(122.5, 555, 5, 15), w.ecs.Box(id))
	assert.Equal(t, -5.0, w.ecs.Velocities[id].DY)
}

func TestStartAndRestartSourceStates(t *testing.T) {
	w := newWorld(t)

	assert.False(t, w.states.Restart(), "restart from start is a no-op")
	assert.Equal(t, component.StartState, w.states.Current())

	require.True(t, w.states.Start())
	assert.Equal(t, component.PlayingState, w.states.Current())
	assert.Len(t, w.ecs.Invaders, 40)
	assert.Equal(t, 3, w.ecs.PlayerState.Lives)

	assert.False(t, w.states.Start(), "start while playing is a no-op")
	assert.False(t, w.states.Restart(), "restart while playing is a no-op")

	w.ecs.GameState = component.WinState
	w.ecs.PlayerState.Score = 400
	require.True(t, w.states.Restart())
	assert.Equal(t, 0, w.ecs.PlayerState.Score)
	assert.Equal(t, 1, w.ecs.Wave)
}

func TestCheckBreach(t *testing.T) {
	w := newWorld(t)
	require.True(t, w.states.Start())
	w.addBullet(10, 300)

	assert.False(t, w.states.CheckBreach())

	// push one invader so its lower edge reaches the player row
	id := entity.SortedIDs(w.ecs.Invaders)[39]
	w.ecs.Positions[id].Y = 570 - 30

	require.True(t, w.states.CheckBreach())
	assert.Equal(t, 2, w.ecs.PlayerState.Lives)
	assert.Equal(t, component.PlayingState, w.states.Current())
	assert.Len(t, w.ecs.Invaders, 40, "wave respawned")
	assert.Empty(t, w.ecs.Projectiles)
	assert.Equal(t, 2, w.ecs.Wave)
	assert.Equal(t, event.BreachData{LivesLeft: 2}, w.eventsOf(event.Breach)[0].Data)
}

func TestCheckBreachLastLife(t *testing.T) {
	w := newWorld(t)
	require.True(t, w.states.Start())
	w.ecs.PlayerState.Lives = 1
	w.ecs.ClearInvaders()
	w.addInvader(100, 560)

	require.True(t, w.states.CheckBreach())
	assert.Equal(t, 0, w.ecs.PlayerState.Lives)
	assert.Equal(t, component.GameOverState, w.states.Current())

	changes := w.eventsOf(event.StateChanged)
	last := changes[len(changes)-1].Data.(event.StateChangedData)
	assert.Equal(t, event.StateChangedData{From: component.PlayingState, To: component.GameOverState}, last)
}

func TestCheckWin(t *testing.T) {
	w := newWorld(t)
	require.True(t, w.states.Start())
	assert.False(t, w.states.CheckWin())

	w.ecs.ClearInvaders()
	assert.True(t, w.states.CheckWin())
	assert.Equal(t, component.WinState, w.states.Current())
}

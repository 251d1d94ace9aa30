package system

import (
	"go-invaders/internal/component"
	"go-invaders/internal/entity"
	"go-invaders/internal/event"
)

// StateSystem drives round transitions: start, restart, breach and win.
type StateSystem struct {
	ecs             *entity.ECS
	waves           *WaveSystem
	players         *PlayerSystem
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, waves *WaveSystem, players *PlayerSystem, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		waves:           waves,
		players:         players,
		eventDispatcher: eventDispatcher,
	}
}

func (s *StateSystem) Current() component.GameState {
	return s.ecs.GameState
}

// Start begins the first round. It only acts in the start state.
func (s *StateSystem) Start() bool {
	if s.ecs.GameState != component.StartState {
		return false
	}
	s.beginRound()
	return true
}

// Restart begins a fresh round after game over or win.
func (s *StateSystem) Restart() bool {
	if !s.ecs.GameState.Terminal() {
		return false
	}
	s.beginRound()
	return true
}

func (s *StateSystem) beginRound() {
	s.ecs.ClearProjectiles()
	s.ecs.Tick = 0
	s.ecs.Wave = 0
	s.players.Reset()
	s.waves.Spawn()
	s.switchTo(component.PlayingState)
}

// CheckBreach handles an invader reaching the player's row. It costs one life;
// the round ends when none are left, otherwise a full wave respawns.
func (s *StateSystem) CheckBreach() bool {
	if !s.breached() {
		return false
	}

	lives := s.players.LoseLife()
	s.eventDispatcher.Dispatch(event.Event{Type: event.Breach, Data: event.BreachData{LivesLeft: lives}})
	if lives <= 0 {
		s.switchTo(component.GameOverState)
		return true
	}
	s.ecs.ClearProjectiles()
	s.waves.Spawn()
	return true
}

func (s *StateSystem) breached() bool {
	playerY := s.ecs.Box(s.ecs.PlayerID).Y
	for id := range s.ecs.Invaders {
		if s.ecs.Box(id).Bottom() >= playerY {
			return true
		}
	}
	return false
}

// CheckWin ends the round once the formation is gone.
func (s *StateSystem) CheckWin() bool {
	if len(s.ecs.Invaders) > 0 {
		return false
	}
	s.switchTo(component.WinState)
	return true
}

func (s *StateSystem) switchTo(next component.GameState) {
	prev := s.ecs.GameState
	s.ecs.GameState = next
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.StateChanged,
		Data: event.StateChangedData{From: prev, To: next},
	})
}

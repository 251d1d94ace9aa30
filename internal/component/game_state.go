package component

import "fmt"

// GameState is the phase of a round. Exactly one is active at a time.
type GameState int

const (
	StartState GameState = iota
	PlayingState
	GameOverState
	WinState
)

var gameStateNames = [...]string{"start", "playing", "gameover", "win"}

func (s GameState) String() string {
	if s < 0 || int(s) >= len(gameStateNames) {
		return fmt.Sprintf("GameState(%d)", int(s))
	}
	return gameStateNames[s]
}

// Terminal reports whether the round is over and only a restart can leave the state.
func (s GameState) Terminal() bool {
	return s == GameOverState || s == WinState
}

func (s GameState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *GameState) UnmarshalText(b []byte) error {
	for i, name := range gameStateNames {
		if name == string(b) {
			*s = GameState(i)
			return nil
		}
	}
	return fmt.Errorf("unknown game state %q", b)
}

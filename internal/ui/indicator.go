// internal/ui/indicator.go
package ui

import (
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-invaders/internal/component"
	"go-invaders/internal/config"
)

// StateIndicator is a circle colored by the round state. It pulses briefly on change.
type StateIndicator struct {
	X, Y       float32
	Radius     float32
	last       component.GameState
	lastChange time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

func (i *StateIndicator) Draw(state component.GameState) {
	if state != i.last {
		i.last = state
		i.lastChange = time.Now()
	}
	elapsed := time.Since(i.lastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	radius := i.Radius * float32(scale)

	rl.DrawCircleV(rl.NewVector2(i.X, i.Y), radius, ToRL(config.StateColors[state]))
	rl.DrawCircleLines(int32(i.X), int32(i.Y), radius, rl.White)
}

package ui

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-invaders/internal/config"
)

const (
	LifeRadius  = 7.0
	LifeSpacing = 4.0
)

// LivesIndicator draws remaining lives as a row of circles.
type LivesIndicator struct {
	Position rl.Vector2
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{Position: rl.NewVector2(x, y)}
}

// lifeColors returns one color per slot: filled for remaining lives, dark for lost ones.
// The last life turns red.
func lifeColors(lives, maxLives int) []rl.Color {
	colors := make([]rl.Color, maxLives)
	for j := range colors {
		switch {
		case j >= lives:
			colors[j] = rl.Black
		case lives == 1:
			colors[j] = rl.Red
		default:
			colors[j] = ToRL(config.PlayerColor)
		}
	}
	return colors
}

func (i *LivesIndicator) Draw(lives, maxLives int) {
	step := float32(LifeRadius*2 + LifeSpacing)
	for j, color := range lifeColors(lives, maxLives) {
		cx := int32(i.Position.X + float32(j)*step + LifeRadius)
		cy := int32(i.Position.Y + LifeRadius)
		rl.DrawCircle(cx, cy, LifeRadius, color)
		rl.DrawCircleLines(cx, cy, LifeRadius, rl.White)
	}

	label := strconv.Itoa(lives) + "/" + strconv.Itoa(maxLives)
	rl.DrawText(label, int32(i.Position.X+float32(maxLives)*step+LifeSpacing), int32(i.Position.Y), 16, rl.White)
}

// Width is the horizontal space taken by the circles.
func (i *LivesIndicator) Width(maxLives int) float32 {
	return float32(maxLives) * (LifeRadius*2 + LifeSpacing)
}

package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Controls is the input a screen reads once per update.
type Controls interface {
	CursorX() float64
	Clicked() bool
	Confirmed() bool
}

// EbitenControls reads the mouse and keyboard through ebiten.
type EbitenControls struct{}

func (EbitenControls) CursorX() float64 {
	x, _ := ebiten.CursorPosition()
	return float64(x)
}

func (EbitenControls) Clicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (EbitenControls) Confirmed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

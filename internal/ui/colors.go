package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ToRL converts a palette color to raylib's.
func ToRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

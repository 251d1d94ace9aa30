// pkg/render/color.go
package render

import (
	"image/color"

	"go-invaders/internal/config"
)

// Palette groups the colors a BoxRenderer paints with.
type Palette struct {
	Background color.RGBA
	Field      color.RGBA
	Player     color.RGBA
	Invader    color.RGBA
	Bullet     color.RGBA
	Text       color.RGBA
	Overlay    color.RGBA
	Stroke     color.RGBA
}

func DefaultPalette() *Palette {
	return &Palette{
		Background: config.BackgroundColor,
		Field:      config.FieldColor,
		Player:     config.PlayerColor,
		Invader:    config.InvaderColor,
		Bullet:     config.BulletColor,
		Text:       config.TextLightColor,
		Overlay:    config.OverlayColor,
		Stroke:     config.StrokeColor,
	}
}

// DarkenColor halves the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

package utils

// Viewport places a field on screen under a HUD strip, stretched to fit.
type Viewport struct {
	FieldWidth   float64
	FieldHeight  float64
	ScreenWidth  int
	ScreenHeight int
	OriginY      float64
}

func NewViewport(fieldWidth, fieldHeight float64, screenWidth, screenHeight int, hudHeight float64) Viewport {
	return Viewport{
		FieldWidth:   fieldWidth,
		FieldHeight:  fieldHeight,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		OriginY:      hudHeight,
	}
}

func (v Viewport) scale() (sx, sy float64) {
	sx = float64(v.ScreenWidth) / v.FieldWidth
	sy = (float64(v.ScreenHeight) - v.OriginY) / v.FieldHeight
	return sx, sy
}

// FieldRect is the whole field in field coordinates.
func (v Viewport) FieldRect() Rect {
	return NewRect(0, 0, v.FieldWidth, v.FieldHeight)
}

// ToScreen maps a field box to screen coordinates.
func (v Viewport) ToScreen(box Rect) (x, y, w, h float32) {
	sx, sy := v.scale()
	return float32(box.X * sx), float32(v.OriginY + box.Y*sy), float32(box.W * sx), float32(box.H * sy)
}

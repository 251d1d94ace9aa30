// internal/ui/button.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-invaders/internal/config"
)

// Button is a clickable text button.
type Button struct {
	Rect       rl.Rectangle
	Text       string
	TextColor  rl.Color
	BgColor    rl.Color
	HoverColor rl.Color
	Font       rl.Font
	FontSize   float32
	Visible    bool
}

func NewButton(rect rl.Rectangle, text string, font rl.Font) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  ToRL(config.TextLightColor),
		BgColor:    ToRL(config.ButtonColor),
		HoverColor: rl.SkyBlue,
		Font:       font,
		FontSize:   20,
		Visible:    true,
	}
}

// IsClicked reports a left press inside a visible button this frame.
func (b *Button) IsClicked(mousePos rl.Vector2) bool {
	return b.Visible && rl.CheckCollisionPointRec(mousePos, b.Rect) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

func (b *Button) Draw(mousePos rl.Vector2) {
	if !b.Visible {
		return
	}
	bgColor := b.BgColor
	if rl.CheckCollisionPointRec(mousePos, b.Rect) {
		bgColor = b.HoverColor
	}

	rl.DrawRectangleRec(b.Rect, bgColor)
	rl.DrawRectangleLinesEx(b.Rect, float32(config.StrokeWidth), ToRL(config.StrokeColor))

	textSize := rl.MeasureTextEx(b.Font, b.Text, b.FontSize, 1)
	textX := b.Rect.X + (b.Rect.Width-textSize.X)/2
	textY := b.Rect.Y + (b.Rect.Height-textSize.Y)/2

	rl.DrawTextEx(b.Font, b.Text, rl.NewVector2(textX, textY), b.FontSize, 1, b.TextColor)
}

package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-invaders/internal/app"
	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/pkg/utils"
)

// BoxRenderer draws a snapshot as filled rectangles below a one line HUD.
type BoxRenderer struct {
	view     utils.Viewport
	fontFace font.Face
	colors   *Palette

	// background and field frame, rendered once
	backdrop *ebiten.Image
}

func NewBoxRenderer(view utils.Viewport, colors *Palette) *BoxRenderer {
	if colors == nil {
		colors = DefaultPalette()
	}
	r := &BoxRenderer{
		view:     view,
		fontFace: basicfont.Face7x13,
		colors:   colors,
		backdrop: ebiten.NewImage(view.ScreenWidth, view.ScreenHeight),
	}
	r.renderBackdrop()
	return r
}

func (r *BoxRenderer) Viewport() utils.Viewport { return r.view }

func (r *BoxRenderer) renderBackdrop() {
	r.backdrop.Fill(r.colors.Background)
	x, y, w, h := r.view.ToScreen(r.view.FieldRect())
	vector.DrawFilledRect(r.backdrop, x, y, w, h, r.colors.Field, false)
	vector.StrokeRect(r.backdrop, x, y, w, h, float32(config.StrokeWidth), DarkenColor(r.colors.Stroke), false)
}

// Draw paints the field and the HUD.
func (r *BoxRenderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.DrawImage(r.backdrop, nil)

	for _, box := range snap.Invaders {
		r.fill(screen, box, r.colors.Invader)
	}
	for _, box := range snap.Bullets {
		r.fill(screen, box, r.colors.Bullet)
	}
	r.fill(screen, snap.Player, r.colors.Player)

	r.DrawHUD(screen, snap)
}

func (r *BoxRenderer) fill(screen *ebiten.Image, box utils.Rect, clr color.RGBA) {
	x, y, w, h := r.view.ToScreen(box)
	vector.DrawFilledRect(screen, x, y, w, h, clr, false)
}

func (r *BoxRenderer) DrawHUD(screen *ebiten.Image, snap app.Snapshot) {
	baseline := (r.view.OriginY + config.TextLineHeight) / 2
	text.Draw(screen, HUDLine(snap), r.fontFace, 10, int(baseline), r.colors.Text)

	label := snap.State.String()
	bounds := text.BoundString(r.fontFace, label)
	stateColor := config.StateColors[snap.State]
	text.Draw(screen, label, r.fontFace, r.view.ScreenWidth-bounds.Dx()-10, int(baseline), stateColor)
}

// DrawBanner dims the field and writes the banner for state, if it has one.
func (r *BoxRenderer) DrawBanner(screen *ebiten.Image, state component.GameState) {
	title, hint := Banner(state)
	if title == "" {
		return
	}
	x, y, w, h := r.view.ToScreen(r.view.FieldRect())
	vector.DrawFilledRect(screen, x, y, w, h, r.colors.Overlay, false)

	cy := int(y + h/2)
	r.centered(screen, title, cy-config.TextLineHeight)
	r.centered(screen, hint, cy+config.TextLineHeight)
}

func (r *BoxRenderer) centered(screen *ebiten.Image, s string, y int) {
	bounds := text.BoundString(r.fontFace, s)
	text.Draw(screen, s, r.fontFace, (r.view.ScreenWidth-bounds.Dx())/2, y, r.colors.Text)
}

// HUDLine is the status text shown above the field.
func HUDLine(snap app.Snapshot) string {
	return fmt.Sprintf("SCORE %d   BEST %d   LIVES %d   WAVE %d", snap.Score, snap.Best, snap.Lives, snap.Wave)
}

// Banner returns the overlay text for state. Playing has none.
func Banner(state component.GameState) (title, hint string) {
	switch state {
	case component.StartState:
		return "SPACE INVADERS", "click or press SPACE to start"
	case component.GameOverState:
		return "GAME OVER", "click or press SPACE to play again"
	case component.WinState:
		return "YOU WIN", "click or press SPACE to play again"
	}
	return "", ""
}

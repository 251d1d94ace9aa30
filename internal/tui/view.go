// Package tui draws snapshots into a terminal and turns terminal input into commands.
package tui

import (
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	"go-invaders/internal/app"
	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/defs"
	"go-invaders/pkg/utils"
)

const (
	statusRows = 1

	invaderRune = 'W'
	bulletRune  = '|'
	playerRune  = '▀'
)

var (
	invaderStyle = tcell.StyleDefault.Foreground(rgb(config.InvaderColor))
	bulletStyle  = tcell.StyleDefault.Foreground(rgb(config.BulletColor))
	playerStyle  = tcell.StyleDefault.Foreground(rgb(config.PlayerColor))
	textStyle    = tcell.StyleDefault.Foreground(rgb(config.TextLightColor))
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// View renders the latest snapshot. The status line sits on the top row and the
// field is stretched over the rest of the terminal.
type View struct {
	screen tcell.Screen
	rules  defs.Rules

	mu   sync.Mutex
	last app.Snapshot
}

func NewView(screen tcell.Screen, rules defs.Rules) *View {
	return &View{screen: screen, rules: rules}
}

// Publish stores snap and redraws. It is the scheduler's sink.
func (v *View) Publish(snap app.Snapshot) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.last = snap
	v.draw()
}

// Redraw repaints the last snapshot, e.g. after a resize.
func (v *View) Redraw() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.draw()
}

// Grid returns the field size in cells.
func (v *View) Grid() (cols, rows int) {
	w, h := v.screen.Size()
	return w, max(h-statusRows, 0)
}

// CellRect maps a field box onto inclusive cell bounds. The box covers at least one cell.
func (v *View) CellRect(r utils.Rect) (c0, r0, c1, r1 int) {
	cols, rows := v.Grid()
	sx := float64(cols) / v.rules.Field.Width
	sy := float64(rows) / v.rules.Field.Height

	c0 = int(math.Floor(r.X * sx))
	r0 = int(math.Floor(r.Y * sy))
	c1 = max(int(math.Ceil(r.Right()*sx))-1, c0)
	r1 = max(int(math.Ceil(r.Bottom()*sy))-1, r0)

	c0, c1 = clampInt(c0, 0, cols-1), clampInt(c1, 0, cols-1)
	r0, r1 = clampInt(r0, 0, rows-1), clampInt(r1, 0, rows-1)
	return c0, r0 + statusRows, c1, r1 + statusRows
}

func (v *View) draw() {
	s := v.screen
	s.Clear()

	cols, rows := v.Grid()
	if cols == 0 || rows == 0 {
		s.Show()
		return
	}

	snap := v.last
	for _, r := range snap.Invaders {
		v.fill(r, invaderRune, invaderStyle)
	}
	for _, r := range snap.Bullets {
		v.fill(r, bulletRune, bulletStyle)
	}
	v.fill(snap.Player, playerRune, playerStyle)

	v.drawStatus(snap)
	if msg := banner(snap.State); msg != "" {
		v.print((cols-len(msg))/2, statusRows+rows/2, msg, textStyle.Reverse(true))
	}
	s.Show()
}

func (v *View) fill(r utils.Rect, ch rune, style tcell.Style) {
	c0, r0, c1, r1 := v.CellRect(r)
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			v.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (v *View) drawStatus(snap app.Snapshot) {
	line := fmt.Sprintf(" SCORE %d  BEST %d  LIVES %d  WAVE %d ", snap.Score, snap.Best, snap.Lives, snap.Wave)
	v.print(0, 0, line, textStyle)

	state := " " + stateLabel(snap.State) + " "
	style := tcell.StyleDefault.Background(rgb(config.StateColors[snap.State])).Foreground(tcell.ColorBlack)
	cols, _ := v.Grid()
	v.print(cols-len(state), 0, state, style)
}

func (v *View) print(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		v.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func stateLabel(s component.GameState) string {
	switch s {
	case component.StartState:
		return "READY"
	case component.PlayingState:
		return "PLAYING"
	case component.GameOverState:
		return "GAME OVER"
	case component.WinState:
		return "WIN"
	}
	return s.String()
}

func banner(s component.GameState) string {
	switch s {
	case component.StartState:
		return " Press Enter or click to start "
	case component.GameOverState:
		return " GAME OVER  r to restart, q to quit "
	case component.WinState:
		return " YOU WIN  r to restart, q to quit "
	}
	return ""
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

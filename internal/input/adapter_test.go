package input

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"go-invaders/internal/app"
	"go-invaders/internal/component"
	"go-invaders/internal/defs"
)

type fakeController struct {
	xs    []float64
	shots int
}

func (f *fakeController) SetPlayerX(x float64) app.Snapshot {
	f.xs = append(f.xs, x)
	return app.Snapshot{}
}

func (f *fakeController) SpawnBullet() app.Snapshot {
	f.shots++
	return app.Snapshot{}
}

func newGame() *app.Game {
	return app.NewGame(defs.Default(), app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestPointerCentersPlayer(t *testing.T) {
	ctrl := &fakeController{}
	p := NewPointer(ctrl, defs.Default(), 0, 800)

	p.OnPointerMove(400)
	p.OnClick()
	p.OnClick()

	assert.Equal(t, []float64{375}, ctrl.xs)
	assert.Equal(t, 2, ctrl.shots)
}

func TestPointerScalesScreenToField(t *testing.T) {
	ctrl := &fakeController{}
	// a 100 column terminal drawn from column 2
	p := NewPointer(ctrl, defs.Default(), 2, 100)

	assert.Equal(t, -25.0, p.FieldX(2))
	assert.Equal(t, 375.0, p.FieldX(52))
	assert.Equal(t, 775.0, p.FieldX(102))
}

func TestPointerIgnoredOutsidePlaying(t *testing.T) {
	g := newGame()
	p := NewPointer(g, defs.Default(), 0, 800)

	p.OnPointerMove(100)
	p.OnClick()

	snap := g.Snapshot()
	assert.Equal(t, 375.0, snap.Player.X)
	assert.Empty(t, snap.Bullets)
}

func TestPointerClampProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := newGame()
		g.Start()
		p := NewPointer(g, defs.Default(), 0, rapid.Float64Range(1, 4000).Draw(t, "width"))

		pointerX := rapid.OneOf(
			rapid.Float64Range(-1e5, 1e5),
			rapid.SampledFrom([]float64{math.NaN(), math.Inf(1), math.Inf(-1)}),
		)
		for _, x := range rapid.SliceOfN(pointerX, 1, 50).Draw(t, "moves") {
			p.OnPointerMove(x)
			got := g.Snapshot().Player.X
			if !(got >= 0 && got <= 750) {
				t.Fatalf("pointer %v put player at %v", x, got)
			}
		}
	})
}

func TestConfirm(t *testing.T) {
	g := newGame()

	snap := Confirm(g)
	require.Equal(t, component.PlayingState, snap.State)
	session := snap.SessionID

	snap = Confirm(g)
	assert.Equal(t, session, snap.SessionID, "confirm while playing does nothing")

	g.ECS.GameState = component.WinState
	snap = Confirm(g)
	assert.Equal(t, component.PlayingState, snap.State)
	assert.NotEqual(t, session, snap.SessionID)
}

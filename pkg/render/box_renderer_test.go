package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-invaders/internal/app"
	"go-invaders/internal/component"
)

func TestHUDLine(t *testing.T) {
	snap := app.Snapshot{Score: 120, Best: 300, Lives: 2, Wave: 3}
	assert.Equal(t, "SCORE 120   BEST 300   LIVES 2   WAVE 3", HUDLine(snap))
}

func TestBanner(t *testing.T) {
	tests := []struct {
		state component.GameState
		title string
	}{
		{component.StartState, "SPACE INVADERS"},
		{component.PlayingState, ""},
		{component.GameOverState, "GAME OVER"},
		{component.WinState, "YOU WIN"},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			title, hint := Banner(tt.state)
			assert.Equal(t, tt.title, title)
			assert.Equal(t, tt.title == "", hint == "")
		})
	}
}

func TestDarkenColor(t *testing.T) {
	assert.Equal(t, color.RGBA{127, 50, 0, 200}, DarkenColor(color.RGBA{255, 100, 1, 200}))
}

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-invaders/internal/app"
	"go-invaders/internal/cli"
	"go-invaders/internal/component"
	"go-invaders/internal/config"
	"go-invaders/internal/input"
	"go-invaders/internal/ui"
	"go-invaders/pkg/utils"
)

type hud struct {
	button *ui.Button
	lives  *ui.LivesIndicator
	state  *ui.StateIndicator
	wave   *ui.WaveIndicator
	font   rl.Font
}

func main() {
	var opts cli.Options
	opts.Register(flag.CommandLine)
	flag.Parse()

	logger, err := cli.NewLogger(os.Stderr, opts.LogLevel)
	if err != nil {
		slog.Error("invalid flags", "err", err)
		os.Exit(2)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	game, err := opts.NewGame(logger)
	if err != nil {
		logger.Error("failed to load rules", "err", err)
		os.Exit(1)
	}
	hub := opts.StartSpectator(ctx, logger)

	const screenWidth, screenHeight = config.ScreenWidth, config.ScreenHeight
	rl.InitWindow(screenWidth, screenHeight, "Space Invaders | raylib")
	defer rl.CloseWindow()
	// one frame per tick
	rl.SetTargetFPS(int32(time.Second / game.Rules.TickInterval()))

	view := utils.NewViewport(game.Rules.Field.Width, game.Rules.Field.Height, screenWidth, screenHeight, config.HUDHeight)
	pointer := input.NewPointer(game, game.Rules, 0, screenWidth)

	font := rl.GetFontDefault()
	h := &hud{
		button: ui.NewButton(rl.NewRectangle(screenWidth/2-80, screenHeight/2+30, 160, 44), "START", font),
		lives:  ui.NewLivesIndicator(10, 12),
		state:  ui.NewStateIndicator(screenWidth-20, 20, 10),
		wave:   ui.NewWaveIndicator(screenWidth/2, 8, 24),
		font:   font,
	}

	snap := game.Snapshot()
	for !rl.WindowShouldClose() && ctx.Err() == nil {
		mouse := rl.GetMousePosition()

		if snap.State == component.PlayingState {
			pointer.OnPointerMove(float64(mouse.X))
			if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
				pointer.OnClick()
			}
			snap = game.Tick()
		} else if h.button.IsClicked(mouse) || rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyEnter) {
			snap = input.Confirm(game)
		}
		if hub != nil {
			hub.Publish(snap)
		}

		rl.BeginDrawing()
		draw(view, h, snap, game.Rules.StartLives, mouse)
		rl.EndDrawing()
	}
}

func draw(view utils.Viewport, h *hud, snap app.Snapshot, maxLives int, mouse rl.Vector2) {
	rl.ClearBackground(ui.ToRL(config.BackgroundColor))

	fill := func(box utils.Rect, c rl.Color) {
		x, y, w, hh := view.ToScreen(box)
		rl.DrawRectangleRec(rl.NewRectangle(x, y, w, hh), c)
	}
	fill(view.FieldRect(), ui.ToRL(config.FieldColor))
	for _, box := range snap.Invaders {
		fill(box, ui.ToRL(config.InvaderColor))
	}
	for _, box := range snap.Bullets {
		fill(box, ui.ToRL(config.BulletColor))
	}
	fill(snap.Player, ui.ToRL(config.PlayerColor))

	h.lives.Draw(snap.Lives, maxLives)
	h.wave.Draw(snap.Wave, h.font)
	h.state.Draw(snap.State)
	rl.DrawText(
		"SCORE "+strconv.Itoa(snap.Score)+"  BEST "+strconv.Itoa(snap.Best),
		int32(h.lives.Position.X+h.lives.Width(maxLives)+60), 12, 16, rl.White,
	)

	h.button.Visible = snap.State != component.PlayingState
	if !h.button.Visible {
		return
	}
	x, y, w, hh := view.ToScreen(view.FieldRect())
	rl.DrawRectangleRec(rl.NewRectangle(x, y, w, hh), ui.ToRL(config.OverlayColor))

	title := map[component.GameState]string{
		component.StartState:    "SPACE INVADERS",
		component.GameOverState: "GAME OVER",
		component.WinState:      "YOU WIN",
	}[snap.State]
	size := rl.MeasureTextEx(h.font, title, 40, 2)
	rl.DrawTextEx(h.font, title, rl.NewVector2((float32(view.ScreenWidth)-size.X)/2, h.button.Rect.Y-70), 40, 2, rl.White)

	h.button.Text = "RESTART"
	if snap.State == component.StartState {
		h.button.Text = "START"
	}
	h.button.Draw(mouse)
}

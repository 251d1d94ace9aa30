// cmd/invaders/main.go
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-invaders/internal/cli"
	"go-invaders/internal/clock"
	"go-invaders/internal/config"
	"go-invaders/internal/input"
	"go-invaders/internal/state"
	"go-invaders/pkg/render"
	"go-invaders/pkg/utils"
)

type AppGame struct {
	ctx            context.Context
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if a.ctx.Err() != nil {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
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

	viewport := utils.NewViewport(game.Rules.Field.Width, game.Rules.Field.Height, config.ScreenWidth, config.ScreenHeight, config.HUDHeight)
	sc := &state.Context{
		Game:     game,
		Renderer: render.NewBoxRenderer(viewport, nil),
		Pointer:  input.NewPointer(game, game.Rules, 0, config.ScreenWidth),
		Controls: state.EbitenControls{},
	}
	if hub := opts.StartSpectator(ctx, logger); hub != nil {
		sc.Sinks = append(sc.Sinks, clock.Sink(hub))
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, sc))
	app := &AppGame{
		ctx:            ctx,
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	// one update per tick
	ebiten.SetTPS(int(time.Second / game.Rules.TickInterval()))
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Space Invaders")
	if err := ebiten.RunGame(app); err != nil {
		logger.Error("game loop failed", "err", err)
		os.Exit(1)
	}
}

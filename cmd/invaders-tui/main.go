package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"go-invaders/internal/cli"
	"go-invaders/internal/clock"
	"go-invaders/internal/spectator"
	"go-invaders/internal/tui"
)

var errQuit = errors.New("quit")

// report restores the terminal before printing a panic, otherwise the trace is unreadable.
func report(screen tcell.Screen, r any) {
	if screen != nil {
		screen.Fini()
	}
	fmt.Fprintf(os.Stderr, "\n\x1b[31mINVADERS CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
}

// guard runs fn on a worker goroutine. A panic there cannot unwind into run, so it
// is reported and the process exits.
func guard(screen tcell.Screen, fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				report(screen, r)
				os.Exit(1)
			}
		}()
		return fn()
	}
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run owns every resource so that deferred cleanup happens before the exit code is returned.
func run(args []string) (code int) {
	var screen tcell.Screen
	defer func() {
		if r := recover(); r != nil {
			report(screen, r)
			code = 1
		}
	}()

	var opts cli.Options
	fs := flag.NewFlagSet("invaders-tui", flag.ContinueOnError)
	opts.Register(fs)
	logFile := fs.String("log-file", "invaders.log", "write logs here; the terminal is taken by the game")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		return 1
	}
	defer f.Close()

	logger, err := cli.NewLogger(f, opts.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}
	slog.SetDefault(logger)

	game, err := opts.NewGame(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load rules: %v\n", err)
		return 1
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize terminal: %v\n", err)
		return 1
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	view := tui.NewView(screen, game.Rules)
	translator := tui.NewTranslator(game, view, game.Rules)

	scheduler := clock.NewScheduler(game, game.Rules.TickInterval(), clock.WithLogger(logger))
	scheduler.AddSink(view)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	if opts.Spectate != "" {
		hub := spectator.NewHub(spectator.WithLogger(logger))
		scheduler.AddSink(hub)
		translator.AddSink(hub)
		g.Go(guard(screen, func() error { return spectator.Serve(gctx, opts.Spectate, hub) }))
	}

	view.Publish(game.Snapshot())
	g.Go(guard(screen, func() error { return scheduler.Run(gctx) }))
	g.Go(guard(screen, func() error { return eventLoop(gctx, screen, translator, view) }))

	err = g.Wait()
	screen.Fini()
	if err != nil && !errors.Is(err, errQuit) {
		logger.Error("invaders stopped", "err", err)
		fmt.Fprintf(os.Stderr, "invaders stopped: %v\n", err)
		return 1
	}
	snap := game.Snapshot()
	logger.Info("bye", "score", snap.Score, "best", snap.Best)
	return 0
}

func eventLoop(ctx context.Context, screen tcell.Screen, translator *tui.Translator, view *tui.View) error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			// PollEvent returns nil once the screen is finalized
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch translator.Translate(ev) {
			case tui.ActionQuit:
				return errQuit
			case tui.ActionRedraw:
				screen.Sync()
				view.Redraw()
			}
		}
	}
}

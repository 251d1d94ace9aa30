// Package cli holds the flag and logging setup shared by the binaries.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go-invaders/internal/app"
	"go-invaders/internal/defs"
	"go-invaders/internal/spectator"
)

// Options are the flags every frontend accepts.
type Options struct {
	RulesPath string
	LogLevel  string
	Spectate  string
}

// Register binds the common flags to fs.
func (o *Options) Register(fs *flag.FlagSet) {
	fs.StringVar(&o.RulesPath, "rules", "", "path to a JSON rules file overriding the defaults")
	fs.StringVar(&o.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.StringVar(&o.Spectate, "spectate", "", "serve a read-only websocket feed on this address, e.g. :8080")
}

// ParseLevel maps a level name to slog's.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("failed to parse log level %q: %w", s, err)
	}
	return lvl, nil
}

// NewLogger builds the text logger the binaries install as default.
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// Rules loads the rules file, or the defaults when none was given.
func (o *Options) Rules() (defs.Rules, error) {
	if o.RulesPath == "" {
		return defs.Default(), nil
	}
	return defs.LoadRules(o.RulesPath)
}

// NewGame builds the session from the options.
func (o *Options) NewGame(logger *slog.Logger) (*app.Game, error) {
	rules, err := o.Rules()
	if err != nil {
		return nil, err
	}
	return app.NewGame(rules, app.WithLogger(logger)), nil
}

// StartSpectator serves the feed in the background when -spectate is set.
// The returned hub is nil when it is not.
func (o *Options) StartSpectator(ctx context.Context, logger *slog.Logger) *spectator.Hub {
	if o.Spectate == "" {
		return nil
	}
	hub := spectator.NewHub(spectator.WithLogger(logger))
	go func() {
		if err := spectator.Serve(ctx, o.Spectate, hub); err != nil {
			logger.Error("spectator feed stopped", "err", err)
		}
	}()
	return hub
}

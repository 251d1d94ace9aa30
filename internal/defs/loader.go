package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go-invaders/internal/config"
)

// ErrInvalidRules is wrapped by every validation failure.
var ErrInvalidRules = errors.New("invalid rules")

// Rules holds every gameplay constant the simulation reads.
// The engine assumes a validated value; LoadRules and Default always return one.
type Rules struct {
	Field      Dimensions       `json:"field"`
	Player     EntityDefinition `json:"player"`
	Invader    EntityDefinition `json:"invader"`
	Bullet     EntityDefinition `json:"bullet"`
	Wave       WaveDefinition   `json:"wave"`
	PlayerGap  float64          `json:"playerGap"` // distance between player and lower edge
	KillReward int              `json:"killReward"`
	StartLives int              `json:"startLives"`
	TickMillis int              `json:"tickMillis"`
}

// Default returns the stock rules.
func Default() Rules {
	return Rules{
		Field: Dimensions{Width: config.FieldWidth, Height: config.FieldHeight},
		Player: EntityDefinition{
			Size: Dimensions{Width: config.PlayerWidth, Height: config.PlayerHeight},
		},
		Invader: EntityDefinition{
			Size:  Dimensions{Width: config.InvaderWidth, Height: config.InvaderHeight},
			Speed: config.InvaderSpeed,
		},
		Bullet: EntityDefinition{
			Size:  Dimensions{Width: config.BulletWidth, Height: config.BulletHeight},
			Speed: config.BulletSpeed,
		},
		Wave:       DefaultWave,
		PlayerGap:  config.PlayerBottomY,
		KillReward: config.KillReward,
		StartLives: config.StartLives,
		TickMillis: int(config.TickInterval / time.Millisecond),
	}
}

// TickInterval returns the cadence the host should drive Tick at.
func (r Rules) TickInterval() time.Duration {
	return time.Duration(r.TickMillis) * time.Millisecond
}

// PlayerY returns the fixed row the player moves along.
func (r Rules) PlayerY() float64 {
	return r.Field.Height - r.Player.Size.Height - r.PlayerGap
}

// MaxPlayerX returns the right-most legal x for the player.
func (r Rules) MaxPlayerX() float64 {
	return r.Field.Width - r.Player.Size.Width
}

// LoadRules reads a JSON rules file. Fields missing from the file keep their default value.
func LoadRules(path string) (Rules, error) {
	rules := Default()

	file, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("failed to read rules file: %w", err)
	}
	if err := json.Unmarshal(file, &rules); err != nil {
		return rules, fmt.Errorf("failed to unmarshal rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return rules, err
	}
	return rules, nil
}

// Validate checks the rules describe a playable field.
func (r Rules) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(r.Field.Width > 0 && r.Field.Height > 0, "field must have positive size, got %vx%v", r.Field.Width, r.Field.Height)
	for _, e := range []struct {
		name string
		def  EntityDefinition
	}{{"player", r.Player}, {"invader", r.Invader}, {"bullet", r.Bullet}} {
		check(e.def.Size.Width > 0 && e.def.Size.Height > 0, "%s must have positive size, got %vx%v", e.name, e.def.Size.Width, e.def.Size.Height)
	}
	check(r.Invader.Speed > 0, "invader speed must be positive, got %v", r.Invader.Speed)
	check(r.Bullet.Speed > 0, "bullet speed must be positive, got %v", r.Bullet.Speed)
	check(r.Wave.Rows > 0 && r.Wave.Cols > 0, "wave must have at least one row and column, got %dx%d", r.Wave.Rows, r.Wave.Cols)
	check(r.Wave.Spacing >= 0, "wave spacing must not be negative, got %v", r.Wave.Spacing)
	check(r.PlayerGap >= 0, "player gap must not be negative, got %v", r.PlayerGap)
	check(r.KillReward > 0, "kill reward must be positive, got %d", r.KillReward)
	check(r.StartLives > 0, "start lives must be positive, got %d", r.StartLives)
	check(r.TickMillis > 0, "tick interval must be positive, got %dms", r.TickMillis)
	check(r.Player.Size.Width <= r.Field.Width, "player wider than field")
	check(r.PlayerY() >= 0, "player does not fit the field height")

	if len(problems) == 0 {
		right := r.Wave.OffsetX + float64(r.Wave.Cols)*(r.Invader.Size.Width+r.Wave.Spacing) - r.Wave.Spacing
		bottom := r.Wave.OffsetY + float64(r.Wave.Rows)*(r.Invader.Size.Height+r.Wave.Spacing) - r.Wave.Spacing
		check(r.Wave.OffsetX >= 0 && right <= r.Field.Width, "wave spans x [%v, %v], outside field width %v", r.Wave.OffsetX, right, r.Field.Width)
		check(r.Wave.OffsetY >= 0 && bottom < r.PlayerY(), "wave bottom %v reaches player row %v", bottom, r.PlayerY())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRules, strings.Join(problems, "; "))
	}
	return nil
}

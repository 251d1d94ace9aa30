// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 640
	HUDHeight    = 40 // HUD strip above the play field

	FieldWidth  = 800.0
	FieldHeight = 600.0

	PlayerWidth   = 50.0
	PlayerHeight  = 20.0
	PlayerBottomY = 10.0 // gap between the player and the lower edge

	InvaderWidth  = 40.0
	InvaderHeight = 30.0
	InvaderSpeed  = 1.0 // units per tick, downwards

	BulletWidth  = 5.0
	BulletHeight = 15.0
	BulletSpeed  = 5.0 // units per tick, upwards

	WaveRows    = 5
	WaveCols    = 8
	WaveSpacing = 20.0
	WaveOffsetX = 50.0
	WaveOffsetY = 50.0

	KillReward = 10
	StartLives = 3

	TickInterval = 50 * time.Millisecond

	TextLineHeight = 13
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	FieldColor      = color.RGBA{10, 10, 18, 255}
	PlayerColor     = color.RGBA{50, 205, 50, 255}
	InvaderColor    = color.RGBA{220, 60, 60, 255}
	BulletColor     = color.RGBA{255, 215, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 160}
	ButtonColor     = color.RGBA{70, 130, 180, 220}
	StrokeColor     = color.RGBA{255, 255, 255, 255}
	StrokeWidth     = 2.0

	// StateColors indexed by component.GameState.
	StateColors = []color.RGBA{
		{194, 178, 128, 255}, // start
		{70, 130, 180, 220},  // playing
		{220, 60, 60, 220},   // gameover
		{50, 205, 50, 255},   // win
	}
)

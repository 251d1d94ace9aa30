package defs

import "go-invaders/internal/config"

// WaveDefinition describes the invader grid spawned at round start and after every breach.
type WaveDefinition struct {
	Rows    int     `json:"rows"`
	Cols    int     `json:"cols"`
	Spacing float64 `json:"spacing"` // gap between neighbours, both axes
	OffsetX float64 `json:"offsetX"` // left edge of column 0
	OffsetY float64 `json:"offsetY"` // top edge of row 0
}

// DefaultWave is the 5x8 formation.
var DefaultWave = WaveDefinition{
	Rows:    config.WaveRows,
	Cols:    config.WaveCols,
	Spacing: config.WaveSpacing,
	OffsetX: config.WaveOffsetX,
	OffsetY: config.WaveOffsetY,
}

// Size returns the number of invaders in a full wave.
func (w WaveDefinition) Size() int {
	return w.Rows * w.Cols
}

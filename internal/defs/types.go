// internal/defs/types.go
package defs

// Dimensions is the width and height of a box, in field units.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// EntityDefinition describes one kind of entity: its size and how far it moves per tick.
type EntityDefinition struct {
	Size  Dimensions `json:"size"`
	Speed float64    `json:"speed,omitempty"`
}

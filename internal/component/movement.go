// component/movement.go
package component

// Position is the top-left corner of an entity, in field units.
type Position struct {
	X, Y float64
}

// Size is the width and height of an entity's box.
type Size struct {
	W, H float64
}

// Velocity is the signed vertical speed in units per tick, positive downwards.
type Velocity struct {
	DY float64
}

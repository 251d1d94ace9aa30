package component

// Invader marks a member of the descending grid.
type Invader struct {
	Row, Col int // slot in the formation it was spawned into
}

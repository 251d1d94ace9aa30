// internal/component/player.go
package component

// PlayerStateComponent holds the per-round counters owned by the defender.
type PlayerStateComponent struct {
	Score int
	Lives int
}

// internal/component/projectile.go
package component

// Projectile marks a bullet fired by the player.
type Projectile struct {
	FiredAt uint64 // tick the bullet was spawned on
}

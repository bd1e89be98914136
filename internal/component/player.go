// internal/component/player.go
package component

import "go-mazemaster/pkg/grid"

// Player holds the player-specific state: the gun is aimed
// independently of movement, and both stepping and shooting are gated
// by cooldown timers (seconds remaining).
type Player struct {
	GunDirection  grid.Direction
	MoveCooldown  float64
	ShootCooldown float64
}

// CanMove reports whether the step cooldown has expired.
func (p *Player) CanMove() bool {
	return p.MoveCooldown <= 0
}

// CanShoot reports whether the shoot cooldown has expired.
func (p *Player) CanShoot() bool {
	return p.ShootCooldown <= 0
}

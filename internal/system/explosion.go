// internal/system/explosion.go
package system

import (
	"go-mazemaster/internal/config"
	"go-mazemaster/internal/entity"
)

// ExplosionSystem ages explosion effects and removes finished ones.
type ExplosionSystem struct {
	ecs *entity.ECS
}

func NewExplosionSystem(ecs *entity.ECS) *ExplosionSystem {
	return &ExplosionSystem{ecs: ecs}
}

func (s *ExplosionSystem) Update(deltaTime float64) {
	for id, explosion := range s.ecs.Explosions {
		explosion.Timer += deltaTime
		if explosion.Timer >= explosion.Duration {
			s.ecs.RemoveEntity(id)
		}
	}
}

// Radius returns the current draw radius: the effect grows for the
// first half of its life and shrinks for the second.
func Radius(progress float64) float64 {
	if progress < 0.5 {
		return progress * 2 * config.ExplosionMaxRadius
	}
	return (2 - progress*2) * config.ExplosionMaxRadius
}

// internal/system/player.go
package system

import (
	"go-mazemaster/internal/component"
	"go-mazemaster/internal/config"
	"go-mazemaster/internal/entity"
	"go-mazemaster/internal/event"
	"go-mazemaster/internal/interfaces"
	"go-mazemaster/pkg/grid"
)

// PlayerSystem ticks the player's cooldowns and services movement,
// aiming and firing requests coming from the input layer.
type PlayerSystem struct {
	ecs        *entity.ECS
	game       interfaces.GameContext
	dispatcher *event.Dispatcher
}

func NewPlayerSystem(ecs *entity.ECS, game interfaces.GameContext, dispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, game: game, dispatcher: dispatcher}
}

func (s *PlayerSystem) Update(deltaTime float64) {
	for _, player := range s.ecs.Players {
		if player.MoveCooldown > 0 {
			player.MoveCooldown -= deltaTime
		}
		if player.ShootCooldown > 0 {
			player.ShootCooldown -= deltaTime
		}
	}
}

// TryMove steps the player one cell in the given direction. The step
// is refused while the cooldown runs or when a wall blocks the way;
// there is no wall jumping.
func (s *PlayerSystem) TryMove(dir grid.Direction) bool {
	maze := s.game.Maze()
	for id, player := range s.ecs.Players {
		if !player.CanMove() {
			return false
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			return false
		}
		next := pos.Cell.Add(dir)
		if !maze.IsOpen(next.X, next.Y) {
			return false
		}
		pos.Cell = next
		player.MoveCooldown = config.PlayerStepCooldown
		return true
	}
	return false
}

// Aim rotates the gun without moving.
func (s *PlayerSystem) Aim(dir grid.Direction) {
	for _, player := range s.ecs.Players {
		player.GunDirection = dir
	}
}

// TryShoot fires a laser from the player cell along the gun direction
// when the shoot cooldown has expired.
func (s *PlayerSystem) TryShoot() bool {
	for id, player := range s.ecs.Players {
		if !player.CanShoot() {
			return false
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			return false
		}
		player.ShootCooldown = config.ShootCooldown

		laserID := s.ecs.NewEntity()
		s.ecs.Lasers[laserID] = &component.Laser{
			X:      float64(pos.Cell.X),
			Y:      float64(pos.Cell.Y),
			DX:     float64(player.GunDirection.DX) * config.LaserSpeed,
			DY:     float64(player.GunDirection.DY) * config.LaserSpeed,
			Active: true,
		}
		s.ecs.Renderables[laserID] = &component.Renderable{Color: config.LaserColor}
		s.dispatcher.Dispatch(event.Event{Type: event.LaserFired, Data: laserID})
		return true
	}
	return false
}

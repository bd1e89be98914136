// internal/system/laser.go
package system

import (
	"go-mazemaster/internal/config"
	"go-mazemaster/internal/entity"
	"go-mazemaster/internal/interfaces"
	"go-mazemaster/pkg/grid"
)

// LaserSystem advances lasers through cell space, maintains their
// trails and kills them on wall contact.
type LaserSystem struct {
	ecs  *entity.ECS
	game interfaces.GameContext
}

func NewLaserSystem(ecs *entity.ECS, game interfaces.GameContext) *LaserSystem {
	return &LaserSystem{ecs: ecs, game: game}
}

func (s *LaserSystem) Update(deltaTime float64) {
	maze := s.game.Maze()

	for id, laser := range s.ecs.Lasers {
		if !laser.Active {
			s.ecs.RemoveEntity(id)
			continue
		}

		cell := grid.Cell{X: int(laser.X), Y: int(laser.Y)}
		if n := len(laser.Trail); n == 0 || laser.Trail[n-1] != cell {
			laser.Trail = append(laser.Trail, cell)
		}
		if len(laser.Trail) > config.LaserTrailLength {
			laser.Trail = laser.Trail[1:]
		}

		laser.X += laser.DX * deltaTime
		laser.Y += laser.DY * deltaTime

		if maze.IsWall(int(laser.X), int(laser.Y)) {
			laser.Active = false
		}
	}
}

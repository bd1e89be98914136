// internal/system/adversary.go
package system

import (
	"go-mazemaster/internal/component"
	"go-mazemaster/internal/entity"
	"go-mazemaster/internal/interfaces"
	"go-mazemaster/pkg/grid"
)

// AdversarySystem drives the chase AI. Each adversary accumulates time
// toward its next step; on a step it follows a freshly computed
// shortest path to the player, falling back to a greedy axis-priority
// move when no path exists.
type AdversarySystem struct {
	ecs  *entity.ECS
	game interfaces.GameContext
}

func NewAdversarySystem(ecs *entity.ECS, game interfaces.GameContext) *AdversarySystem {
	return &AdversarySystem{ecs: ecs, game: game}
}

func (s *AdversarySystem) Update(deltaTime float64) {
	playerCell, ok := s.game.PlayerCell()
	if !ok {
		return
	}
	maze := s.game.Maze()

	for id, adversary := range s.ecs.Adversaries {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos || adversary.Speed <= 0 {
			continue
		}

		adversary.MoveTimer += deltaTime
		interval := 1.0 / adversary.Speed
		if adversary.MoveTimer < interval {
			continue
		}
		adversary.MoveTimer = 0

		if next, ok := s.nextPathStep(adversary, pos.Cell, playerCell, maze); ok {
			pos.Cell = next
		} else {
			s.greedyStep(pos, playerCell, maze)
		}
	}
}

// nextPathStep recomputes the shortest path to the player and returns
// the cell to step onto. The path is cached on the component so the
// render layer can show it in debug views.
func (s *AdversarySystem) nextPathStep(adversary *component.Adversary, from, to grid.Cell, maze *grid.Grid) (grid.Cell, bool) {
	path := grid.FindPath(from, to, maze)
	if len(path) < 2 {
		return grid.Cell{}, false
	}
	adversary.Path = path
	adversary.PathIndex = 1
	return path[1], true
}

// greedyStep tries the axis with the larger distance first, then the
// other one, and stays put when both are walled off.
func (s *AdversarySystem) greedyStep(pos *component.Position, target grid.Cell, maze *grid.Grid) {
	dx := target.X - pos.Cell.X
	dy := target.Y - pos.Cell.Y

	var moves []grid.Direction
	horizontal := grid.Right
	if dx < 0 {
		horizontal = grid.Left
	}
	vertical := grid.Down
	if dy < 0 {
		vertical = grid.Up
	}

	if abs(dx) > abs(dy) {
		moves = []grid.Direction{horizontal, vertical}
	} else {
		moves = []grid.Direction{vertical, horizontal}
	}

	for _, d := range moves {
		next := pos.Cell.Add(d)
		if maze.IsOpen(next.X, next.Y) {
			pos.Cell = next
			return
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

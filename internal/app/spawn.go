// internal/app/spawn.go
package app

import (
	"go-mazemaster/internal/component"
	"go-mazemaster/internal/config"
	"go-mazemaster/internal/defs"
	"go-mazemaster/internal/event"
	"go-mazemaster/pkg/grid"
)

// spawnInitialAdversaries places the level's starting pack at random
// open cells, never closer than the minimum Manhattan distance to the
// player.
func (g *Game) spawnInitialAdversaries() {
	count := defs.Tuning.AdversaryCount(g.Level)
	playerCell, _ := g.PlayerCell()

	for i := 0; i < count; i++ {
		for attempt := 0; attempt < config.SpawnAttempts; attempt++ {
			x := 1 + g.Rng.Intn(config.MazeWidth-2)
			y := 1 + g.Rng.Intn(config.MazeHeight-2)
			cell := grid.Cell{X: x, Y: y}
			if g.maze.IsOpen(x, y) && cell.Distance(playerCell) > config.SpawnMinPlayerDistance {
				g.createAdversaryEntity(cell)
				break
			}
		}
	}
}

// SpawnReplacement drops a fresh adversary near the maze entrance
// after a kill, so clearing a path never empties the level.
func (g *Game) SpawnReplacement() {
	playerCell, _ := g.PlayerCell()

	for attempt := 0; attempt < 50; attempt++ {
		x := 1 + g.Rng.Intn(config.RespawnAreaSize)
		y := 1 + g.Rng.Intn(config.RespawnAreaSize)
		cell := grid.Cell{X: x, Y: y}
		if g.maze.IsOpen(x, y) && cell.Distance(playerCell) > config.RespawnMinPlayerDistance {
			g.createAdversaryEntity(cell)
			return
		}
	}
}

func (g *Game) createAdversaryEntity(cell grid.Cell) {
	defID := g.Rng.ChooseWeighted(defs.Tuning.SpawnTable)
	def, ok := defs.AdversaryDefs[defID]
	if !ok {
		// Unknown ID in the spawn table; skip rather than crash.
		return
	}

	speed := defs.Tuning.AdversarySpeed(g.Level) * def.SpeedFactor

	id := g.ECS.NewEntity()
	g.ECS.Adversaries[id] = &component.Adversary{
		DefID: defID,
		Speed: speed,
	}
	g.ECS.Positions[id] = &component.Position{Cell: cell}
	g.ECS.Renderables[id] = &component.Renderable{
		Color: def.Visuals.Color.ToColor(),
		Inset: float32(def.Visuals.Inset),
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.AdversarySpawned, Data: id})
}

// internal/system/adversary_test.go
package system_test

import (
	"math/rand"
	"testing"

	"go-mazemaster/internal/component"
	"go-mazemaster/internal/entity"
	"go-mazemaster/internal/system"
	"go-mazemaster/internal/types"
	"go-mazemaster/pkg/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdversaryWorld(maze *grid.Grid, advCell, playerCell grid.Cell, speed float64) (*entity.ECS, types.EntityID, *system.AdversarySystem) {
	ecs := entity.NewECS()
	id := ecs.NewEntity()
	ecs.Adversaries[id] = &component.Adversary{DefID: "ADV_CHASER", Speed: speed}
	ecs.Positions[id] = &component.Position{Cell: advCell}

	ctx := &stubContext{maze: maze, player: playerCell, hasPlayer: true}
	return ecs, id, system.NewAdversarySystem(ecs, ctx)
}

func TestAdversaryStepsAlongShortestPath(t *testing.T) {
	// Single corridor: the only route to the player is rightward.
	maze := grid.New(9, 3)
	for x := 1; x <= 7; x++ {
		maze.SetWall(x, 1, false)
	}
	ecs, id, s := newAdversaryWorld(maze, grid.Cell{X: 1, Y: 1}, grid.Cell{X: 7, Y: 1}, 1.0)

	s.Update(1.0)
	assert.Equal(t, grid.Cell{X: 2, Y: 1}, ecs.Positions[id].Cell)

	s.Update(1.0)
	assert.Equal(t, grid.Cell{X: 3, Y: 1}, ecs.Positions[id].Cell)
}

func TestAdversaryWaitsForInterval(t *testing.T) {
	maze := openRoom(9, 9)
	ecs, id, s := newAdversaryWorld(maze, grid.Cell{X: 1, Y: 1}, grid.Cell{X: 7, Y: 7}, 0.5)

	// speed 0.5 means one step every two seconds.
	s.Update(1.0)
	assert.Equal(t, grid.Cell{X: 1, Y: 1}, ecs.Positions[id].Cell)

	s.Update(1.0)
	assert.NotEqual(t, grid.Cell{X: 1, Y: 1}, ecs.Positions[id].Cell)
}

func TestAdversaryStepReducesDistance(t *testing.T) {
	maze := grid.Generate(35, 25, rand.New(rand.NewSource(3)))
	player := grid.Exit(35, 25)
	ecs, id, s := newAdversaryWorld(maze, grid.Entrance, player, 1.0)

	before := ecs.Positions[id].Cell
	beforePath := grid.FindPath(before, player, maze)
	require.NotNil(t, beforePath)

	s.Update(1.0)

	after := ecs.Positions[id].Cell
	afterPath := grid.FindPath(after, player, maze)
	require.NotNil(t, afterPath)
	assert.Equal(t, len(beforePath)-1, len(afterPath), "a step must shorten the remaining path by one")
}

func TestAdversaryGreedyFallback(t *testing.T) {
	// The player cell is a wall, so no path exists and the greedy move
	// kicks in: equal axis distances prefer the vertical step.
	maze := openRoom(9, 9)
	ecs, id, s := newAdversaryWorld(maze, grid.Cell{X: 4, Y: 4}, grid.Cell{X: 0, Y: 0}, 1.0)

	s.Update(1.0)
	assert.Equal(t, grid.Cell{X: 4, Y: 3}, ecs.Positions[id].Cell)
}

func TestAdversaryStaysPutWhenWalledIn(t *testing.T) {
	maze := grid.New(5, 5)
	maze.SetWall(2, 2, false) // single open cell
	ecs, id, s := newAdversaryWorld(maze, grid.Cell{X: 2, Y: 2}, grid.Cell{X: 0, Y: 0}, 1.0)

	s.Update(1.0)
	assert.Equal(t, grid.Cell{X: 2, Y: 2}, ecs.Positions[id].Cell)
}

func TestAdversaryIgnoresMissingPlayer(t *testing.T) {
	maze := openRoom(9, 9)
	ecs := entity.NewECS()
	id := ecs.NewEntity()
	ecs.Adversaries[id] = &component.Adversary{Speed: 1.0}
	ecs.Positions[id] = &component.Position{Cell: grid.Cell{X: 4, Y: 4}}

	ctx := &stubContext{maze: maze, hasPlayer: false}
	s := system.NewAdversarySystem(ecs, ctx)

	s.Update(5.0)
	assert.Equal(t, grid.Cell{X: 4, Y: 4}, ecs.Positions[id].Cell)
}

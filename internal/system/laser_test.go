// internal/system/laser_test.go
package system_test

import (
	"testing"

	"go-mazemaster/internal/component"
	"go-mazemaster/internal/config"
	"go-mazemaster/internal/entity"
	"go-mazemaster/internal/system"
	"go-mazemaster/internal/types"
	"go-mazemaster/pkg/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLaserWorld(maze *grid.Grid, laser *component.Laser) (*entity.ECS, types.EntityID, *system.LaserSystem) {
	ecs := entity.NewECS()
	id := ecs.NewEntity()
	ecs.Lasers[id] = laser

	ctx := &stubContext{maze: maze}
	return ecs, id, system.NewLaserSystem(ecs, ctx)
}

func TestLaserAdvances(t *testing.T) {
	maze := openRoom(20, 5)
	ecs, id, s := newLaserWorld(maze, &component.Laser{
		X: 1, Y: 2, DX: config.LaserSpeed, Active: true,
	})

	s.Update(1.0 / 30.0)
	assert.InDelta(t, 2.0, ecs.Lasers[id].X, 1e-9)
	assert.True(t, ecs.Lasers[id].Active)
}

func TestLaserTrailIsCapped(t *testing.T) {
	maze := openRoom(20, 5)
	ecs, id, s := newLaserWorld(maze, &component.Laser{
		X: 1, Y: 2, DX: config.LaserSpeed, Active: true,
	})

	// One cell per tick at 30 ticks per second.
	for i := 0; i < 12; i++ {
		s.Update(1.0 / 30.0)
	}

	laser := ecs.Lasers[id]
	require.NotNil(t, laser)
	assert.Len(t, laser.Trail, config.LaserTrailLength)

	// The trail holds the most recent cells, oldest first.
	last := laser.Trail[len(laser.Trail)-1]
	assert.Equal(t, grid.Cell{X: 12, Y: 2}, last)
}

func TestLaserTrailSkipsDuplicates(t *testing.T) {
	maze := openRoom(20, 5)
	ecs, id, s := newLaserWorld(maze, &component.Laser{
		X: 1, Y: 2, DX: config.LaserSpeed, Active: true,
	})

	// Small steps keep the laser inside one cell across updates.
	s.Update(0.001)
	s.Update(0.001)
	s.Update(0.001)

	assert.Len(t, ecs.Lasers[id].Trail, 1)
}

func TestLaserDiesOnWall(t *testing.T) {
	maze := openRoom(20, 5)
	ecs, id, s := newLaserWorld(maze, &component.Laser{
		X: 18, Y: 2, DX: config.LaserSpeed, Active: true,
	})

	s.Update(1.0 / 30.0) // crosses into the border wall
	assert.False(t, ecs.Lasers[id].Active)

	s.Update(1.0 / 30.0) // inactive lasers are reaped
	assert.NotContains(t, ecs.Lasers, id)
}

// internal/system/player_test.go
package system_test

import (
	"testing"

	"go-mazemaster/internal/component"
	"go-mazemaster/internal/config"
	"go-mazemaster/internal/entity"
	"go-mazemaster/internal/event"
	"go-mazemaster/internal/system"
	"go-mazemaster/internal/types"
	"go-mazemaster/pkg/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubContext satisfies interfaces.GameContext for system tests.
type stubContext struct {
	maze      *grid.Grid
	player    grid.Cell
	hasPlayer bool
}

func (s *stubContext) Maze() *grid.Grid              { return s.maze }
func (s *stubContext) PlayerCell() (grid.Cell, bool) { return s.player, s.hasPlayer }

// openRoom builds a grid whose interior is fully open.
func openRoom(width, height int) *grid.Grid {
	g := grid.New(width, height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			g.SetWall(x, y, false)
		}
	}
	return g
}

type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func newPlayerWorld(cell grid.Cell) (*entity.ECS, types.EntityID, *stubContext, *event.Dispatcher) {
	ecs := entity.NewECS()
	id := ecs.NewEntity()
	ecs.Players[id] = &component.Player{GunDirection: grid.Right}
	ecs.Positions[id] = &component.Position{Cell: cell}

	ctx := &stubContext{maze: openRoom(9, 9), player: cell, hasPlayer: true}
	return ecs, id, ctx, event.NewDispatcher()
}

func TestTryMoveSteps(t *testing.T) {
	ecs, id, ctx, d := newPlayerWorld(grid.Cell{X: 3, Y: 3})
	s := system.NewPlayerSystem(ecs, ctx, d)

	require.True(t, s.TryMove(grid.Right))
	assert.Equal(t, grid.Cell{X: 4, Y: 3}, ecs.Positions[id].Cell)
}

func TestTryMoveBlockedByWall(t *testing.T) {
	ecs, id, ctx, d := newPlayerWorld(grid.Cell{X: 1, Y: 1})
	s := system.NewPlayerSystem(ecs, ctx, d)

	assert.False(t, s.TryMove(grid.Left), "border wall must block")
	assert.Equal(t, grid.Cell{X: 1, Y: 1}, ecs.Positions[id].Cell)
	assert.True(t, ecs.Players[id].CanMove(), "a refused step must not start the cooldown")
}

func TestTryMoveCooldown(t *testing.T) {
	ecs, id, ctx, d := newPlayerWorld(grid.Cell{X: 3, Y: 3})
	s := system.NewPlayerSystem(ecs, ctx, d)

	require.True(t, s.TryMove(grid.Right))
	assert.False(t, s.TryMove(grid.Right), "second step inside the cooldown window")

	s.Update(config.PlayerStepCooldown + 0.01)
	assert.True(t, s.TryMove(grid.Right))
	assert.Equal(t, grid.Cell{X: 5, Y: 3}, ecs.Positions[id].Cell)
}

func TestAimDoesNotMove(t *testing.T) {
	ecs, id, ctx, d := newPlayerWorld(grid.Cell{X: 3, Y: 3})
	s := system.NewPlayerSystem(ecs, ctx, d)

	s.Aim(grid.Up)
	assert.Equal(t, grid.Up, ecs.Players[id].GunDirection)
	assert.Equal(t, grid.Cell{X: 3, Y: 3}, ecs.Positions[id].Cell)
}

func TestTryShoot(t *testing.T) {
	ecs, _, ctx, d := newPlayerWorld(grid.Cell{X: 3, Y: 3})
	recorder := &eventRecorder{}
	d.Subscribe(event.LaserFired, recorder)
	s := system.NewPlayerSystem(ecs, ctx, d)

	s.Aim(grid.Up)
	require.True(t, s.TryShoot())
	require.Len(t, ecs.Lasers, 1)

	for _, laser := range ecs.Lasers {
		assert.Equal(t, 3.0, laser.X)
		assert.Equal(t, 3.0, laser.Y)
		assert.Equal(t, 0.0, laser.DX)
		assert.Equal(t, -config.LaserSpeed, laser.DY)
		assert.True(t, laser.Active)
	}
	assert.Len(t, recorder.events, 1)
}

func TestTryShootCooldown(t *testing.T) {
	ecs, _, ctx, d := newPlayerWorld(grid.Cell{X: 3, Y: 3})
	s := system.NewPlayerSystem(ecs, ctx, d)

	require.True(t, s.TryShoot())
	assert.False(t, s.TryShoot())
	assert.Len(t, ecs.Lasers, 1)

	s.Update(config.ShootCooldown + 0.01)
	assert.True(t, s.TryShoot())
	assert.Len(t, ecs.Lasers, 2)
}

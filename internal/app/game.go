// internal/app/game.go
package app

import (
	"go-mazemaster/internal/component"
	"go-mazemaster/internal/config"
	"go-mazemaster/internal/defs"
	"go-mazemaster/internal/entity"
	"go-mazemaster/internal/event"
	"go-mazemaster/internal/system"
	"go-mazemaster/internal/types"
	"go-mazemaster/internal/utils"
	"go-mazemaster/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
)

// Phase is the outcome of the running level.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
	PhaseLevelComplete
)

// Game holds the simulation: the maze, the component store, the
// systems that advance it, and the level/score counters. Input and
// screen-flow live in the state package; outcomes travel as events.
type Game struct {
	Level int
	Score int

	ECS             *entity.ECS
	PlayerSystem    *system.PlayerSystem
	AdversarySystem *system.AdversarySystem
	LaserSystem     *system.LaserSystem
	CollisionSystem *system.CollisionSystem
	ExplosionSystem *system.ExplosionSystem
	RenderSystem    *system.RenderSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	PlayerID        types.EntityID

	maze     *grid.Grid
	phase    Phase
	gameTime float64
}

// NewGame wires up the systems and generates the first level.
func NewGame(rng *utils.PRNGService) *Game {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	g := &Game{
		Level:           1,
		ECS:             ecs,
		EventDispatcher: dispatcher,
		Rng:             rng,
	}
	g.PlayerSystem = system.NewPlayerSystem(ecs, g, dispatcher)
	g.AdversarySystem = system.NewAdversarySystem(ecs, g)
	g.LaserSystem = system.NewLaserSystem(ecs, g)
	g.CollisionSystem = system.NewCollisionSystem(ecs, dispatcher)
	g.ExplosionSystem = system.NewExplosionSystem(ecs)
	g.RenderSystem = system.NewRenderSystem(ecs)

	listener := &gameEventListener{game: g}
	dispatcher.Subscribe(event.AdversaryKilled, listener)
	dispatcher.Subscribe(event.PlayerCaught, listener)
	dispatcher.Subscribe(event.ExitReached, listener)

	g.ResetLevel()
	return g
}

// Update progresses the simulation by one frame.
func (g *Game) Update(deltaTime float64) {
	if g.phase != PhasePlaying {
		return
	}
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	g.PlayerSystem.Update(deltaTime)
	g.AdversarySystem.Update(deltaTime)
	g.LaserSystem.Update(deltaTime)
	g.CollisionSystem.Update(deltaTime)
	g.ExplosionSystem.Update(deltaTime)
}

// Draw renders the playfield.
func (g *Game) Draw(screen *ebiten.Image) {
	g.RenderSystem.Draw(screen)
}

// Maze implements interfaces.GameContext.
func (g *Game) Maze() *grid.Grid {
	return g.maze
}

// PlayerCell implements interfaces.GameContext.
func (g *Game) PlayerCell() (grid.Cell, bool) {
	pos, ok := g.ECS.Positions[g.PlayerID]
	if !ok {
		return grid.Cell{}, false
	}
	return pos.Cell, true
}

// Phase returns the current level outcome.
func (g *Game) Phase() Phase {
	return g.phase
}

// MovePlayer, AimGun and Shoot forward input-layer requests.
func (g *Game) MovePlayer(dir grid.Direction) bool { return g.PlayerSystem.TryMove(dir) }
func (g *Game) AimGun(dir grid.Direction)          { g.PlayerSystem.Aim(dir) }
func (g *Game) Shoot() bool                        { return g.PlayerSystem.TryShoot() }

// ResetLevel regenerates the maze and repopulates it for the current
// level counter.
func (g *Game) ResetLevel() {
	g.clearEntities()
	g.maze = grid.Generate(config.MazeWidth, config.MazeHeight, g.Rng)
	g.RenderSystem.SetMaze(g.maze)

	g.createPlayerEntity(g.findPlayerStart())
	g.spawnInitialAdversaries()

	g.phase = PhasePlaying
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelStarted, Data: g.Level})
}

// NextLevel advances the counter and rebuilds the level.
func (g *Game) NextLevel() {
	g.Level++
	g.ResetLevel()
}

// Restart starts over from level 1 with a clean score.
func (g *Game) Restart() {
	g.Level = 1
	g.Score = 0
	g.ResetLevel()
}

// AdversaryCount returns the number of live adversaries, for the HUD.
func (g *Game) AdversaryCount() int {
	return len(g.ECS.Adversaries)
}

// GunReady reports whether the player can fire, for the HUD.
func (g *Game) GunReady() bool {
	player, ok := g.ECS.Players[g.PlayerID]
	return ok && player.CanShoot()
}

func (g *Game) clearEntities() {
	for id := range g.ECS.Positions {
		g.ECS.RemoveEntity(id)
	}
	for id := range g.ECS.Lasers {
		g.ECS.RemoveEntity(id)
	}
	for id := range g.ECS.Explosions {
		g.ECS.RemoveEntity(id)
	}
}

// findPlayerStart returns the open cell nearest the grid center,
// searching outwards ring by ring.
func (g *Game) findPlayerStart() grid.Cell {
	centerX, centerY := config.MazeWidth/2, config.MazeHeight/2
	maxRadius := config.MazeWidth
	if config.MazeHeight > maxRadius {
		maxRadius = config.MazeHeight
	}
	for radius := 0; radius <= maxRadius; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if abs(dx) != radius && abs(dy) != radius {
					continue // ring perimeter only
				}
				x, y := centerX+dx, centerY+dy
				if g.maze.IsOpen(x, y) {
					return grid.Cell{X: x, Y: y}
				}
			}
		}
	}
	return grid.Entrance
}

func (g *Game) createPlayerEntity(cell grid.Cell) {
	g.PlayerID = g.ECS.NewEntity()
	g.ECS.Players[g.PlayerID] = &component.Player{GunDirection: grid.Right}
	g.ECS.Positions[g.PlayerID] = &component.Position{Cell: cell}
	g.ECS.Renderables[g.PlayerID] = &component.Renderable{Color: config.PlayerColor, Inset: 2}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// gameEventListener applies collision outcomes to the game.
type gameEventListener struct {
	game *Game
}

func (l *gameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.AdversaryKilled:
		l.game.Score += defs.Tuning.KillScore
		if l.game.Level > 1 {
			l.game.SpawnReplacement()
		}
	case event.PlayerCaught:
		l.game.phase = PhaseGameOver
	case event.ExitReached:
		l.game.Score += defs.Tuning.EscapeScore(l.game.Level)
		l.game.phase = PhaseLevelComplete
	}
}

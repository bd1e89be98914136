// internal/system/render.go
package system

import (
	"go-mazemaster/internal/config"
	"go-mazemaster/internal/entity"
	"go-mazemaster/internal/utils"
	"go-mazemaster/pkg/grid"
	"go-mazemaster/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem draws the whole playfield. The maze itself is static
// for the duration of a level, so it is rendered once into an
// offscreen image and blitted every frame.
type RenderSystem struct {
	ecs       *entity.ECS
	maze      *grid.Grid
	mazeImage *ebiten.Image
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

// SetMaze swaps in a new maze and invalidates the prerendered image.
func (s *RenderSystem) SetMaze(maze *grid.Grid) {
	s.maze = maze
	s.mazeImage = nil
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	if s.maze == nil {
		return
	}
	if s.mazeImage == nil {
		s.renderMazeImage()
	}
	screen.DrawImage(s.mazeImage, nil)

	s.drawAdversaries(screen)
	s.drawPlayer(screen)
	s.drawLasers(screen)
	s.drawExplosions(screen)
}

// renderMazeImage draws walls, floor and the exit cell into the cache.
func (s *RenderSystem) renderMazeImage() {
	img := ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	img.Fill(config.BackgroundColor)

	for y := 0; y < s.maze.Height; y++ {
		for x := 0; x < s.maze.Width; x++ {
			ox, oy := utils.CellOrigin(x, y)
			c := config.FloorColor
			if s.maze.IsWall(x, y) {
				c = config.WallColor
			}
			vector.DrawFilledRect(img, ox, oy, config.CellSize, config.CellSize, c, false)
		}
	}

	exit := grid.Exit(s.maze.Width, s.maze.Height)
	ox, oy := utils.CellOrigin(exit.X, exit.Y)
	vector.DrawFilledRect(img, ox, oy, config.CellSize, config.CellSize, config.ExitColor, false)

	s.mazeImage = img
}

func (s *RenderSystem) drawPlayer(screen *ebiten.Image) {
	for id, player := range s.ecs.Players {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		inset := float32(2)
		if renderable, ok := s.ecs.Renderables[id]; ok {
			inset = renderable.Inset
		}
		ox, oy := utils.CellOrigin(pos.Cell.X, pos.Cell.Y)
		vector.DrawFilledRect(screen, ox+inset, oy+inset,
			config.CellSize-2*inset, config.CellSize-2*inset, config.PlayerColor, false)

		// Gun barrel sticks out past the square in the aim direction.
		cx, cy := utils.CellCenter(pos.Cell.X, pos.Cell.Y)
		length := float32(config.CellSize/2 + 4)
		ex := cx + float32(player.GunDirection.DX)*length
		ey := cy + float32(player.GunDirection.DY)*length
		vector.StrokeLine(screen, cx, cy, ex, ey, 3, config.GunColor, false)
	}
}

func (s *RenderSystem) drawAdversaries(screen *ebiten.Image) {
	for id := range s.ecs.Adversaries {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		c := config.AdversaryColor
		inset := float32(2)
		if renderable, ok := s.ecs.Renderables[id]; ok {
			c = renderable.Color
			inset = renderable.Inset
		}
		ox, oy := utils.CellOrigin(pos.Cell.X, pos.Cell.Y)
		vector.DrawFilledRect(screen, ox+inset, oy+inset,
			config.CellSize-2*inset, config.CellSize-2*inset, c, false)
	}
}

func (s *RenderSystem) drawLasers(screen *ebiten.Image) {
	for _, laser := range s.ecs.Lasers {
		if !laser.Active {
			continue
		}
		for i, cell := range laser.Trail {
			fade := float64(i+1) / float64(len(laser.Trail))
			cx, cy := utils.CellCenter(cell.X, cell.Y)
			vector.DrawFilledRect(screen, cx-1, cy-1, 2, 2, render.FadeColor(config.LaserColor, fade), false)
		}
		cx, cy := utils.CellCenter(int(laser.X), int(laser.Y))
		vector.DrawFilledRect(screen, cx-2, cy-2, 4, 4, config.LaserColor, false)
	}
}

func (s *RenderSystem) drawExplosions(screen *ebiten.Image) {
	for _, explosion := range s.ecs.Explosions {
		radius := Radius(explosion.Progress())
		if radius <= 0 {
			continue
		}
		cx, cy := utils.CellCenter(explosion.Cell.X, explosion.Cell.Y)
		for i, c := range config.ExplosionColors {
			r := radius - float64(i*2)
			if r < 1 {
				r = 1
			}
			vector.DrawFilledCircle(screen, cx, cy, float32(r), c, false)
		}
	}
}

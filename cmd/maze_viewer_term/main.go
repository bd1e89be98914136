// cmd/maze_viewer_term/main.go
//
// Terminal flavor of the maze viewer for headless boxes. R
// regenerates, Esc or q quits.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"go-mazemaster/pkg/grid"

	"github.com/gdamore/tcell/v2"
)

const (
	mazeWidth  = 35
	mazeHeight = 25
)

func main() {
	seed := flag.Int64("seed", 0, "generation seed (0 = time-based)")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	currentSeed := *seed
	if currentSeed == 0 {
		currentSeed = time.Now().UnixNano()
	}
	maze := generate(currentSeed)
	draw(screen, maze)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw(screen, maze)
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
				return
			case ev.Rune() == 'r', ev.Rune() == 'R':
				currentSeed = time.Now().UnixNano()
				maze = generate(currentSeed)
				draw(screen, maze)
			}
		}
	}
}

func generate(seed int64) *grid.Grid {
	rng := rand.New(rand.NewSource(seed))
	return grid.Generate(mazeWidth, mazeHeight, rng)
}

func draw(screen tcell.Screen, maze *grid.Grid) {
	screen.Clear()

	wall := tcell.StyleDefault.Background(tcell.ColorWhite)
	floor := tcell.StyleDefault.Background(tcell.ColorDarkSlateGray)
	exitStyle := tcell.StyleDefault.Background(tcell.ColorGreen)

	exit := grid.Exit(maze.Width, maze.Height)
	for y := 0; y < maze.Height; y++ {
		for x := 0; x < maze.Width; x++ {
			style := floor
			if maze.IsWall(x, y) {
				style = wall
			}
			if (grid.Cell{X: x, Y: y}) == exit {
				style = exitStyle
			}
			// Two columns per cell keeps the aspect ratio square-ish.
			screen.SetContent(x*2, y, ' ', nil, style)
			screen.SetContent(x*2+1, y, ' ', nil, style)
		}
	}
	screen.Show()
}

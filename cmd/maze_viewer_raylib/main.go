// cmd/maze_viewer_raylib/main.go
//
// Standalone viewer for eyeballing generator output without starting
// the game. R regenerates, Esc quits.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"go-mazemaster/pkg/grid"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	cellSize   = 24
	mazeWidth  = 35
	mazeHeight = 25
)

func main() {
	seed := flag.Int64("seed", 0, "generation seed (0 = time-based)")
	flag.Parse()

	screenWidth := int32(mazeWidth * cellSize)
	screenHeight := int32(mazeHeight * cellSize)

	rl.InitWindow(screenWidth, screenHeight, "Maze Viewer | R - Regenerate")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	currentSeed := *seed
	if currentSeed == 0 {
		currentSeed = time.Now().UnixNano()
	}
	maze := generate(currentSeed)

	wallColor := rl.NewColor(255, 255, 255, 255)
	floorColor := rl.NewColor(64, 64, 64, 255)
	exitColor := rl.NewColor(0, 255, 0, 255)
	entranceColor := rl.NewColor(255, 0, 0, 255)

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyR) {
			currentSeed = time.Now().UnixNano()
			maze = generate(currentSeed)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		for y := 0; y < maze.Height; y++ {
			for x := 0; x < maze.Width; x++ {
				c := floorColor
				if maze.IsWall(x, y) {
					c = wallColor
				}
				rl.DrawRectangle(int32(x*cellSize), int32(y*cellSize), cellSize, cellSize, c)
			}
		}

		exit := grid.Exit(maze.Width, maze.Height)
		rl.DrawRectangle(int32(exit.X*cellSize), int32(exit.Y*cellSize), cellSize, cellSize, exitColor)
		rl.DrawRectangle(int32(grid.Entrance.X*cellSize), int32(grid.Entrance.Y*cellSize), cellSize, cellSize, entranceColor)

		rl.DrawText(fmt.Sprintf("seed %d", currentSeed), 8, 4, 16, rl.Yellow)
		rl.EndDrawing()
	}
}

func generate(seed int64) *grid.Grid {
	rng := rand.New(rand.NewSource(seed))
	return grid.Generate(mazeWidth, mazeHeight, rng)
}

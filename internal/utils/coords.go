// internal/utils/coords.go
package utils

import "go-mazemaster/internal/config"

// MazeOffsetX centers the maze horizontally inside the window.
func MazeOffsetX() int {
	return (config.ScreenWidth - config.MazeWidth*config.CellSize) / 2
}

// CellOrigin returns the top-left screen pixel of a cell.
func CellOrigin(x, y int) (float32, float32) {
	return float32(MazeOffsetX() + x*config.CellSize),
		float32(config.MazeOffsetY + y*config.CellSize)
}

// CellCenter returns the screen-space center of a cell.
func CellCenter(x, y int) (float32, float32) {
	ox, oy := CellOrigin(x, y)
	return ox + config.CellSize/2, oy + config.CellSize/2
}

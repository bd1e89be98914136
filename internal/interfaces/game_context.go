// internal/interfaces/game_context.go
package interfaces

import "go-mazemaster/pkg/grid"

// GameContext is the slice of app.Game the systems are allowed to see.
// It keeps the system package out of a dependency cycle with app.
type GameContext interface {
	Maze() *grid.Grid
	PlayerCell() (grid.Cell, bool)
}

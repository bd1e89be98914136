// internal/component/movement.go
package component

import "go-mazemaster/pkg/grid"

// Position — grid cell an entity occupies
type Position struct {
	Cell grid.Cell
}

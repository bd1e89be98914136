// internal/component/laser.go
package component

import "go-mazemaster/pkg/grid"

// Laser is a fired shot travelling in cell space. X/Y are fractional
// cell coordinates; the trail keeps the most recent cells for the
// fading tail effect.
type Laser struct {
	X, Y   float64
	DX, DY float64 // cells per second
	Trail  []grid.Cell
	Active bool
}

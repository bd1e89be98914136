// internal/component/explosion.go
package component

import "go-mazemaster/pkg/grid"

// Explosion is a short grow-then-shrink circle effect left where an
// adversary died.
type Explosion struct {
	Cell     grid.Cell
	Timer    float64
	Duration float64
}

// Progress returns the normalized lifetime in [0, 1].
func (e *Explosion) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := e.Timer / e.Duration
	if p > 1 {
		p = 1
	}
	return p
}

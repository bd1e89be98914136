// internal/component/adversary.go
package component

import "go-mazemaster/pkg/grid"

// Adversary chases the player one step per interval. Speed is in
// steps per second; MoveTimer accumulates toward the next step.
type Adversary struct {
	DefID     string // ID from adversaries.json
	Speed     float64
	MoveTimer float64
	Path      []grid.Cell // last computed chase path, for the next step
	PathIndex int
}

// internal/component/render.go
package component

import "image/color"

// Renderable — draw parameters for an entity
type Renderable struct {
	Color color.RGBA
	Inset float32 // pixels shaved off each side of the cell
}

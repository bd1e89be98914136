// internal/state/context.go
package state

import (
	"go-mazemaster/internal/app"
	"go-mazemaster/internal/ui"

	"golang.org/x/image/font"
)

// Context bundles what every state needs: the shared game instance and
// the prepared font faces. The same game object lives across state
// switches; Restart/NextLevel mutate it in place.
type Context struct {
	Game        *app.Game
	HUD         *ui.HUD
	TitleFace   font.Face
	OverlayFace font.Face
	TextFace    font.Face
}

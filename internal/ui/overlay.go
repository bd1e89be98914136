// internal/ui/overlay.go
package ui

import (
	"image/color"

	"go-mazemaster/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// DrawOverlay dims the frozen playfield behind end-of-level screens.
func DrawOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
}

// DrawCenteredText draws str horizontally centered with its baseline
// at y.
func DrawCenteredText(screen *ebiten.Image, face font.Face, str string, y int, clr color.Color) {
	bounds := text.BoundString(face, str)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	text.Draw(screen, str, face, x, y, clr)
}

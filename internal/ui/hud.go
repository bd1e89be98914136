// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-mazemaster/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUD draws the status strip above the maze: level and score on the
// left, live adversary count and gun state on the right.
type HUD struct {
	face font.Face
}

func NewHUD(face font.Face) *HUD {
	return &HUD{face: face}
}

func (h *HUD) Draw(screen *ebiten.Image, level, score, adversaries int, gunReady bool) {
	text.Draw(screen, fmt.Sprintf("Level: %d", level), h.face, 10, 20, config.TextColor)
	text.Draw(screen, fmt.Sprintf("Score: %d", score), h.face, 10, 40, config.TextColor)

	gun := "Ready"
	if !gunReady {
		gun = "Reloading"
	}
	text.Draw(screen, fmt.Sprintf("Enemies: %d", adversaries), h.face, config.ScreenWidth-140, 20, config.TextColor)
	text.Draw(screen, fmt.Sprintf("Gun: %s", gun), h.face, config.ScreenWidth-140, 40, config.TextColor)
}

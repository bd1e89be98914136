// internal/state/game_over_state.go
package state

import (
	"fmt"

	"go-mazemaster/internal/config"
	"go-mazemaster/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState shows the frozen field behind a dim overlay until the
// player restarts or returns to the menu.
type GameOverState struct {
	sm  *StateMachine
	ctx *Context
}

func NewGameOverState(sm *StateMachine, ctx *Context) *GameOverState {
	return &GameOverState{sm: sm, ctx: ctx}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.ctx.Game.Restart()
		s.sm.SetState(NewPlayingState(s.sm, s.ctx))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	game := s.ctx.Game
	game.Draw(screen)
	s.ctx.HUD.Draw(screen, game.Level, game.Score, game.AdversaryCount(), game.GunReady())

	ui.DrawOverlay(screen)
	ui.DrawCenteredText(screen, s.ctx.OverlayFace, "GAME OVER", 270, config.GameOverColor)
	ui.DrawCenteredText(screen, s.ctx.TextFace, fmt.Sprintf("Final Score: %d", game.Score), 310, config.TextColor)
	ui.DrawCenteredText(screen, s.ctx.TextFace, "Press R to Restart or ESC to Menu", 345, config.TextDimColor)
}

func (s *GameOverState) Exit() {}

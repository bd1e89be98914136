// internal/state/level_complete_state.go
package state

import (
	"fmt"

	"go-mazemaster/internal/config"
	"go-mazemaster/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// LevelCompleteState celebrates the escape and waits for Space to
// start the next, harder level.
type LevelCompleteState struct {
	sm  *StateMachine
	ctx *Context
}

func NewLevelCompleteState(sm *StateMachine, ctx *Context) *LevelCompleteState {
	return &LevelCompleteState{sm: sm, ctx: ctx}
}

func (s *LevelCompleteState) Enter() {}

func (s *LevelCompleteState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.ctx.Game.NextLevel()
		s.sm.SetState(NewPlayingState(s.sm, s.ctx))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *LevelCompleteState) Draw(screen *ebiten.Image) {
	game := s.ctx.Game
	game.Draw(screen)
	s.ctx.HUD.Draw(screen, game.Level, game.Score, game.AdversaryCount(), game.GunReady())

	ui.DrawOverlay(screen)
	ui.DrawCenteredText(screen, s.ctx.OverlayFace, "LEVEL COMPLETE!", 270, config.CompleteColor)
	ui.DrawCenteredText(screen, s.ctx.TextFace, fmt.Sprintf("Score: %d", game.Score), 310, config.TextColor)
	ui.DrawCenteredText(screen, s.ctx.TextFace, "Press SPACE for Next Level", 345, config.TextDimColor)
}

func (s *LevelCompleteState) Exit() {}

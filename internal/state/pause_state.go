// internal/state/pause_state.go
package state

import (
	"go-mazemaster/internal/config"
	"go-mazemaster/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the previous state and draws it dimmed.
type PauseState struct {
	sm       *StateMachine
	ctx      *Context
	previous State
}

func NewPauseState(sm *StateMachine, ctx *Context, previous State) *PauseState {
	return &PauseState{sm: sm, ctx: ctx, previous: previous}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previous != nil {
		s.previous.Draw(screen)
	}
	ui.DrawOverlay(screen)
	ui.DrawCenteredText(screen, s.ctx.OverlayFace, "PAUSED", config.ScreenHeight/2, config.TextColor)
}

func (s *PauseState) Exit() {}

// internal/state/menu_state.go
package state

import (
	"go-mazemaster/internal/config"
	"go-mazemaster/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState shows the title and key bindings until Space is pressed.
type MenuState struct {
	sm  *StateMachine
	ctx *Context
}

var menuInstructions = []string{
	"Arrow Keys: Hold to move continuously",
	"WASD Keys: Rotate gun (W=up, S=down, A=left, D=right)",
	"SPACE: Shoot laser",
	"Escape mazes, avoid orange enemies!",
	"Shoot enemies to clear your path!",
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	return &MenuState{sm: sm, ctx: ctx}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.ctx.Game.Restart()
		m.sm.SetState(NewPlayingState(m.sm, m.ctx))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCenteredText(screen, m.ctx.TitleFace, "MAZEMASTER", 200, config.TextColor)
	ui.DrawCenteredText(screen, m.ctx.TextFace, "Press SPACE to Start", 250, config.TextDimColor)
	for i, line := range menuInstructions {
		ui.DrawCenteredText(screen, m.ctx.TextFace, line, 320+i*30, config.TextColor)
	}
}

func (m *MenuState) Exit() {}

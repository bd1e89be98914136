// internal/state/playing_state.go
package state

import (
	"go-mazemaster/internal/app"
	"go-mazemaster/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PlayingState polls the keyboard, advances the simulation and watches
// for a level outcome. Movement and firing react to held keys; the
// cooldowns inside the game gate the repeat rate.
type PlayingState struct {
	sm  *StateMachine
	ctx *Context
}

func NewPlayingState(sm *StateMachine, ctx *Context) *PlayingState {
	return &PlayingState{sm: sm, ctx: ctx}
}

func (s *PlayingState) Enter() {}

func (s *PlayingState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(NewPauseState(s.sm, s.ctx, s))
		return
	}

	s.handleInput()
	s.ctx.Game.Update(deltaTime)

	switch s.ctx.Game.Phase() {
	case app.PhaseGameOver:
		s.sm.SetState(NewGameOverState(s.sm, s.ctx))
	case app.PhaseLevelComplete:
		s.sm.SetState(NewLevelCompleteState(s.sm, s.ctx))
	}
}

func (s *PlayingState) handleInput() {
	game := s.ctx.Game

	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		game.MovePlayer(grid.Up)
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		game.MovePlayer(grid.Down)
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		game.MovePlayer(grid.Left)
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		game.MovePlayer(grid.Right)
	}

	switch {
	case ebiten.IsKeyPressed(ebiten.KeyA):
		game.AimGun(grid.Left)
	case ebiten.IsKeyPressed(ebiten.KeyD):
		game.AimGun(grid.Right)
	case ebiten.IsKeyPressed(ebiten.KeyW):
		game.AimGun(grid.Up)
	case ebiten.IsKeyPressed(ebiten.KeyS):
		game.AimGun(grid.Down)
	}

	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		game.Shoot()
	}
}

func (s *PlayingState) Draw(screen *ebiten.Image) {
	game := s.ctx.Game
	game.Draw(screen)
	s.ctx.HUD.Draw(screen, game.Level, game.Score, game.AdversaryCount(), game.GunReady())
}

func (s *PlayingState) Exit() {}

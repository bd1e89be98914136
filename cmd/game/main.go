// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-mazemaster/internal/app"
	"go-mazemaster/internal/assets"
	"go-mazemaster/internal/audio"
	"go-mazemaster/internal/config"
	"go-mazemaster/internal/defs"
	"go-mazemaster/internal/event"
	"go-mazemaster/internal/state"
	"go-mazemaster/internal/ui"
	"go-mazemaster/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// AppGame adapts the state machine to ebiten's Game interface.
type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var (
		seed    = flag.Int64("seed", 0, "maze generation seed (0 = time-based)")
		defsDir = flag.String("defs", "assets/defs", "definitions directory")
		mute    = flag.Bool("mute", false, "disable audio")
		pprof   = flag.Bool("pprof", false, "serve pprof on localhost:6060")
	)
	flag.Parse()

	if *pprof {
		go func() {
			log.Println(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	if err := defs.LoadAll(*defsDir); err != nil {
		log.Printf("using built-in definitions: %v", err)
	}

	fonts, err := assets.NewFontManager()
	if err != nil {
		log.Fatal(err)
	}
	titleFace, err := fonts.Face(config.TitleFontSize)
	if err != nil {
		log.Fatal(err)
	}
	overlayFace, err := fonts.Face(config.OverlayFontSize)
	if err != nil {
		log.Fatal(err)
	}
	textFace, err := fonts.Face(config.HUDFontSize)
	if err != nil {
		log.Fatal(err)
	}

	rng := utils.NewPRNGService(*seed)
	game := app.NewGame(rng)

	if !*mute {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer sound.Cleanup()
			for _, t := range []event.EventType{
				event.LaserFired, event.AdversaryKilled, event.ExitReached, event.PlayerCaught,
			} {
				game.EventDispatcher.Subscribe(t, sound)
			}
		}
	}

	ctx := &state.Context{
		Game:        game,
		HUD:         ui.NewHUD(textFace),
		TitleFace:   titleFace,
		OverlayFace: overlayFace,
		TextFace:    textFace,
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, ctx))

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("MazeMaster")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}

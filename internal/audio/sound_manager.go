// internal/audio/sound_manager.go
package audio

import (
	"sync"
	"time"

	"go-mazemaster/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager synthesizes the retro sound effects and plays them
// through a shared mixer. It subscribes to the game's dispatcher, so
// gameplay code never calls it directly. When the speaker cannot be
// opened the manager stays silent instead of failing the game.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything. The speaker itself stays open; beep has
// no close.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
}

// OnEvent implements event.Listener, mapping game events to effects.
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.LaserFired:
		sm.play(NewEnvelope(
			NewOscillator(880, 80*time.Millisecond, WaveSquare, sampleRate),
			80*time.Millisecond, 2*time.Millisecond, 40*time.Millisecond, sampleRate))
	case event.AdversaryKilled:
		sm.play(NewEnvelope(
			NewOscillator(0, 220*time.Millisecond, WaveNoise, sampleRate),
			220*time.Millisecond, 5*time.Millisecond, 180*time.Millisecond, sampleRate))
	case event.ExitReached:
		sm.play(beep.Seq(
			blip(523.25, 90*time.Millisecond),
			blip(659.25, 90*time.Millisecond),
			blip(783.99, 160*time.Millisecond),
		))
	case event.PlayerCaught:
		sm.play(beep.Seq(
			blip(392.00, 140*time.Millisecond),
			blip(311.13, 140*time.Millisecond),
			blip(233.08, 260*time.Millisecond),
		))
	}
}

// blip is a short enveloped square tone, the building block of jingles.
func blip(freq float64, duration time.Duration) beep.Streamer {
	return NewEnvelope(
		NewOscillator(freq, duration, WaveSquare, sampleRate),
		duration, 3*time.Millisecond, duration/3, sampleRate)
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	initialized := sm.initialized
	sm.mu.Unlock()
	if !initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

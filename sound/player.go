package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/tetris"
)

// Player plays effects on the default audio device. A Player that failed to
// initialize, or was never initialized, ignores every request.
type Player struct {
	mu          sync.Mutex
	volume      float64
	initialized bool
	played      int
}

// NewPlayer creates a player with a linear volume between 0 and 1.
func NewPlayer(volume float64) *Player {
	return &Player{volume: volume}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("sound: open speaker: %w", err)
	}
	p.initialized = true
	return nil
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Play starts effect without waiting for it to finish.
func (p *Player) Play(effect Effect, cleared int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Build(effect, cleared, p.volume)
	if s == nil {
		return
	}
	speaker.Play(s)
	p.played++
}

// Played returns the number of effects handed to the device.
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Listener adapts the player to engine notifications.
func (p *Player) Listener() tetris.Listener {
	return func(_, _ tetris.State, out tetris.Outcome) {
		if effect := EffectFor(out); effect != EffectNone {
			p.Play(effect, out.Cleared)
		}
	}
}

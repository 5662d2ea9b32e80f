// Package sound synthesizes the game's sound effects with beep and plays them
// in response to engine events.
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/plus3/blockfall/tetris"
)

const sampleRate = beep.SampleRate(44100)

// Effect identifies one sound.
type Effect uint8

const (
	EffectNone Effect = iota
	EffectRotate
	EffectSettle
	EffectLines
	EffectGameOver
	EffectPause
	EffectResume
)

type note struct {
	freq     float64
	duration time.Duration
}

var (
	lineNotes     = []float64{523.25, 659.25, 783.99, 1046.50}
	gameOverNotes = []note{{392, 120 * time.Millisecond}, {329.63, 120 * time.Millisecond}, {261.63, 120 * time.Millisecond}, {196, 240 * time.Millisecond}}
)

// EffectFor picks the sound for a transition. When several events happen at
// once the most significant one wins.
func EffectFor(out tetris.Outcome) Effect {
	switch {
	case out.Has(tetris.EventGameOver):
		return EffectGameOver
	case out.Has(tetris.EventLinesCleared):
		return EffectLines
	case out.Has(tetris.EventSettled):
		return EffectSettle
	case out.Has(tetris.EventPaused):
		return EffectPause
	case out.Has(tetris.EventResumed):
		return EffectResume
	case out.Has(tetris.EventRotated):
		return EffectRotate
	}
	return EffectNone
}

// Build returns a finite streamer for effect. cleared selects how many notes
// a line clear plays.
func Build(effect Effect, cleared int, volume float64) beep.Streamer {
	var notes []note
	switch effect {
	case EffectRotate:
		notes = []note{{880, 25 * time.Millisecond}}
	case EffectSettle:
		notes = []note{{220, 40 * time.Millisecond}}
	case EffectLines:
		cleared = max(1, min(cleared, len(lineNotes)))
		for _, f := range lineNotes[:cleared] {
			notes = append(notes, note{f, 70 * time.Millisecond})
		}
	case EffectGameOver:
		notes = gameOverNotes
	case EffectPause:
		notes = []note{{440, 60 * time.Millisecond}}
	case EffectResume:
		notes = []note{{660, 60 * time.Millisecond}}
	default:
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, tone(n.freq, n.duration))
	}
	return withVolume(beep.Seq(parts...), volume)
}

func tone(freq float64, duration time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(duration))
	}
	return beep.Take(sampleRate.N(duration), sine)
}

// withVolume scales s linearly; zero volume is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Duration returns how long Build(effect, cleared, ...) plays.
func Duration(effect Effect, cleared int) time.Duration {
	s := Build(effect, cleared, 1)
	if s == nil {
		return 0
	}

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok || n == 0 {
			break
		}
	}
	return sampleRate.D(total)
}

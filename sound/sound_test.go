package sound_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/sound"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestEffectFor(t *testing.T) {
	tests := []struct {
		name   string
		events tetris.Event
		want   sound.Effect
	}{
		{"nothing", 0, sound.EffectNone},
		{"move is silent", tetris.EventMoved, sound.EffectNone},
		{"rotate", tetris.EventRotated, sound.EffectRotate},
		{"settle", tetris.EventSettled, sound.EffectSettle},
		{"lines beat settle", tetris.EventSettled | tetris.EventLinesCleared, sound.EffectLines},
		{"game over beats everything", tetris.EventSettled | tetris.EventLinesCleared | tetris.EventGameOver, sound.EffectGameOver},
		{"pause", tetris.EventPaused, sound.EffectPause},
		{"resume", tetris.EventResumed, sound.EffectResume},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sound.EffectFor(tetris.Outcome{Events: tt.events}))
		})
	}
}

func TestDuration(t *testing.T) {
	tolerance := float64(time.Millisecond)

	assert.InDelta(t, float64(40*time.Millisecond), float64(sound.Duration(sound.EffectSettle, 0)), tolerance)
	assert.InDelta(t, float64(70*time.Millisecond), float64(sound.Duration(sound.EffectLines, 1)), tolerance)
	assert.InDelta(t, float64(210*time.Millisecond), float64(sound.Duration(sound.EffectLines, 3)), tolerance)
	assert.InDelta(t, float64(280*time.Millisecond), float64(sound.Duration(sound.EffectLines, 9)), tolerance, "capped at four notes")
	assert.InDelta(t, float64(600*time.Millisecond), float64(sound.Duration(sound.EffectGameOver, 0)), tolerance)
	assert.Equal(t, time.Duration(0), sound.Duration(sound.EffectNone, 0))
}

func TestBuildSilentVolume(t *testing.T) {
	s := sound.Build(sound.EffectSettle, 0, 0)
	buf := make([][2]float64, 256)
	n, ok := s.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, len(buf), n)
	for _, sample := range buf[:n] {
		assert.Zero(t, sample[0])
		assert.Zero(t, sample[1])
	}
}

func TestBuildProducesSignal(t *testing.T) {
	s := sound.Build(sound.EffectResume, 0, 1)
	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)

	var peak float64
	for _, sample := range buf[:n] {
		peak = max(peak, sample[0])
	}
	assert.Greater(t, peak, 0.5)
	assert.LessOrEqual(t, peak, 1.0)
}

func TestPlayerWithoutDevice(t *testing.T) {
	player := sound.NewPlayer(0.5)
	listener := player.Listener()

	listener(tetris.State{}, tetris.State{}, tetris.Outcome{Events: tetris.EventGameOver})
	player.Play(sound.EffectSettle, 0)
	player.Close()

	assert.Equal(t, 0, player.Played(), "an uninitialized player stays silent")
}

// Package audio plays the game's sound cues. Everything is synthesized; a
// machine without an audio device just runs silent.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const sampleRate = beep.SampleRate(44100)

// CoinCue is a quick rising two-note chime.
func CoinCue(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		NewTone(rate, 988, 60*time.Millisecond, WaveSquare),
		NewTone(rate, 1319, 140*time.Millisecond, WaveSquare),
	)
}

// HitCue is a short low buzz.
func HitCue(rate beep.SampleRate) beep.Streamer {
	return NewTone(rate, 110, 180*time.Millisecond, WaveSquare)
}

// FinishCue is a rising arpeggio ending on a held sine.
func FinishCue(rate beep.SampleRate) beep.Streamer {
	held := beep.Silence(rate.N(300 * time.Millisecond))
	if sine, err := generators.SineTone(rate, 1047); err == nil {
		held = beep.Take(rate.N(300*time.Millisecond), sine)
	}
	return beep.Seq(
		NewTone(rate, 523, 90*time.Millisecond, WaveTriangle),
		NewTone(rate, 659, 90*time.Millisecond, WaveTriangle),
		NewTone(rate, 784, 90*time.Millisecond, WaveTriangle),
		held,
	)
}

// SoundManager mixes cues onto the speaker. All Play methods are no-ops until
// Initialize succeeds, so callers never have to check.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a manager. volume is a gain exponent in base 2:
// 0 is unchanged, -1 is half amplitude.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the audio device. Calling it again is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return errors.Wrap(err, "init speaker")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	v := &effects.Volume{Streamer: s, Base: 2, Volume: sm.volume}
	speaker.Lock()
	sm.mixer.Add(v)
	speaker.Unlock()
}

func (sm *SoundManager) PlayCoin()   { sm.play(CoinCue(sampleRate)) }
func (sm *SoundManager) PlayHit()    { sm.play(HitCue(sampleRate)) }
func (sm *SoundManager) PlayFinish() { sm.play(FinishCue(sampleRate)) }

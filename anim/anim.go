// Package anim drives looping sprite animations from per-update ticks.
package anim

const (
	DefaultStep  = 0.5 // timer units added per update
	DefaultDelay = 5.0 // timer units per frame advance
)

// Animator holds the frame cursor for one looping animation.
// With the defaults the frame advances once every 10 updates.
type Animator struct {
	Index int
	Step  float64
	Delay float64
	timer float64
}

func New(step, delay float64) Animator {
	return Animator{Step: step, Delay: delay}
}

// Advance accumulates one update's worth of time and moves to the next frame
// once Delay is reached, wrapping at frameCount.
func (a *Animator) Advance(frameCount int) {
	a.timer += a.Step
	if a.timer < a.Delay {
		return
	}
	a.timer = 0
	if frameCount <= 0 {
		a.Index = 0
		return
	}
	a.Index = (a.Index + 1) % frameCount
}

// Reset rewinds to the first frame. The timer keeps running.
func (a *Animator) Reset() {
	a.Index = 0
}

// UpdatesPerFrame is how many Advance calls it takes to move one frame.
func (a Animator) UpdatesPerFrame() int {
	if a.Step <= 0 {
		return 0
	}
	n := int(a.Delay / a.Step)
	if float64(n)*a.Step < a.Delay {
		n++
	}
	return n
}

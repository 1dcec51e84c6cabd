package entity

import (
	"fmt"

	"github.com/pkg/errors"

	"samu/anim"
	"samu/asset"
	"samu/camera"
	"samu/geom"
	"samu/render"
)

// Axis is the line an enemy patrols along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis accepts the names produced by Axis.String.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "horizontal", "":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return Horizontal, errors.Errorf("unknown axis %q", s)
}

// Enemy walks back and forth between Min and Max along its axis.
type Enemy struct {
	Base
	Axis      Axis
	Speed     float64
	Direction int // +1 right/down, -1 left/up
	Min, Max  float64

	Anim anim.Animator
}

// NewEnemy creates a patrol between lo and hi. step and delay drive the walk
// animation the same way they drive the player's.
func NewEnemy(rect geom.Rect, axis Axis, speed, lo, hi, step, delay float64) *Enemy {
	return &Enemy{
		Base:      Base{Rect: rect},
		Axis:      axis,
		Speed:     speed,
		Direction: 1,
		Min:       lo,
		Max:       hi,
		Anim:      anim.New(step, delay),
	}
}

// edges returns the near and far edge of the rect along the patrol axis.
func (e *Enemy) edges() (lo, hi float64) {
	if e.Axis == Vertical {
		return e.Rect.Top(), e.Rect.Bottom()
	}
	return e.Rect.Left(), e.Rect.Right()
}

// Update advances the patrol by one step. Once the near edge passes Min the
// enemy heads forward; once the far edge passes Max it heads back. Turning
// toward the inside keeps an enemy that starts out of bounds from jittering.
func (e *Enemy) Update() {
	step := e.Speed * float64(e.Direction)
	if e.Axis == Vertical {
		e.Rect.Y += step
	} else {
		e.Rect.X += step
	}

	lo, hi := e.edges()
	switch {
	case lo < e.Min:
		e.Direction = 1
	case hi > e.Max:
		e.Direction = -1
	}

	e.Anim.Advance(len(asset.EnemyWalk))
}

func (e *Enemy) CheckCollision(target geom.Rect) bool {
	return geom.Intersects(e.Rect, target)
}

// Draw mirrors the sprite while walking left.
func (e *Enemy) Draw(s render.Surface, cam *camera.Camera) {
	frame := asset.EnemyWalk[e.Anim.Index]
	s.DrawSprite(frame, cam.Apply(e.Rect).Pos(), e.Direction < 0, render.StyleEnemy)
}

// Package player implements the controllable character: input-driven
// movement under gravity, platform collision, the animation state machine
// and the knockback that overrides all of it while active.
package player

import (
	"fmt"

	"samu/anim"
	"samu/asset"
	"samu/camera"
	"samu/entity"
	"samu/geom"
	"samu/input"
	"samu/render"
)

// State selects the animation loop and whether input is honored.
type State int

const (
	Static State = iota
	Walk
	Jump
	Hit
)

func (s State) String() string {
	switch s {
	case Static:
		return "static"
	case Walk:
		return "walk"
	case Jump:
		return "jump"
	case Hit:
		return "hit"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Facing int

const (
	Right Facing = iota
	Left
)

func (f Facing) String() string {
	if f == Left {
		return "left"
	}
	return "right"
}

// animations is shared by every player; entries point at the asset tables.
var animations = map[State]asset.Frames{
	Static: asset.PlayerStatic,
	Walk:   asset.PlayerWalk,
	Jump:   asset.PlayerJump,
	Hit:    asset.PlayerHit,
}

// FrameCount is the length of the animation loop for s.
func FrameCount(s State) int {
	return len(animations[s])
}

// Settings are the tunables of a player. Units are world units per update
// (speeds) and per update squared (gravity); bounce duration is in seconds.
type Settings struct {
	Speed       float64
	JumpImpulse float64
	Gravity     float64

	WorldWidth  float64
	WorldHeight float64

	AnimStep  float64
	AnimDelay float64

	BounceDistance float64
	BounceHeight   float64
	BounceDuration float64
}

// DefaultSettings is the stock tuning used by the built-in level.
func DefaultSettings(worldWidth, worldHeight float64) Settings {
	return Settings{
		Speed:          5,
		JumpImpulse:    15,
		Gravity:        0.8,
		WorldWidth:     worldWidth,
		WorldHeight:    worldHeight,
		AnimStep:       anim.DefaultStep,
		AnimDelay:      anim.DefaultDelay,
		BounceDistance: 500,
		BounceHeight:   200,
		BounceDuration: 1.0,
	}
}

type Player struct {
	Rect     geom.Rect
	VX, VY   float64
	OnGround bool

	State  State
	Facing Facing
	Anim   anim.Animator
	Bounce *Bounce

	settings Settings
}

func New(rect geom.Rect, settings Settings) *Player {
	return &Player{
		Rect:     rect,
		State:    Static,
		Facing:   Right,
		Anim:     anim.New(settings.AnimStep, settings.AnimDelay),
		Bounce:   NewBounce(settings.BounceDistance, settings.BounceHeight, settings.BounceDuration),
		settings: settings,
	}
}

// Knockback starts (or restarts) the bounce from the current position.
func (p *Player) Knockback() {
	p.Bounce.Start(&p.Rect)
}

func (p *Player) setState(s State) {
	if s != p.State {
		p.State = s
		p.Anim.Reset()
	}
}

// Update runs one simulation tick. dt (seconds) only drives the knockback;
// walking, jumping and gravity are per tick.
func (p *Player) Update(dt float64, in input.State, platforms []*entity.Platform) {
	if p.Bounce.IsActive() {
		p.Bounce.Update(dt, &p.Rect)
		p.setState(Hit)
		p.Facing = Right
		p.clampToWorld()
	} else {
		p.move(in, platforms)
	}

	p.Anim.Advance(FrameCount(p.State))
}

func (p *Player) move(in input.State, platforms []*entity.Platform) {
	s := p.settings

	switch {
	case in.Left:
		p.VX = -s.Speed
		p.Facing = Left
	case in.Right:
		p.VX = s.Speed
		p.Facing = Right
	default:
		p.VX = 0
	}

	p.Rect.X += p.VX
	p.Rect.X = geom.Clamp(p.Rect.X, 0, s.WorldWidth-p.Rect.Width)

	// Horizontal pass: the first platform hit decides the correction.
	if p.VX != 0 {
		for _, pl := range platforms {
			if !geom.Intersects(p.Rect, pl.Rect) {
				continue
			}
			if p.VX > 0 {
				p.Rect.SetRight(pl.Rect.Left())
			} else {
				p.Rect.SetLeft(pl.Rect.Right())
			}
			break
		}
	}

	if in.Jump && p.OnGround {
		p.VY = -s.JumpImpulse
	}

	p.VY += s.Gravity
	p.Rect.Y += p.VY

	// Vertical pass. Landing or bumping zeroes VY, so later platforms that
	// still overlap leave the rect alone.
	p.OnGround = false
	for _, pl := range platforms {
		if !geom.Intersects(p.Rect, pl.Rect) {
			continue
		}
		if p.VY > 0 {
			p.Rect.SetBottom(pl.Rect.Top())
			p.VY = 0
			p.OnGround = true
		} else if p.VY < 0 {
			p.Rect.SetTop(pl.Rect.Bottom())
			p.VY = 0
		}
	}

	if p.Rect.Bottom() > s.WorldHeight {
		p.Rect.SetBottom(s.WorldHeight)
		p.VY = 0
		p.OnGround = true
	}
	p.clampToWorld()

	switch {
	case !p.OnGround:
		p.setState(Jump)
	case p.VX != 0:
		p.setState(Walk)
	default:
		p.setState(Static)
	}
}

// clampToWorld keeps the rect inside the world. Hitting the ceiling kills
// upward speed.
func (p *Player) clampToWorld() {
	s := p.settings
	if p.Rect.Top() < 0 && p.VY < 0 {
		p.VY = 0
	}
	p.Rect = geom.ClampToBounds(p.Rect, 0, s.WorldWidth, 0, s.WorldHeight)
}

// Frame is the sprite for the current state and frame index.
func (p *Player) Frame() *asset.Sprite {
	frames := animations[p.State]
	return frames[p.Anim.Index%len(frames)]
}

// Draw renders the current frame, mirrored when facing left.
func (p *Player) Draw(s render.Surface, cam *camera.Camera) {
	style := render.StylePlayer
	if p.State == Hit {
		style = render.StylePlayerHit
	}
	s.DrawSprite(p.Frame(), cam.Apply(p.Rect).Pos(), p.Facing == Left, style)
}

package player

import "samu/geom"

// Bounce is a knockback: for Duration seconds it moves the body along a
// parabola, Distance units sideways and peaking Height units up halfway.
// It does not hold on to the body; callers pass it to Start and Update.
type Bounce struct {
	Distance float64
	Height   float64
	Duration float64

	elapsed   float64
	active    bool
	start     geom.Vec2
	direction float64
}

func NewBounce(distance, height, duration float64) *Bounce {
	return &Bounce{Distance: distance, Height: height, Duration: duration}
}

// Start (re)launches the knockback from body's current position. Calling it
// while active restarts the arc from wherever the body is now.
// The knockback always heads toward decreasing x.
func (b *Bounce) Start(body *geom.Rect) {
	b.start = body.Pos()
	b.elapsed = 0
	b.active = true
	b.direction = -1
}

// Update advances the arc by dt seconds and moves body onto it. Once the arc
// completes the effect deactivates and leaves body where the last step put it.
func (b *Bounce) Update(dt float64, body *geom.Rect) {
	if !b.active {
		return
	}

	b.elapsed += dt
	t := b.elapsed / b.Duration
	if t >= 1 {
		b.active = false
		return
	}

	offset := b.Offset(t)
	body.X = b.start.X + offset.X
	body.Y = b.start.Y - offset.Y
}

// Offset is the displacement at progress t in [0,1): X along the knockback
// direction, Y upward.
func (b *Bounce) Offset(t float64) geom.Vec2 {
	return geom.Vec2{
		X: b.direction * b.Distance * t,
		Y: -4*b.Height*(t-0.5)*(t-0.5) + b.Height,
	}
}

func (b *Bounce) IsActive() bool { return b.active }


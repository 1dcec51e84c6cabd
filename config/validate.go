package config

import (
	"github.com/pkg/errors"
)

// Validate rejects settings the simulation cannot run with. It does not
// second-guess level design: overlapping platforms or unreachable coins are
// accepted.
func (c *Config) Validate() error {
	if c.Display.FPS <= 0 {
		return errors.Errorf("display.fps must be positive, got %d", c.Display.FPS)
	}
	if c.Display.ViewWidth <= 0 || c.Display.ViewHeight <= 0 {
		return errors.Errorf("display view must be positive, got %gx%g", c.Display.ViewWidth, c.Display.ViewHeight)
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return errors.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return errors.Errorf("player size must be positive, got %gx%g", c.Player.Width, c.Player.Height)
	}
	if c.Physics.MaxDelta <= 0 {
		return errors.Errorf("physics.max_delta must be positive, got %g", c.Physics.MaxDelta)
	}
	if c.Animation.Step <= 0 || c.Animation.Delay <= 0 {
		return errors.New("animation step and delay must be positive")
	}
	if c.Bounce.Duration <= 0 {
		return errors.Errorf("bounce.duration must be positive, got %g", c.Bounce.Duration)
	}
	if c.Input.KeyTimeoutMS <= 0 {
		return errors.Errorf("input.key_timeout_ms must be positive, got %d", c.Input.KeyTimeoutMS)
	}
	return errors.Wrap(c.Level.validate(), "level")
}

func (r Rect) validate(what string, i int) error {
	if r.Width < 0 || r.Height < 0 {
		return errors.Errorf("%s[%d]: negative size %gx%g", what, i, r.Width, r.Height)
	}
	return nil
}

func (l *Level) validate() error {
	switch l.Mode {
	case "", "standard", "explore":
	default:
		return errors.Errorf("unknown mode %q", l.Mode)
	}
	for i, r := range l.Platforms {
		if err := r.validate("platforms", i); err != nil {
			return err
		}
	}
	for i, r := range l.Lava {
		if err := r.validate("lava", i); err != nil {
			return err
		}
	}
	for i, s := range l.Spikes {
		if err := (Rect{s.X, s.Y, s.Width, s.Height}).validate("spikes", i); err != nil {
			return err
		}
		if s.Triangles < 1 {
			return errors.Errorf("spikes[%d]: triangles must be at least 1, got %d", i, s.Triangles)
		}
	}
	for i, c := range l.Coins {
		if err := (Rect{c.X, c.Y, c.Width, c.Height}).validate("coins", i); err != nil {
			return err
		}
	}
	for i, e := range l.Enemies {
		if err := (Rect{e.X, e.Y, e.Width, e.Height}).validate("enemies", i); err != nil {
			return err
		}
		if e.Speed <= 0 {
			return errors.Errorf("enemies[%d]: speed must be positive, got %g", i, e.Speed)
		}
		if e.Min > e.Max {
			return errors.Errorf("enemies[%d]: min %g is above max %g", i, e.Min, e.Max)
		}
		switch e.Axis {
		case "", "horizontal", "vertical":
		default:
			return errors.Errorf("enemies[%d]: unknown axis %q", i, e.Axis)
		}
	}
	if l.Flag != nil {
		if err := l.Flag.validate("flag", 0); err != nil {
			return err
		}
	}
	return nil
}

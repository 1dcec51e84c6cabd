// Package level turns configuration into the entities of a playable level.
package level

import (
	"fmt"

	"github.com/pkg/errors"

	"samu/config"
	"samu/entity"
	"samu/geom"
	"samu/player"
)

// Mode selects which parts of the level are live.
type Mode string

const (
	ModeStandard Mode = "standard"
	ModeExplore  Mode = "explore" // no enemies, lava or spikes
)

// ParseMode accepts a configured mode name. Empty means standard.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeStandard:
		return ModeStandard, nil
	case ModeExplore:
		return ModeExplore, nil
	}
	return ModeStandard, errors.Errorf("unknown mode %q", s)
}

// Level owns every entity of one run. Slices keep configuration order, which
// is also collision resolution order for platforms.
type Level struct {
	Name   string
	Mode   Mode
	Width  float64
	Height float64

	Player    *player.Player
	Platforms []*entity.Platform
	Enemies   []*entity.Enemy
	Lava      []*entity.Lava
	Spikes    []*entity.Spikes
	Coins     []*entity.Coin
	Flag      *entity.Flag
}

// PlayerSettings maps configuration onto the player's tunables.
func PlayerSettings(cfg *config.Config) player.Settings {
	return player.Settings{
		Speed:          cfg.Physics.MoveSpeed,
		JumpImpulse:    cfg.Physics.JumpImpulse,
		Gravity:        cfg.Physics.Gravity,
		WorldWidth:     cfg.World.Width,
		WorldHeight:    cfg.World.Height,
		AnimStep:       cfg.Animation.Step,
		AnimDelay:      cfg.Animation.Delay,
		BounceDistance: cfg.Bounce.Distance,
		BounceHeight:   cfg.Bounce.Height,
		BounceDuration: cfg.Bounce.Duration,
	}
}

// Build creates fresh entities from cfg. Calling it again yields an
// independent level; game.Restart relies on that.
func Build(cfg *config.Config) (*Level, error) {
	lc := cfg.Level
	mode, err := ParseMode(lc.Mode)
	if err != nil {
		return nil, err
	}
	l := &Level{
		Name:   lc.Name,
		Mode:   mode,
		Width:  cfg.World.Width,
		Height: cfg.World.Height,
	}

	pr := cfg.Player
	l.Player = player.New(geom.NewRect(pr.X, pr.Y, pr.Width, pr.Height), PlayerSettings(cfg))

	for _, r := range lc.Platforms {
		l.Platforms = append(l.Platforms, entity.NewPlatform(r.X, r.Y, r.Width, r.Height))
	}
	for i, e := range lc.Enemies {
		axis, err := entity.ParseAxis(e.Axis)
		if err != nil {
			return nil, errors.Wrapf(err, "enemies[%d]", i)
		}
		rect := geom.NewRect(e.X, e.Y, e.Width, e.Height)
		l.Enemies = append(l.Enemies, entity.NewEnemy(rect, axis, e.Speed, e.Min, e.Max, cfg.Animation.Step, cfg.Animation.Delay))
	}
	for _, r := range lc.Lava {
		l.Lava = append(l.Lava, entity.NewLava(r.X, r.Y, r.Width, r.Height))
	}
	for _, s := range lc.Spikes {
		l.Spikes = append(l.Spikes, entity.NewSpikes(s.X, s.Y, s.Width, s.Height, s.Triangles))
	}
	for _, c := range lc.Coins {
		w, h := c.Width, c.Height
		if w == 0 {
			w = entity.CoinWidth
		}
		if h == 0 {
			h = entity.CoinHeight
		}
		l.Coins = append(l.Coins, entity.NewCoin(c.X, c.Y, w, h))
	}
	if f := lc.Flag; f != nil {
		l.Flag = entity.NewFlag(f.X, f.Y, f.Width, f.Height)
	}
	return l, nil
}

// Hazards lists everything that knocks the player back, enemies first.
// Explore mode has none.
func (l *Level) Hazards() []entity.Collidable {
	if l.Mode == ModeExplore {
		return nil
	}
	out := make([]entity.Collidable, 0, len(l.Enemies)+len(l.Lava)+len(l.Spikes))
	for _, e := range l.Enemies {
		out = append(out, e)
	}
	for _, lv := range l.Lava {
		out = append(out, lv)
	}
	for _, s := range l.Spikes {
		out = append(out, s)
	}
	return out
}

// Drawables lists everything in back-to-front order, player last.
func (l *Level) Drawables() []entity.Drawable {
	var out []entity.Drawable
	for _, p := range l.Platforms {
		out = append(out, p)
	}
	if l.Mode != ModeExplore {
		for _, lv := range l.Lava {
			out = append(out, lv)
		}
		for _, s := range l.Spikes {
			out = append(out, s)
		}
	}
	for _, c := range l.Coins {
		out = append(out, c)
	}
	if l.Flag != nil {
		out = append(out, l.Flag)
	}
	if l.Mode != ModeExplore {
		for _, e := range l.Enemies {
			out = append(out, e)
		}
	}
	return append(out, l.Player)
}

// CoinsRemaining counts coins not yet collected.
func (l *Level) CoinsRemaining() int {
	n := 0
	for _, c := range l.Coins {
		if !c.Collected {
			n++
		}
	}
	return n
}

func (l *Level) String() string {
	return fmt.Sprintf("%q (%s) %gx%g: %d platforms, %d enemies, %d lava, %d spikes, %d coins, flag=%t",
		l.Name, l.Mode, l.Width, l.Height, len(l.Platforms), len(l.Enemies), len(l.Lava), len(l.Spikes), len(l.Coins), l.Flag != nil)
}

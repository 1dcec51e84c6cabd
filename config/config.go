// Package config loads game settings and level layout from TOML.
package config

import (
	_ "embed"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

//go:embed default.toml
var defaultTOML string

type Config struct {
	Display   Display   `toml:"display"`
	World     World     `toml:"world"`
	Physics   Physics   `toml:"physics"`
	Player    Rect      `toml:"player"`
	Animation Animation `toml:"animation"`
	Bounce    Bounce    `toml:"bounce"`
	Input     Input     `toml:"input"`
	Audio     Audio     `toml:"audio"`
	Level     Level     `toml:"level"`
}

type Display struct {
	FPS        int     `toml:"fps"`
	ViewWidth  float64 `toml:"view_width"`
	ViewHeight float64 `toml:"view_height"`
}

// FrameDuration is the frame clock period.
func (d Display) FrameDuration() time.Duration {
	return time.Second / time.Duration(d.FPS)
}

type World struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Physics values are per update, except MaxDelta which caps the seconds fed
// to time-based effects after a stall.
type Physics struct {
	Gravity     float64 `toml:"gravity"`
	JumpImpulse float64 `toml:"jump_impulse"`
	MoveSpeed   float64 `toml:"move_speed"`
	MaxDelta    float64 `toml:"max_delta"`
}

type Animation struct {
	Step  float64 `toml:"step"`
	Delay float64 `toml:"delay"`
}

type Bounce struct {
	Distance float64 `toml:"distance"`
	Height   float64 `toml:"height"`
	Duration float64 `toml:"duration"`
}

type Input struct {
	KeyTimeoutMS int `toml:"key_timeout_ms"`
}

func (i Input) KeyTimeout() time.Duration {
	return time.Duration(i.KeyTimeoutMS) * time.Millisecond
}

type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type Rect struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type Enemy struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Axis   string  `toml:"axis"`
	Speed  float64 `toml:"speed"`
	Min    float64 `toml:"min"`
	Max    float64 `toml:"max"`
}

type Spikes struct {
	X         float64 `toml:"x"`
	Y         float64 `toml:"y"`
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	Triangles int     `toml:"triangles"`
}

// Coin sizes default to 35x35 when left out.
type Coin struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Level mode is "standard" (the default when empty) or "explore", which
// leaves out enemies and hazards.
type Level struct {
	Name      string   `toml:"name"`
	Mode      string   `toml:"mode"`
	Platforms []Rect   `toml:"platforms"`
	Enemies   []Enemy  `toml:"enemies"`
	Lava      []Rect   `toml:"lava"`
	Spikes    []Spikes `toml:"spikes"`
	Coins     []Coin   `toml:"coins"`
	Flag      *Rect    `toml:"flag"`
}

// Default returns the built-in settings and level.
func Default() (*Config, error) {
	var cfg Config
	md, err := toml.Decode(defaultTOML, &cfg)
	if err != nil {
		return nil, errors.Wrap(err, "decode default config")
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load decodes path over the defaults and validates the result. An empty
// path yields the defaults. A file that has a [level] section replaces the
// default level as a whole rather than merging into it.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, cfg.Validate()
	}

	var probe map[string]any
	if _, err := toml.DecodeFile(path, &probe); err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if _, ok := probe["level"]; ok {
		cfg.Level = Level{}
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, cfg.Validate()
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return errors.Errorf("unknown keys: %s", strings.Join(names, ", "))
}

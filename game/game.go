// Package game runs a level: it steps the simulation in a fixed order each
// frame, renders the result through the camera and drives the frame clock.
package game

import (
	"fmt"
	"log"

	"github.com/pkg/errors"

	"samu/camera"
	"samu/config"
	"samu/entity"
	"samu/input"
	"samu/level"
	"samu/render"
)

// Sounds receives gameplay cues. audio.SoundManager implements it.
type Sounds interface {
	PlayCoin()
	PlayHit()
	PlayFinish()
}

type nopSounds struct{}

func (nopSounds) PlayCoin()   {}
func (nopSounds) PlayHit()    {}
func (nopSounds) PlayFinish() {}

// Events reports what happened during one Step.
type Events struct {
	CoinsCollected int  // coins picked up this frame
	Hit            bool // a hazard or enemy touched the player
	Finished       bool // the flag was reached this frame
}

type Game struct {
	cfg     *config.Config
	level   *level.Level
	camera  *camera.Camera
	hazards []entity.Collidable
	sounds  Sounds

	coins    int
	finished bool
}

// New wires a built level to a camera. A nil sounds plays nothing.
func New(cfg *config.Config, lvl *level.Level, sounds Sounds) *Game {
	if sounds == nil {
		sounds = nopSounds{}
	}
	g := &Game{
		cfg:     cfg,
		level:   lvl,
		camera:  camera.New(cfg.Display.ViewWidth, cfg.Display.ViewHeight, lvl.Width, lvl.Height),
		hazards: lvl.Hazards(),
		sounds:  sounds,
	}
	g.camera.Update(lvl.Player.Rect)
	return g
}

func (g *Game) Level() *level.Level { return g.level }

func (g *Game) Camera() *camera.Camera { return g.camera }

func (g *Game) CoinsCollected() int { return g.coins }

func (g *Game) Finished() bool { return g.finished }

// Restart rebuilds the level from the configuration and clears the score.
func (g *Game) Restart() error {
	lvl, err := level.Build(g.cfg)
	if err != nil {
		return errors.Wrap(err, "restart level")
	}
	g.level = lvl
	g.hazards = lvl.Hazards()
	g.coins = 0
	g.finished = false
	g.camera.Update(lvl.Player.Rect)
	log.Printf("restarted %s", lvl)
	return nil
}

// Step advances one frame of dt seconds. Order: player, enemies, hazards,
// coins, flag, camera. Explore mode skips enemies and hazards. Once the level
// is finished Step does nothing.
func (g *Game) Step(dt float64, in input.State) Events {
	var ev Events
	if g.finished {
		return ev
	}

	p := g.level.Player
	p.Update(dt, in, g.level.Platforms)

	if g.level.Mode == level.ModeStandard {
		for _, e := range g.level.Enemies {
			e.Update()
		}
	}

	// Every overlapping hazard restarts the knockback, every frame.
	wasBouncing := p.Bounce.IsActive()
	for _, h := range g.hazards {
		if h.CheckCollision(p.Rect) {
			p.Knockback()
			ev.Hit = true
		}
	}
	if ev.Hit && !wasBouncing {
		log.Printf("knockback at (%.0f, %.0f)", p.Rect.X, p.Rect.Y)
		g.sounds.PlayHit()
	}

	for _, c := range g.level.Coins {
		if c.CheckCollision(p.Rect) {
			g.coins++
			ev.CoinsCollected++
			log.Printf("coins collected: %d", g.coins)
			g.sounds.PlayCoin()
		}
	}

	if f := g.level.Flag; f != nil && f.CheckCollision(p.Rect) {
		g.finished = true
		ev.Finished = true
		log.Printf("level %q complete with %d coins", g.level.Name, g.coins)
		g.sounds.PlayFinish()
	}

	g.camera.Update(p.Rect)
	return ev
}

// Render draws every entity through the camera, then the HUD.
func (g *Game) Render(s render.Surface) {
	for _, d := range g.level.Drawables() {
		d.Draw(s, g.camera)
	}

	s.DrawText(1, 0, g.hudText(), render.StyleHUD)
	if g.finished {
		s.DrawText(1, 1, "LEVEL COMPLETE! press r to restart, q to quit", render.StyleBanner)
	}
}

func (g *Game) hudText() string {
	return fmt.Sprintf("Samu's coins: %d/%d", g.coins, len(g.level.Coins))
}

package game

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"samu/input"
	"samu/render"
)

// Run drives the frame clock until ctx is cancelled or a quit key is pressed.
// Terminal events are read on their own goroutine; all simulation and drawing
// happens on the calling goroutine.
func (g *Game) Run(ctx context.Context, screen tcell.Screen, term *render.Terminal, keys *input.Keyboard) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 10)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(g.cfg.Display.FrameDuration())
	defer ticker.Stop()

	lastFrame := time.Now()
	g.frame(term)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if keys.HandleKey(ev) == input.ActionRestart {
					keys.Reset()
					if err := g.Restart(); err != nil {
						return err
					}
				}
				if keys.QuitRequested() {
					return nil
				}
			case *tcell.EventResize:
				// Repeats are lost while the terminal redraws
				keys.Reset()
				term.Resize()
				screen.Sync()
				cols, rows := term.Size()
				log.Printf("resized to %dx%d", cols, rows)
			}

		case now := <-ticker.C:
			dt := now.Sub(lastFrame).Seconds()
			lastFrame = now
			// Cap delta time to prevent large jumps after a stall
			dt = min(dt, g.cfg.Physics.MaxDelta)

			g.Step(dt, keys.Snapshot())
			g.frame(term)
		}
	}
}

func (g *Game) frame(term *render.Terminal) {
	term.Clear()
	g.Render(term)
	term.Show()
}

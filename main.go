package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"samu/audio"
	"samu/config"
	"samu/game"
	"samu/input"
	"samu/level"
	"samu/render"
)

func main() {
	configPath := flag.String("config", "", "TOML file with settings and level (default: built-in level)")
	mode := flag.String("mode", "", "Level mode: standard or explore (default: from config)")
	debugMode := flag.Bool("debug", false, "Write a debug log to "+logDir+"/"+logFileName)
	flag.Parse()

	if logFile := setupLogging(*debugMode); logFile != nil {
		defer logFile.Close()
	}

	if err := run(*configPath, *mode); err != nil {
		fmt.Fprintf(os.Stderr, "samu: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, mode string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if mode != "" {
		cfg.Level.Mode = mode
		if err := cfg.Validate(); err != nil {
			return errors.Wrap(err, "-mode")
		}
	}

	if configPath == "" {
		log.Printf("using built-in config")
	} else {
		log.Printf("using config %s", configPath)
	}

	lvl, err := level.Build(cfg)
	if err != nil {
		return err
	}
	log.Printf("loaded %s", lvl)

	// Initialize screen
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init terminal")
	}
	defer screen.Fini()

	// Restore the terminal before a crash is printed
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			panic(r)
		}
	}()

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorDefault).
		Foreground(tcell.ColorWhite))
	screen.Clear()

	var sounds game.Sounds
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("audio disabled: %v", err)
		} else {
			defer sm.Cleanup()
			sounds = sm
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	keys := input.NewKeyboard(cfg.Input.KeyTimeout())
	term := render.NewTerminal(screen, cfg.Display.ViewWidth, cfg.Display.ViewHeight)

	g := game.New(cfg, lvl, sounds)
	if err := g.Run(ctx, screen, term, keys); err != nil {
		return err
	}
	log.Printf("exit with %d/%d coins, finished=%t", g.CoinsCollected(), len(lvl.Coins), g.Finished())
	return nil
}

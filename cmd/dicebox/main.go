// Package main is the desktop dice roller: an SDL2 window with the ui2d
// renderer.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/dicebox/internal/config"
	"github.com/Faultbox/dicebox/internal/engine/audio"
	"github.com/Faultbox/dicebox/internal/engine/input"
	"github.com/Faultbox/dicebox/internal/engine/screenshot"
	"github.com/Faultbox/dicebox/internal/engine/ui2d"
	"github.com/Faultbox/dicebox/internal/engine/window"
	"github.com/Faultbox/dicebox/internal/game"
	"github.com/Faultbox/dicebox/internal/game/states"
	"github.com/Faultbox/dicebox/internal/game/ui"
	"github.com/Faultbox/dicebox/internal/logger"
)

const windowTitle = "Dice Roller"

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", path)
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("dicebox failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Close()

	w, h := win.GetSize()
	var backend ui.UIBackend
	backend, err = ui.NewUI2DBackend(w, h)
	if err != nil {
		return err
	}
	defer backend.Close()

	var sound states.Sound
	am := audio.New()
	if err := am.Init(); err != nil {
		logger.Warn("audio unavailable, running silent", zap.Error(err))
	} else {
		defer am.Close()
		am.SetMasterVolume(float64(cfg.Audio.MasterVolume))
		am.SetSFXVolume(float64(cfg.Audio.SFXVolume))
		am.SetMuted(cfg.Audio.Muted)
		sound = am
	}

	g, err := game.New(game.Options{Dice: cfg.Dice, Sound: sound})
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	defer g.Close()

	shots := screenshot.New(cfg.Graphics.ScreenshotDir, "dicebox")
	dispatch := ui.Dispatch(g.Dispatch)
	last := time.Now()
	for {
		in := backend.Input()
		res := input.Pump(in)
		if res.Quit {
			return nil
		}
		if res.Resized {
			win.UpdateViewport()
			backend.Resize(res.Width, res.Height)
		}

		capture := in.KeyScreenshot
		for _, action := range ui.KeyActions(in) {
			g.Dispatch(action)
		}
		if g.QuitRequested() {
			return nil
		}

		now := time.Now()
		if err := g.Update(now.Sub(last).Seconds()); err != nil {
			return fmt.Errorf("update: %w", err)
		}
		last = now

		bg := ui2d.ColorBackground
		win.Clear(bg.R, bg.G, bg.B)
		backend.Begin()
		backend.RenderTable(g.View(), dispatch)
		backend.End()
		if capture {
			pixels, pw, ph := win.ReadPixels()
			if path, err := shots.SavePixels(pixels, pw, ph); err != nil {
				logger.Warn("screenshot failed", zap.Error(err))
			} else {
				logger.Info("screenshot saved", zap.String("path", path))
			}
		}
		win.SwapBuffers()
	}
}

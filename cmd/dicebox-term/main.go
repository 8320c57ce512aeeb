// Package main is the terminal dice roller.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/dicebox/internal/config"
	"github.com/Faultbox/dicebox/internal/engine/audio"
	"github.com/Faultbox/dicebox/internal/game"
	"github.com/Faultbox/dicebox/internal/game/states"
	"github.com/Faultbox/dicebox/internal/logger"
	"github.com/Faultbox/dicebox/internal/term"
)

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

	// tcell owns the terminal, so only the file sink is enabled.
	fileCfg := logger.DefaultFileConfig(cfg.Logging.LogFile)
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, false); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("dicebox-term failed", zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	var sound states.Sound
	if !cfg.Audio.Muted {
		am := audio.New()
		if err := am.Init(); err != nil {
			logger.Warn("audio unavailable, running silent", zap.Error(err))
		} else {
			defer am.Close()
			am.SetMasterVolume(float64(cfg.Audio.MasterVolume))
			am.SetSFXVolume(float64(cfg.Audio.SFXVolume))
			sound = am
		}
	}

	g, err := game.New(game.Options{Dice: cfg.Dice, Sound: sound})
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	defer g.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := term.NewApp(screen, g).Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

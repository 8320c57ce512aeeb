// Package config handles dicebox configuration loading and management.
package config

import (
	"time"

	"github.com/Faultbox/dicebox/internal/dice"
)

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Audio    AudioConfig    `yaml:"audio"`
	Dice     DiceConfig     `yaml:"dice"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds window settings for the desktop client.
type GraphicsConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Fullscreen    bool   `yaml:"fullscreen"`
	VSync         bool   `yaml:"vsync"`
	ScreenshotDir string `yaml:"screenshot_dir"` // F12 captures
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	MasterVolume float32 `yaml:"master_volume"`
	SFXVolume    float32 `yaml:"sfx_volume"`
	Muted        bool    `yaml:"muted"`
}

// DiceConfig holds the initial tray and roll animation settings.
type DiceConfig struct {
	Count        int           `yaml:"count"`
	Colors       []string      `yaml:"colors"` // palette names, selection order
	RollTicks    int           `yaml:"roll_ticks"`
	RollInterval time.Duration `yaml:"roll_interval"`
	Seed         uint64        `yaml:"seed"` // 0 = seed from clock
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         960,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			ScreenshotDir: "screenshots",
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
			SFXVolume:    0.8,
			Muted:        false,
		},
		Dice: DiceConfig{
			Count:        5,
			Colors:       []string{dice.DefaultColor.Name},
			RollTicks:    dice.DefaultRollTicks,
			RollInterval: dice.DefaultRollInterval,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Palette resolves the configured color names against the dice palette.
// Unknown names are returned separately so callers can report them.
func (d DiceConfig) Palette() (colors []dice.Color, unknown []string) {
	for _, name := range d.Colors {
		c, ok := dice.LookupColor(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		colors = append(colors, c)
	}
	return colors, unknown
}

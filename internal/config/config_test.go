package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/Faultbox/dicebox/internal/dice"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 960 {
		t.Errorf("expected width 960, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}

	if cfg.Audio.SFXVolume != 0.8 {
		t.Errorf("expected sfx volume 0.8, got %f", cfg.Audio.SFXVolume)
	}

	if cfg.Dice.Count != 5 {
		t.Errorf("expected 5 dice, got %d", cfg.Dice.Count)
	}
	if !slices.Equal(cfg.Dice.Colors, []string{"Blue"}) {
		t.Errorf("expected [Blue], got %v", cfg.Dice.Colors)
	}
	if cfg.Dice.RollTicks != dice.DefaultRollTicks {
		t.Errorf("expected %d roll ticks, got %d", dice.DefaultRollTicks, cfg.Dice.RollTicks)
	}
	if cfg.Dice.RollInterval != 50*time.Millisecond {
		t.Errorf("expected 50ms roll interval, got %v", cfg.Dice.RollInterval)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "dicebox.yaml")

	yamlContent := `
graphics:
  width: 1280
  height: 800
  fullscreen: true

audio:
  master_volume: 0.5
  muted: true

dice:
  count: 8
  colors: [red, teal, "#a855f7"]
  roll_ticks: 20
  roll_interval: 30ms
  seed: 1234

logging:
  level: "debug"
  log_file: "dice.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 800 {
		t.Errorf("expected 1280x800, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if !cfg.Graphics.VSync {
		t.Error("vsync default should survive a file that omits it")
	}
	if !cfg.Audio.Muted {
		t.Error("expected muted to be true")
	}
	if cfg.Dice.Count != 8 {
		t.Errorf("expected 8 dice, got %d", cfg.Dice.Count)
	}
	if cfg.Dice.RollTicks != 20 || cfg.Dice.RollInterval != 30*time.Millisecond {
		t.Errorf("roll = %d x %v", cfg.Dice.RollTicks, cfg.Dice.RollInterval)
	}
	if cfg.Dice.Seed != 1234 {
		t.Errorf("expected seed 1234, got %d", cfg.Dice.Seed)
	}

	colors, unknown := cfg.Dice.Palette()
	if len(unknown) != 0 {
		t.Errorf("unexpected unknown colors %v", unknown)
	}
	var names []string
	for _, c := range colors {
		names = append(names, c.Name)
	}
	if !slices.Equal(names, []string{"Red", "Teal", "Purple"}) {
		t.Errorf("colors = %v", names)
	}

	if cfg.Logging.LogFile != "dice.log" {
		t.Errorf("expected log file 'dice.log', got %s", cfg.Logging.LogFile)
	}
}

func TestPaletteUnknown(t *testing.T) {
	d := DiceConfig{Colors: []string{"green", "chartreuse"}}
	colors, unknown := d.Palette()
	if len(colors) != 1 || colors[0].Name != "Green" {
		t.Errorf("colors = %v", colors)
	}
	if !slices.Equal(unknown, []string{"chartreuse"}) {
		t.Errorf("unknown = %v", unknown)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
dice:
  count: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/dicebox.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "dicebox.yaml")
	if err := os.WriteFile(configPath, []byte("dice:\n  count: 3\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find dicebox.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "dice flag",
			setup: func() { *flagDice = 9 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Dice.Count != 9 {
					t.Errorf("expected 9 dice, got %d", cfg.Dice.Count)
				}
			},
			teardown: func() { *flagDice = 0 },
		},
		{
			name:  "colors flag",
			setup: func() { *flagColors = " red, ,green " },
			verify: func(t *testing.T, cfg *Config) {
				if !slices.Equal(cfg.Dice.Colors, []string{"red", "green"}) {
					t.Errorf("expected [red green], got %v", cfg.Dice.Colors)
				}
			},
			teardown: func() { *flagColors = "" },
		},
		{
			name:  "seed and mute flags",
			setup: func() { *flagSeed = 7; *flagMute = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Dice.Seed != 7 {
					t.Errorf("expected seed 7, got %d", cfg.Dice.Seed)
				}
				if !cfg.Audio.Muted {
					t.Error("expected muted with mute flag")
				}
			},
			teardown: func() { *flagSeed = 0; *flagMute = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 1920
				*flagHeight = 1080
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
					t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "dicebox.yaml")

	yamlContent := `
dice:
  count: 3
  colors: [orange]
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagDice = 7
	defer func() {
		*flagConfig = ""
		*flagDice = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Dice.Count != 7 {
		t.Errorf("expected 7 dice from flag, got %d", cfg.Dice.Count)
	}
	if !slices.Equal(cfg.Dice.Colors, []string{"orange"}) {
		t.Errorf("expected colors from file, got %v", cfg.Dice.Colors)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.yaml")

	cfg := Default()
	cfg.Dice.Count = 4
	cfg.Dice.RollInterval = 80 * time.Millisecond
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Dice.Count != 4 || loaded.Dice.RollInterval != 80*time.Millisecond {
		t.Errorf("reloaded dice config = %+v", loaded.Dice)
	}
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Atom model - ebiten"

	DefaultConfigPath = "atom-viewer.toml"
	DefaultBackground = "resources/stars.png"

	// Cloud sampling
	CloudSeed      = 0
	PointsPerShell = 1500

	// Overlay text placement
	OverlayX          = 10
	OverlayY          = 10
	OverlayLineHeight = 18
	HelpY             = 100

	ChimeVolume = 0.2
)

// Config holds the settings that may come from the config file or flags.
type Config struct {
	Window     Window `toml:"window"`
	Cloud      Cloud  `toml:"cloud"`
	Background string `toml:"background"`
	Audio      Audio  `toml:"audio"`
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type Cloud struct {
	Seed           int64 `toml:"seed"`
	PointsPerShell int   `toml:"points_per_shell"`
}

type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Window: Window{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		Cloud: Cloud{
			Seed:           CloudSeed,
			PointsPerShell: PointsPerShell,
		},
		Background: DefaultBackground,
		Audio: Audio{
			Enabled: true,
			Volume:  ChimeVolume,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error; found
// reports whether the file existed.
func Load(path string) (cfg Config, found bool, err error) {
	cfg = Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, false, nil
	}
	if err != nil {
		return cfg, false, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), true, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, true, cfg.Validate()
}

// Validate rejects settings the viewer cannot run with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Cloud.PointsPerShell <= 0 {
		return fmt.Errorf("points_per_shell %d must be positive", c.Cloud.PointsPerShell)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %g must be within [0, 1]", c.Audio.Volume)
	}
	return nil
}

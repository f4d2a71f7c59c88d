// Package config assembles the runtime configuration from defaults, an
// optional YAML file, TICKWHEEL_* environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cbodonnell/tickwheel/pkg/kinematic"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "TICKWHEEL_"

type Config struct {
	LogLevel  string `yaml:"logLevel" env:"LOG_LEVEL"`
	AssetsDir string `yaml:"assetsDir" env:"ASSETS_DIR"`
	// DebugAddr is the listen address of the stats server. Empty disables it.
	DebugAddr string `yaml:"debugAddr" env:"DEBUG_ADDR"`
	Window    Window `yaml:"window" envPrefix:"WINDOW_"`
	Flappy    Flappy `yaml:"flappy" envPrefix:"FLAPPY_"`
}

type Window struct {
	Width  int    `yaml:"width" env:"WIDTH"`
	Height int    `yaml:"height" env:"HEIGHT"`
	Title  string `yaml:"title" env:"TITLE"`
	TPS    int    `yaml:"tps" env:"TPS"`
}

// Flappy tunes the demo game. Distances are in pixels and velocities in
// pixels per frame.
type Flappy struct {
	Gravity       float64       `yaml:"gravity" env:"GRAVITY"`
	FlapVelocity  float64       `yaml:"flapVelocity" env:"FLAP_VELOCITY"`
	ScrollSpeed   float64       `yaml:"scrollSpeed" env:"SCROLL_SPEED"`
	GapHeight     float64       `yaml:"gapHeight" env:"GAP_HEIGHT"`
	PipeWidth     float64       `yaml:"pipeWidth" env:"PIPE_WIDTH"`
	BirdRadius    float64       `yaml:"birdRadius" env:"BIRD_RADIUS"`
	SpawnInterval time.Duration `yaml:"spawnInterval" env:"SPAWN_INTERVAL"`
	// RemoveX is the x coordinate left of which a pipe is deleted.
	RemoveX float64 `yaml:"removeX" env:"REMOVE_X"`
	// RestartDelay ignores input for a moment after a crash so that a late
	// flap does not restart the round straight away.
	RestartDelay time.Duration `yaml:"restartDelay" env:"RESTART_DELAY"`
	// Seed makes pipe gaps reproducible. Zero picks a random seed.
	Seed uint64 `yaml:"seed" env:"SEED"`
	// BirdTexture is an optional image drawn instead of the circle.
	BirdTexture string `yaml:"birdTexture" env:"BIRD_TEXTURE"`
}

func Default() Config {
	return Config{
		LogLevel:  "info",
		AssetsDir: "assets",
		Window: Window{
			Width:  640,
			Height: 480,
			Title:  "tickwheel",
			TPS:    60,
		},
		Flappy: Flappy{
			Gravity:       kinematic.Gravity,
			FlapVelocity:  -5,
			ScrollSpeed:   2,
			GapHeight:     140,
			PipeWidth:     52,
			BirdRadius:    15,
			SpawnInterval: 1500 * time.Millisecond,
			RemoveX:       -60,
			RestartDelay:  500 * time.Millisecond,
		},
	}
}

type LoadOptions struct {
	// Path of an optional YAML file. Empty skips the file.
	Path string
	// Environ overrides the process environment, mostly for tests.
	Environ map[string]string
}

func Load(opts LoadOptions) (Config, error) {
	cfg := Default()
	if opts.Path != "" {
		b, err := os.ReadFile(opts.Path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %v", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %v", opts.Path, err)
		}
	}
	envOpts := env.Options{Prefix: EnvPrefix}
	if opts.Environ != nil {
		envOpts.Environment = opts.Environ
	}
	if err := env.ParseWithOptions(&cfg, envOpts); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %v", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.Window.TPS))
	}
	if c.Flappy.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("spawn interval must be positive, got %s", c.Flappy.SpawnInterval))
	}
	if c.Flappy.GapHeight <= 0 || c.Flappy.GapHeight >= float64(c.Window.Height) {
		errs = append(errs, fmt.Errorf("gap height must be between 0 and the window height, got %g", c.Flappy.GapHeight))
	}
	if c.Flappy.RestartDelay < 0 {
		errs = append(errs, fmt.Errorf("restart delay must not be negative, got %s", c.Flappy.RestartDelay))
	}
	if c.Flappy.PipeWidth <= 0 || c.Flappy.BirdRadius <= 0 {
		errs = append(errs, errors.New("pipe width and bird radius must be positive"))
	}
	return errors.Join(errs...)
}

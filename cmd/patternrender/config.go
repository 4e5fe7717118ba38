package main

import (
	"flag"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// config holds render settings. Defaults come from PATTERN_* environment
// variables and are overridden by command-line flags.
type config struct {
	Width   int     `envconfig:"WIDTH" default:"512"`
	Height  int     `envconfig:"HEIGHT" default:"512"`
	Quality string  `envconfig:"QUALITY" default:"good"`
	Workers int     `envconfig:"WORKERS" default:"1"`
	Output  string  `envconfig:"OUTPUT" default:"scene.png"`
	Scale   float64 `envconfig:"SCALE" default:"1"`
	Debug   bool    `envconfig:"DEBUG" default:"false"`
	Scene   string  `envconfig:"SCENE"`
}

func loadConfig(args []string) (*config, error) {
	var cfg config
	if err := envconfig.Process("pattern", &cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	fs := flag.NewFlagSet("patternrender", flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "image width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "image height")
	fs.StringVar(&cfg.Quality, "quality", cfg.Quality, "fast, simple, good or beautiful")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "render goroutines (0 = all CPUs)")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output file (.png or .bmp)")
	fs.Float64Var(&cfg.Scale, "scale", cfg.Scale, "resize factor applied after rendering")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log render diagnostics to stderr")
	fs.StringVar(&cfg.Scene, "scene", cfg.Scene, "TOML scene file (built-in demo if empty)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid dimensions: width=%d, height=%d (both must be > 0)", cfg.Width, cfg.Height)
	}
	if cfg.Scale <= 0 {
		return nil, fmt.Errorf("invalid scale %g (must be > 0)", cfg.Scale)
	}
	return &cfg, nil
}

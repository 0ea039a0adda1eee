package app

import (
	"flag"

	"mapgen/internal/core"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Generator  string
	ConfigFile string
	Scale      int
	TPS        int
	Seed       int64
	HUDWidth   int
	LogLevel   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Generator: core.DefaultGenerator, Scale: 8, TPS: 30, HUDWidth: 260, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Generator, "gen", c.Generator, "generator to run")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "YAML or TOML terrain config file")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed override; 0 keeps the configured seed")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels, 0 hides it")
	fs.StringVar(&c.LogLevel, "log", c.LogLevel, "log level: debug, info, warn or error")
}

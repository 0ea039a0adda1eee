package main

import (
	"fmt"
	"log/slog"

	"mapgen/internal/app"
	"mapgen/internal/config"
	"mapgen/internal/core"
	"mapgen/internal/generators/terrain"
)

// buildGenerator resolves the viewer's generator from a config file or the
// registry. Terrain generators log through logger; other registry entries
// fall back to slog.Default.
func buildGenerator(cfg *app.Config, logger *slog.Logger) (core.Generator, error) {
	var gen core.Generator
	switch {
	case cfg.ConfigFile != "":
		tc, err := config.Load(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		t, err := terrain.NewWithLogger(tc, logger)
		if err != nil {
			return nil, err
		}
		gen = t
	case cfg.Generator == terrain.ID:
		t, err := terrain.NewWithLogger(terrain.DefaultConfig(), logger)
		if err != nil {
			return nil, err
		}
		gen = t
	default:
		factory, ok := core.Lookup(cfg.Generator)
		if !ok {
			return nil, fmt.Errorf("unknown generator %q (have %v)", cfg.Generator, core.Names())
		}
		g, err := factory(nil)
		if err != nil {
			return nil, err
		}
		gen = g
	}
	if cfg.Seed != 0 {
		if err := gen.Reset(cfg.Seed); err != nil {
			return nil, err
		}
	}
	return gen, nil
}

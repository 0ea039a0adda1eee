//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"mapgen/internal/app"
	"mapgen/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := logging.New(cfg.LogLevel, os.Stderr)
	slog.SetDefault(logger)

	gen, err := buildGenerator(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(gen, cfg.Scale, cfg.HUDWidth, cfg.Seed, logger)
	size := gen.Size()

	ebiten.SetWindowTitle("mapgen — " + gen.Info().Name)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

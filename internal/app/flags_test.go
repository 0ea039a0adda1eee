package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-scale", "4", "-seed", "99", "-config", "map.toml", "-hud", "0"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Scale != 4 || cfg.Seed != 99 || cfg.ConfigFile != "map.toml" || cfg.HUDWidth != 0 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Generator != "terrain-default" || cfg.TPS != 30 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

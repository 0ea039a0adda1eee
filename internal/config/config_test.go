package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"mapgen/internal/core"
	"mapgen/internal/generators/terrain"
	"mapgen/internal/noise"
)

const yamlDoc = `
width: 64
height: 32
noise:
  type: opensimplex
  seed: 0
  octaves: 4
terrain:
  water_level: 0.3
  policy: threshold
features:
  rivers: 0
  lakes: false
types:
  ocean:
    symbols: "~≈"
    colors: ["#000010", "#0000ff"]
river:
  symbol: "="
  color: "#112233"
`

const tomlDoc = `
width = 48

[noise]
seed = 9
scale = 20.0

[terrain]
mountain_level = 0.75

[types.mountains]
symbols = "M"
min = 0.6

[lake]
color = "aabbcc"
`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadYAMLOverlaysDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "map.yaml", yamlDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := terrain.DefaultConfig()
	if cfg.Width != 64 || cfg.Height != 32 {
		t.Fatalf("dimensions = %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Noise.Kind != noise.KindOpenSimplex || cfg.Noise.Seed != 0 || cfg.Noise.Octaves != 4 {
		t.Fatalf("noise = %+v", cfg.Noise)
	}
	if cfg.Noise.Scale != def.Noise.Scale || cfg.MountainLevel != def.MountainLevel {
		t.Fatalf("unset values lost their defaults: %+v", cfg)
	}
	if cfg.Types[terrain.Ocean].Max != 0.3 || cfg.Policy != terrain.PolicyThreshold {
		t.Fatalf("levels not applied: %+v", cfg.Types[terrain.Ocean])
	}
	if cfg.Features.Rivers != 0 || cfg.Features.Lakes {
		t.Fatalf("features = %+v", cfg.Features)
	}
	wantStops := []core.RGB{{B: 16}, {B: 255}}
	if !reflect.DeepEqual(cfg.Types[terrain.Ocean].Colors, wantStops) {
		t.Fatalf("ocean colors = %v", cfg.Types[terrain.Ocean].Colors)
	}
	if cfg.River != (terrain.FeatureStyle{Symbol: '=', Color: core.RGB{R: 0x11, G: 0x22, B: 0x33}}) {
		t.Fatalf("river = %+v", cfg.River)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("loaded config invalid: %v", err)
	}
}

func TestLoadTOMLOverlaysDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "map.toml", tomlDoc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 48 || cfg.Height != terrain.DefaultConfig().Height {
		t.Fatalf("dimensions = %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Noise.Seed != 9 || cfg.Noise.Scale != 20 {
		t.Fatalf("noise = %+v", cfg.Noise)
	}
	mountains := cfg.Types[terrain.Mountains]
	if mountains.Min != 0.6 || string(mountains.Symbols) != "M" {
		t.Fatalf("mountains = %+v", mountains)
	}
	if cfg.Lake.Color != (core.RGB{R: 0xaa, G: 0xbb, B: 0xcc}) {
		t.Fatalf("lake color = %+v", cfg.Lake.Color)
	}
}

func TestEncodeRoundTrips(t *testing.T) {
	cfg := terrain.DefaultConfig()
	cfg.Noise.Seed = 1234
	cfg.Features.Lakes = false
	for _, format := range []Format{FormatYAML, FormatTOML} {
		data, err := Encode(cfg, format)
		if err != nil {
			t.Fatalf("%s: Encode: %v", format, err)
		}
		f, err := Decode(data, format)
		if err != nil {
			t.Fatalf("%s: Decode: %v", format, err)
		}
		got, err := f.Apply(terrain.DefaultConfig())
		if err != nil {
			t.Fatalf("%s: Apply: %v", format, err)
		}
		if !reflect.DeepEqual(got, cfg) {
			t.Fatalf("%s: round trip mismatch\n got %+v\nwant %+v", format, got, cfg)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(writeFile(t, "map.json", "{}")); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
	bad := map[string]string{
		"unknown field":    "depth: 3\n",
		"unknown category": "types:\n  swamp:\n    symbols: s\n",
		"carved category":  "types:\n  river:\n    symbols: s\n",
		"bad color":        "river:\n  color: blue\n",
		"wide glyph":       "lake:\n  symbol: 湖\n",
	}
	for name, doc := range bad {
		if _, err := Load(writeFile(t, "bad.yml", doc)); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}
}

func TestEmptyFilesKeepDefaults(t *testing.T) {
	for _, name := range []string{"empty.yaml", "empty.toml"} {
		cfg, err := Load(writeFile(t, name, ""))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !reflect.DeepEqual(cfg, terrain.DefaultConfig()) {
			t.Fatalf("%s: empty file changed the config", name)
		}
	}
}

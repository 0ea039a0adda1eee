// Package config loads terrain configurations from YAML and TOML files.
//
// Files only need to name the values they change; everything else keeps the
// value from terrain.DefaultConfig.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v2"

	"mapgen/internal/core"
	"mapgen/internal/generators/terrain"
	"mapgen/internal/noise"
)

// Format is a supported file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for file extensions other than .yaml, .yml
// and .toml.
var ErrUnknownFormat = errors.New("unknown config format")

// File is the on-disk layout shared by both formats.
type File struct {
	Width  *int `yaml:"width,omitempty" toml:"width,omitempty"`
	Height *int `yaml:"height,omitempty" toml:"height,omitempty"`

	Noise    NoiseSection           `yaml:"noise,omitempty" toml:"noise,omitempty"`
	Terrain  TerrainSection         `yaml:"terrain,omitempty" toml:"terrain,omitempty"`
	Features FeatureSection         `yaml:"features,omitempty" toml:"features,omitempty"`
	Types    map[string]TypeSection `yaml:"types,omitempty" toml:"types,omitempty"`
	River    StyleSection           `yaml:"river,omitempty" toml:"river,omitempty"`
	Lake     StyleSection           `yaml:"lake,omitempty" toml:"lake,omitempty"`
}

// NoiseSection mirrors terrain.NoiseParams.
type NoiseSection struct {
	Type        string   `yaml:"type,omitempty" toml:"type,omitempty"`
	Seed        *int64   `yaml:"seed,omitempty" toml:"seed,omitempty"`
	Scale       *float64 `yaml:"scale,omitempty" toml:"scale,omitempty"`
	Octaves     *int     `yaml:"octaves,omitempty" toml:"octaves,omitempty"`
	Persistence *float64 `yaml:"persistence,omitempty" toml:"persistence,omitempty"`
	Lacunarity  *float64 `yaml:"lacunarity,omitempty" toml:"lacunarity,omitempty"`
}

// TerrainSection holds the classification levels.
type TerrainSection struct {
	WaterLevel    *float64 `yaml:"water_level,omitempty" toml:"water_level,omitempty"`
	MountainLevel *float64 `yaml:"mountain_level,omitempty" toml:"mountain_level,omitempty"`
	Policy        string   `yaml:"policy,omitempty" toml:"policy,omitempty"`
}

// FeatureSection mirrors terrain.Features.
type FeatureSection struct {
	Rivers         *int  `yaml:"rivers,omitempty" toml:"rivers,omitempty"`
	MinRiverLength *int  `yaml:"min_river_length,omitempty" toml:"min_river_length,omitempty"`
	Lakes          *bool `yaml:"lakes,omitempty" toml:"lakes,omitempty"`
}

// TypeSection styles one base category. Symbols is a string of glyphs and
// Colors a list of #rrggbb stops. Min and Max override the level-derived
// range.
type TypeSection struct {
	Min     *float64 `yaml:"min,omitempty" toml:"min,omitempty"`
	Max     *float64 `yaml:"max,omitempty" toml:"max,omitempty"`
	Symbols string   `yaml:"symbols,omitempty" toml:"symbols,omitempty"`
	Colors  []string `yaml:"colors,omitempty" toml:"colors,omitempty"`
}

// StyleSection styles a carved feature.
type StyleSection struct {
	Symbol string `yaml:"symbol,omitempty" toml:"symbol,omitempty"`
	Color  string `yaml:"color,omitempty" toml:"color,omitempty"`
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Load reads path and overlays it on terrain.DefaultConfig. The result is
// not validated.
func Load(path string) (terrain.Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return terrain.Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return terrain.Config{}, fmt.Errorf("read config: %w", err)
	}
	f, err := Decode(data, format)
	if err != nil {
		return terrain.Config{}, err
	}
	cfg, err := f.Apply(terrain.DefaultConfig())
	if err != nil {
		return terrain.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (File, error) {
	var f File
	switch format {
	case FormatYAML:
		if err := yaml.UnmarshalStrict(data, &f); err != nil {
			return File{}, fmt.Errorf("decode yaml config: %w", err)
		}
	case FormatTOML:
		if len(data) == 0 {
			return f, nil
		}
		if err := toml.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("decode toml config: %w", err)
		}
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return f, nil
}

// Encode writes cfg out in full.
func Encode(cfg terrain.Config, format Format) ([]byte, error) {
	f := FromConfig(cfg)
	switch format {
	case FormatYAML:
		out, err := yaml.Marshal(f)
		if err != nil {
			return nil, fmt.Errorf("encode yaml config: %w", err)
		}
		return out, nil
	case FormatTOML:
		out, err := toml.Marshal(f)
		if err != nil {
			return nil, fmt.Errorf("encode toml config: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// FromConfig describes every value of cfg.
func FromConfig(cfg terrain.Config) File {
	f := File{
		Width:  ptr(cfg.Width),
		Height: ptr(cfg.Height),
		Noise: NoiseSection{
			Type:        string(cfg.Noise.Kind),
			Seed:        ptr(cfg.Noise.Seed),
			Scale:       ptr(cfg.Noise.Scale),
			Octaves:     ptr(cfg.Noise.Octaves),
			Persistence: ptr(cfg.Noise.Persistence),
			Lacunarity:  ptr(cfg.Noise.Lacunarity),
		},
		Terrain: TerrainSection{
			WaterLevel:    ptr(cfg.WaterLevel),
			MountainLevel: ptr(cfg.MountainLevel),
			Policy:        string(cfg.Policy),
		},
		Features: FeatureSection{
			Rivers:         ptr(cfg.Features.Rivers),
			MinRiverLength: ptr(cfg.Features.MinRiverLength),
			Lakes:          ptr(cfg.Features.Lakes),
		},
		Types: make(map[string]TypeSection, terrain.NumBaseCategories),
		River: StyleSection{Symbol: string(cfg.River.Symbol), Color: cfg.River.Color.Hex()},
		Lake:  StyleSection{Symbol: string(cfg.Lake.Symbol), Color: cfg.Lake.Color.Hex()},
	}
	for cat := terrain.Ocean; cat < terrain.NumBaseCategories; cat++ {
		spec := cfg.Types[cat]
		colors := make([]string, len(spec.Colors))
		for i, c := range spec.Colors {
			colors[i] = c.Hex()
		}
		f.Types[cat.String()] = TypeSection{
			Min:     ptr(spec.Min),
			Max:     ptr(spec.Max),
			Symbols: string(spec.Symbols),
			Colors:  colors,
		}
	}
	return f
}

// Apply overlays f on base. Changing either level re-derives every range
// before explicit min/max values are applied.
func (f File) Apply(base terrain.Config) (terrain.Config, error) {
	cfg := base.Clone()
	set(&cfg.Width, f.Width)
	set(&cfg.Height, f.Height)

	if f.Noise.Type != "" {
		cfg.Noise.Kind = noise.Kind(f.Noise.Type)
	}
	set(&cfg.Noise.Seed, f.Noise.Seed)
	set(&cfg.Noise.Scale, f.Noise.Scale)
	set(&cfg.Noise.Octaves, f.Noise.Octaves)
	set(&cfg.Noise.Persistence, f.Noise.Persistence)
	set(&cfg.Noise.Lacunarity, f.Noise.Lacunarity)

	set(&cfg.WaterLevel, f.Terrain.WaterLevel)
	set(&cfg.MountainLevel, f.Terrain.MountainLevel)
	if f.Terrain.WaterLevel != nil || f.Terrain.MountainLevel != nil {
		cfg.DeriveRanges()
	}
	if f.Terrain.Policy != "" {
		cfg.Policy = terrain.Policy(f.Terrain.Policy)
	}

	set(&cfg.Features.Rivers, f.Features.Rivers)
	set(&cfg.Features.MinRiverLength, f.Features.MinRiverLength)
	set(&cfg.Features.Lakes, f.Features.Lakes)

	for name, ts := range f.Types {
		cat, err := terrain.ParseCategory(name)
		if err != nil || !cat.IsBase() {
			return base, fmt.Errorf("types: %q is not a base category", name)
		}
		spec := &cfg.Types[cat]
		set(&spec.Min, ts.Min)
		set(&spec.Max, ts.Max)
		if ts.Symbols != "" {
			glyphs, err := terrain.ParseGlyphs(ts.Symbols)
			if err != nil {
				return base, fmt.Errorf("types.%s.symbols: %w", name, err)
			}
			spec.Symbols = glyphs
		}
		if len(ts.Colors) > 0 {
			stops, err := parseColors(ts.Colors)
			if err != nil {
				return base, fmt.Errorf("types.%s.colors: %w", name, err)
			}
			spec.Colors = stops
		}
	}

	if err := f.River.apply(&cfg.River); err != nil {
		return base, fmt.Errorf("river: %w", err)
	}
	if err := f.Lake.apply(&cfg.Lake); err != nil {
		return base, fmt.Errorf("lake: %w", err)
	}
	return cfg, nil
}

func (s StyleSection) apply(dst *terrain.FeatureStyle) error {
	if s.Symbol != "" {
		glyph, err := terrain.ParseGlyph(s.Symbol)
		if err != nil {
			return err
		}
		dst.Symbol = glyph
	}
	if s.Color != "" {
		c, err := core.ParseHex(s.Color)
		if err != nil {
			return err
		}
		dst.Color = c
	}
	return nil
}

func parseColors(in []string) ([]core.RGB, error) {
	out := make([]core.RGB, len(in))
	for i, s := range in {
		c, err := core.ParseHex(s)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

func ptr[T any](v T) *T { return &v }

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

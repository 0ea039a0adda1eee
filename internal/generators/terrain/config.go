package terrain

import (
	"math"
	"strconv"

	"mapgen/internal/core"
	"mapgen/internal/noise"
)

// Policy selects how heights are turned into categories.
type Policy string

const (
	// PolicyRange assigns each category a fixed height interval.
	PolicyRange Policy = "range"
	// PolicyThreshold derives boundaries from the water and mountain levels
	// and perturbs them per cell.
	PolicyThreshold Policy = "threshold"
)

// Boundary fractions between the water and mountain levels.
const (
	plainsFraction = 0.4
	hillsFraction  = 0.8
)

// NoiseParams configures the fractal noise field.
type NoiseParams struct {
	Kind        noise.Kind
	Seed        int64
	Scale       float64
	Octaves     int
	Persistence float64
	Lacunarity  float64
}

// Features controls the river and lake carving stage.
type Features struct {
	Rivers         int
	MinRiverLength int
	Lakes          bool
}

// TerrainTypeSpec describes one base category: its height interval, the
// glyphs it may render as and the colour stops spread across the interval.
type TerrainTypeSpec struct {
	Min, Max float64
	Symbols  []rune
	Colors   []core.RGB
}

// FeatureStyle is the glyph and colour stamped onto carved cells.
type FeatureStyle struct {
	Symbol rune
	Color  core.RGB
}

// Config is the complete, flat parameter set for one map.
type Config struct {
	Width  int
	Height int

	Noise NoiseParams

	WaterLevel    float64
	MountainLevel float64
	Policy        Policy

	Features Features

	// Types is indexed by Ocean, Plains, Hills, Mountains.
	Types [NumBaseCategories]TerrainTypeSpec
	River FeatureStyle
	Lake  FeatureStyle
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	c := Config{
		Width:  100,
		Height: 50,
		Noise: NoiseParams{
			Kind:        noise.KindPerlin,
			Seed:        42,
			Scale:       50,
			Octaves:     6,
			Persistence: 0.5,
			Lacunarity:  2,
		},
		WaterLevel:    0.4,
		MountainLevel: 0.7,
		Policy:        PolicyRange,
		Features: Features{
			Rivers:         3,
			MinRiverLength: 10,
			Lakes:          true,
		},
		Types: [NumBaseCategories]TerrainTypeSpec{
			Ocean: {
				Symbols: []rune{'~'},
				Colors:  []core.RGB{{R: 0, G: 24, B: 72}, {R: 0, G: 62, B: 138}, {R: 36, G: 110, B: 180}},
			},
			Plains: {
				Symbols: []rune{'·'},
				Colors:  []core.RGB{{R: 196, G: 186, B: 120}, {R: 104, G: 160, B: 64}, {R: 72, G: 130, B: 52}},
			},
			Hills: {
				Symbols: []rune{'^'},
				Colors:  []core.RGB{{R: 96, G: 120, B: 50}, {R: 130, G: 118, B: 76}, {R: 150, G: 130, B: 96}},
			},
			Mountains: {
				Symbols: []rune{'▲'},
				Colors:  []core.RGB{{R: 120, G: 112, B: 104}, {R: 168, G: 164, B: 160}, {R: 245, G: 245, B: 250}},
			},
		},
		River: FeatureStyle{Symbol: '#', Color: core.RGB{R: 40, G: 110, B: 220}},
		Lake:  FeatureStyle{Symbol: 'o', Color: core.RGB{R: 60, G: 140, B: 210}},
	}
	c.DeriveRanges()
	return c
}

// Thresholds returns the plains and hills boundaries implied by the levels.
func (c Config) Thresholds() (plains, hills float64) {
	span := c.MountainLevel - c.WaterLevel
	return c.WaterLevel + span*plainsFraction, c.WaterLevel + span*hillsFraction
}

// LevelRanges returns the category intervals implied by the levels, covering
// [0, 1] contiguously. A negative water level yields an ocean range that no
// normalised height reaches.
func (c Config) LevelRanges() [NumBaseCategories][2]float64 {
	plains, hills := c.Thresholds()
	return [NumBaseCategories][2]float64{
		Ocean:     {math.Min(0, c.WaterLevel), c.WaterLevel},
		Plains:    {c.WaterLevel, plains},
		Hills:     {plains, hills},
		Mountains: {hills, 1},
	}
}

// DeriveRanges overwrites the type intervals with LevelRanges.
func (c *Config) DeriveRanges() {
	for i, r := range c.LevelRanges() {
		c.Types[i].Min, c.Types[i].Max = r[0], r[1]
	}
}

// Clone returns a copy that shares no slices with c.
func (c Config) Clone() Config {
	out := c
	for i := range c.Types {
		out.Types[i].Symbols = append([]rune(nil), c.Types[i].Symbols...)
		out.Types[i].Colors = append([]core.RGB(nil), c.Types[i].Colors...)
	}
	return out
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse are ignored; range checks are left to Validate.
func FromMap(cfg map[string]string) Config {
	return ApplyMap(DefaultConfig(), cfg)
}

// ApplyMap overlays flag-style key/value pairs on a copy of base, with the
// same parsing rules as FromMap.
func ApplyMap(base Config, cfg map[string]string) Config {
	c := base.Clone()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["type"]; ok {
		c.Noise.Kind = noise.Kind(v)
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Noise.Seed = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Noise.Scale = parsed
		}
	}
	if v, ok := cfg["octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Noise.Octaves = parsed
		}
	}
	if v, ok := cfg["persistence"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Noise.Persistence = parsed
		}
	}
	if v, ok := cfg["lacunarity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Noise.Lacunarity = parsed
		}
	}
	levelsChanged := false
	if v, ok := cfg["water_level"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.WaterLevel = parsed
			levelsChanged = true
		}
	}
	if v, ok := cfg["mountain_level"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.MountainLevel = parsed
			levelsChanged = true
		}
	}
	if levelsChanged {
		c.DeriveRanges()
	}
	if v, ok := cfg["policy"]; ok {
		c.Policy = Policy(v)
	}
	if v, ok := cfg["rivers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Features.Rivers = parsed
		}
	}
	if v, ok := cfg["min_river_length"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Features.MinRiverLength = parsed
		}
	}
	if v, ok := cfg["lakes"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Features.Lakes = parsed
		}
	}
	for cat := Ocean; cat < NumBaseCategories; cat++ {
		if v, ok := cfg["symbol_"+cat.String()]; ok {
			if glyphs, err := ParseGlyphs(v); err == nil {
				c.Types[cat].Symbols = glyphs
			}
		}
	}
	if v, ok := cfg["symbol_river"]; ok {
		if glyph, err := ParseGlyph(v); err == nil {
			c.River.Symbol = glyph
		}
	}
	if v, ok := cfg["symbol_lake"]; ok {
		if glyph, err := ParseGlyph(v); err == nil {
			c.Lake.Symbol = glyph
		}
	}
	return c
}

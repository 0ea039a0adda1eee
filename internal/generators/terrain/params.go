package terrain

import (
	"strings"

	"mapgen/internal/core"
)

// Parameters implements core.ParameterProvider. The snapshot round-trips
// through FromMap.
func (t *Terrain) Parameters() core.ParameterSnapshot {
	c := t.cfg
	symbols := make([]core.Parameter, 0, NumCategories)
	for cat := Ocean; cat < NumBaseCategories; cat++ {
		symbols = append(symbols, core.StringParam("symbol_"+cat.String(), strings.Title(cat.String()), string(c.Types[cat].Symbols)))
	}
	symbols = append(symbols,
		core.StringParam("symbol_river", "River", string(c.River.Symbol)),
		core.StringParam("symbol_lake", "Lake", string(c.Lake.Symbol)),
	)
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			ID:   "dimensions",
			Name: "Dimensions",
			Params: []core.Parameter{
				core.IntParam("w", "Width", c.Width),
				core.IntParam("h", "Height", c.Height),
			},
		},
		{
			ID:      "generation",
			Name:    "Generation",
			Summary: "Fractal noise",
			Params: []core.Parameter{
				core.StringParam("type", "Noise type", string(c.Noise.Kind)),
				core.Int64Param("seed", "Seed", c.Noise.Seed),
				core.FloatParam("scale", "Scale", c.Noise.Scale),
				core.IntParam("octaves", "Octaves", c.Noise.Octaves),
				core.FloatParam("persistence", "Persistence", c.Noise.Persistence),
				core.FloatParam("lacunarity", "Lacunarity", c.Noise.Lacunarity),
			},
		},
		{
			ID:   "terrain",
			Name: "Terrain",
			Params: []core.Parameter{
				core.FloatParam("water_level", "Water level", c.WaterLevel),
				core.FloatParam("mountain_level", "Mountain level", c.MountainLevel),
				core.StringParam("policy", "Policy", string(c.Policy)),
			},
		},
		{
			ID:   "features",
			Name: "Features",
			Params: []core.Parameter{
				core.IntParam("rivers", "Rivers", c.Features.Rivers),
				core.IntParam("min_river_length", "Min river length", c.Features.MinRiverLength),
				core.BoolParam("lakes", "Lakes", c.Features.Lakes),
			},
		},
		{
			ID:     "symbols",
			Name:   "Symbols",
			Params: symbols,
		},
	}}
}

var controls = []core.ParameterControl{
	{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 999999, HasMin: true, HasMax: true},
	{Key: "scale", Label: "Scale", Type: core.ParamTypeFloat, Step: 1, Min: 10, Max: 200, HasMin: true, HasMax: true},
	{Key: "octaves", Label: "Octaves", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 8, HasMin: true, HasMax: true},
	{Key: "persistence", Label: "Persistence", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.1, Max: 0.9, HasMin: true, HasMax: true},
	{Key: "lacunarity", Label: "Lacunarity", Type: core.ParamTypeFloat, Step: 0.1, Min: 1.5, Max: 3, HasMin: true, HasMax: true},
	{Key: "water_level", Label: "Water level", Type: core.ParamTypeFloat, Step: 0.05, Min: -0.5, Max: 0.6, HasMin: true, HasMax: true},
	{Key: "mountain_level", Label: "Mountain level", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.2, Max: 0.95, HasMin: true, HasMax: true},
	{Key: "rivers", Label: "Rivers", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 10, HasMin: true, HasMax: true},
	{Key: "min_river_length", Label: "Min river length", Type: core.ParamTypeInt, Step: 1, Min: 5, Max: 50, HasMin: true, HasMax: true},
	{Key: "lakes", Label: "Lakes", Type: core.ParamTypeBool},
}

// ParameterControls implements core.ParameterControlsProvider.
func (t *Terrain) ParameterControls() []core.ParameterControl {
	return append([]core.ParameterControl(nil), controls...)
}

// SetIntParameter updates an integer parameter and regenerates. It reports
// false for unknown keys and for values the config rejects.
func (t *Terrain) SetIntParameter(key string, value int) bool {
	c := t.cfg.Clone()
	switch key {
	case "w":
		c.Width = value
	case "h":
		c.Height = value
	case "seed":
		c.Noise.Seed = int64(value)
	case "octaves":
		c.Noise.Octaves = value
	case "rivers":
		c.Features.Rivers = value
	case "min_river_length":
		c.Features.MinRiverLength = value
	default:
		return false
	}
	return t.apply(c)
}

// SetFloatParameter updates a floating point parameter and regenerates.
// Changing either level re-derives the category ranges.
func (t *Terrain) SetFloatParameter(key string, value float64) bool {
	c := t.cfg.Clone()
	switch key {
	case "scale":
		c.Noise.Scale = value
	case "persistence":
		c.Noise.Persistence = value
	case "lacunarity":
		c.Noise.Lacunarity = value
	case "water_level":
		c.WaterLevel = value
		c.DeriveRanges()
	case "mountain_level":
		c.MountainLevel = value
		c.DeriveRanges()
	default:
		return false
	}
	return t.apply(c)
}

// SetBoolParameter toggles a boolean parameter and regenerates.
func (t *Terrain) SetBoolParameter(key string, value bool) bool {
	c := t.cfg.Clone()
	switch key {
	case "lakes":
		c.Features.Lakes = value
	default:
		return false
	}
	return t.apply(c)
}

package terrain

import (
	"fmt"
	"math"
)

// rangeTolerance absorbs float noise when checking that ranges touch.
const rangeTolerance = 1e-9

// Validate checks every invariant the pipeline relies on. It returns an
// *InvalidParametersError listing all violations, or nil.
func (c Config) Validate() error {
	var problems []string
	fail := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if c.Width < 1 || c.Height < 1 {
		fail("dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if !c.Noise.Kind.Valid() {
		fail("unknown noise type %q", c.Noise.Kind)
	}
	if !(c.Noise.Scale > 0) || math.IsInf(c.Noise.Scale, 0) {
		fail("scale must be > 0, got %g", c.Noise.Scale)
	}
	if c.Noise.Octaves < 1 {
		fail("octaves must be >= 1, got %d", c.Noise.Octaves)
	}
	if !(c.Noise.Persistence > 0 && c.Noise.Persistence <= 1) {
		fail("persistence must be in (0, 1], got %g", c.Noise.Persistence)
	}
	if !(c.Noise.Lacunarity >= 1) || math.IsInf(c.Noise.Lacunarity, 0) {
		fail("lacunarity must be >= 1, got %g", c.Noise.Lacunarity)
	}
	if c.Noise.Scale > 0 && c.Noise.Octaves >= 1 && c.Noise.Lacunarity >= 1 {
		extent := float64(max(c.Width, c.Height, 1))
		if f := c.Noise.TopFrequency(); math.IsInf(f, 0) || math.IsInf(f*extent, 0) {
			fail("highest octave frequency overflows (scale %g, lacunarity %g, octaves %d)",
				c.Noise.Scale, c.Noise.Lacunarity, c.Noise.Octaves)
		}
	}
	if !inUnitRange(c.WaterLevel) || !inUnitRange(c.MountainLevel) {
		fail("water and mountain levels must lie in [-1, 1], got %g and %g", c.WaterLevel, c.MountainLevel)
	}
	if !(c.WaterLevel < c.MountainLevel) {
		fail("water level %g must be below mountain level %g", c.WaterLevel, c.MountainLevel)
	}
	switch c.Policy {
	case PolicyRange, PolicyThreshold:
	default:
		fail("unknown classification policy %q", c.Policy)
	}
	if c.Features.Rivers < 0 {
		fail("number of rivers must be >= 0, got %d", c.Features.Rivers)
	}
	if c.Features.MinRiverLength < 1 {
		fail("minimum river length must be >= 1, got %d", c.Features.MinRiverLength)
	}

	for cat := Ocean; cat < NumBaseCategories; cat++ {
		spec := c.Types[cat]
		if len(spec.Symbols) == 0 {
			fail("%s needs at least one symbol", cat)
		}
		for _, r := range spec.Symbols {
			if err := checkGlyph(r); err != nil {
				fail("%s symbol: %v", cat, err)
			}
		}
		if len(spec.Colors) == 0 {
			fail("%s needs at least one color stop", cat)
		}
		if math.IsNaN(spec.Min) || math.IsNaN(spec.Max) || spec.Min > spec.Max {
			fail("%s range [%g, %g] is inverted", cat, spec.Min, spec.Max)
		}
		if cat > Ocean {
			prev := c.Types[cat-1]
			if math.Abs(prev.Max-spec.Min) > rangeTolerance {
				fail("%s range must start where %s ends (%g != %g)", cat, cat-1, spec.Min, prev.Max)
			}
		}
	}
	for _, f := range []struct {
		name  string
		style FeatureStyle
	}{{"river", c.River}, {"lake", c.Lake}} {
		if err := checkGlyph(f.style.Symbol); err != nil || f.style.Symbol == 0 {
			fail("%s symbol %q is not a printable glyph", f.name, f.style.Symbol)
		}
	}

	if len(problems) > 0 {
		return &InvalidParametersError{Problems: problems}
	}
	return nil
}

func inUnitRange(v float64) bool {
	return v >= -1 && v <= 1
}

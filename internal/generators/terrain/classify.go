package terrain

import (
	"math"

	"mapgen/internal/core"
	pcore "mapgen/pkg/core"
)

// Hash salts separating the per-cell decisions.
const (
	saltSymbol uint64 = iota + 1
	saltJitter
)

// thresholdJitter is the half-width of the per-cell boundary perturbation.
const thresholdJitter = 0.02

// TerrainCell is one cell of a classified map.
type TerrainCell struct {
	Height   float64
	Category Category
	Symbol   rune
	Color    core.RGB
}

// Classifier turns a normalised height into a styled cell.
type Classifier interface {
	Policy() Policy
	// Category returns the category for height h at (x, y).
	Category(h float64, x, y int) Category
	// Style renders a cell of the given category.
	Style(cat Category, h float64, x, y int) TerrainCell
}

// NewClassifier returns the strategy selected by c.Policy.
func NewClassifier(c Config) Classifier {
	if c.Policy == PolicyThreshold {
		return NewThresholdClassifier(c)
	}
	return NewRangeClassifier(c)
}

// Classify runs a classifier over every cell of hm. A degenerate height map
// yields a map made entirely of the lowest category.
func Classify(hm *HeightMap, cl Classifier) *TerrainMap {
	m := NewTerrainMap(hm.W, hm.H)
	for y := 0; y < hm.H; y++ {
		for x := 0; x < hm.W; x++ {
			h := hm.At(x, y)
			cat := Ocean
			if !hm.Degenerate {
				cat = cl.Category(h, x, y)
			}
			m.Set(x, y, cl.Style(cat, h, x, y))
		}
	}
	return m
}

// palette styles cells from the per-category specs.
type palette struct {
	seed  int64
	specs [NumBaseCategories]TerrainTypeSpec
}

func (p *palette) style(cat Category, h float64, x, y int) TerrainCell {
	spec := &p.specs[cat]
	return TerrainCell{
		Height:   h,
		Category: cat,
		Symbol:   spec.Symbols[pcore.CellIntN(p.seed, saltSymbol, x, y, len(spec.Symbols))],
		Color:    InterpolateStops(spec.Colors, rangeFactor(h, spec.Min, spec.Max)),
	}
}

// rangeFactor locates h inside [lo, hi], clamped to [0, 1].
func rangeFactor(h, lo, hi float64) float64 {
	if !(hi > lo) {
		return 0
	}
	return core.Clamp((h-lo)/(hi-lo), 0, 1)
}

// InterpolateStops picks the pair of stops bracketing t and blends them
// linearly. A single stop is returned unchanged.
func InterpolateStops(stops []core.RGB, t float64) core.RGB {
	switch len(stops) {
	case 0:
		return core.RGB{}
	case 1:
		return stops[0]
	}
	scaled := t * float64(len(stops)-1)
	idx := min(int(math.Floor(scaled)), len(stops)-2)
	return interpolateColor(stops[idx], stops[idx+1], scaled-float64(idx))
}

func interpolateColor(a, b core.RGB, f float64) core.RGB {
	channel := func(from, to uint8) uint8 {
		v := core.RoundHalfUp(core.Lerp(float64(from), float64(to), f))
		return uint8(core.Clamp(v, 0, 255))
	}
	return core.RGB{R: channel(a.R, b.R), G: channel(a.G, b.G), B: channel(a.B, b.B)}
}

// RangeClassifier gives every category a fixed interval and picks the first
// interval, in Ocean→Mountains order, containing the height. Heights below
// the first interval map to Ocean and above the last to Mountains.
type RangeClassifier struct {
	palette
}

// NewRangeClassifier builds a RangeClassifier from c.Types.
func NewRangeClassifier(c Config) *RangeClassifier {
	return &RangeClassifier{palette{seed: c.Noise.Seed, specs: c.Types}}
}

// Policy implements Classifier.
func (*RangeClassifier) Policy() Policy { return PolicyRange }

// Category implements Classifier.
func (rc *RangeClassifier) Category(h float64, _, _ int) Category {
	for cat := Ocean; cat < Mountains; cat++ {
		if h <= rc.specs[cat].Max {
			return cat
		}
	}
	return Mountains
}

// Style implements Classifier.
func (rc *RangeClassifier) Style(cat Category, h float64, x, y int) TerrainCell {
	return rc.style(cat, h, x, y)
}

// ThresholdClassifier derives boundaries from the water and mountain levels
// and perturbs each comparison by an independent per-cell jitter in
// [-0.02, 0.02]. The jitter is hashed from the seed and coordinates, so
// classifying the same map twice gives the same categories.
type ThresholdClassifier struct {
	palette
	bounds [NumBaseCategories - 1]float64
}

// NewThresholdClassifier builds a ThresholdClassifier. Colours are spread
// across the level-derived bands rather than c.Types' ranges.
func NewThresholdClassifier(c Config) *ThresholdClassifier {
	plains, hills := c.Thresholds()
	specs := c.Types
	for i, r := range c.LevelRanges() {
		specs[i].Min, specs[i].Max = r[0], r[1]
	}
	return &ThresholdClassifier{
		palette: palette{seed: c.Noise.Seed, specs: specs},
		bounds:  [NumBaseCategories - 1]float64{c.WaterLevel, plains, hills},
	}
}

// Policy implements Classifier.
func (*ThresholdClassifier) Policy() Policy { return PolicyThreshold }

// Category implements Classifier.
func (tc *ThresholdClassifier) Category(h float64, x, y int) Category {
	for i, bound := range tc.bounds {
		jitter := (pcore.CellFloat(tc.seed, saltJitter+uint64(i), x, y)*2 - 1) * thresholdJitter
		if h <= bound+jitter {
			return Category(i)
		}
	}
	return Mountains
}

// Style implements Classifier.
func (tc *ThresholdClassifier) Style(cat Category, h float64, x, y int) TerrainCell {
	return tc.style(cat, h, x, y)
}

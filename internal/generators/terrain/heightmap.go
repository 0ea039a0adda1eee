package terrain

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"mapgen/internal/core"
	"mapgen/internal/noise"
	pcore "mapgen/pkg/core"
)

const (
	// heightBiasMax bounds the initial per-cell jitter that tilts the map
	// towards land.
	heightBiasMax = 0.05
	// continentalWeight scales the centre-high, edge-low bias added per octave.
	continentalWeight = 0.05
)

// HeightMap holds normalised heights in [0, 1], row-major.
type HeightMap struct {
	*core.Grid[float64]

	// Degenerate is set when every raw sample was equal; all values are then 0.
	Degenerate bool
}

// TopFrequency is the sampling frequency of the last octave.
func (p NoiseParams) TopFrequency() float64 {
	return math.Pow(p.Lacunarity, float64(p.Octaves-1)) / p.Scale
}

// BuildHeightMap sums octaves of field into a w×h grid and normalises it.
// Identical arguments always produce identical maps. A NaN or infinite sum
// fails with ErrNonFiniteHeight.
func BuildHeightMap(w, h int, p NoiseParams, field noise.Field) (*HeightMap, error) {
	grid := core.NewGrid[float64](w, h)
	values := grid.Cells()

	bias := pcore.NewStream(p.Seed, "height-bias")
	for i := range values {
		values[i] = bias.Range(0, heightBiasMax)
	}

	continental := continentalBias(grid)

	frequency := 1 / p.Scale
	amplitude := 1.0
	for octave := 0; octave < p.Octaves; octave++ {
		seed := p.Seed + int64(octave)
		for y := 0; y < grid.H; y++ {
			for x := 0; x < grid.W; x++ {
				idx := grid.Index(x, y)
				n := field.Noise2D(float64(x)*frequency, float64(y)*frequency, seed)
				values[idx] += (n + continental[idx]) * amplitude
			}
		}
		frequency *= p.Lacunarity
		amplitude *= p.Persistence
	}

	degenerate, err := normalize(values)
	if err != nil {
		return nil, err
	}
	return &HeightMap{Grid: grid, Degenerate: degenerate}, nil
}

// continentalBias returns (1 - 2·d)·weight per cell, where d is the distance
// from the map centre in normalised coordinates.
func continentalBias(g *core.Grid[float64]) []float64 {
	out := make([]float64, g.W*g.H)
	w, h := float64(g.W), float64(g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			d := mgl64.Vec2{float64(x)/w - 0.5, float64(y)/h - 0.5}.Len()
			out[g.Index(x, y)] = (1 - 2*d) * continentalWeight
		}
	}
	return out
}

// normalize remaps values onto [0, 1] in place. It reports true and zeroes the
// slice when every value is equal.
func normalize(values []float64) (bool, error) {
	if len(values) == 0 {
		return true, nil
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false, fmt.Errorf("%w at index %d: %g", ErrNonFiniteHeight, i, v)
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if math.IsInf(span, 0) {
		return false, fmt.Errorf("%w: span from %g to %g overflows", ErrNonFiniteHeight, lo, hi)
	}
	if !(span > 0) {
		for i := range values {
			values[i] = 0
		}
		return true, nil
	}
	for i, v := range values {
		values[i] = (v - lo) / span
	}
	return false, nil
}

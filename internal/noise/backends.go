package noise

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// OpenSimplex samples OpenSimplex noise in [-1, 1].
type OpenSimplex struct {
	gens *seedCache[opensimplex.Noise]
}

// NewOpenSimplex returns an OpenSimplex field caching up to cacheSize
// generators.
func NewOpenSimplex(cacheSize int) *OpenSimplex {
	return &OpenSimplex{gens: newSeedCache(cacheSize, func(seed int64) opensimplex.Noise {
		return opensimplex.New(seed)
	})}
}

// Noise2D implements Field.
func (n *OpenSimplex) Noise2D(x, y float64, seed int64) float64 {
	return n.gens.get(seed).Eval2(x, y)
}

// Classic parameters: alpha is the weight divisor between harmonics, beta the
// harmonic scaling. With a single harmonic only beta's role as base frequency
// remains.
const (
	classicAlpha = 2
	classicBeta  = 2
	classicN     = 1
)

// Classic samples single-harmonic Perlin noise so that octave summation stays
// with the caller.
type Classic struct {
	gens *seedCache[*perlin.Perlin]
}

// NewClassic returns a Classic field caching up to cacheSize generators.
func NewClassic(cacheSize int) *Classic {
	return &Classic{gens: newSeedCache(cacheSize, func(seed int64) *perlin.Perlin {
		return perlin.NewPerlin(classicAlpha, classicBeta, classicN, seed)
	})}
}

// Noise2D implements Field.
func (n *Classic) Noise2D(x, y float64, seed int64) float64 {
	return n.gens.get(seed).Noise2D(x, y)
}

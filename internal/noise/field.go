// Package noise provides seeded 2D noise fields for terrain synthesis.
package noise

import "fmt"

// Field samples a continuous 2D noise value. Implementations are pure: the
// same (x, y, seed) always yields the same value, and they are safe for
// concurrent use.
type Field interface {
	Noise2D(x, y float64, seed int64) float64
}

// Kind names a noise backend.
type Kind string

const (
	// KindPerlin is the built-in gradient noise with quintic fade.
	KindPerlin Kind = "perlin"
	// KindOpenSimplex samples OpenSimplex noise.
	KindOpenSimplex Kind = "opensimplex"
	// KindClassic samples single-octave classic Perlin noise.
	KindClassic Kind = "classic"
)

// Kinds lists the supported backends.
func Kinds() []Kind {
	return []Kind{KindPerlin, KindOpenSimplex, KindClassic}
}

// Valid reports whether k names a known backend.
func (k Kind) Valid() bool {
	switch k {
	case KindPerlin, KindOpenSimplex, KindClassic:
		return true
	}
	return false
}

// New returns the shared Field for kind.
func New(kind Kind) (Field, error) {
	switch kind {
	case KindPerlin, "":
		return defaultPerlin, nil
	case KindOpenSimplex:
		return defaultSimplex, nil
	case KindClassic:
		return defaultClassic, nil
	}
	return nil, fmt.Errorf("noise: unknown kind %q", kind)
}

var (
	defaultPerlin  = NewPerlin(DefaultCacheSize)
	defaultSimplex = NewOpenSimplex(DefaultCacheSize)
	defaultClassic = NewClassic(DefaultCacheSize)
)

package noise

import "math"

// Permutation is the doubled lattice hash table: entries [256, 512) repeat
// [0, 256) so corner lookups never wrap.
type Permutation [512]uint8

// NewPermutation shuffles 0..255 with a seed-driven index and duplicates the
// result. The table depends on seed alone.
func NewPermutation(seed int64) *Permutation {
	var p Permutation
	for i := 0; i < 256; i++ {
		p[i] = uint8(i)
	}
	for i := 255; i > 0; i-- {
		j := seedIndex(seed, i)
		p[i], p[j] = p[j], p[i]
	}
	copy(p[256:], p[:256])
	return &p
}

// seedIndex computes (seed*i) mod (i+1) without overflowing, folded into
// [0, i] for negative seeds.
func seedIndex(seed int64, i int) int {
	m := int64(i + 1)
	s := seed % m
	if s < 0 {
		s += m
	}
	return int((s * int64(i)) % m)
}

// Noise2D evaluates gradient noise at (x, y).
func (p *Permutation) Noise2D(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	xi := int(fx) & 255
	yi := int(fy) & 255
	xf := x - fx
	yf := y - fy

	g00 := grad(p[int(p[xi])+yi], xf, yf)
	g10 := grad(p[int(p[xi+1])+yi], xf-1, yf)
	g01 := grad(p[int(p[xi])+yi+1], xf, yf-1)
	g11 := grad(p[int(p[xi+1])+yi+1], xf-1, yf-1)

	u := fade(xf)
	v := fade(yf)
	return lerp(lerp(g00, g10, u), lerp(g01, g11, u), v)
}

// grad picks one of eight gradient directions from the low three hash bits.
func grad(hash uint8, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		return u - 2*v
	}
	return u + 2*v
}

// fade is the quintic 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Perlin is the built-in gradient noise Field. Permutation tables are built
// once per distinct seed and shared.
type Perlin struct {
	tables *seedCache[*Permutation]
}

// NewPerlin returns a Perlin field caching up to cacheSize tables.
func NewPerlin(cacheSize int) *Perlin {
	return &Perlin{tables: newSeedCache(cacheSize, NewPermutation)}
}

// Noise2D implements Field.
func (n *Perlin) Noise2D(x, y float64, seed int64) float64 {
	return n.tables.get(seed).Noise2D(x, y)
}

package core

import "github.com/segmentio/fasthash/fnv1a"

// CellHash mixes a seed, a salt and grid coordinates into a 64-bit hash. The
// result depends only on its inputs, never on evaluation order.
func CellHash(seed int64, salt uint64, x, y int) uint64 {
	h := fnv1a.HashUint64(uint64(seed))
	h = fnv1a.AddUint64(h, salt)
	h = fnv1a.AddUint64(h, uint64(int64(x)))
	h = fnv1a.AddUint64(h, uint64(int64(y)))
	// fnv1a leaves the low bits poorly mixed for sequential inputs.
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	return h
}

// UnitFloat maps a hash to [0, 1).
func UnitFloat(h uint64) float64 {
	return float64(h>>11) / (1 << 53)
}

// CellFloat returns a uniform value in [0, 1) for the given cell.
func CellFloat(seed int64, salt uint64, x, y int) float64 {
	return UnitFloat(CellHash(seed, salt, x, y))
}

// CellIntN returns a uniform value in [0, n) for the given cell.
func CellIntN(seed int64, salt uint64, x, y, n int) int {
	if n <= 1 {
		return 0
	}
	return int(CellHash(seed, salt, x, y) % uint64(n))
}

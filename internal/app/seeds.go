package app

import (
	"strconv"

	"mapgen/internal/core"
	pcore "mapgen/pkg/core"
)

// maxRandomSeed bounds the seeds drawn for the S key, matching the range of
// the HUD seed control.
const maxRandomSeed = 1000000

// seedOf reports the seed gen is currently using, read back from its
// parameter snapshot so HUD edits are picked up. Generators without a seed
// parameter yield fallback.
func seedOf(gen core.Generator, fallback int64) int64 {
	p, ok := gen.(core.ParameterProvider)
	if !ok {
		return fallback
	}
	param, ok := p.Parameters().Lookup("seed")
	if !ok {
		return fallback
	}
	v, err := strconv.ParseInt(param.Value, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}

// randomSeed draws a seed in [1, maxRandomSeed) other than current. Zero is
// excluded because Reset(0) keeps the active seed.
func randomSeed(r *pcore.RNG, current int64) int64 {
	for {
		s := 1 + r.Int64()%(maxRandomSeed-1)
		if s != current {
			return s
		}
	}
}

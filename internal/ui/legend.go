package ui

import (
	"fmt"

	"mapgen/internal/generators/terrain"
)

// legendLines summarises a map: one line per non-empty category followed by
// the feature counts.
func legendLines(res *terrain.Result) []string {
	if res == nil {
		return nil
	}
	var lines []string
	for cat := terrain.Ocean; cat < terrain.NumCategories; cat++ {
		if res.Stats.Counts[cat] == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-9s %5.1f%%", cat, 100*res.Stats.Fraction(cat)))
	}
	lines = append(lines, fmt.Sprintf("rivers %d  lakes %d", res.Stats.Rivers, res.Stats.Lakes))
	return lines
}

// fillFeatureRGBA tints river and lake cells and clears everything else.
func fillFeatureRGBA(buf []byte, cells []terrain.RenderableCell) {
	for i, c := range cells {
		base := i * 4
		var r, g, b, a byte
		switch c.Category {
		case terrain.River:
			r, g, b, a = 40, 200, 255, 200
		case terrain.Lake:
			r, g, b, a = 20, 90, 230, 200
		}
		buf[base+0] = r
		buf[base+1] = g
		buf[base+2] = b
		buf[base+3] = a
	}
}

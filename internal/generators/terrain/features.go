package terrain

import (
	"slices"

	"mapgen/internal/core"
)

const (
	// riverSourceMin is the lowest height a river may start from.
	riverSourceMin = 0.3
	// lakeSeedBand is how far above the water level a lake seed is looked for.
	lakeSeedBand = 0.1
)

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// RiverPath is the ordered list of cells a river flows through, source first.
type RiverPath []Point

// LakeRegion is a connected set of cells filled as one lake, seed first.
type LakeRegion []Point

// TerrainMap is a classified grid.
type TerrainMap struct {
	*core.Grid[TerrainCell]
}

// NewTerrainMap allocates an empty w×h map.
func NewTerrainMap(w, h int) *TerrainMap {
	return &TerrainMap{core.NewGrid[TerrainCell](w, h)}
}

// Counts tallies the cells of each category.
func (m *TerrainMap) Counts() [NumCategories]int {
	var out [NumCategories]int
	for _, c := range m.Cells() {
		out[c.Category]++
	}
	return out
}

func (m *TerrainMap) stamp(p Point, cat Category, style FeatureStyle) {
	c := m.Ptr(p.X, p.Y)
	c.Category = cat
	c.Symbol = style.Symbol
	c.Color = style.Color
}

// CarveRivers traces up to n rivers by steepest descent from the highest
// local maxima. Paths shorter than minLength are traced but not marked.
// Returns the marked paths in source-height order.
func CarveRivers(m *TerrainMap, n, minLength int, style FeatureStyle) []RiverPath {
	if n <= 0 {
		return nil
	}
	sources := riverSources(m)
	if len(sources) > n {
		sources = sources[:n]
	}
	var rivers []RiverPath
	for _, src := range sources {
		path := tracePath(m, src)
		if len(path) < minLength {
			continue
		}
		for _, p := range path {
			m.stamp(p, River, style)
		}
		rivers = append(rivers, path)
	}
	return rivers
}

// riverSources returns the cells above riverSourceMin that no neighbour
// exceeds, highest first. Ties keep row-major order.
func riverSources(m *TerrainMap) []Point {
	var out []Point
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			h := m.At(x, y).Height
			if h <= riverSourceMin {
				continue
			}
			peak := true
			m.EachNeighbor(x, y, func(nx, ny int) {
				if m.At(nx, ny).Height > h {
					peak = false
				}
			})
			if peak {
				out = append(out, Point{x, y})
			}
		}
	}
	slices.SortStableFunc(out, func(a, b Point) int {
		ha, hb := m.At(a.X, a.Y).Height, m.At(b.X, b.Y).Height
		switch {
		case ha > hb:
			return -1
		case ha < hb:
			return 1
		}
		return 0
	})
	return out
}

// tracePath follows the lowest strictly-lower neighbour from src until it
// reaches a pit or the next step would enter the ocean. The first neighbour
// found wins ties.
func tracePath(m *TerrainMap, src Point) RiverPath {
	path := RiverPath{src}
	cur := src
	for {
		lowest := m.At(cur.X, cur.Y).Height
		next, found := cur, false
		m.EachNeighbor(cur.X, cur.Y, func(nx, ny int) {
			if h := m.At(nx, ny).Height; h < lowest {
				lowest = h
				next = Point{nx, ny}
				found = true
			}
		})
		if !found || m.At(next.X, next.Y).Category == Ocean {
			return path
		}
		path = append(path, next)
		cur = next
	}
}

// CarveLakes fills every basin whose floor lies at or below waterLevel.
// A seed is a land cell no higher than waterLevel with no strictly-lower
// neighbour; the fill spreads through 8-connected land cells at or below
// waterLevel and never enters ocean, river or earlier lake cells.
func CarveLakes(m *TerrainMap, waterLevel float64, style FeatureStyle) []LakeRegion {
	var lakes []LakeRegion
	visited := make([]bool, m.W*m.H)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if visited[m.Index(x, y)] || !isLakeSeed(m, x, y, waterLevel) {
				continue
			}
			lake := floodFill(m, Point{x, y}, waterLevel, visited)
			for _, p := range lake {
				m.stamp(p, Lake, style)
			}
			lakes = append(lakes, lake)
		}
	}
	return lakes
}

func isLakeSeed(m *TerrainMap, x, y int, waterLevel float64) bool {
	c := m.At(x, y)
	if !c.Category.IsLand() || c.Height > waterLevel || c.Height >= waterLevel+lakeSeedBand {
		return false
	}
	basin := true
	m.EachNeighbor(x, y, func(nx, ny int) {
		if m.At(nx, ny).Height < c.Height {
			basin = false
		}
	})
	return basin
}

func floodFill(m *TerrainMap, seed Point, waterLevel float64, visited []bool) LakeRegion {
	admit := func(x, y int) bool {
		c := m.At(x, y)
		return c.Category.IsLand() && c.Height <= waterLevel
	}
	visited[m.Index(seed.X, seed.Y)] = true
	region := LakeRegion{seed}
	for head := 0; head < len(region); head++ {
		p := region[head]
		m.EachNeighbor(p.X, p.Y, func(nx, ny int) {
			idx := m.Index(nx, ny)
			if visited[idx] || !admit(nx, ny) {
				return
			}
			visited[idx] = true
			region = append(region, Point{nx, ny})
		})
	}
	return region
}

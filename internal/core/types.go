package core

import (
	"fmt"
	"image/color"
	"sort"
	"sync"
)

// Size describes the dimensions of a generated grid.
type Size struct {
	W int
	H int
}

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// RGBA converts the colour to an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Hex formats the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses #rrggbb or rrggbb.
func ParseHex(s string) (RGB, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	var c RGB
	if len(s) != 6 {
		return c, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("color %q: %w", s, err)
	}
	return c, nil
}

// Cell is the renderable projection of one grid cell.
type Cell struct {
	Symbol rune
	Color  RGB
}

// Info carries the descriptive metadata of a generator.
type Info struct {
	ID          string
	Name        string
	Description string
	Author      string
}

// Generator defines the minimal contract a map generator must implement.
// Reset regenerates the full map; Cells exposes the last result in row-major
// order.
type Generator interface {
	Info() Info
	Size() Size
	Reset(seed int64) error
	Cells() []Cell
}

// Factory constructs a Generator using an optional configuration map.
type Factory func(cfg map[string]string) (Generator, error)

// DefaultGenerator is the id used when none is requested.
const DefaultGenerator = "terrain-default"

var (
	registryMu sync.RWMutex
	generators = map[string]Factory{}
)

// Register adds a generator factory under the provided id. Registering the
// same id twice or a nil factory panics.
func Register(id string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if id == "" || f == nil {
		panic("core: Register called with empty id or nil factory")
	}
	if _, dup := generators[id]; dup {
		panic("core: Register called twice for generator " + id)
	}
	generators[id] = f
}

// Lookup returns the factory registered under id.
func Lookup(id string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := generators[id]
	return f, ok
}

// Names lists registered generator ids in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(generators))
	for id := range generators {
		names = append(names, id)
	}
	sort.Strings(names)
	return names
}

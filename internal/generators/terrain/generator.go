package terrain

import (
	"log/slog"

	"mapgen/internal/core"
)

// ID is the registry id of the terrain generator.
const ID = core.DefaultGenerator

var info = core.Info{
	ID:          ID,
	Name:        "Simple Terrain",
	Description: "Fractal noise terrain with oceans, plains, hills, mountains, rivers and lakes.",
	Author:      "@mmcdole",
}

// Terrain adapts the pipeline to core.Generator. It keeps the last result so
// viewers can redraw without regenerating.
type Terrain struct {
	cfg      Config
	pipeline Pipeline
	result   *Result
}

// New generates an initial map from cfg.
func New(cfg Config) (*Terrain, error) {
	return NewWithLogger(cfg, nil)
}

// NewWithLogger is New with an explicit logger; nil means slog.Default.
func NewWithLogger(cfg Config, logger *slog.Logger) (*Terrain, error) {
	t := &Terrain{cfg: cfg.Clone(), pipeline: Pipeline{Logger: logger}}
	if err := t.regenerate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Info implements core.Generator.
func (t *Terrain) Info() core.Info { return info }

// Size implements core.Generator.
func (t *Terrain) Size() core.Size { return core.Size{W: t.cfg.Width, H: t.cfg.Height} }

// Reset regenerates the map with seed. A zero seed keeps the configured one.
func (t *Terrain) Reset(seed int64) error {
	if seed != 0 {
		t.cfg.Noise.Seed = seed
	}
	return t.regenerate()
}

// Cells implements core.Generator.
func (t *Terrain) Cells() []core.Cell { return t.result.CoreCells() }

// Result returns the last generated map.
func (t *Terrain) Result() *Result { return t.result }

// Config returns a copy of the active configuration.
func (t *Terrain) Config() Config { return t.cfg.Clone() }

// HeightField returns the normalised heights of the last map.
func (t *Terrain) HeightField() []float64 { return t.result.Heights }

func (t *Terrain) regenerate() error {
	res, err := t.pipeline.Generate(t.cfg)
	if err != nil {
		return err
	}
	t.result = res
	return nil
}

// apply swaps in cfg and regenerates, restoring the previous config if cfg is
// rejected.
func (t *Terrain) apply(cfg Config) bool {
	prev := t.cfg
	t.cfg = cfg
	if err := t.regenerate(); err != nil {
		t.cfg = prev
		return false
	}
	return true
}

func init() {
	core.Register(ID, func(cfg map[string]string) (core.Generator, error) {
		t, err := New(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return t, nil
	})
}

package terrain

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"mapgen/internal/core"
	"mapgen/internal/noise"
)

// RenderableCell is the externally visible projection of a TerrainCell.
type RenderableCell struct {
	Symbol   rune
	Color    core.RGB
	Category Category
}

// Cell drops the category.
func (c RenderableCell) Cell() core.Cell {
	return core.Cell{Symbol: c.Symbol, Color: c.Color}
}

// Stats summarises a generated map.
type Stats struct {
	Counts  [NumCategories]int
	Rivers  int
	Lakes   int
	Elapsed time.Duration
}

// Fraction returns the share of cells in category c.
func (s Stats) Fraction(c Category) float64 {
	total := 0
	for _, n := range s.Counts {
		total += n
	}
	if total == 0 {
		return 0
	}
	return float64(s.Counts[c]) / float64(total)
}

// Result is the output of one Generate call.
type Result struct {
	ID     uuid.UUID
	Width  int
	Height int
	// Cells is row-major, Width*Height long.
	Cells []RenderableCell
	// Heights holds the normalised height of each cell, row-major.
	Heights []float64
	Stats   Stats

	Degenerate bool
	// Warnings carries non-fatal conditions such as ErrDegenerateHeightField.
	Warnings []error
}

// At returns the cell at (x, y).
func (r *Result) At(x, y int) RenderableCell { return r.Cells[y*r.Width+x] }

// CoreCells projects the result onto core.Cell.
func (r *Result) CoreCells() []core.Cell {
	out := make([]core.Cell, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = c.Cell()
	}
	return out
}

// Pipeline sequences height map construction, classification and feature
// carving. The zero value logs to slog.Default and samples Perlin noise.
type Pipeline struct {
	Logger *slog.Logger
	// Noise overrides the field selected by Config.Noise.Kind.
	Noise noise.Field
}

// Generate validates cfg and produces a complete map. Invalid configs are
// rejected with an *InvalidParametersError before anything is allocated.
func (p *Pipeline) Generate(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	id := uuid.New()
	log := p.logger().With("map", id.String())

	field := p.Noise
	if field == nil {
		f, err := noise.New(cfg.Noise.Kind)
		if err != nil {
			return nil, &InvalidParametersError{Problems: []string{err.Error()}}
		}
		field = f
	}

	hm, err := BuildHeightMap(cfg.Width, cfg.Height, cfg.Noise, field)
	if err != nil {
		log.Error("height map failed", "err", err)
		return nil, fmt.Errorf("height map: %w", err)
	}
	log.Debug("height map built", "w", cfg.Width, "h", cfg.Height, "octaves", cfg.Noise.Octaves, "noise", cfg.Noise.Kind)

	res := &Result{ID: id, Width: hm.W, Height: hm.H, Degenerate: hm.Degenerate}
	if hm.Degenerate {
		log.Warn("height field is flat, emitting ocean map", "seed", cfg.Noise.Seed)
		res.Warnings = append(res.Warnings, ErrDegenerateHeightField)
	}

	m := Classify(hm, NewClassifier(cfg))
	log.Debug("classified", "policy", cfg.Policy)

	rivers := CarveRivers(m, cfg.Features.Rivers, cfg.Features.MinRiverLength, cfg.River)
	var lakes []LakeRegion
	if cfg.Features.Lakes {
		lakes = CarveLakes(m, cfg.WaterLevel, cfg.Lake)
	}
	log.Debug("features carved", "rivers", len(rivers), "lakes", len(lakes))

	res.Cells = make([]RenderableCell, len(m.Cells()))
	res.Heights = make([]float64, len(m.Cells()))
	for i, c := range m.Cells() {
		res.Cells[i] = RenderableCell{Symbol: c.Symbol, Color: c.Color, Category: c.Category}
		res.Heights[i] = c.Height
	}
	res.Stats = Stats{
		Counts:  m.Counts(),
		Rivers:  len(rivers),
		Lakes:   len(lakes),
		Elapsed: time.Since(start),
	}
	log.Info("map generated", "seed", cfg.Noise.Seed, "rivers", res.Stats.Rivers, "lakes", res.Stats.Lakes, "elapsed", res.Stats.Elapsed)
	return res, nil
}

func (p *Pipeline) logger() *slog.Logger {
	if p == nil || p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}

// Generate runs cfg through a zero Pipeline.
func Generate(cfg Config) (*Result, error) {
	var p Pipeline
	return p.Generate(cfg)
}

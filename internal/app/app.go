//go:build ebiten

package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"mapgen/internal/core"
	"mapgen/internal/render"
	"mapgen/internal/ui"
	pcore "mapgen/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a map generator to the ebiten.Game interface.
type Game struct {
	gen     core.Generator
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	log     *slog.Logger

	cells    []core.Cell
	scale    int
	hudWidth int
	seed     int64
	rng      *pcore.RNG
}

// New constructs a Game for the provided generator.
func New(gen core.Generator, scale, hudWidth int, seed int64, log *slog.Logger) *Game {
	if log == nil {
		log = slog.Default()
	}
	g := &Game{
		gen:      gen,
		overlay:  ui.NewOverlay(gen, scale),
		hud:      ui.NewHUD(gen, hudWidth),
		log:      log,
		scale:    scale,
		hudWidth: hudWidth,
		seed:     seedOf(gen, seed),
		rng:      pcore.NewRNG(time.Now().UnixNano()),
	}
	g.refresh()
	return g
}

// Reset regenerates the map with the provided seed.
func (g *Game) Reset(seed int64) {
	if err := g.gen.Reset(seed); err != nil {
		g.log.Error("regenerate failed", "seed", seed, "err", err)
		return
	}
	g.seed = seedOf(g.gen, seed)
	g.refresh()
}

// refresh re-reads the cells and resizes the painter when the map changed
// dimensions.
func (g *Game) refresh() {
	g.cells = g.gen.Cells()
	size := g.gen.Size()
	if g.painter == nil {
		g.painter = render.NewGridPainter(size.W, size.H)
		return
	}
	if w, h := g.painter.Size(); w != size.W || h != size.H {
		g.painter = render.NewGridPainter(size.W, size.H)
		ebiten.SetWindowSize(size.W*g.scale+g.hudWidth, size.H*g.scale)
	}
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(seedOf(g.gen, g.seed))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(randomSeed(g.rng, g.seed))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.savePNG()
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil && g.hud.Update(g.gen.Size().W*g.scale) {
		g.seed = seedOf(g.gen, g.seed)
		g.refresh()
	}
	return nil
}

func (g *Game) savePNG() {
	size := g.gen.Size()
	name := fmt.Sprintf("%s-%d.png", g.gen.Info().ID, time.Now().Unix())
	f, err := os.Create(name)
	if err != nil {
		g.log.Error("save png", "err", err)
		return
	}
	defer f.Close()
	m := render.Map{W: size.W, H: size.H, Cells: g.cells}
	if err := render.WritePNG(f, m, g.scale); err != nil {
		g.log.Error("save png", "err", err)
		return
	}
	g.log.Info("saved png", "path", name)
}

// Draw renders the current map, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.cells, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.gen.Size().W*g.scale, g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.gen.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}

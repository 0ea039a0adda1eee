//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"mapgen/internal/core"
)

// GridPainter keeps one RGBA image per map and redraws it from cell data.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads cell colours into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []core.Cell, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillCellsRGBA(gp.buf, cells)
	gp.draw(dst, scale)
}

// BlitHeights draws a translucent greyscale height layer.
func (gp *GridPainter) BlitHeights(dst *ebiten.Image, heights []float64, alpha uint8, scale int) {
	if len(heights) != gp.w*gp.h {
		return
	}
	fillHeightRGBA(gp.buf, heights, alpha)
	gp.draw(dst, scale)
}

func (gp *GridPainter) draw(dst *ebiten.Image, scale int) {
	gp.img.WritePixels(gp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

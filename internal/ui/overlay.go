//go:build ebiten

package ui

import (
	"image/color"

	"mapgen/internal/core"
	"mapgen/internal/generators/terrain"
	"mapgen/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type heightFieldProvider interface {
	HeightField() []float64
}

type resultProvider interface {
	Result() *terrain.Result
}

// heightAlpha is the opacity of the height shading layer.
const heightAlpha = 170

// Overlay draws optional debugging layers on top of the map: 1 toggles height
// shading, 2 highlights rivers and lakes, 3 shows the category legend.
type Overlay struct {
	gen          core.Generator
	scale        int
	showHeight   bool
	showFeatures bool
	showLegend   bool

	heights *render.GridPainter

	featureImg *ebiten.Image
	featureBuf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(gen core.Generator, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{gen: gen, scale: scale}
}

// Update polls the toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHeight = !o.showHeight
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showFeatures = !o.showFeatures
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showLegend = !o.showLegend
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.gen.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.showHeight {
		if provider, ok := o.gen.(heightFieldProvider); ok {
			if w, h := o.sizeOf(o.heights); w != size.W || h != size.H {
				o.heights = render.NewGridPainter(size.W, size.H)
			}
			o.heights.BlitHeights(screen, provider.HeightField(), heightAlpha, o.scale)
		}
	}
	provider, ok := o.gen.(resultProvider)
	if !ok {
		return
	}
	res := provider.Result()
	if o.showFeatures {
		o.drawFeatures(screen, res, size)
	}
	if o.showLegend {
		o.drawLegend(screen, res)
	}
}

func (o *Overlay) sizeOf(gp *render.GridPainter) (int, int) {
	if gp == nil {
		return 0, 0
	}
	return gp.Size()
}

func (o *Overlay) drawFeatures(screen *ebiten.Image, res *terrain.Result, size core.Size) {
	total := size.W * size.H
	if res == nil || len(res.Cells) != total {
		return
	}
	if o.featureImg == nil || o.featureImg.Bounds().Dx() != size.W || o.featureImg.Bounds().Dy() != size.H {
		o.featureImg = ebiten.NewImage(size.W, size.H)
		o.featureBuf = make([]byte, 4*total)
	}
	fillFeatureRGBA(o.featureBuf, res.Cells)
	o.featureImg.WritePixels(o.featureBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.featureImg, op)
}

func (o *Overlay) drawLegend(screen *ebiten.Image, res *terrain.Result) {
	face := basicfont.Face7x13
	y := 16
	for _, line := range legendLines(res) {
		text.Draw(screen, line, face, 9, y+1, color.Black)
		text.Draw(screen, line, face, 8, y, color.RGBA{R: 240, G: 240, B: 245, A: 255})
		y += 15
	}
}

package render

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// MaxScale bounds the per-cell pixel size of rendered images.
const MaxScale = 64

// Image returns m as an RGBA image with one pixel per cell.
func Image(m Map) (*image.RGBA, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, m.W, m.H))
	fillCellsRGBA(img.Pix, m.Cells)
	return img, nil
}

// HeightImage returns heights as an opaque greyscale RGBA image.
func HeightImage(w, h int, heights []float64) (*image.RGBA, error) {
	if w < 1 || h < 1 || len(heights) != w*h {
		return nil, fmt.Errorf("%w: %dx%d with %d heights", ErrShape, w, h, len(heights))
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillHeightRGBA(img.Pix, heights, 0xff)
	return img, nil
}

// Scale enlarges src by an integer factor without smoothing.
func Scale(src image.Image, factor int) image.Image {
	if factor <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// WritePNG encodes m as a PNG with scale×scale pixels per cell.
func WritePNG(w io.Writer, m Map, scale int) error {
	if scale > MaxScale {
		return fmt.Errorf("render: scale %d exceeds %d", scale, MaxScale)
	}
	img, err := Image(m)
	if err != nil {
		return err
	}
	if err := png.Encode(w, Scale(img, scale)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

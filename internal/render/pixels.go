package render

import (
	"mapgen/internal/core"
)

// fillCellsRGBA writes one opaque pixel per cell into buf.
func fillCellsRGBA(buf []byte, cells []core.Cell) {
	for i, c := range cells {
		base := i * 4
		buf[base+0] = c.Color.R
		buf[base+1] = c.Color.G
		buf[base+2] = c.Color.B
		buf[base+3] = 0xff
	}
}

// fillHeightRGBA shades heights in [0, 1] from black to white with the given
// alpha. Values outside [0, 1] are clamped.
func fillHeightRGBA(buf []byte, heights []float64, alpha uint8) {
	for i, h := range heights {
		base := i * 4
		v := uint8(core.RoundHalfUp(core.Clamp(h, 0, 1) * 255))
		// Premultiplied, as ebiten and image.RGBA expect.
		p := uint8((uint16(v) * uint16(alpha)) / 255)
		buf[base+0] = p
		buf[base+1] = p
		buf[base+2] = p
		buf[base+3] = alpha
	}
}

// Package render projects generated maps onto text, HTML and images.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"mapgen/internal/core"
)

// Format names an output projection.
type Format string

const (
	FormatText Format = "text"
	FormatANSI Format = "ansi"
	FormatHTML Format = "html"
	FormatPNG  Format = "png"
)

// Formats lists every supported projection.
func Formats() []Format {
	return []Format{FormatText, FormatANSI, FormatHTML, FormatPNG}
}

// ErrShape is returned when the cell count does not match the dimensions.
var ErrShape = errors.New("cells do not match map dimensions")

// Map is the renderable view of a generated grid.
type Map struct {
	W, H  int
	Cells []core.Cell
}

func (m Map) check() error {
	if m.W < 1 || m.H < 1 || len(m.Cells) != m.W*m.H {
		return fmt.Errorf("%w: %dx%d with %d cells", ErrShape, m.W, m.H, len(m.Cells))
	}
	return nil
}

func (m Map) row(y int) []core.Cell { return m.Cells[y*m.W : (y+1)*m.W] }

// Options tunes a projection.
type Options struct {
	// Scale is the pixel size of one cell in PNG output.
	Scale int
}

// Write renders m to w in the given format.
func Write(w io.Writer, m Map, format Format, opts Options) error {
	switch format {
	case FormatText:
		return WriteText(w, m)
	case FormatANSI:
		return WriteANSI(w, m)
	case FormatHTML:
		return WriteHTML(w, m)
	case FormatPNG:
		return WritePNG(w, m, opts.Scale)
	}
	return fmt.Errorf("render: unknown format %q", format)
}

// WriteText writes symbols only, one line per row.
func WriteText(w io.Writer, m Map) error {
	if err := m.check(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for y := 0; y < m.H; y++ {
		for _, c := range m.row(y) {
			bw.WriteRune(c.Symbol)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteANSI writes symbols coloured with 24-bit SGR escapes. Escapes are only
// emitted when the colour changes along a row.
func WriteANSI(w io.Writer, m Map) error {
	if err := m.check(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for y := 0; y < m.H; y++ {
		var prev core.RGB
		for x, c := range m.row(y) {
			if x == 0 || c.Color != prev {
				fmt.Fprintf(bw, "\x1b[38;2;%d;%d;%dm", c.Color.R, c.Color.G, c.Color.B)
				prev = c.Color
			}
			bw.WriteRune(c.Symbol)
		}
		bw.WriteString("\x1b[0m\n")
	}
	return bw.Flush()
}

// WriteHTML writes one coloured span per cell inside a pre block.
func WriteHTML(w io.Writer, m Map) error {
	if err := m.check(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	bw.WriteString("<pre class=\"terrain\">\n")
	for y := 0; y < m.H; y++ {
		for _, c := range m.row(y) {
			fmt.Fprintf(bw, "<span style=\"color: rgb(%d, %d, %d)\">%s</span>",
				c.Color.R, c.Color.G, c.Color.B, html.EscapeString(string(c.Symbol)))
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("</pre>\n")
	return bw.Flush()
}

// Lines returns the plain symbol rows of m.
func Lines(m Map) []string {
	if m.check() != nil {
		return nil
	}
	out := make([]string, m.H)
	var sb strings.Builder
	for y := range out {
		sb.Reset()
		for _, c := range m.row(y) {
			sb.WriteRune(c.Symbol)
		}
		out[y] = sb.String()
	}
	return out
}

package terrain

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// ParseGlyphs splits s into single-cell glyphs. The string is NFC normalised
// first so composed characters count as one glyph.
func ParseGlyphs(s string) ([]rune, error) {
	s = norm.NFC.String(s)
	if s == "" {
		return nil, fmt.Errorf("no glyphs given")
	}
	glyphs := make([]rune, 0, len(s))
	for _, r := range s {
		if err := checkGlyph(r); err != nil {
			return nil, err
		}
		glyphs = append(glyphs, r)
	}
	return glyphs, nil
}

// ParseGlyph parses exactly one glyph.
func ParseGlyph(s string) (rune, error) {
	glyphs, err := ParseGlyphs(s)
	if err != nil {
		return 0, err
	}
	if len(glyphs) != 1 {
		return 0, fmt.Errorf("%q: want exactly one glyph, got %d", s, len(glyphs))
	}
	return glyphs[0], nil
}

// checkGlyph rejects runes that would break a monospaced grid.
func checkGlyph(r rune) error {
	switch {
	case r == unicode.ReplacementChar:
		return fmt.Errorf("invalid UTF-8 in glyph")
	case unicode.IsControl(r) || unicode.Is(unicode.Mn, r):
		return fmt.Errorf("glyph %U is not printable on its own", r)
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return fmt.Errorf("glyph %q occupies two columns", r)
	}
	return nil
}

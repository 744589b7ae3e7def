package dlist

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/dlist/geom"
)

// Range is a half-open range of character indices.
type Range struct {
	Begin, Length int
}

// End returns the index just past the range.
func (r Range) End() int {
	return r.Begin + r.Length
}

// Contains reports whether i lies inside the range.
func (r Range) Contains(i int) bool {
	return r.Begin <= i && i < r.End()
}

// TextRun is a shaped run of text. Several TextItems usually share one run,
// each drawing its own Range of it.
type TextRun struct {
	// Text is the source text; glyph clusters index into it.
	Text []rune
	// Glyphs are the shaped glyphs in visual order.
	Glyphs []shaping.Glyph
	// Direction is the direction the run was shaped in.
	Direction di.Direction
	// FontSize is the em size the run was shaped at.
	FontSize geom.Au
}

// GlyphsInRange returns the glyphs whose cluster starts inside r, keeping
// their visual order.
func (t *TextRun) GlyphsInRange(r Range) []shaping.Glyph {
	var out []shaping.Glyph
	for _, g := range t.Glyphs {
		if r.Contains(g.TextIndex()) {
			out = append(out, g)
		}
	}
	return out
}

// Advance returns the summed advance of glyphs.
func Advance(glyphs []shaping.Glyph) geom.Au {
	var a geom.Au
	for _, g := range glyphs {
		a += g.Advance
	}
	return a
}

// Package shape turns strings into dlist.TextRuns using the HarfBuzz shaper
// from go-text/typesetting.
//
// A paragraph is split into bidi runs, then into script runs, and every
// piece is shaped on its own. Glyphs come back in visual order with their
// clusters indexing the run's rune slice, which is what dlist.TextItem
// ranges and the raster glyph drawer expect.
//
//	s, _ := shape.Default()
//	run := s.Shape("Hello, world", geom.Px(16))
package shape

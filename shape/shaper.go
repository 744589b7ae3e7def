package shape

import (
	"bytes"
	"fmt"
	"slices"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/geom"
)

// Option configures a Shaper.
type Option func(*Shaper)

// WithDirection sets the paragraph base direction. Only di.DirectionLTR and
// di.DirectionRTL are meaningful; the default is LTR.
func WithDirection(d di.Direction) Option {
	return func(s *Shaper) {
		s.base = d
	}
}

// WithLanguage sets the language passed to the shaper. The default is "en".
func WithLanguage(lang string) Option {
	return func(s *Shaper) {
		s.lang = language.NewLanguage(lang)
	}
}

// Shaper shapes text with a single font. It is safe for concurrent use.
type Shaper struct {
	font *font.Font
	base di.Direction
	lang language.Language

	// HarfbuzzShaper keeps a scratch buffer and is not safe for concurrent use.
	pool sync.Pool
}

// New parses TrueType or OpenType data and returns a shaper for it.
func New(data []byte, opts ...Option) (*Shaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("shape: parse font: %w", err)
	}
	s := &Shaper{
		font: face.Font,
		base: di.DirectionLTR,
		lang: language.NewLanguage("en"),
		pool: sync.Pool{New: func() any { return new(shaping.HarfbuzzShaper) }},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

var goRegular = sync.OnceValues(func() (*Shaper, error) {
	return New(goregular.TTF)
})

// Default returns a shared shaper for the Go Regular font.
func Default() (*Shaper, error) {
	return goRegular()
}

// Shape shapes text at the given em size. The run's direction is the
// paragraph base direction.
func (s *Shaper) Shape(text string, size geom.Au) *dlist.TextRun {
	runes := []rune(text)
	run := &dlist.TextRun{Text: runes, Direction: s.base, FontSize: size}
	if len(runes) == 0 {
		return run
	}

	// font.Face caches per-glyph data and is not safe for concurrent use.
	face := font.NewFace(s.font)
	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	defer s.pool.Put(hb)

	pieces := s.split(runes)
	if s.base.Progression() == di.TowardTopLeft {
		slices.Reverse(pieces)
	}
	for _, p := range pieces {
		in := shaping.Input{
			Text:      runes,
			RunStart:  p.start,
			RunEnd:    p.end,
			Direction: p.dir,
			Face:      face,
			Size:      size,
			Script:    p.script,
			Language:  s.lang,
		}
		out := hb.Shape(in)
		run.Glyphs = append(run.Glyphs, out.Glyphs...)
	}

	dlist.Logger().Debug("shape: shaped run",
		"runes", len(runes), "glyphs", len(run.Glyphs), "pieces", len(pieces),
		"advance", dlist.Advance(run.Glyphs))
	return run
}

package raster

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// Option configures a Canvas.
type Option func(*options)

type options struct {
	face   font.Face
	font   *opentype.Font
	images *ImageCache
}

// WithFontFace draws every glyph run with face, whatever its font size.
// The face is used by a single canvas and must not be shared between
// canvases painted concurrently.
func WithFontFace(face font.Face) Option {
	return func(o *options) {
		o.face = face
	}
}

// WithFont draws glyph runs with faces of f sized to each run.
// The default font is Go Regular.
func WithFont(f *opentype.Font) Option {
	return func(o *options) {
		o.font = f
	}
}

// WithImageCache shares a cache of resampled images between canvases.
// By default every canvas has a private cache.
func WithImageCache(c *ImageCache) Option {
	return func(o *options) {
		o.images = c
	}
}

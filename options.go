package dlist

import (
	"io"

	"github.com/gogpu/dlist/geom"
)

// PaintOption configures a PaintContext during creation.
//
// Example:
//
//	pc := dlist.NewPaintContext(canvas, dlist.WithDumpOptimized(os.Stderr))
type PaintOption func(*paintOptions)

// paintOptions holds optional configuration for painting.
type paintOptions struct {
	dumpOptimized io.Writer
	screenRect    geom.Rect
}

// defaultPaintOptions returns the default paint options.
func defaultPaintOptions() paintOptions {
	return paintOptions{
		screenRect: geom.MaxRect,
	}
}

// WithDumpOptimized writes every optimized display list to w, with its tile
// bounds, before it is painted.
func WithDumpOptimized(w io.Writer) PaintOption {
	return func(o *paintOptions) {
		o.dumpOptimized = w
	}
}

// WithScreenRect records the area of the page visible on screen. Backends may
// use it to size temporary surfaces; it does not clip painting.
func WithScreenRect(r geom.Rect) PaintOption {
	return func(o *paintOptions) {
		o.screenRect = r
	}
}

package tile

import (
	"image/color"
	"runtime"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/raster"
)

// Option configures a Painter.
type Option func(*Painter)

// WithWorkers bounds the number of tiles painted at once.
// Non-positive values select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(p *Painter) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		p.workers = n
	}
}

// WithTileSize sets the tile edge in device pixels.
func WithTileSize(size int) Option {
	return func(p *Painter) {
		if size > 0 {
			p.tileSize = size
		}
	}
}

// WithBackground fills every tile with c before painting.
// By default tiles start transparent.
func WithBackground(c color.Color) Option {
	return func(p *Painter) {
		p.background = c
	}
}

// WithScale sets the number of device pixels per page pixel.
func WithScale(scale float32) Option {
	return func(p *Painter) {
		if scale > 0 {
			p.scale = scale
		}
	}
}

// WithImageCache shares a resampled image cache with other painters.
func WithImageCache(c *raster.ImageCache) Option {
	return func(p *Painter) {
		p.images = c
	}
}

// WithCanvasOptions passes options to every tile canvas.
func WithCanvasOptions(opts ...raster.Option) Option {
	return func(p *Painter) {
		p.canvasOpts = append(p.canvasOpts, opts...)
	}
}

// WithPaintOptions passes options to every tile's dlist.PaintContext.
// Tiles paint concurrently, so a writer given to dlist.WithDumpOptimized
// must tolerate concurrent writes or be paired with WithWorkers(1).
func WithPaintOptions(opts ...dlist.PaintOption) Option {
	return func(p *Painter) {
		p.paintOpts = append(p.paintOpts, opts...)
	}
}

package raster

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/effects"
	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/internal/blend"
	"github.com/gogpu/dlist/internal/filter"
)

// TemporaryDrawTarget returns a transparent canvas of the same size sharing
// the transform, fonts and image cache, or c itself when filters and mode
// need no isolation.
func (c *Canvas) TemporaryDrawTarget(filters effects.Set, mode effects.BlendMode) dlist.Backend {
	if !effects.NeedsIsolation(filters, mode) {
		return c
	}
	return &Canvas{
		img:       image.NewRGBA(c.img.Rect),
		transform: c.transform,
		clips:     newClipStack(c.img.Rect),
		opts:      c.opts,
		images:    c.images,
		faces:     c.faces,
	}
}

// CompositeTemporaryDrawTarget applies filters to tmp in order and blends
// it into c with mode through the current clip. Blur radii are scaled by
// the current transform.
func (c *Canvas) CompositeTemporaryDrawTarget(tmp dlist.Backend, filters effects.Set, mode effects.BlendMode) {
	if tmp == dlist.Backend(c) {
		return
	}
	t, ok := tmp.(*Canvas)
	if !ok {
		panic(fmt.Sprintf("raster: cannot composite a %T", tmp))
	}
	if t.clips.depth() != 0 {
		panic("raster: composite with clips still pushed")
	}

	applyFilters(t.img, filters, scaleOf(c.transform))

	clip := c.clips.current()
	if clip.bounds.Empty() {
		return
	}
	src := t.img.SubImage(clip.bounds).(*image.RGBA)
	if clip.mask != nil {
		maskRGBA(src, clip.mask)
	}
	blend.Composite(c.img.SubImage(clip.bounds).(*image.RGBA), src, mode)
}

// applyFilters runs a filter list over img. Consecutive color filters are
// folded into one matrix.
func applyFilters(img *image.RGBA, filters effects.Set, scale float32) {
	pending := filter.Identity
	for _, f := range filters {
		if m, ok := filter.ForFilter(f); ok {
			pending = pending.Multiply(m)
			continue
		}
		pending.Apply(img)
		pending = filter.Identity
		if r := geom.ToFloat32Px(f.Radius) * scale; r > 0 {
			copy(img.Pix, blurRGBA(img, float64(r)).Pix)
		}
	}
	pending.Apply(img)
}

// blurRGBA returns a Gaussian blurred copy of img with the same bounds.
func blurRGBA(img *image.RGBA, radius float64) *image.RGBA {
	out := blur.Gaussian(img, radius)
	out.Rect = img.Rect
	return out
}

// blurMask returns a Gaussian blurred copy of a coverage mask.
func blurMask(m *image.Alpha, radius float64) *image.Alpha {
	b := m.Rect
	rgba := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			rgba.Pix[rgba.PixOffset(x, y)+3] = m.Pix[m.PixOffset(x, y)]
		}
	}
	blurred := blurRGBA(rgba, radius)
	out := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Pix[out.PixOffset(x, y)] = blurred.Pix[blurred.PixOffset(x, y)+3]
		}
	}
	return out
}

// maskRGBA weights every pixel of img by the coverage of m.
func maskRGBA(img *image.RGBA, m *image.Alpha) {
	b := img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := alphaAt(m, x, y)
			if a == 0xff {
				continue
			}
			i := img.PixOffset(x, y)
			for k := range 4 {
				img.Pix[i+k] = mulCoverage(img.Pix[i+k], a)
			}
		}
	}
}

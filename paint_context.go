package dlist

import "github.com/gogpu/dlist/geom"

// PaintContext carries the state of painting one stacking context into a
// Backend: the target, the tile being painted and the clips pushed on the
// context's behalf.
//
// A PaintContext belongs to a single Paint call and is not safe for
// concurrent use. Concurrent tile painting uses one PaintContext per tile.
type PaintContext struct {
	target   Backend
	opts     paintOptions
	pageRect geom.RectF

	clipRect      *geom.Rect
	clipPushed    bool
	transientClip *ClippingRegion
}

// NewPaintContext returns a context painting into target.
func NewPaintContext(target Backend, opts ...PaintOption) *PaintContext {
	o := defaultPaintOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &PaintContext{target: target, opts: o}
}

// Target returns the backend being painted into.
func (pc *PaintContext) Target() Backend { return pc.target }

// ScreenRect returns the visible page area.
func (pc *PaintContext) ScreenRect() geom.Rect { return pc.opts.screenRect }

// PageRect returns the tile bounds of the stacking context being painted.
func (pc *PaintContext) PageRect() geom.RectF { return pc.pageRect }

// subcontext returns a context painting into target for one stacking context.
func (pc *PaintContext) subcontext(target Backend, tile geom.RectF, clipRect *geom.Rect) *PaintContext {
	return &PaintContext{
		target:   target,
		opts:     pc.opts,
		pageRect: tile,
		clipRect: clipRect,
	}
}

func (pc *PaintContext) pushClipIfApplicable() {
	if pc.clipRect != nil {
		pc.target.PushClipRect(*pc.clipRect)
		pc.clipPushed = true
	}
}

func (pc *PaintContext) popClipIfApplicable() {
	if pc.clipPushed {
		pc.target.PopClip()
		pc.clipPushed = false
	}
}

// applyClip makes c the transient clip unless it already is.
func (pc *PaintContext) applyClip(c *ClippingRegion) {
	if pc.transientClip != nil && pc.transientClip.Equal(*c) {
		return
	}
	pc.removeTransientClip()
	pc.target.PushClipRect(c.Main)
	for _, cx := range c.Complex {
		pc.target.PushClipRoundedRect(cx.Rect, cx.Radii)
	}
	pc.transientClip = c
}

func (pc *PaintContext) removeTransientClip() {
	if pc.transientClip == nil {
		return
	}
	for range len(pc.transientClip.Complex) + 1 {
		pc.target.PopClip()
	}
	pc.transientClip = nil
}

package dlist

import (
	"image"

	"github.com/gogpu/dlist/effects"
	"github.com/gogpu/dlist/geom"
)

// Backend is the drawing surface stacking contexts paint into.
//
// Geometry passed to a Backend is in the local space of the current
// transform. Clips nest: every PushClipRect or PushClipRoundedRect is undone
// by exactly one PopClip, and popping an empty clip stack is a programming
// error.
type Backend interface {
	// Transform returns the current transform.
	Transform() geom.Matrix
	// SetTransform replaces the current transform.
	SetTransform(m geom.Matrix)

	// PushClipRect intersects the clip with r.
	PushClipRect(r geom.Rect)
	// PushClipRoundedRect intersects the clip with a rounded rectangle.
	PushClipRoundedRect(r geom.Rect, radii geom.BorderRadii)
	// PopClip restores the clip in effect before the last push.
	PopClip()

	FillRect(r geom.Rect, c Color)
	DrawGlyphRun(text *TextItem)
	DrawImage(bounds geom.Rect, img image.Image, rendering ImageRendering)
	DrawBorder(bounds geom.Rect, widths geom.SideOffsets[geom.Au], radii geom.BorderRadii,
		colors geom.SideOffsets[Color], styles geom.SideOffsets[BorderStyle])
	DrawLinearGradient(bounds geom.Rect, start, end geom.Point, stops []GradientStop)
	DrawLine(bounds geom.Rect, c Color, style BorderStyle)
	DrawBoxShadow(boxBounds geom.Rect, offset geom.Point, c Color, blur, spread geom.Au,
		mode BoxShadowClipMode)

	// TemporaryDrawTarget returns a surface to paint an isolated stacking
	// context into. It returns the receiver itself when filters and mode
	// need no isolation.
	TemporaryDrawTarget(filters effects.Set, mode effects.BlendMode) Backend
	// CompositeTemporaryDrawTarget composites tmp back into the receiver,
	// applying filters and mode. It does nothing when tmp is the receiver.
	CompositeTemporaryDrawTarget(tmp Backend, filters effects.Set, mode effects.BlendMode)
}

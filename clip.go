package dlist

import (
	"slices"

	"github.com/gogpu/dlist/geom"
)

// ClippingRegion is the visible area of a display item: the intersection of a
// main rectangle with zero or more rounded rectangles.
//
// Arbitrary transforms are not represented here; they belong to the enclosing
// StackingContext. Regions are values: every operation returns a new region
// and leaves the receiver unchanged.
type ClippingRegion struct {
	// Main is the primary rectangle. It does not account for rounded corners.
	Main geom.Rect
	// Complex holds the rounded rectangles the region is intersected with.
	Complex []ComplexClippingRegion
}

// ComplexClippingRegion is a rounded rectangle taking part in a clip.
type ComplexClippingRegion struct {
	Rect  geom.Rect
	Radii geom.BorderRadii
}

// EmptyClip returns a region through which nothing is visible.
func EmptyClip() ClippingRegion {
	return ClippingRegion{Main: geom.ZeroRect}
}

// MaxClip returns a region that clips nothing.
func MaxClip() ClippingRegion {
	return ClippingRegion{Main: geom.MaxRect}
}

// ClipFromRect returns the region covering r.
func ClipFromRect(r geom.Rect) ClippingRegion {
	return ClippingRegion{Main: r}
}

// IntersectRect narrows the main rectangle to its intersection with r, or to
// the empty rectangle when they are disjoint. Complex regions are kept as is.
func (c ClippingRegion) IntersectRect(r geom.Rect) ClippingRegion {
	return ClippingRegion{
		Main:    geom.Intersection(c.Main, r),
		Complex: c.Complex,
	}
}

// IntersectWithRoundedRect adds a rounded rectangle to the region.
func (c ClippingRegion) IntersectWithRoundedRect(r geom.Rect, radii geom.BorderRadii) ClippingRegion {
	complex := make([]ComplexClippingRegion, len(c.Complex), len(c.Complex)+1)
	copy(complex, c.Complex)
	return ClippingRegion{
		Main:    c.Main,
		Complex: append(complex, ComplexClippingRegion{Rect: r, Radii: radii}),
	}
}

// Translate moves the main rectangle and every complex region by delta.
func (c ClippingRegion) Translate(delta geom.Point) ClippingRegion {
	out := ClippingRegion{Main: c.Main.Add(delta)}
	if len(c.Complex) > 0 {
		out.Complex = make([]ComplexClippingRegion, len(c.Complex))
		for i, cx := range c.Complex {
			out.Complex[i] = ComplexClippingRegion{Rect: cx.Rect.Add(delta), Radii: cx.Radii}
		}
	}
	return out
}

// BoundingRect returns the union of the main rectangle and every complex
// region's rectangle.
func (c ClippingRegion) BoundingRect() geom.Rect {
	r := c.Main
	for _, cx := range c.Complex {
		r = r.Union(cx.Rect)
	}
	return r
}

// MightBeNonempty reports whether anything might be visible through the
// region. It can yield false positives but never false negatives.
func (c ClippingRegion) MightBeNonempty() bool {
	return !c.Main.Empty()
}

// MightIntersectPoint is a quick bounding-box test: it never returns false for
// a point inside the region, but may return true for a point just outside a
// rounded corner.
func (c ClippingRegion) MightIntersectPoint(p geom.Point) bool {
	if !geom.ContainsPoint(c.Main, p) {
		return false
	}
	for _, cx := range c.Complex {
		if !geom.ContainsPoint(cx.Rect, p) {
			return false
		}
	}
	return true
}

// MightIntersectRect is the rectangle counterpart of MightIntersectPoint.
func (c ClippingRegion) MightIntersectRect(r geom.Rect) bool {
	if !geom.Overlaps(c.Main, r) {
		return false
	}
	for _, cx := range c.Complex {
		if !geom.Overlaps(cx.Rect, r) {
			return false
		}
	}
	return true
}

// Equal reports whether both regions describe the same rectangles.
func (c ClippingRegion) Equal(o ClippingRegion) bool {
	return c.Main == o.Main && slices.Equal(c.Complex, o.Complex)
}

package geom

import (
	"fmt"

	"golang.org/x/image/math/fixed"
)

// Rect is an axis-aligned rectangle in Au coordinates.
type Rect = fixed.Rectangle26_6

// maxCoord bounds MaxRect so that translating it never overflows int32.
const maxCoord = Au(1 << 29)

// ZeroRect is the empty rectangle at the origin.
var ZeroRect = Rect{}

// MaxRect is a rectangle large enough to contain any laid-out content.
var MaxRect = Rect{
	Min: Point{X: -maxCoord, Y: -maxCoord},
	Max: Point{X: maxCoord, Y: maxCoord},
}

// RectPx returns the rectangle with origin (x, y) and size w by h, in pixels.
func RectPx(x, y, w, h int) Rect {
	return fixed.R(x, y, x+w, y+h)
}

// RectFromOriginSize returns the rectangle with the given origin and size.
func RectFromOriginSize(origin Point, size Size) Rect {
	return Rect{
		Min: origin,
		Max: Point{X: origin.X + size.Width, Y: origin.Y + size.Height},
	}
}

// RectSize returns the width and height of r.
func RectSize(r Rect) Size {
	return Size{Width: r.Max.X - r.Min.X, Height: r.Max.Y - r.Min.Y}
}

// Overlaps reports whether a and b share a non-empty area. An empty operand
// overlaps nothing.
func Overlaps(a, b Rect) bool {
	return !a.Empty() && !b.Empty() &&
		a.Min.X < b.Max.X && b.Min.X < a.Max.X &&
		a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}

// ContainsPoint reports whether p lies inside r. The right and bottom edges
// are exclusive.
func ContainsPoint(r Rect, p Point) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// Intersection returns a ∩ b, or ZeroRect when they do not overlap.
func Intersection(a, b Rect) Rect {
	if !Overlaps(a, b) {
		return ZeroRect
	}
	return a.Intersect(b)
}

// Union returns the smallest rectangle containing a and b. An empty operand
// is ignored.
func Union(a, b Rect) Rect {
	return a.Union(b)
}

// Inflate grows r by d on every side.
func Inflate(r Rect, d Au) Rect {
	return Rect{
		Min: Point{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: Point{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

// Deflate shrinks r by the given side offsets. The result may be empty.
func Deflate(r Rect, s SideOffsets[Au]) Rect {
	return Rect{
		Min: Point{X: r.Min.X + s.Left, Y: r.Min.Y + s.Top},
		Max: Point{X: r.Max.X - s.Right, Y: r.Max.Y - s.Bottom},
	}
}

// FormatRect renders r as "[x,y wxh]" in pixels, for debug output.
func FormatRect(r Rect) string {
	s := RectSize(r)
	return fmt.Sprintf("[%g,%g %gx%g]",
		ToFloat32Px(r.Min.X), ToFloat32Px(r.Min.Y),
		ToFloat32Px(s.Width), ToFloat32Px(s.Height))
}

package geom

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/fixed"
)

// Au is a layout length in 1/64 pixel units.
type Au = fixed.Int26_6

// Point is a point in Au coordinates.
type Point = fixed.Point26_6

// Px returns the length of n whole pixels.
func Px(n int) Au {
	return fixed.I(n)
}

// Pt returns the point at (x, y) whole pixels.
func Pt(x, y int) Point {
	return fixed.P(x, y)
}

// FromFloat32Px converts a float pixel length to Au, rounding to the nearest unit.
func FromFloat32Px(px float32) Au {
	return Au(math32.Round(px * 64))
}

// ToFloat32Px converts a length to float pixels.
func ToFloat32Px(a Au) float32 {
	return float32(a) / 64
}

// ToNearestPx rounds a length to whole pixels.
func ToNearestPx(a Au) int {
	return a.Round()
}

// PointF converts a point to float pixels.
func PointF(p Point) (x, y float32) {
	return ToFloat32Px(p.X), ToFloat32Px(p.Y)
}

// PointFromF converts float pixel coordinates to a point.
func PointFromF(x, y float32) Point {
	return Point{X: FromFloat32Px(x), Y: FromFloat32Px(y)}
}

// Size is a width and height pair.
type Size struct {
	Width, Height Au
}

// SizePx returns a size of w by h whole pixels.
func SizePx(w, h int) Size {
	return Size{Width: Px(w), Height: Px(h)}
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

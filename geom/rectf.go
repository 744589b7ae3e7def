package geom

// RectF is an axis-aligned rectangle in float32 device pixels. Tile bounds
// are expressed as RectF.
type RectF struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// RectFXYWH returns the rectangle with origin (x, y) and size w by h.
func RectFXYWH(x, y, w, h float32) RectF {
	return RectF{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// RectFFromRect converts an Au rectangle to float pixels.
func RectFFromRect(r Rect) RectF {
	return RectF{
		MinX: ToFloat32Px(r.Min.X),
		MinY: ToFloat32Px(r.Min.Y),
		MaxX: ToFloat32Px(r.Max.X),
		MaxY: ToFloat32Px(r.Max.Y),
	}
}

// ToRect converts r to Au, rounding each edge to the nearest unit.
func (r RectF) ToRect() Rect {
	return Rect{
		Min: PointFromF(r.MinX, r.MinY),
		Max: PointFromF(r.MaxX, r.MaxY),
	}
}

// IsEmpty returns true if the rectangle has no area.
func (r RectF) IsEmpty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Width returns the width of the rectangle.
func (r RectF) Width() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r RectF) Height() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxY - r.MinY
}

// Overlaps reports whether r and o share a non-empty area.
func (r RectF) Overlaps(o RectF) bool {
	return r.MinX < o.MaxX && o.MinX < r.MaxX &&
		r.MinY < o.MaxY && o.MinY < r.MaxY
}

// Intersect returns r ∩ o. Disjoint rectangles yield the zero rectangle.
func (r RectF) Intersect(o RectF) (RectF, bool) {
	if !r.Overlaps(o) {
		return RectF{}, false
	}
	return RectF{
		MinX: max(r.MinX, o.MinX),
		MinY: max(r.MinY, o.MinY),
		MaxX: min(r.MaxX, o.MaxX),
		MaxY: min(r.MaxY, o.MaxY),
	}, true
}

// Translate returns r moved by (dx, dy).
func (r RectF) Translate(dx, dy float32) RectF {
	return RectF{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX + dx, MaxY: r.MaxY + dy}
}

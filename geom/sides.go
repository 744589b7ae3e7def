package geom

// SideOffsets holds one value per box side.
type SideOffsets[T any] struct {
	Top, Right, Bottom, Left T
}

// AllSides returns offsets with v on every side.
func AllSides[T any](v T) SideOffsets[T] {
	return SideOffsets[T]{Top: v, Right: v, Bottom: v, Left: v}
}

// BorderRadii holds the corner radii of a rounded rectangle.
type BorderRadii struct {
	TopLeft, TopRight, BottomRight, BottomLeft Au
}

// AllSame returns radii with r on every corner.
func AllSame(r Au) BorderRadii {
	return BorderRadii{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// IsSquare reports whether every radius is zero.
func (b BorderRadii) IsSquare() bool {
	return b.TopLeft == 0 && b.TopRight == 0 && b.BottomRight == 0 && b.BottomLeft == 0
}

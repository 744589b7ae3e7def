// Package geom provides the geometry used by the display list: a fixed-point
// length unit, rectangles and points built on golang.org/x/image/math/fixed,
// float tile rectangles, and 2-D affine matrices.
//
// # Units
//
// Layout lengths are [Au] values: 26.6 fixed-point numbers, so one pixel is 64
// units. Rectangles are half-open: a [Rect] contains a point when
// Min <= p < Max on both axes.
//
// Painting works in float32 device space. [RectF] describes tile bounds and
// [Matrix] the accumulated transform of a stacking context.
package geom

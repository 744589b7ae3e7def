package dlist

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/internal/list"
)

// Paint draws the stacking context into pc's target, restricted to
// tileBounds, under transform and optionally clipped to clipRect.
// tileBounds and clipRect are in the context's own coordinate space.
//
// Items are painted in the order of CSS 2.1 Appendix E:
//
//  1. backgrounds and borders of the root
//  2. positioned children with negative z-index
//  3. block backgrounds and borders
//  4. floats
//  5. content
//  6. positioned children with non-negative z-index
//  7. outlines
//
// Children are stably sorted by z-index. Children owning a hardware layer are
// skipped; they are composited separately. Paint never modifies the tree, so
// disjoint tiles of one tree may be painted concurrently.
func (sc *StackingContext) Paint(pc *PaintContext, tileBounds geom.RectF, transform geom.Matrix, clipRect *geom.Rect) {
	transform = transform.Multiply(sc.Transform)

	parent := pc.Target()
	target := parent.TemporaryDrawTarget(sc.Filters, sc.BlendMode)
	sub := pc.subcontext(target, tileBounds, clipRect)

	dl := NewOptimizer(tileBounds).Optimize(sc.DisplayList)
	if w := pc.opts.dumpOptimized; w != nil {
		fmt.Fprintf(w, "**** optimized display list. Tile bounds: %v\n", tileBounds)
		dl.PrintItems(w, "*")
	}
	Logger().Debug("dlist: optimized display list",
		"items", dl.Len(), "of", sc.DisplayList.Len(),
		"children", dl.Children.Len(), "tile", tileBounds)

	children := dl.Children.Slice()
	slices.SortStableFunc(children, func(a, b *StackingContext) int {
		return cmp.Compare(a.ZIndex, b.ZIndex)
	})

	oldTransform := target.Transform()
	target.SetTransform(transform)
	sub.pushClipIfApplicable()

	sub.drawItems(dl.BackgroundsAndBorders)
	for _, kid := range children {
		if kid.ZIndex >= 0 {
			break
		}
		sub.paintChild(kid, tileBounds, transform)
	}
	sub.drawItems(dl.BlockBackgroundsAndBorders)
	sub.drawItems(dl.Floats)
	sub.drawItems(dl.Content)
	for _, kid := range children {
		if kid.ZIndex < 0 {
			continue
		}
		sub.paintChild(kid, tileBounds, transform)
	}
	sub.drawItems(dl.Outlines)

	sub.removeTransientClip()
	sub.popClipIfApplicable()
	target.SetTransform(oldTransform)

	parent.CompositeTemporaryDrawTarget(target, sc.Filters, sc.BlendMode)
}

func (pc *PaintContext) paintChild(kid *StackingContext, tileBounds geom.RectF, transform geom.Matrix) {
	if kid.Layer != nil {
		Logger().Debug("dlist: skipping child with layer", "layer", kid.Layer.ID)
		return
	}
	// A child is clipped by its own overflow only, never by a sibling's
	// item clip.
	pc.removeTransientClip()

	t := transform.Translate(
		float32(geom.ToNearestPx(kid.Bounds.Min.X)),
		float32(geom.ToNearestPx(kid.Bounds.Min.Y)))
	kid.Paint(pc, childTileRect(tileBounds, kid), t, &kid.Overflow)
}

// childTileRect translates tile into the coordinate space of kid, narrowed to
// the part kid's overflow covers. It is empty when they do not overlap.
func childTileRect(tile geom.RectF, kid *StackingContext) geom.RectF {
	overflow := geom.RectFFromRect(kid.Overflow.Add(kid.Bounds.Min))
	sub, _ := tile.Intersect(overflow)
	ox, oy := geom.PointF(kid.Bounds.Min)
	return sub.Translate(-ox, -oy)
}

func (pc *PaintContext) drawItems(items *list.List[DisplayItem]) {
	for item := range items.All() {
		pc.drawItem(item)
	}
}

func (pc *PaintContext) drawItem(item DisplayItem) {
	pc.applyClip(&item.Base().Clip)

	t := pc.target
	switch it := item.(type) {
	case *SolidColorItem:
		if !it.Color.IsTransparent() {
			t.FillRect(it.Bounds, it.Color)
		}
	case *TextItem:
		Logger().Debug("dlist: drawing text", "bounds", geom.FormatRect(it.Bounds))
		t.DrawGlyphRun(it)
	case *ImageItem:
		Logger().Debug("dlist: drawing image", "bounds", geom.FormatRect(it.Bounds))
		drawTiledImage(t, it)
	case *BorderItem:
		t.DrawBorder(it.Bounds, it.Widths, it.Radius, it.Colors, it.Styles)
	case *GradientItem:
		t.DrawLinearGradient(it.Bounds, it.StartPoint, it.EndPoint, it.Stops)
	case *LineItem:
		t.DrawLine(it.Bounds, it.Color, it.Style)
	case *BoxShadowItem:
		t.DrawBoxShadow(it.BoxBounds, it.Offset, it.Color, it.BlurRadius, it.SpreadRadius, it.ClipMode)
	}
}

// drawTiledImage repeats the image every StretchSize until the item bounds
// are covered. The last row and column may extend past the bounds; the item
// clip trims them.
func drawTiledImage(t Backend, it *ImageItem) {
	stretch := it.StretchSize
	if stretch.IsEmpty() {
		return
	}
	size := geom.RectSize(it.Bounds)
	for y := geom.Au(0); y < size.Height; y += stretch.Height {
		for x := geom.Au(0); x < size.Width; x += stretch.Width {
			origin := geom.Point{X: it.Bounds.Min.X + x, Y: it.Bounds.Min.Y + y}
			t.DrawImage(geom.RectFromOriginSize(origin, stretch), it.Image, it.Rendering)
		}
	}
}

package dlist

import "github.com/gogpu/dlist/geom"

// Optimizer drops display items and child stacking contexts that cannot
// paint inside a visible rectangle.
type Optimizer struct {
	// VisibleRect is the tile being painted, in the coordinate space of the
	// list's stacking context.
	VisibleRect geom.Rect
}

// NewOptimizer returns an optimizer for the given tile bounds.
func NewOptimizer(tileBounds geom.RectF) Optimizer {
	return Optimizer{VisibleRect: tileBounds.ToRect()}
}

// Optimize returns a new display list holding the items and children of d
// that may be visible. Order within each bucket is preserved and d is left
// untouched, so one list can be optimized for many tiles at once.
func (o Optimizer) Optimize(d *DisplayList) *DisplayList {
	return &DisplayList{
		BackgroundsAndBorders:      d.BackgroundsAndBorders.Filter(o.itemVisible),
		BlockBackgroundsAndBorders: d.BlockBackgroundsAndBorders.Filter(o.itemVisible),
		Floats:                     d.Floats.Filter(o.itemVisible),
		Content:                    d.Content.Filter(o.itemVisible),
		Outlines:                   d.Outlines.Filter(o.itemVisible),
		Children:                   d.Children.Filter(o.childVisible),
	}
}

func (o Optimizer) itemVisible(item DisplayItem) bool {
	return geom.Overlaps(inkBounds(item), o.VisibleRect) &&
		item.Base().Clip.MightIntersectRect(o.VisibleRect)
}

func (o Optimizer) childVisible(child *StackingContext) bool {
	return geom.Overlaps(child.Overflow.Add(child.Bounds.Min), o.VisibleRect)
}

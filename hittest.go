package dlist

import (
	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/internal/list"
)

// HitTest appends the metadata of every item under point to result, topmost
// first, and returns the extended slice. point is in the coordinate space of
// sc's parent.
//
// Items are visited in the reverse of paint order; children are visited in
// reverse document order. Items with NotPointing are ignored, and a border
// only matches in its frame, not its interior. With topmostOnly set the
// search stops at the first match; result must then be empty on entry.
//
// Bounding boxes are used throughout, so rounded corners match as if square.
func (sc *StackingContext) HitTest(point geom.Point, result []Metadata, topmostOnly bool) []Metadata {
	if topmostOnly && len(result) != 0 {
		panic("dlist: HitTest with topmostOnly requires an empty result")
	}

	point = point.Sub(sc.Bounds.Min)
	// The forward transform is applied here, matching how item bounds are
	// stored. This has not been verified against rotated contexts.
	x, y := geom.PointF(point)
	point = geom.PointFromF(sc.Transform.TransformPoint(x, y))

	dl := sc.DisplayList
	done := func() bool { return topmostOnly && len(result) != 0 }

	result = hitTestList(point, result, topmostOnly, dl.Outlines)
	if done() {
		return result
	}
	for kid := range dl.Children.Backward() {
		if kid.ZIndex < 0 {
			continue
		}
		result = kid.HitTest(point, result, topmostOnly)
		if done() {
			return result
		}
	}
	for _, bucket := range []*list.List[DisplayItem]{dl.Content, dl.Floats, dl.BlockBackgroundsAndBorders} {
		result = hitTestList(point, result, topmostOnly, bucket)
		if done() {
			return result
		}
	}
	for kid := range dl.Children.Backward() {
		if kid.ZIndex >= 0 {
			continue
		}
		result = kid.HitTest(point, result, topmostOnly)
		if done() {
			return result
		}
	}
	return hitTestList(point, result, topmostOnly, dl.BackgroundsAndBorders)
}

// HitTestTopmost returns the metadata of the topmost item under point.
func (sc *StackingContext) HitTestTopmost(point geom.Point) (Metadata, bool) {
	result := sc.HitTest(point, nil, true)
	if len(result) == 0 {
		return Metadata{}, false
	}
	return result[0], true
}

func hitTestList(point geom.Point, result []Metadata, topmostOnly bool, items *list.List[DisplayItem]) []Metadata {
	for item := range items.Backward() {
		if hitsItem(item, point) {
			result = append(result, item.Base().Metadata)
			if topmostOnly {
				return result
			}
		}
	}
	return result
}

func hitsItem(item DisplayItem, point geom.Point) bool {
	base := item.Base()
	if !base.Clip.MightIntersectPoint(point) {
		return false
	}
	if !geom.ContainsPoint(base.Bounds, point) {
		return false
	}
	if !base.Metadata.IsPointing() {
		return false
	}
	if border, ok := item.(*BorderItem); ok && geom.ContainsPoint(border.InteriorRect(), point) {
		return false
	}
	return true
}

package dlist

import (
	"github.com/gogpu/dlist/effects"
	"github.com/gogpu/dlist/geom"
)

// LayerID identifies a hardware compositing layer.
type LayerID uint64

// PaintLayer describes a hardware layer owned by a stacking context.
type PaintLayer struct {
	ID LayerID
	// BackgroundColor is the color the compositor clears the layer to.
	BackgroundColor Color
}

// StackingContext is an isolated compositing unit: a display list painted
// under its own transform, filters, blend mode and z-index.
//
// Once built, a stacking context tree is read-only. It may be painted and hit
// tested from many goroutines at once without locking.
type StackingContext struct {
	// DisplayList holds the items and child contexts.
	DisplayList *DisplayList
	// Layer is the hardware layer this context paints into, or nil. Children
	// with a layer are composited elsewhere and skipped when painting.
	Layer *PaintLayer
	// Bounds is the position and size of the context within its parent.
	Bounds geom.Rect
	// Overflow is the area descendants may paint, relative to Bounds.Min.
	Overflow geom.Rect
	// ZIndex orders positioned siblings.
	ZIndex int32
	// Filters are applied to the flattened context.
	Filters effects.Set
	// BlendMode composites the flattened context into its parent.
	BlendMode effects.BlendMode
	// Transform is applied on top of the parent's transform.
	Transform geom.Matrix
}

// NewStackingContext returns a stacking context with an identity transform.
// A nil display list is replaced by an empty one.
func NewStackingContext(dl *DisplayList, bounds, overflow geom.Rect, zIndex int32,
	filters effects.Set, blend effects.BlendMode, layer *PaintLayer) *StackingContext {
	if dl == nil {
		dl = NewDisplayList()
	}
	return &StackingContext{
		DisplayList: dl,
		Layer:       layer,
		Bounds:      bounds,
		Overflow:    overflow,
		ZIndex:      zIndex,
		Filters:     filters,
		BlendMode:   blend,
		Transform:   geom.Identity(),
	}
}

// WithTransform sets the context's transform and returns it, for use while
// building.
func (sc *StackingContext) WithTransform(m geom.Matrix) *StackingContext {
	sc.Transform = m
	return sc
}

// FindStackingContextWithLayerID searches the tree rooted at root for the
// context owning layer id. The search is pre-order and the first match wins.
// It returns nil when no context owns the layer.
func FindStackingContextWithLayerID(root *StackingContext, id LayerID) *StackingContext {
	if root == nil {
		return nil
	}
	if root.Layer != nil && root.Layer.ID == id {
		return root
	}
	for child := range root.DisplayList.Children.All() {
		if found := FindStackingContextWithLayerID(child, id); found != nil {
			return found
		}
	}
	return nil
}

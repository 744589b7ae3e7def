package dlist

import (
	"testing"

	"github.com/gogpu/dlist/effects"
	"github.com/gogpu/dlist/geom"
)

func layered(layer *PaintLayer, children ...*StackingContext) *StackingContext {
	d := NewDisplayList()
	for _, c := range children {
		d.PushChild(c)
	}
	return NewStackingContext(d, geom.RectPx(0, 0, 10, 10), geom.RectPx(0, 0, 10, 10), 0, nil, effects.BlendNormal, layer)
}

func TestFindStackingContextWithLayerID(t *testing.T) {
	deep := layered(&PaintLayer{ID: 7})
	first := layered(&PaintLayer{ID: 3}, deep)
	second := layered(&PaintLayer{ID: 3})
	root := layered(&PaintLayer{ID: 1}, first, second)

	tests := []struct {
		name string
		id   LayerID
		want *StackingContext
	}{
		{"root", 1, root},
		{"pre-order first match", 3, first},
		{"nested", 7, deep},
		{"absent", 42, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindStackingContextWithLayerID(root, tt.id); got != tt.want {
				t.Errorf("FindStackingContextWithLayerID(%d) = %p, want %p", tt.id, got, tt.want)
			}
		})
	}

	if FindStackingContextWithLayerID(nil, 1) != nil {
		t.Error("nil root should yield nil")
	}
}

func TestNewStackingContextDefaults(t *testing.T) {
	sc := NewStackingContext(nil, geom.ZeroRect, geom.ZeroRect, -2, nil, effects.BlendNormal, nil)
	if sc.DisplayList == nil || !sc.DisplayList.IsEmpty() {
		t.Error("nil display list should be replaced by an empty one")
	}
	if !sc.Transform.IsIdentity() {
		t.Errorf("Transform = %+v, want identity", sc.Transform)
	}
	if sc.ZIndex != -2 {
		t.Errorf("ZIndex = %d, want -2", sc.ZIndex)
	}
}

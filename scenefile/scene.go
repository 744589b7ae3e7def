package scenefile

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/effects"
	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/shape"
)

// Scene is a loaded scene document.
type Scene struct {
	// Width and Height are the page size in CSS pixels.
	Width, Height int
	// Root is the root stacking context.
	Root *dlist.StackingContext
}

// Load reads and builds the scene in the YAML file at path.
func Load(path string, opts ...Option) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	opts = append([]Option{WithBaseDir(filepath.Dir(path))}, opts...)
	s, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse builds a scene from a YAML document. Unknown fields are rejected.
func Parse(data []byte, opts ...Option) (*Scene, error) {
	o := options{images: openImage}
	for _, opt := range opts {
		opt(&o)
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scenefile: empty document: %w", ErrInvalidValue)
		}
		return nil, fmt.Errorf("scenefile: decode: %w", err)
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("scenefile: page size %dx%d: %w", doc.Width, doc.Height, ErrInvalidValue)
	}

	if o.shaper == nil && usesText(&doc.Root) {
		s, err := shape.Default()
		if err != nil {
			return nil, fmt.Errorf("scenefile: %w", err)
		}
		o.shaper = s
	}

	b := &builder{opts: o, images: make(map[string]image.Image)}
	if len(doc.Root.Bounds) == 0 {
		doc.Root.Bounds = []float32{0, 0, float32(doc.Width), float32(doc.Height)}
	}
	root, err := b.context("root", &doc.Root)
	if err != nil {
		return nil, err
	}

	dlist.Logger().Debug("scenefile: built scene",
		"width", doc.Width, "height", doc.Height,
		"contexts", b.contexts, "items", b.items, "images", len(b.images))
	return &Scene{Width: doc.Width, Height: doc.Height, Root: root}, nil
}

// PageRect returns the whole page as a tile rectangle.
func (s *Scene) PageRect() geom.RectF {
	return geom.RectFXYWH(0, 0, float32(s.Width), float32(s.Height))
}

func usesText(c *contextEntry) bool {
	for i := range c.Items {
		if c.Items[i].Kind == "text" {
			return true
		}
	}
	for i := range c.Children {
		if usesText(&c.Children[i]) {
			return true
		}
	}
	return false
}

type builder struct {
	opts   options
	images map[string]image.Image

	contexts, items int
}

func (b *builder) context(path string, c *contextEntry) (*dlist.StackingContext, error) {
	b.contexts++

	bounds, err := rectOf(path+".bounds", c.Bounds)
	if err != nil {
		return nil, err
	}
	overflow := geom.Rect{Max: bounds.Max.Sub(bounds.Min)}
	if len(c.Overflow) > 0 {
		if overflow, err = rectOf(path+".overflow", c.Overflow); err != nil {
			return nil, err
		}
	}

	filters := make(effects.Set, 0, len(c.Filters))
	for i, f := range c.Filters {
		field := fmt.Sprintf("%s.filters[%d]", path, i)
		if f.Kind == "" {
			return nil, fmt.Errorf("%s.kind: missing: %w", field, ErrInvalidValue)
		}
		kind, err := parseEnum(field+".kind", f.Kind, effects.FilterOpacity, effects.ParseFilterKind)
		if err != nil {
			return nil, err
		}
		if kind == effects.FilterBlur {
			filters = append(filters, effects.Blur(px(f.Radius)))
		} else {
			filters = append(filters, effects.NewFilter(kind, f.Amount))
		}
	}
	if len(filters) == 0 {
		filters = nil
	}

	blend, err := parseEnum(path+".blend", c.Blend, effects.BlendNormal, effects.ParseBlendMode)
	if err != nil {
		return nil, err
	}

	var layer *dlist.PaintLayer
	if c.Layer != nil {
		bg, err := colorOf(path+".layer.background", c.Layer.Background, dlist.Transparent)
		if err != nil {
			return nil, err
		}
		layer = &dlist.PaintLayer{ID: dlist.LayerID(c.Layer.ID), BackgroundColor: bg}
	}

	dl := dlist.NewDisplayList()
	for i := range c.Items {
		if err := b.item(fmt.Sprintf("%s.items[%d]", path, i), dl, &c.Items[i]); err != nil {
			return nil, err
		}
	}
	for i := range c.Children {
		kid, err := b.context(fmt.Sprintf("%s.children[%d]", path, i), &c.Children[i])
		if err != nil {
			return nil, err
		}
		dl.PushChild(kid)
	}

	sc := dlist.NewStackingContext(dl, bounds, overflow, c.Z, filters, blend, layer)
	if c.Transform != nil {
		m, err := transformOf(path+".transform", c.Transform)
		if err != nil {
			return nil, err
		}
		sc.WithTransform(m)
	}
	return sc, nil
}

// transformOf composes scale, then rotation in degrees, then translation.
func transformOf(field string, t *transformSpec) (geom.Matrix, error) {
	m := geom.Identity()
	if len(t.Translate) > 0 {
		if len(t.Translate) != 2 {
			return m, fmt.Errorf("%s.translate: want [x, y]: %w", field, ErrInvalidValue)
		}
		m = geom.Translation(t.Translate[0], t.Translate[1])
	}
	if t.Rotate != 0 {
		m = m.Multiply(geom.Rotation(t.Rotate * math32.Pi / 180))
	}
	switch len(t.Scale) {
	case 0:
	case 1:
		m = m.Multiply(geom.Scaling(t.Scale[0], t.Scale[0]))
	case 2:
		m = m.Multiply(geom.Scaling(t.Scale[0], t.Scale[1]))
	default:
		return m, fmt.Errorf("%s.scale: want 1 or 2 numbers: %w", field, ErrInvalidValue)
	}
	return m, nil
}

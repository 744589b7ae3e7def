package scenefile

import (
	"fmt"
	"path/filepath"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/geom"
)

// push functions by section name.
var sections = map[string]func(*dlist.DisplayList, dlist.DisplayItem){
	"background": (*dlist.DisplayList).PushBackgroundOrBorder,
	"block":      (*dlist.DisplayList).PushBlockBackgroundOrBorder,
	"float":      (*dlist.DisplayList).PushFloat,
	"content":    (*dlist.DisplayList).PushContent,
	"outline":    (*dlist.DisplayList).PushOutline,
}

// defaultSection is where an item goes when the document names no section.
var defaultSection = map[string]string{
	"solid":    "background",
	"border":   "background",
	"gradient": "background",
	"shadow":   "background",
	"text":     "content",
	"image":    "content",
	"line":     "content",
}

func (b *builder) item(path string, dl *dlist.DisplayList, e *itemEntry) error {
	section := e.Section
	if section == "" {
		section = defaultSection[e.Kind]
	}
	push, ok := sections[section]
	if !ok && e.Section != "" {
		return fmt.Errorf("%s.section: unknown section %q: %w", path, e.Section, ErrInvalidValue)
	}

	base, err := b.base(path, e)
	if err != nil {
		return err
	}

	var item dlist.DisplayItem
	switch e.Kind {
	case "solid":
		item, err = solidItem(path, base, e)
	case "border":
		item, err = borderItem(path, base, e)
	case "text":
		item, err = b.textItem(path, base, e)
	case "image":
		item, err = b.imageItem(path, base, e)
	case "gradient":
		item, err = gradientItem(path, base, e)
	case "line":
		item, err = lineItem(path, base, e)
	case "shadow":
		item, err = shadowItem(path, base, e)
	default:
		return fmt.Errorf("%s.kind: %q: %w", path, e.Kind, ErrUnknownKind)
	}
	if err != nil {
		return err
	}

	push(dl, item)
	b.items++
	return nil
}

func (b *builder) base(path string, e *itemEntry) (dlist.BaseItem, error) {
	bounds, err := rectOf(path+".bounds", e.Bounds)
	if err != nil {
		return dlist.BaseItem{}, err
	}

	clip := dlist.MaxClip()
	if e.Clip != nil {
		r, err := rectOf(path+".clip.rect", e.Clip.Rect)
		if err != nil {
			return dlist.BaseItem{}, err
		}
		clip = dlist.ClipFromRect(r)
		if len(e.Clip.Radius) > 0 {
			radii, err := radiiOf(path+".clip.radius", e.Clip.Radius)
			if err != nil {
				return dlist.BaseItem{}, err
			}
			clip = clip.IntersectWithRoundedRect(r, radii)
		}
	}

	pe := dlist.PointerEventsAuto
	switch e.PointerEvents {
	case "", "auto":
	case "none":
		pe = dlist.PointerEventsNone
	default:
		return dlist.BaseItem{}, fmt.Errorf("%s.pointer-events: unknown keyword %q: %w", path, e.PointerEvents, ErrInvalidValue)
	}
	cursor, err := parseEnum(path+".cursor", e.Cursor, dlist.CursorAuto, dlist.ParseCursor)
	if err != nil {
		return dlist.BaseItem{}, err
	}
	def := dlist.CursorDefault
	if e.Kind == "text" {
		def = dlist.CursorText
	}

	return dlist.BaseItem{
		Bounds:   bounds,
		Clip:     clip,
		Metadata: dlist.NewMetadata(dlist.OpaqueNode(e.Node), pe, cursor, def),
	}, nil
}

func solidItem(path string, base dlist.BaseItem, e *itemEntry) (dlist.DisplayItem, error) {
	if e.Color == "" {
		return nil, fmt.Errorf("%s.color: missing: %w", path, ErrInvalidValue)
	}
	c, err := colorOf(path+".color", e.Color, dlist.Transparent)
	if err != nil {
		return nil, err
	}
	return &dlist.SolidColorItem{BaseItem: base, Color: c}, nil
}

func borderItem(path string, base dlist.BaseItem, e *itemEntry) (dlist.DisplayItem, error) {
	w, err := fourOf(path+".widths", e.Widths, 1)
	if err != nil {
		return nil, err
	}
	cs, err := fourOf(path+".colors", e.Colors, "#000")
	if err != nil {
		return nil, err
	}
	ss, err := fourOf(path+".styles", e.Styles, "solid")
	if err != nil {
		return nil, err
	}
	radius, err := radiiOf(path+".radius", e.Radius)
	if err != nil {
		return nil, err
	}

	var colors [4]dlist.Color
	var styles [4]dlist.BorderStyle
	for i := range 4 {
		if colors[i], err = colorOf(fmt.Sprintf("%s.colors[%d]", path, i), cs[i], dlist.Black); err != nil {
			return nil, err
		}
		if styles[i], err = parseEnum(fmt.Sprintf("%s.styles[%d]", path, i), ss[i], dlist.BorderSolid, dlist.ParseBorderStyle); err != nil {
			return nil, err
		}
	}

	return &dlist.BorderItem{
		BaseItem: base,
		Widths:   geom.SideOffsets[geom.Au]{Top: px(w[0]), Right: px(w[1]), Bottom: px(w[2]), Left: px(w[3])},
		Colors:   geom.SideOffsets[dlist.Color]{Top: colors[0], Right: colors[1], Bottom: colors[2], Left: colors[3]},
		Styles:   geom.SideOffsets[dlist.BorderStyle]{Top: styles[0], Right: styles[1], Bottom: styles[2], Left: styles[3]},
		Radius:   radius,
	}, nil
}

func (b *builder) textItem(path string, base dlist.BaseItem, e *itemEntry) (dlist.DisplayItem, error) {
	size := e.Size
	if size == 0 {
		size = 16
	}
	if size < 0 {
		return nil, fmt.Errorf("%s.size: %v: %w", path, size, ErrInvalidValue)
	}
	origin, err := pointOf(path+".origin", e.Origin)
	if err != nil {
		return nil, err
	}
	c, err := colorOf(path+".color", e.Color, dlist.Black)
	if err != nil {
		return nil, err
	}
	orientation, err := parseEnum(path+".orientation", e.Orientation, dlist.TextUpright, dlist.ParseTextOrientation)
	if err != nil {
		return nil, err
	}

	run := b.opts.shaper.Shape(e.Text, px(size))
	return &dlist.TextItem{
		BaseItem:       base,
		TextRun:        run,
		Range:          dlist.Range{Begin: 0, Length: len(run.Text)},
		TextColor:      c,
		BaselineOrigin: origin,
		Orientation:    orientation,
		BlurRadius:     px(e.Blur),
	}, nil
}

func (b *builder) imageItem(path string, base dlist.BaseItem, e *itemEntry) (dlist.DisplayItem, error) {
	if e.Src == "" {
		return nil, fmt.Errorf("%s.src: missing: %w", path, ErrInvalidValue)
	}
	src := e.Src
	if !filepath.IsAbs(src) && b.opts.baseDir != "" {
		src = filepath.Join(b.opts.baseDir, src)
	}
	img, ok := b.images[src]
	if !ok {
		var err error
		if img, err = b.opts.images(src); err != nil {
			return nil, fmt.Errorf("%s.src: %w", path, err)
		}
		b.images[src] = img
	}

	stretch := geom.RectSize(base.Bounds)
	if len(e.Stretch) > 0 {
		if len(e.Stretch) != 2 || e.Stretch[0] <= 0 || e.Stretch[1] <= 0 {
			return nil, fmt.Errorf("%s.stretch: want positive [w, h]: %w", path, ErrInvalidValue)
		}
		stretch = geom.Size{Width: px(e.Stretch[0]), Height: px(e.Stretch[1])}
	}
	rendering, err := parseEnum(path+".rendering", e.Rendering, dlist.RenderingAuto, dlist.ParseImageRendering)
	if err != nil {
		return nil, err
	}
	return &dlist.ImageItem{BaseItem: base, Image: img, StretchSize: stretch, Rendering: rendering}, nil
}

func gradientItem(path string, base dlist.BaseItem, e *itemEntry) (dlist.DisplayItem, error) {
	start, err := pointOf(path+".start", e.Start)
	if err != nil {
		return nil, err
	}
	end, err := pointOf(path+".end", e.End)
	if err != nil {
		return nil, err
	}
	if len(e.Stops) < 2 {
		return nil, fmt.Errorf("%s.stops: want at least two stops: %w", path, ErrInvalidValue)
	}
	stops := make([]dlist.GradientStop, len(e.Stops))
	for i, s := range e.Stops {
		c, err := colorOf(fmt.Sprintf("%s.stops[%d].color", path, i), s.Color, dlist.Black)
		if err != nil {
			return nil, err
		}
		if i > 0 && s.Offset < e.Stops[i-1].Offset {
			return nil, fmt.Errorf("%s.stops[%d].offset: offsets must not decrease: %w", path, i, ErrInvalidValue)
		}
		stops[i] = dlist.GradientStop{Offset: s.Offset, Color: c}
	}
	return &dlist.GradientItem{BaseItem: base, StartPoint: start, EndPoint: end, Stops: stops}, nil
}

func lineItem(path string, base dlist.BaseItem, e *itemEntry) (dlist.DisplayItem, error) {
	c, err := colorOf(path+".color", e.Color, dlist.Black)
	if err != nil {
		return nil, err
	}
	style, err := parseEnum(path+".style", e.Style, dlist.BorderSolid, dlist.ParseBorderStyle)
	if err != nil {
		return nil, err
	}
	return &dlist.LineItem{BaseItem: base, Color: c, Style: style}, nil
}

func shadowItem(path string, base dlist.BaseItem, e *itemEntry) (dlist.DisplayItem, error) {
	box := base.Bounds
	if len(e.Box) > 0 {
		var err error
		if box, err = rectOf(path+".box", e.Box); err != nil {
			return nil, err
		}
	}
	offset, err := optPoint(path+".offset", e.Offset)
	if err != nil {
		return nil, err
	}
	c, err := colorOf(path+".color", e.Color, dlist.Black)
	if err != nil {
		return nil, err
	}
	mode, err := parseEnum(path+".clip-mode", e.ClipMode, dlist.ShadowClipOutset, dlist.ParseBoxShadowClipMode)
	if err != nil {
		return nil, err
	}
	return &dlist.BoxShadowItem{
		BaseItem:     base,
		BoxBounds:    box,
		Offset:       offset,
		Color:        c,
		BlurRadius:   px(e.Blur),
		SpreadRadius: px(e.Spread),
		ClipMode:     mode,
	}, nil
}

package dlist

import (
	"fmt"
	"image"

	"github.com/gogpu/dlist/geom"
)

// BlurInflationFactor scales a blur radius into the distance ink can spread
// beyond an item's bounds.
const BlurInflationFactor = 3

// ItemKind identifies the variant of a DisplayItem.
type ItemKind uint8

const (
	KindSolidColor ItemKind = iota
	KindText
	KindImage
	KindBorder
	KindGradient
	KindLine
	KindBoxShadow
)

var itemKindNames = [...]string{
	KindSolidColor: "SolidColor",
	KindText:       "Text",
	KindImage:      "Image",
	KindBorder:     "Border",
	KindGradient:   "Gradient",
	KindLine:       "Line",
	KindBoxShadow:  "BoxShadow",
}

// String returns the name of the kind.
func (k ItemKind) String() string {
	if int(k) < len(itemKindNames) {
		return itemKindNames[k]
	}
	return fmt.Sprintf("ItemKind(%d)", k)
}

// DisplayItem is one immutable drawing instruction. The set of variants is
// closed: SolidColorItem, TextItem, ImageItem, BorderItem, GradientItem,
// LineItem and BoxShadowItem. Consumers dispatch with a type switch.
type DisplayItem interface {
	Kind() ItemKind
	Base() *BaseItem
	displayItem()
}

// BaseItem holds the fields shared by every display item.
type BaseItem struct {
	// Bounds are the item's bounds, in the coordinate space of its stacking
	// context.
	Bounds geom.Rect
	// Metadata identifies the source node and hover cursor.
	Metadata Metadata
	// Clip is the region the item is drawn through. The zero value is empty
	// and hides the item from painting and hit testing; unclipped items use
	// MaxClip().
	Clip ClippingRegion
}

// Base returns the shared fields.
func (b *BaseItem) Base() *BaseItem { return b }

func (*BaseItem) displayItem() {}

// SolidColorItem fills its bounds with a color.
type SolidColorItem struct {
	BaseItem
	Color Color
}

// TextItem draws a range of glyphs from a shaped run.
type TextItem struct {
	BaseItem
	// TextRun is shared between all items cut from the same run.
	TextRun *TextRun
	// Range selects the characters to draw.
	Range Range
	// TextColor is the fill color of the glyphs.
	TextColor Color
	// BaselineOrigin is the pen position of the first glyph.
	BaselineOrigin geom.Point
	Orientation    TextOrientation
	// BlurRadius is the text-shadow blur, zero for ordinary text.
	BlurRadius geom.Au
}

// ImageItem draws an image, tiled across its bounds.
type ImageItem struct {
	BaseItem
	Image image.Image
	// StretchSize is the size of one tile. The image is repeated every
	// StretchSize until the bounds are covered.
	StretchSize geom.Size
	Rendering   ImageRendering
}

// BorderItem draws the four sides of a border box.
type BorderItem struct {
	BaseItem
	// Widths are the border widths; they define the frame's interior.
	Widths geom.SideOffsets[geom.Au]
	Colors geom.SideOffsets[Color]
	Styles geom.SideOffsets[BorderStyle]
	Radius geom.BorderRadii
}

// InteriorRect returns the bounds shrunk by the border widths.
func (b *BorderItem) InteriorRect() geom.Rect {
	return geom.Deflate(b.Bounds, b.Widths)
}

// GradientStop is a color at an offset along a gradient line.
type GradientStop struct {
	// Offset is in [0, 1].
	Offset float32
	Color  Color
}

// GradientItem fills its bounds with a linear gradient.
type GradientItem struct {
	BaseItem
	StartPoint geom.Point
	EndPoint   geom.Point
	Stops      []GradientStop
}

// LineItem draws a line filling its bounds, used for text decorations.
type LineItem struct {
	BaseItem
	Color Color
	Style BorderStyle
}

// BoxShadowItem draws a box shadow.
type BoxShadowItem struct {
	BaseItem
	// BoxBounds is the border box casting the shadow. Bounds covers the
	// shadow's full extent.
	BoxBounds    geom.Rect
	Offset       geom.Point
	Color        Color
	BlurRadius   geom.Au
	SpreadRadius geom.Au
	ClipMode     BoxShadowClipMode
}

func (*SolidColorItem) Kind() ItemKind { return KindSolidColor }
func (*TextItem) Kind() ItemKind       { return KindText }
func (*ImageItem) Kind() ItemKind      { return KindImage }
func (*BorderItem) Kind() ItemKind     { return KindBorder }
func (*GradientItem) Kind() ItemKind   { return KindGradient }
func (*LineItem) Kind() ItemKind       { return KindLine }
func (*BoxShadowItem) Kind() ItemKind  { return KindBoxShadow }

// inkBounds returns the area an item may paint, which for blurred text and
// shadows extends past its bounds.
func inkBounds(item DisplayItem) geom.Rect {
	b := item.Base().Bounds
	switch it := item.(type) {
	case *TextItem:
		return geom.Inflate(b, it.BlurRadius*BlurInflationFactor)
	case *BoxShadowItem:
		return geom.Inflate(b, it.BlurRadius*BlurInflationFactor)
	}
	return b
}

// Describe returns a one-line description of item for debugging.
func Describe(item DisplayItem) string {
	base := item.Base()
	return fmt.Sprintf("%s @ %s (%#x)", item.Kind(), geom.FormatRect(base.Bounds), base.Metadata.Node.ID())
}

// BorderStyle is a CSS border or line style.
type BorderStyle uint8

const (
	BorderNone BorderStyle = iota
	BorderHidden
	BorderSolid
	BorderDouble
	BorderDotted
	BorderDashed
	BorderGroove
	BorderRidge
	BorderInset
	BorderOutset
)

var borderStyleNames = [...]string{
	BorderNone:   "none",
	BorderHidden: "hidden",
	BorderSolid:  "solid",
	BorderDouble: "double",
	BorderDotted: "dotted",
	BorderDashed: "dashed",
	BorderGroove: "groove",
	BorderRidge:  "ridge",
	BorderInset:  "inset",
	BorderOutset: "outset",
}

func (s BorderStyle) String() string {
	if int(s) < len(borderStyleNames) {
		return borderStyleNames[s]
	}
	return fmt.Sprintf("BorderStyle(%d)", s)
}

// ParseBorderStyle returns the style named by a CSS keyword.
func ParseBorderStyle(name string) (BorderStyle, bool) {
	for i, n := range borderStyleNames {
		if n == name {
			return BorderStyle(i), true
		}
	}
	return BorderNone, false
}

// IsVisible reports whether a side with this style paints anything.
func (s BorderStyle) IsVisible() bool {
	return s != BorderNone && s != BorderHidden
}

// TextOrientation is the glyph orientation of a text item.
type TextOrientation uint8

const (
	TextUpright TextOrientation = iota
	TextSidewaysLeft
	TextSidewaysRight
)

var textOrientationNames = [...]string{
	TextUpright:       "upright",
	TextSidewaysLeft:  "sideways-left",
	TextSidewaysRight: "sideways-right",
}

func (o TextOrientation) String() string {
	if int(o) < len(textOrientationNames) {
		return textOrientationNames[o]
	}
	return fmt.Sprintf("TextOrientation(%d)", o)
}

// ParseTextOrientation returns the orientation named by a keyword.
func ParseTextOrientation(name string) (TextOrientation, bool) {
	for i, n := range textOrientationNames {
		if n == name {
			return TextOrientation(i), true
		}
	}
	return TextUpright, false
}

// ImageRendering is the CSS image-rendering hint.
type ImageRendering uint8

const (
	RenderingAuto ImageRendering = iota
	RenderingCrispEdges
	RenderingPixelated
)

var imageRenderingNames = [...]string{
	RenderingAuto:       "auto",
	RenderingCrispEdges: "crisp-edges",
	RenderingPixelated:  "pixelated",
}

func (r ImageRendering) String() string {
	if int(r) < len(imageRenderingNames) {
		return imageRenderingNames[r]
	}
	return fmt.Sprintf("ImageRendering(%d)", r)
}

// ParseImageRendering returns the hint named by a CSS keyword.
func ParseImageRendering(name string) (ImageRendering, bool) {
	for i, n := range imageRenderingNames {
		if n == name {
			return ImageRendering(i), true
		}
	}
	return RenderingAuto, false
}

// BoxShadowClipMode selects which part of a box shadow is clipped away.
type BoxShadowClipMode uint8

const (
	// ShadowClipNone draws the whole shadow.
	ShadowClipNone BoxShadowClipMode = iota
	// ShadowClipOutset clips out the box, for ordinary shadows.
	ShadowClipOutset
	// ShadowClipInset clips to the box, for inset shadows.
	ShadowClipInset
)

var shadowClipNames = [...]string{
	ShadowClipNone:   "none",
	ShadowClipOutset: "outset",
	ShadowClipInset:  "inset",
}

func (m BoxShadowClipMode) String() string {
	if int(m) < len(shadowClipNames) {
		return shadowClipNames[m]
	}
	return fmt.Sprintf("BoxShadowClipMode(%d)", m)
}

// ParseBoxShadowClipMode returns the mode named by a keyword.
func ParseBoxShadowClipMode(name string) (BoxShadowClipMode, bool) {
	for i, n := range shadowClipNames {
		if n == name {
			return BoxShadowClipMode(i), true
		}
	}
	return ShadowClipNone, false
}

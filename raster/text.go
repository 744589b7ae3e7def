package raster

import (
	"image"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/geom"
)

var goRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// face returns the face for glyphs of the given device size in Au.
func (c *Canvas) face(size geom.Au) font.Face {
	if c.opts.face != nil {
		return c.opts.face
	}
	if f, ok := c.faces[size]; ok {
		return f
	}

	f := c.opts.font
	if f == nil {
		var err error
		if f, err = goRegular(); err != nil {
			logger().Warn("raster: parsing default font", "err", err)
		}
	}
	var face font.Face = basicfont.Face7x13
	if f != nil {
		otFace, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    float64(geom.ToFloat32Px(size)),
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			logger().Warn("raster: creating font face", "size", size, "err", err)
		} else {
			face = otFace
		}
	}
	c.faces[size] = face
	return face
}

// DrawGlyphRun draws the glyphs of the item's range. Each glyph is looked up
// in the canvas font by the character its cluster starts at and positioned
// with the shaped advances and offsets, scaled by the transform. Glyphs are
// laid out along the transformed baseline without rotation.
func (c *Canvas) DrawGlyphRun(t *dlist.TextItem) {
	if t.TextRun == nil || t.TextColor.IsTransparent() {
		return
	}
	glyphs := t.TextRun.GlyphsInRange(t.Range)
	if len(glyphs) == 0 {
		return
	}

	scale := scaleOf(c.transform)
	radius := geom.ToFloat32Px(t.BlurRadius) * scale
	reach := int(radius*dlist.BlurInflationFactor) + 1
	area := deviceBounds(c.transform, geom.RectFFromRect(t.Bounds)).Inset(-reach)
	area = area.Intersect(c.clips.current().bounds)
	if area.Empty() {
		return
	}

	face := c.face(geom.FromFloat32Px(geom.ToFloat32Px(t.TextRun.FontSize) * scale))
	ox, oy := c.transform.TransformPoint(geom.PointF(t.BaselineOrigin))
	pen := geom.FromFloat32Px(ox)
	baseline := geom.FromFloat32Px(oy)
	scaled := func(a geom.Au) fixed.Int26_6 {
		return geom.FromFloat32Px(geom.ToFloat32Px(a) * scale)
	}

	cov := image.NewAlpha(area)
	for _, g := range glyphs {
		i := g.TextIndex()
		if i >= 0 && i < len(t.TextRun.Text) {
			dot := fixed.Point26_6{X: pen + scaled(g.XOffset), Y: baseline - scaled(g.YOffset)}
			dr, mask, maskp, _, ok := face.Glyph(dot, t.TextRun.Text[i])
			if ok {
				draw.DrawMask(cov, dr, image.Opaque, image.Point{}, mask, maskp, draw.Over)
			}
		}
		pen += scaled(g.Advance)
	}

	if radius > 0 {
		cov = blurMask(cov, float64(radius))
	}
	logger().Debug("raster: glyph run", "glyphs", len(glyphs), "area", area)
	c.fill(cov, image.NewUniform(t.TextColor))
}
